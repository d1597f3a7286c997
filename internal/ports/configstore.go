package ports

// ConfigStore is the host's key/value configuration store. Values are
// opaque text grouped under a namespace.
type ConfigStore interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(group, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value
	Set(group, key, value string) error

	// Unset removes key. Removing an absent key is not an error.
	Unset(group, key string) error
}

// BatchConfigStore is implemented by stores that can write several keys
// atomically.
type BatchConfigStore interface {
	ConfigStore

	SetMany(group string, values map[string]string) error
}
