package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultDataDir  = "~/.local/share/betternotes"
	DefaultStore    = StoreSQLite
	DefaultDebounce = 500 * time.Millisecond

	// Group is the namespace every notebook key lives under
	Group = "betternotes"
)

// Store backends
const (
	StoreSQLite = "sqlite"
	StoreFile   = "file"
	StoreMemory = "memory"
)

// Config is the resolved runtime configuration
type Config struct {
	DataDir     string
	Store       string
	LogFile     string
	Debounce    time.Duration
	IconCatalog string
	Environment string

	// logFileSet is true when BETTERNOTES_LOG_FILE chose the log path
	logFileSet bool
}

// Load reads .env (if present) and the BETTERNOTES_* environment variables.
func Load() *Config {
	// a missing .env is the normal case
	_ = godotenv.Load()

	cfg := &Config{
		Store:       strings.ToLower(getEnv("BETTERNOTES_STORE", DefaultStore)),
		Debounce:    getEnvAsDuration("BETTERNOTES_DEBOUNCE", DefaultDebounce),
		IconCatalog: ExpandHome(getEnv("BETTERNOTES_ICON_CATALOG", "")),
		Environment: getEnv("BETTERNOTES_ENV", "production"),
	}
	if logFile := os.Getenv("BETTERNOTES_LOG_FILE"); logFile != "" {
		cfg.LogFile = ExpandHome(logFile)
		cfg.logFileSet = true
	}
	cfg.SetDataDir(getEnv("BETTERNOTES_DATA_DIR", DefaultDataDir))
	return cfg
}

// SetDataDir moves the data directory. The log file follows it unless
// BETTERNOTES_LOG_FILE named one.
func (c *Config) SetDataDir(dir string) {
	c.DataDir = ExpandHome(dir)
	if !c.logFileSet {
		c.LogFile = filepath.Join(c.DataDir, "betternotes.log")
	}
}

// IsDevelopment reports whether verbose console logging is wanted
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}
