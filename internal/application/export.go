package application

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Export formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Export renders the whole notebook in the given format
func (nb *Notebook) Export(format string) ([]byte, error) {
	snap := nb.Snapshot()

	switch strings.ToLower(format) {
	case FormatJSON, "":
		return json.MarshalIndent(snap, "", "  ")
	case FormatYAML, "yml":
		return yaml.Marshal(snap)
	default:
		return nil, &ValidationError{
			Field:   "format",
			Message: fmt.Sprintf("unsupported export format %q (expected json or yaml)", format),
		}
	}
}
