package application

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// MaxNameLength is the longest note or section name accepted at the edit boundary
const MaxNameLength = 50

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if err := validate.Var(strings.TrimSpace(value), "required"); err != nil {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// ValidateID checks that value looks like an id produced by domain.NewID
func ValidateID(fieldName, value string) error {
	if err := ValidateRequired(fieldName, value); err != nil {
		return err
	}
	if err := validate.Var(value, "uuid"); err != nil {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("invalid %s: %s", formatFieldName(fieldName), value),
		}
	}
	return nil
}

// ValidateIconID checks an item or sprite id picked by the user
func ValidateIconID(fieldName string, value int) error {
	if err := validate.Var(value, "gte=0"); err != nil {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must not be negative", formatFieldName(fieldName)),
		}
	}
	return nil
}

// TruncateName trims whitespace and cuts name to MaxNameLength runes.
// Applied where the user types a name, not inside the notebook.
func TruncateName(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) <= MaxNameLength {
		return name
	}
	return string([]rune(name)[:MaxNameLength])
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "sectionID" -> "section ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"sectionID":     "section ID",
		"noteID":        "note ID",
		"sourceID":      "source section ID",
		"destinationID": "destination section ID",
		"itemID":        "item ID",
		"spriteID":      "sprite ID",
		"name":          "name",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}
