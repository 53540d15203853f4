package common

import (
	"fmt"
	"strings"
)

// ValidateTargetPath validates a file path argument. Relative paths are
// allowed and resolved against the working directory by the OS.
func ValidateTargetPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path cannot be empty")
	}
	if strings.ContainsRune(path, 0) {
		return fmt.Errorf("path contains a NUL byte: %q", path)
	}
	if strings.HasSuffix(path, "/") {
		return fmt.Errorf("path must name a file, not a directory: %s", path)
	}
	return nil
}

// ValidateOneOf validates that value is one of the allowed choices
func ValidateOneOf(value string, choices ...string) error {
	for _, choice := range choices {
		if value == choice {
			return nil
		}
	}
	return fmt.Errorf("value must be one of %s, got: %s", strings.Join(choices, ", "), value)
}

// ParseBool parses the boolean spellings accepted in module arguments
func ParseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "on", "1", "true", "y", "t":
		return true, nil
	case "no", "off", "0", "false", "n", "f", "":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value: %s", value)
	}
}
