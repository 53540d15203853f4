// Package config loads and validates the arguments of the file-create module.
//
// Arguments come from an args file written by the calling automation engine,
// optionally overridden by command-line flags. Two args file formats are
// understood: a JSON or YAML object (optionally wrapped in an
// ANSIBLE_MODULE_ARGS object), and the legacy key=value format with
// shell-style quoting.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/kballard/go-shellquote"
	"gopkg.in/yaml.v3"
)

// LoadArgsFile reads module arguments from path
func LoadArgsFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read args file: %w", err)
	}

	args, err := ParseArgs(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse args file %s: %w", path, err)
	}
	return args, nil
}

// ParseArgs parses module arguments in either structured or key=value form
func ParseArgs(text string) (map[string]any, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return map[string]any{}, nil
	}

	// key=value content may itself be valid YAML (content="key: value"),
	// so it is detected before attempting a structured parse
	if !strings.HasPrefix(trimmed, "{") && isKeyValueArgs(text) {
		return parseKeyValueArgs(text)
	}

	var structured map[string]any
	if err := yaml.Unmarshal([]byte(text), &structured); err == nil && structured != nil {
		if wrapped, ok := structured[KeyModuleArgsWrapper].(map[string]any); ok {
			return wrapped, nil
		}
		return structured, nil
	}

	return parseKeyValueArgs(text)
}

// isKeyValueArgs reports whether text shell-splits into key=value words only
func isKeyValueArgs(text string) bool {
	words, err := splitArgs(text)
	if err != nil || len(words) == 0 {
		return false
	}
	for _, word := range words {
		key, _, found := strings.Cut(word, "=")
		if !found || strings.TrimSpace(key) == "" {
			return false
		}
	}
	return true
}

// parseKeyValueArgs parses whitespace separated key=value pairs. Values may be
// quoted; lines starting with # are comments.
func parseKeyValueArgs(text string) (map[string]any, error) {
	words, err := splitArgs(text)
	if err != nil {
		return nil, err
	}

	args := make(map[string]any, len(words))
	for _, word := range words {
		parts := strings.SplitN(word, "=", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" {
			return nil, fmt.Errorf("expected key=value, got %q", word)
		}
		args[strings.TrimSpace(parts[0])] = parts[1]
	}

	return args, nil
}

// splitArgs drops comment lines and splits the rest using shell quoting rules
func splitArgs(text string) ([]string, error) {
	var b strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip comments
		if strings.HasPrefix(line, "#") {
			continue
		}
		b.WriteString(scanner.Text())
		b.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	words, err := shellquote.Split(b.String())
	if err != nil {
		return nil, fmt.Errorf("invalid quoting: %w", err)
	}
	return words, nil
}
