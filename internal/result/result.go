// Package result builds and serializes the module result reported back to
// the calling automation engine.
package result

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/zoro11031/homelab-coreos-minipc/file-create/internal/common"
	"github.com/zoro11031/homelab-coreos-minipc/file-create/internal/reconcile"
)

// Format selects the serialization of the module result
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates an output format name
func ParseFormat(name string) (Format, error) {
	if err := common.ValidateOneOf(name, string(FormatJSON), string(FormatYAML)); err != nil {
		return "", fmt.Errorf("invalid output format: %w", err)
	}
	return Format(name), nil
}

// Invocation echoes the arguments the module ran with
type Invocation struct {
	ModuleArgs map[string]any `json:"module_args" yaml:"module_args"`
}

// ModuleResult is the payload written to stdout.
// Changed, Path, and Content are always present; Path and Content are empty
// unless the file was written.
type ModuleResult struct {
	Changed    bool        `json:"changed" yaml:"changed"`
	Path       string      `json:"path" yaml:"path"`
	Content    string      `json:"content" yaml:"content"`
	Failed     bool        `json:"failed,omitempty" yaml:"failed,omitempty"`
	Msg        string      `json:"msg,omitempty" yaml:"msg,omitempty"`
	Invocation *Invocation `json:"invocation,omitempty" yaml:"invocation,omitempty"`
}

// FromReconciliation converts a reconciler result
func FromReconciliation(res *reconcile.Result, moduleArgs map[string]any) *ModuleResult {
	return &ModuleResult{
		Changed:    res.Changed,
		Path:       res.Path,
		Content:    res.Content,
		Invocation: invocation(moduleArgs),
	}
}

// Failure reports err with nothing changed
func Failure(err error, moduleArgs map[string]any) *ModuleResult {
	return &ModuleResult{
		Failed:     true,
		Msg:        err.Error(),
		Invocation: invocation(moduleArgs),
	}
}

func invocation(moduleArgs map[string]any) *Invocation {
	if moduleArgs == nil {
		return nil
	}
	return &Invocation{ModuleArgs: moduleArgs}
}

// Write serializes r to w in the given format
func Write(w io.Writer, r *ModuleResult, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return enc.Close()
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
