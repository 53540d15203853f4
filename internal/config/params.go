package config

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/zoro11031/homelab-coreos-minipc/file-create/internal/common"
	"github.com/zoro11031/homelab-coreos-minipc/file-create/internal/reconcile"
)

var (
	// ErrPathRequired is returned when no path argument was supplied.
	ErrPathRequired = errors.New("missing required argument: path")
	// ErrContentRequired is returned when no content argument was supplied.
	ErrContentRequired = errors.New("missing required argument: content")
)

// Params are the validated module arguments.
// Content is a pointer so an explicitly empty content can be told apart from
// a missing one.
type Params struct {
	Path      string  `mapstructure:"path"`
	Content   *string `mapstructure:"content"`
	CheckMode bool    `mapstructure:"_ansible_check_mode"`
}

// Decode converts loosely typed module arguments into Params.
// Unknown user-facing keys are rejected; engine-internal keys are ignored.
func Decode(args map[string]any) (*Params, error) {
	if err := checkSupported(args); err != nil {
		return nil, err
	}

	normalized := make(map[string]any, len(args)+len(Defaults))
	for k, v := range Defaults {
		normalized[k] = v
	}
	for k, v := range args {
		normalized[k] = v
	}
	if alias, ok := args[KeyCheckModeAlias]; ok {
		if _, engineSet := args[KeyCheckMode]; !engineSet {
			normalized[KeyCheckMode] = alias
		}
	}
	delete(normalized, KeyCheckModeAlias)

	var params Params
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.DecodeHookFuncKind(stringToBoolHook),
		WeaklyTypedInput: true,
		Result:           &params,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(normalized); err != nil {
		return nil, fmt.Errorf("invalid module arguments: %w", err)
	}

	return &params, nil
}

// Validate checks required arguments. It runs before any filesystem access.
func (p *Params) Validate() error {
	if p.Path == "" {
		return ErrPathRequired
	}
	if err := common.ValidateTargetPath(p.Path); err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}
	if p.Content == nil {
		return ErrContentRequired
	}
	return nil
}

// Desired returns the reconciler input. Call only after Validate succeeds.
func (p *Params) Desired() reconcile.DesiredState {
	desired := reconcile.DesiredState{Path: p.Path}
	if p.Content != nil {
		desired.Content = *p.Content
	}
	return desired
}

// ModuleArgs returns the user-facing arguments as reported back to the caller.
func (p *Params) ModuleArgs() map[string]any {
	args := map[string]any{
		KeyPath:    p.Path,
		KeyContent: nil,
	}
	if p.Content != nil {
		args[KeyContent] = *p.Content
	}
	return args
}

// SetContent sets the content argument.
func (p *Params) SetContent(content string) {
	p.Content = &content
}

func checkSupported(args map[string]any) error {
	var unsupported []string
	for key := range args {
		if supportedKeys[key] || key == KeyCheckMode || strings.HasPrefix(key, internalKeyPrefix) {
			continue
		}
		unsupported = append(unsupported, key)
	}
	if len(unsupported) == 0 {
		return nil
	}

	sort.Strings(unsupported)
	return fmt.Errorf("unsupported parameters: %s (supported: %s, %s)",
		strings.Join(unsupported, ", "), KeyContent, KeyPath)
}

// stringToBoolHook accepts the boolean spellings automation engines use
// ("yes", "on", "1"...) in key=value argument files.
func stringToBoolHook(from reflect.Kind, to reflect.Kind, data any) (any, error) {
	if from != reflect.String || to != reflect.Bool {
		return data, nil
	}
	return common.ParseBool(data.(string))
}
