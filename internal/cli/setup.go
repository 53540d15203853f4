// Package cli wires module arguments, user-facing output, and the reconciler
// together. It is the boundary that validates arguments before the reconciler
// runs and turns its outcome into the module result.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/zoro11031/homelab-coreos-minipc/file-create/internal/common"
	"github.com/zoro11031/homelab-coreos-minipc/file-create/internal/config"
	"github.com/zoro11031/homelab-coreos-minipc/file-create/internal/logging"
	"github.com/zoro11031/homelab-coreos-minipc/file-create/internal/reconcile"
	"github.com/zoro11031/homelab-coreos-minipc/file-create/internal/result"
	"github.com/zoro11031/homelab-coreos-minipc/file-create/internal/system"
	"github.com/zoro11031/homelab-coreos-minipc/file-create/internal/ui"
)

// prompter asks for arguments that were not supplied
type prompter interface {
	PromptInputWithValidation(prompt string, validate func(string) error) (string, error)
	PromptMultiline(prompt string) (string, error)
}

// Options configure a ModuleContext
type Options struct {
	Output      string
	Interactive bool
	Quiet       bool
	// Stdout receives the module result; defaults to os.Stdout
	Stdout io.Writer
	// FileSystem defaults to the local filesystem
	FileSystem system.FileSystemManager
}

// ModuleContext holds all dependencies needed to run the module
type ModuleContext struct {
	UI          *ui.UI
	Reconciler  *reconcile.Reconciler
	Format      result.Format
	Interactive bool

	logger   *slog.Logger
	prompter prompter
	stdout   io.Writer
}

// NewModuleContext creates a ModuleContext with all dependencies initialized
func NewModuleContext(opts Options) (*ModuleContext, error) {
	output := opts.Output
	if output == "" {
		output = string(result.FormatJSON)
	}
	format, err := result.ParseFormat(output)
	if err != nil {
		return nil, err
	}

	uiInstance := ui.New()
	uiInstance.SetQuiet(opts.Quiet)

	fs := opts.FileSystem
	if fs == nil {
		fs = system.NewFileSystem()
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	return &ModuleContext{
		UI:          uiInstance,
		Reconciler:  reconcile.New(fs, logging.New("reconcile")),
		Format:      format,
		Interactive: opts.Interactive,
		logger:      logging.New("cli"),
		prompter:    uiInstance,
		stdout:      stdout,
	}, nil
}

// Run decodes and validates args, reconciles the target file, and returns the
// module result. On failure both a failed result and the error are returned.
func Run(ctx *ModuleContext, args map[string]any) (*result.ModuleResult, error) {
	params, err := config.Decode(args)
	if err != nil {
		return result.Failure(err, nil), err
	}

	if ctx.Interactive {
		if err := promptMissing(ctx, params); err != nil {
			return result.Failure(err, params.ModuleArgs()), err
		}
	}

	if err := params.Validate(); err != nil {
		return result.Failure(err, params.ModuleArgs()), err
	}

	ctx.logger.Debug("running module", "path", params.Path, "check_mode", params.CheckMode)
	ctx.UI.Step(fmt.Sprintf("Ensuring content of %s", params.Path))
	if params.CheckMode {
		ctx.UI.Warning("Check mode: no changes will be made")
	}

	res, err := ctx.Reconciler.Reconcile(params.Desired(), params.CheckMode)
	if err != nil {
		ctx.UI.Errorf("%v", err)
		return result.Failure(err, params.ModuleArgs()), err
	}

	switch {
	case res.Changed:
		ctx.UI.Successf("Wrote %d bytes to %s", len(res.Content), res.Path)
	case !params.CheckMode:
		ctx.UI.Infof("%s already up to date", params.Path)
	}

	return result.FromReconciliation(res, params.ModuleArgs()), nil
}

// WriteResult prints the module result to stdout in the configured format
func (ctx *ModuleContext) WriteResult(r *result.ModuleResult) error {
	return result.Write(ctx.stdout, r, ctx.Format)
}

// promptMissing fills in required arguments the caller left out
func promptMissing(ctx *ModuleContext, params *config.Params) error {
	if params.Path == "" {
		path, err := ctx.prompter.PromptInputWithValidation("Path of the file to manage", common.ValidateTargetPath)
		if err != nil {
			return fmt.Errorf("failed to prompt for path: %w", err)
		}
		params.Path = path
	}

	if params.Content == nil {
		content, err := ctx.prompter.PromptMultiline("Desired file content")
		if err != nil {
			return fmt.Errorf("failed to prompt for content: %w", err)
		}
		params.SetContent(content)
	}

	return nil
}
