// Package reconcile ensures a single file holds exactly the desired content.
//
// Reconcile compares the file's current content with the desired content and
// rewrites the file in full only when they differ. A missing file is a normal
// state that always leads to a write. In check mode nothing on disk is
// touched, not even read.
package reconcile

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/zoro11031/homelab-coreos-minipc/file-create/internal/system"
)

// DesiredState is the content a file should end up with.
type DesiredState struct {
	Path    string
	Content string
}

// CurrentState is what was observed on disk for one invocation.
// Exists is false when the path does not exist, in which case Content is empty.
type CurrentState struct {
	Exists  bool
	Content string
}

// Matches reports whether the observed state already satisfies desired.
// An absent file never matches, even when the desired content is empty.
func (c CurrentState) Matches(desired DesiredState) bool {
	return c.Exists && c.Content == desired.Content
}

// Result is the outcome of one reconciliation.
// Path and Content are only set when a write happened.
type Result struct {
	Changed bool
	Path    string
	Content string
}

// Reconciler applies DesiredState to the filesystem
type Reconciler struct {
	fs     system.FileSystemManager
	logger *slog.Logger
}

// New creates a Reconciler. A nil logger discards diagnostics.
func New(fs system.FileSystemManager, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Reconciler{
		fs:     fs,
		logger: logger,
	}
}

// Reconcile makes the file at desired.Path contain exactly desired.Content.
// In check mode it returns an unchanged result without any filesystem access.
func (r *Reconciler) Reconcile(desired DesiredState, checkMode bool) (*Result, error) {
	if checkMode {
		r.logger.Debug("check mode, skipping", "path", desired.Path)
		return &Result{}, nil
	}

	current, err := r.Observe(desired.Path)
	if err != nil {
		return nil, err
	}

	if current.Matches(desired) {
		r.logger.Debug("content already matches", "path", desired.Path)
		return &Result{}, nil
	}

	r.logger.Debug("writing content",
		"path", desired.Path,
		"existed", current.Exists,
		"bytes", len(desired.Content))

	if err := r.fs.WriteFile(desired.Path, []byte(desired.Content), system.DefaultFilePerms); err != nil {
		return nil, &WriteError{Path: desired.Path, Cause: err}
	}

	return &Result{
		Changed: true,
		Path:    desired.Path,
		Content: desired.Content,
	}, nil
}

// Observe reads the current state of path. A missing path is reported as
// CurrentState{Exists: false} rather than an error.
func (r *Reconciler) Observe(path string) (CurrentState, error) {
	info, err := r.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return CurrentState{}, nil
		}
		return CurrentState{}, &StatError{Path: path, Cause: err}
	}

	if info.IsDir() {
		return CurrentState{}, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	data, err := r.fs.ReadFile(path)
	if err != nil {
		// Removed between stat and read
		if os.IsNotExist(err) {
			return CurrentState{}, nil
		}
		return CurrentState{}, &ReadError{Path: path, Cause: err}
	}

	return CurrentState{Exists: true, Content: string(data)}, nil
}
