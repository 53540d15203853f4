package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoro11031/homelab-coreos-minipc/file-create/internal/config"
	"github.com/zoro11031/homelab-coreos-minipc/file-create/internal/reconcile"
	"github.com/zoro11031/homelab-coreos-minipc/file-create/internal/system"
	"github.com/zoro11031/homelab-coreos-minipc/file-create/internal/ui"
)

type fakePrompter struct {
	path    string
	content string
	err     error
	asked   []string
}

func (f *fakePrompter) PromptInputWithValidation(prompt string, validate func(string) error) (string, error) {
	f.asked = append(f.asked, "path")
	if f.err != nil {
		return "", f.err
	}
	if err := validate(f.path); err != nil {
		return "", err
	}
	return f.path, nil
}

func (f *fakePrompter) PromptMultiline(prompt string) (string, error) {
	f.asked = append(f.asked, "content")
	return f.content, f.err
}

func newTestContext(t *testing.T, fs system.FileSystemManager) (*ModuleContext, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	ctx, err := NewModuleContext(Options{Stdout: stdout, FileSystem: fs})
	require.NoError(t, err)
	ctx.UI = ui.NewWithWriter(stderr)
	return ctx, stdout, stderr
}

func TestRunCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.txt")
	ctx, stdout, stderr := newTestContext(t, nil)

	res, err := Run(ctx, map[string]any{config.KeyPath: path, config.KeyContent: "Hello there\n"})
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, path, res.Path)
	assert.Equal(t, "Hello there\n", res.Content)
	assert.Contains(t, stderr.String(), "Wrote 12 bytes")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Hello there\n", string(data))

	require.NoError(t, ctx.WriteResult(res))
	assert.Contains(t, stdout.String(), `"changed":true`)
}

func TestRunUpToDate(t *testing.T) {
	fs := system.NewMockFileSystem()
	fs.Files["/etc/motd"] = []byte("Welcome\n")
	ctx, _, stderr := newTestContext(t, fs)

	res, err := Run(ctx, map[string]any{"path": "/etc/motd", "content": "Welcome\n"})
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Empty(t, res.Path)
	assert.Empty(t, res.Content)
	assert.Zero(t, fs.WriteCalls)
	assert.Contains(t, stderr.String(), "already up to date")
}

func TestRunCheckMode(t *testing.T) {
	fs := system.NewMockFileSystem()
	ctx, _, stderr := newTestContext(t, fs)

	res, err := Run(ctx, map[string]any{"path": "/tmp/new", "content": "x", "_ansible_check_mode": true})
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Empty(t, res.Path)
	assert.Zero(t, fs.Calls())
	assert.Contains(t, stderr.String(), "Check mode")
}

func TestRunValidationFailsBeforeFilesystem(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]any
		wantErr error
	}{
		{name: "missing path", args: map[string]any{"content": "x"}, wantErr: config.ErrPathRequired},
		{name: "missing content", args: map[string]any{"path": "/tmp/a"}, wantErr: config.ErrContentRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := system.NewMockFileSystem()
			ctx, _, _ := newTestContext(t, fs)

			res, err := Run(ctx, tt.args)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, res.Failed)
			assert.False(t, res.Changed)
			assert.Equal(t, err.Error(), res.Msg)
			assert.Zero(t, fs.Calls())
		})
	}
}

func TestRunUnsupportedArgument(t *testing.T) {
	ctx, _, _ := newTestContext(t, system.NewMockFileSystem())

	res, err := Run(ctx, map[string]any{"path": "/tmp/a", "content": "x", "owner": "root"})
	require.Error(t, err)
	assert.True(t, res.Failed)
	assert.Nil(t, res.Invocation)
}

func TestRunDirectoryFails(t *testing.T) {
	dir := t.TempDir()
	ctx, stdout, stderr := newTestContext(t, nil)

	res, err := Run(ctx, map[string]any{"path": dir, "content": "x"})
	require.ErrorIs(t, err, reconcile.ErrIsDirectory)
	assert.True(t, res.Failed)
	assert.Contains(t, stderr.String(), "[ERROR]")

	require.NoError(t, ctx.WriteResult(res))
	assert.True(t, strings.Contains(stdout.String(), `"failed":true`))
}

func TestRunInteractivePromptsForMissing(t *testing.T) {
	fs := system.NewMockFileSystem()
	ctx, _, _ := newTestContext(t, fs)
	ctx.Interactive = true
	prompts := &fakePrompter{path: "/tmp/prompted", content: "typed"}
	ctx.prompter = prompts

	res, err := Run(ctx, map[string]any{})
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, []string{"path", "content"}, prompts.asked)
	assert.Equal(t, "typed", string(fs.Files["/tmp/prompted"]))
}

func TestRunInteractiveSkipsSuppliedArgs(t *testing.T) {
	ctx, _, _ := newTestContext(t, system.NewMockFileSystem())
	ctx.Interactive = true
	prompts := &fakePrompter{}
	ctx.prompter = prompts

	_, err := Run(ctx, map[string]any{"path": "/tmp/a", "content": ""})
	require.NoError(t, err)
	assert.Empty(t, prompts.asked)
}

func TestRunInteractivePromptError(t *testing.T) {
	ctx, _, _ := newTestContext(t, system.NewMockFileSystem())
	ctx.Interactive = true
	ctx.prompter = &fakePrompter{err: errors.New("interrupt")}

	res, err := Run(ctx, map[string]any{"content": "x"})
	require.Error(t, err)
	assert.True(t, res.Failed)
	assert.Contains(t, res.Msg, "failed to prompt for path")
}

func TestNewModuleContextRejectsUnknownFormat(t *testing.T) {
	_, err := NewModuleContext(Options{Output: "xml"})
	assert.Error(t, err)
}
