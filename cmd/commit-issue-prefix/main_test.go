package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wahlandcase/commit-issue-prefix/internal/config"
	"github.com/wahlandcase/commit-issue-prefix/internal/hook"
	"github.com/wahlandcase/commit-issue-prefix/internal/ui"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRepo creates a repository on branch, makes it the working directory
// and isolates user config. Returns the repo dir and a buffer capturing ui output.
func setupRepo(t *testing.T, branch string) (string, *bytes.Buffer) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	head := plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName(branch))
	require.NoError(t, repo.Storer.SetReference(head))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var buf bytes.Buffer
	prev := ui.Out
	ui.Out = &buf
	t.Cleanup(func() { ui.Out = prev })

	return dir, &buf
}

func writeMessage(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ".git", "COMMIT_EDITMSG")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestHookPrefix(t *testing.T) {
	dir, _ := setupRepo(t, "feature/#123-login")
	msg := writeMessage(t, dir, "Initial commit\n\nSome description")

	_, err := execute(t, "--branch-source", "go-git", "--no-color", msg)
	require.NoError(t, err)
	assert.Equal(t, "[#123] Initial commit\n\nSome description", readFile(t, msg))

	// second run is a no-op
	_, err = execute(t, "--branch-source", "go-git", "--no-color", msg)
	require.NoError(t, err)
	assert.Equal(t, "[#123] Initial commit\n\nSome description", readFile(t, msg))
}

func TestHookSuffixAndTemplateFlags(t *testing.T) {
	dir, out := setupRepo(t, "fix/abc-77-crash")
	msg := writeMessage(t, dir, "Fix bug\n")

	_, err := execute(t, "--branch-source", "go-git", "--no-color", "-v",
		"-s", "-r", `(?i)[a-z]+-\d+`, "-t", "({})", msg)
	require.NoError(t, err)
	assert.Equal(t, "Fix bug (ABC-77)\n", readFile(t, msg))
	assert.Contains(t, out.String(), "Added (ABC-77) as suffix")
}

func TestHookRepoConfig(t *testing.T) {
	dir, _ := setupRepo(t, "feature/#9")
	cfg := "[message]\nplacement = \"suffix\"\ntemplate = \"refs {}\"\n[branch]\nsource = \"go-git\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(cfg), 0644))
	msg := writeMessage(t, dir, "Add thing")

	_, err := execute(t, "--no-color", msg)
	require.NoError(t, err)
	assert.Equal(t, "Add thing refs #9", readFile(t, msg))

	// flags win over the file
	msg = writeMessage(t, dir, "Add thing")
	_, err = execute(t, "--no-color", "--suffix=false", msg)
	require.NoError(t, err)
	assert.Equal(t, "refs #9 Add thing", readFile(t, msg))
}

func TestHookNeverFails(t *testing.T) {
	tests := []struct {
		name    string
		branch  string
		args    []string
		wantOut string
	}{
		{"no issue", "main", []string{"-v", "--branch-source", "go-git"}, "No issue number in branch main"},
		{"bad regex", "feature/#1", []string{"-r", "#(", "--branch-source", "go-git"}, "message left unchanged"},
		{"bad branch source", "feature/#1", []string{"--branch-source", "svn"}, "message left unchanged"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, out := setupRepo(t, tt.branch)
			msg := writeMessage(t, dir, "Untouched\n")

			args := append([]string{"--no-color"}, tt.args...)
			_, err := execute(t, append(args, msg)...)
			require.NoError(t, err)
			assert.Equal(t, "Untouched\n", readFile(t, msg))
			assert.Contains(t, out.String(), tt.wantOut)
		})
	}
}

func TestHookMissingMessageFile(t *testing.T) {
	dir, out := setupRepo(t, "feature/#1")

	_, err := execute(t, "--no-color", "--branch-source", "go-git", filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "message left unchanged")
}

func TestHookSkipSourceFromConfig(t *testing.T) {
	dir, out := setupRepo(t, "feature/#4")
	cfgPath := filepath.Join(t.TempDir(), "cfg.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[message]\nskip_sources = [\"merge\"]\n"), 0644))
	msg := writeMessage(t, dir, "Merge branch 'x'\n")

	_, err := execute(t, "--no-color", "-v", "-c", cfgPath, "--branch-source", "go-git", msg, "merge")
	require.NoError(t, err)
	assert.Equal(t, "Merge branch 'x'\n", readFile(t, msg))
	assert.Contains(t, out.String(), "Skipping merge commit")

	_, err = execute(t, "--no-color", "-c", cfgPath, "--branch-source", "go-git", msg, "message")
	require.NoError(t, err)
	assert.Equal(t, "[#4] Merge branch 'x'\n", readFile(t, msg))
}

func TestHookRequiresMessageFile(t *testing.T) {
	setupRepo(t, "main")
	_, err := execute(t)
	require.Error(t, err)
}

func TestConfigCommand(t *testing.T) {
	setupRepo(t, "main")

	out, err := execute(t, "config", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "# built-in defaults")
	assert.Contains(t, out, "[issue]")
	assert.Contains(t, out, "placement")
	assert.Contains(t, out, "prefix")

	path := filepath.Join(t.TempDir(), "init.toml")
	_, err = execute(t, "config", "--init", "-c", path)
	require.NoError(t, err)
	assert.FileExists(t, path)

	_, err = execute(t, "config", "--init", "-c", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	out, err = execute(t, "config", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, out, "# loaded from "+path)
}

func TestInstallAndUninstall(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir, out := setupRepo(t, "main")
	prevInteractive := interactive
	interactive = func() bool { return false }
	t.Cleanup(func() { interactive = prevInteractive })

	_, err := execute(t, "install", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Installed commit-msg hook")

	hooksDir := filepath.Join(dir, ".git", "hooks")
	assert.True(t, hook.Installed(hooksDir, hook.CommitMsg))

	foreign := filepath.Join(hooksDir, hook.PrepareCommitMsg)
	require.NoError(t, os.WriteFile(foreign, []byte("#!/bin/sh\necho mine\n"), 0755))

	_, err = execute(t, "install", "--hook", hook.PrepareCommitMsg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, err = execute(t, "install", "--hook", hook.PrepareCommitMsg, "--force", "--command", "commit-issue-prefix -s")
	require.NoError(t, err)
	content := readFile(t, foreign)
	assert.True(t, strings.HasPrefix(content, "#!/bin/sh\necho mine\n"))
	assert.Contains(t, content, `commit-issue-prefix -s "$@"`)

	_, err = execute(t, "uninstall")
	require.NoError(t, err)
	assert.False(t, hook.Installed(hooksDir, hook.CommitMsg))

	_, err = execute(t, "install", "--hook", "pre-push")
	require.Error(t, err)
}
