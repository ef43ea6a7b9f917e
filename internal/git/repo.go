package git

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"
)

// GitError provides better context for git command failures
type GitError struct {
	Command string
	Output  string
}

func (e *GitError) Error() string {
	return "git " + e.Command + ": " + e.Output
}

// RepoRoot returns the top-level directory of the work tree containing path.
// Returns an empty string outside a repository or for bare repositories.
func RepoRoot(path string) string {
	repo, err := openRepo(path)
	if err != nil {
		return ""
	}

	wt, err := repo.Worktree()
	if err != nil {
		return ""
	}
	return wt.Filesystem.Root()
}

// HooksDir resolves the directory git runs hooks from (honours core.hooksPath).
// The result is absolute.
func HooksDir(ctx context.Context, dir string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--git-path", "hooks")
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	outputStr := strings.TrimSpace(string(output))
	if err != nil {
		if outputStr == "" {
			outputStr = err.Error()
		}
		return "", &GitError{Command: "rev-parse", Output: outputStr}
	}

	if filepath.IsAbs(outputStr) {
		return outputStr, nil
	}

	base := dir
	if base == "" {
		base = "."
	}
	return filepath.Abs(filepath.Join(base, outputStr))
}
