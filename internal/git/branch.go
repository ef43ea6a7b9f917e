package git

import (
	"context"
	"os/exec"
	"strings"

	"github.com/wahlandcase/commit-issue-prefix/internal/models"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// BranchReader resolves the branch HEAD currently points at
type BranchReader interface {
	CurrentBranch(ctx context.Context) models.HeadState
}

// CLIReader asks the git binary for the current branch
type CLIReader struct {
	// Dir is the working directory for git (empty = current directory)
	Dir string
}

// CurrentBranch runs `git symbolic-ref --short HEAD`.
// Any failure (detached HEAD, not a repo, no git binary) reports a detached head.
func (r CLIReader) CurrentBranch(ctx context.Context) models.HeadState {
	cmd := exec.CommandContext(ctx, "git", "symbolic-ref", "--short", "HEAD")
	cmd.Dir = r.Dir

	output, err := cmd.Output()
	if err != nil {
		return models.DetachedHead()
	}
	return models.OnBranch(strings.TrimSpace(string(output)))
}

// RepoReader reads HEAD with go-git, without needing a git binary
type RepoReader struct {
	// Path is any directory inside the repository (empty = current directory)
	Path string
}

// CurrentBranch reads the unresolved HEAD reference so unborn branches
// (fresh repos with no commits) still report their name.
func (r RepoReader) CurrentBranch(_ context.Context) models.HeadState {
	repo, err := openRepo(r.Path)
	if err != nil {
		return models.DetachedHead()
	}

	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return models.DetachedHead()
	}

	if head.Type() != plumbing.SymbolicReference || !head.Target().IsBranch() {
		return models.DetachedHead()
	}
	return models.OnBranch(head.Target().Short())
}

// NewBranchReader returns the reader for a branch source name ("git" or "go-git")
func NewBranchReader(source, dir string) BranchReader {
	if source == SourceGoGit {
		return RepoReader{Path: dir}
	}
	return CLIReader{Dir: dir}
}

// Branch source names accepted by NewBranchReader
const (
	SourceCLI   = "git"
	SourceGoGit = "go-git"
)

func openRepo(path string) (*git.Repository, error) {
	if path == "" {
		path = "."
	}
	return git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
}
