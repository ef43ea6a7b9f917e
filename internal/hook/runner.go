// Package hook wires branch lookup, issue extraction and message rewriting
// into the commit message hook, and installs that hook into repositories.
package hook

import (
	"context"
	"regexp"
	"slices"

	"github.com/wahlandcase/commit-issue-prefix/internal/git"
	"github.com/wahlandcase/commit-issue-prefix/internal/issue"
	"github.com/wahlandcase/commit-issue-prefix/internal/message"
	"github.com/wahlandcase/commit-issue-prefix/internal/models"
)

// Runner inserts the current branch's issue token into a commit message file
type Runner struct {
	Branches  git.BranchReader
	Pattern   *regexp.Regexp
	Template  string
	Placement message.Placement
	// SkipSources lists prepare-commit-msg sources (e.g. "merge") to leave alone
	SkipSources []string
}

// Result describes a single run, for verbose output
type Result struct {
	Outcome models.Outcome
	Branch  string
	Token   string
}

// Run processes msgFile. source is git's second prepare-commit-msg argument
// and may be empty. A detached HEAD or a branch without an issue number is
// not an error; only file I/O failures are returned.
func (r *Runner) Run(ctx context.Context, msgFile, source string) (Result, error) {
	if source != "" && slices.Contains(r.SkipSources, source) {
		return Result{Outcome: models.OutcomeSkipped}, nil
	}

	head := r.Branches.CurrentBranch(ctx)
	if head.Detached {
		return Result{Outcome: models.OutcomeNoBranch}, nil
	}

	number, ok := issue.Extract(head.Branch, r.Pattern)
	if !ok {
		return Result{Outcome: models.OutcomeNoIssue, Branch: head.Branch}, nil
	}

	template := r.Template
	if template == "" {
		template = issue.DefaultTemplate
	}
	token := issue.Format(template, number)

	result := Result{Outcome: models.OutcomeUnchanged, Branch: head.Branch, Token: token}
	changed, err := message.Rewrite(msgFile, token, r.Placement)
	if err != nil {
		return result, err
	}
	if changed {
		result.Outcome = models.OutcomeChanged
	}
	return result, nil
}
