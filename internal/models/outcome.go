package models

// Outcome is the result of running the commit message hook once
type Outcome int

const (
	// OutcomeChanged means the token was written into the message file
	OutcomeChanged Outcome = iota
	// OutcomeUnchanged means the first line already contained the token
	OutcomeUnchanged
	// OutcomeNoBranch means HEAD is detached or the branch lookup failed
	OutcomeNoBranch
	// OutcomeNoIssue means the branch name has no issue number
	OutcomeNoIssue
	// OutcomeSkipped means the commit source is configured to be left alone
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeChanged:
		return "changed"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeNoBranch:
		return "no-branch"
	case OutcomeNoIssue:
		return "no-issue"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Modified reports whether the message file was rewritten
func (o Outcome) Modified() bool {
	return o == OutcomeChanged
}
