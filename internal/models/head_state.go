package models

// HeadState describes where HEAD points in the working repository
type HeadState struct {
	// Branch is the short branch name (e.g., "feature/#123-login"), empty if detached
	Branch string
	// Detached is true when HEAD is not a named branch or could not be resolved
	Detached bool
}

// OnBranch creates a HeadState for a named branch
func OnBranch(branch string) HeadState {
	if branch == "" {
		return DetachedHead()
	}
	return HeadState{Branch: branch}
}

// DetachedHead creates a HeadState with no branch
func DetachedHead() HeadState {
	return HeadState{Detached: true}
}
