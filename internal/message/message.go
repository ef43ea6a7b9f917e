// Package message inserts issue tokens into commit message files.
package message

import (
	"fmt"
	"os"
	"strings"
)

// Placement selects where the token goes in the first line
type Placement int

const (
	// Prefix puts the token before the subject: "[#1] Fix bug"
	Prefix Placement = iota
	// Suffix puts the token after the subject: "Fix bug [#1]"
	Suffix
)

func (p Placement) String() string {
	switch p {
	case Prefix:
		return "prefix"
	case Suffix:
		return "suffix"
	default:
		return ""
	}
}

// ParsePlacement parses "prefix" or "suffix" (empty means prefix)
func ParsePlacement(s string) (Placement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "prefix":
		return Prefix, nil
	case "suffix":
		return Suffix, nil
	default:
		return Prefix, fmt.Errorf("unknown placement %q (want prefix or suffix)", s)
	}
}

// SubjectLine returns the first line of content with trailing whitespace removed
func SubjectLine(content string) string {
	first, _, _ := strings.Cut(content, "\n")
	return strings.TrimRight(first, " \t\r\n\v\f")
}

// Insert returns content with token added at the given placement.
// The second result is false (and content is returned as-is) when the
// subject line already contains token.
func Insert(content, token string, placement Placement) (string, bool) {
	if strings.Contains(SubjectLine(content), token) {
		return content, false
	}

	if placement == Prefix {
		return token + " " + content, true
	}

	first, rest, hasNewline := strings.Cut(content, "\n")
	subject := strings.TrimRight(first, " \t\r\n\v\f")

	var sb strings.Builder
	if subject != "" {
		sb.WriteString(subject)
		sb.WriteString(" ")
	}
	sb.WriteString(token)
	if hasNewline {
		sb.WriteString("\n")
		sb.WriteString(rest)
	}
	return sb.String(), true
}

// Rewrite inserts token into the commit message file at path.
// Returns true if the file was written, false if the token was already present.
func Rewrite(path, token string, placement Placement) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stat commit message: %w", err)
	}

	// #nosec G304 -- path is the message file git hands to the hook
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read commit message: %w", err)
	}

	updated, changed := Insert(string(data), token, placement)
	if !changed {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("write commit message: %w", err)
	}
	return true, nil
}
