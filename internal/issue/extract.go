// Package issue extracts issue numbers from branch names and formats them
// into the token inserted into commit messages.
package issue

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultPattern matches a '#' followed by 1-5 digits (e.g., "#123")
const DefaultPattern = `#\d{1,5}`

// DefaultTemplate wraps the issue number in brackets (e.g., "[#123]")
const DefaultTemplate = "[{}]"

// placeholder is replaced by the issue number in templates
const placeholder = "{}"

// Compile compiles an extraction pattern
func Compile(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid issue pattern %q: %w", pattern, err)
	}
	return re, nil
}

// Extract returns the leftmost match of re in branch, uppercased.
// When the pattern has capture groups the first group is used instead of the
// whole match. Returns false if nothing (or only an empty string) matched.
func Extract(branch string, re *regexp.Regexp) (string, bool) {
	if re == nil {
		return "", false
	}

	match := re.FindStringSubmatch(branch)
	if match == nil {
		return "", false
	}

	issue := match[0]
	if len(match) > 1 {
		issue = match[1]
	}
	if issue == "" {
		return "", false
	}

	return strings.ToUpper(issue), true
}

// Format substitutes the issue number for every "{}" in template
func Format(template, issue string) string {
	return strings.ReplaceAll(template, placeholder, issue)
}
