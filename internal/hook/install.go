package hook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Hook names the message hook can be installed as. Both receive the
// commit message file as their first argument.
const (
	CommitMsg        = "commit-msg"
	PrepareCommitMsg = "prepare-commit-msg"
)

// Names lists the supported hook names
var Names = []string{CommitMsg, PrepareCommitMsg}

// Section markers; only content between them is managed by the installer.
const (
	sectionBegin = "# --- BEGIN COMMIT-ISSUE-PREFIX ---"
	sectionEnd   = "# --- END COMMIT-ISSUE-PREFIX ---"
	shebang      = "#!/bin/sh\n"
)

// ErrForeignHook is returned by Install when the hook file exists, was not
// written by us, and force is false.
var ErrForeignHook = errors.New("hook file exists and is not managed by commit-issue-prefix")

// ValidateName checks that name is a supported hook
func ValidateName(name string) error {
	if !slices.Contains(Names, name) {
		return fmt.Errorf("unsupported hook %q (want %s)", name, strings.Join(Names, " or "))
	}
	return nil
}

// DefaultCommand is the command the managed block runs
const DefaultCommand = "commit-issue-prefix"

// Section returns the managed block that runs command with the hook's arguments.
// command may carry flags ("commit-issue-prefix --suffix"); its first word must
// be the executable. The block never fails the hook.
func Section(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		command = DefaultCommand
		fields = []string{DefaultCommand}
	}

	return sectionBegin + "\n" +
		"# Managed by commit-issue-prefix. Edit outside these markers.\n" +
		"if command -v " + fields[0] + " >/dev/null 2>&1; then\n" +
		"  " + command + " \"$@\" || true\n" +
		"fi\n" +
		sectionEnd + "\n"
}

// sectionBounds returns the byte range of the managed block, including the
// newline after the end marker, or ok=false if there is none.
func sectionBounds(content string) (start, end int, ok bool) {
	beginIdx := strings.Index(content, sectionBegin)
	endIdx := strings.Index(content, sectionEnd)
	if beginIdx == -1 || endIdx == -1 || beginIdx > endIdx {
		return 0, 0, false
	}

	// start of the begin-marker line
	start = strings.LastIndex(content[:beginIdx], "\n") + 1

	end = endIdx + len(sectionEnd)
	if end < len(content) && content[end] == '\n' {
		end++
	}
	return start, end, true
}

// injectSection replaces an existing managed block or appends one
func injectSection(existing, section string) string {
	if start, end, ok := sectionBounds(existing); ok {
		return existing[:start] + section + existing[end:]
	}

	result := existing
	if !strings.HasSuffix(result, "\n") {
		result += "\n"
	}
	return result + "\n" + section
}

// removeSection drops the managed block and the blank line before it
func removeSection(content string) (string, bool) {
	start, end, ok := sectionBounds(content)
	if !ok {
		return content, false
	}
	if start >= 2 && content[start-1] == '\n' && content[start-2] == '\n' {
		start--
	}
	return content[:start] + content[end:], true
}

// Install writes the managed block into hooksDir/name.
// A missing hook file is created; a file that already has the block is
// updated in place. Any other existing file is left alone unless force is set,
// in which case the block is appended after its content.
func Install(hooksDir, name, command string, force bool) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := os.MkdirAll(hooksDir, 0755); err != nil {
		return fmt.Errorf("create hooks directory: %w", err)
	}

	hookPath := filepath.Join(hooksDir, name)
	section := Section(command)

	// #nosec G304 -- path constrained to the hooks directory
	existing, err := os.ReadFile(hookPath)
	var content string
	switch {
	case errors.Is(err, os.ErrNotExist):
		content = shebang + section
	case err != nil:
		return fmt.Errorf("read %s: %w", name, err)
	default:
		existingStr := string(existing)
		if _, _, managed := sectionBounds(existingStr); !managed && !force {
			return ErrForeignHook
		}
		content = injectSection(existingStr, section)
	}

	// #nosec G306 -- git hooks must be executable
	if err := os.WriteFile(hookPath, []byte(content), 0755); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	// WriteFile keeps the mode of an existing file
	return os.Chmod(hookPath, 0755)
}

// Uninstall removes the managed block from hooksDir/name. The file is deleted
// when nothing but the shebang is left. Returns false if there was no block.
func Uninstall(hooksDir, name string) (bool, error) {
	if err := ValidateName(name); err != nil {
		return false, err
	}
	hookPath := filepath.Join(hooksDir, name)

	// #nosec G304 -- path constrained to the hooks directory
	existing, err := os.ReadFile(hookPath)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", name, err)
	}

	content, removed := removeSection(string(existing))
	if !removed {
		return false, nil
	}

	if strings.TrimSpace(strings.TrimPrefix(content, shebang)) == "" {
		if err := os.Remove(hookPath); err != nil {
			return false, fmt.Errorf("remove %s: %w", name, err)
		}
		return true, nil
	}

	if err := os.WriteFile(hookPath, []byte(content), 0755); err != nil {
		return false, fmt.Errorf("write %s: %w", name, err)
	}
	return true, nil
}

// Installed reports whether hooksDir/name contains the managed block
func Installed(hooksDir, name string) bool {
	// #nosec G304 -- path constrained to the hooks directory
	content, err := os.ReadFile(filepath.Join(hooksDir, name))
	if err != nil {
		return false
	}
	_, _, ok := sectionBounds(string(content))
	return ok
}
