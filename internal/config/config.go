package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/wahlandcase/commit-issue-prefix/internal/git"
	"github.com/wahlandcase/commit-issue-prefix/internal/issue"
	"github.com/wahlandcase/commit-issue-prefix/internal/message"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the per-repository config file, looked up at the work tree root
const FileName = ".commit-issue-prefix.toml"

// userFileName is the config file name inside the user config directory
const userFileName = "commit-issue-prefix.toml"

type Config struct {
	Issue   IssueConfig   `toml:"issue"`
	Message MessageConfig `toml:"message"`
	Branch  BranchConfig  `toml:"branch"`

	// Where the config was read from, empty for defaults (not serialized)
	source string

	// Compiled from Issue.Pattern and Message.Placement by Validate (not serialized)
	issueRegex *regexp.Regexp
	placement  message.Placement
}

type IssueConfig struct {
	Pattern string `toml:"pattern"`
}

type MessageConfig struct {
	Template    string   `toml:"template"`
	Placement   string   `toml:"placement"`
	SkipSources []string `toml:"skip_sources"`
}

type BranchConfig struct {
	Source string `toml:"source"`
}

func DefaultConfig() *Config {
	return &Config{
		Issue: IssueConfig{
			Pattern: issue.DefaultPattern,
		},
		Message: MessageConfig{
			Template:    issue.DefaultTemplate,
			Placement:   message.Prefix.String(),
			SkipSources: []string{},
		},
		Branch: BranchConfig{
			Source: git.SourceCLI,
		},
	}
}

// UserPath returns the config path inside the user's config directory
func UserPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, userFileName), nil
}

// Load reads the config from explicitPath if set. Otherwise the first of
// <repo root>/.commit-issue-prefix.toml and the user config file that exists
// is used. Missing files fall back to defaults.
// The returned config is not validated; call Validate after applying overrides.
func Load(explicitPath, workDir string) (*Config, error) {
	if explicitPath != "" {
		return loadFile(explicitPath)
	}

	var candidates []string
	if root := git.RepoRoot(workDir); root != "" {
		candidates = append(candidates, filepath.Join(root, FileName))
	}
	if path, err := UserPath(); err == nil {
		candidates = append(candidates, path)
	}

	for _, path := range candidates {
		cfg, err := loadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		return cfg, err
	}

	return DefaultConfig(), nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.source = path

	return cfg, nil
}

// Validate compiles the issue pattern and checks enumerated settings
func (c *Config) Validate() error {
	re, err := issue.Compile(c.Issue.Pattern)
	if err != nil {
		return err
	}

	placement, err := message.ParsePlacement(c.Message.Placement)
	if err != nil {
		return fmt.Errorf("invalid message.placement: %w", err)
	}

	switch c.Branch.Source {
	case "", git.SourceCLI, git.SourceGoGit:
	default:
		return fmt.Errorf("invalid branch.source %q (want %q or %q)", c.Branch.Source, git.SourceCLI, git.SourceGoGit)
	}

	c.issueRegex = re
	c.placement = placement
	return nil
}

// IssueRegex returns the compiled issue pattern (nil before Validate)
func (c *Config) IssueRegex() *regexp.Regexp {
	return c.issueRegex
}

// Placement returns the parsed placement (prefix before Validate)
func (c *Config) Placement() message.Placement {
	return c.placement
}

// Source returns the file the config was loaded from, empty for defaults
func (c *Config) Source() string {
	return c.source
}

// Encode renders the config as TOML
func (c *Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

// Save writes the config to path, creating parent directories
func (c *Config) Save(path string) error {
	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := c.Encode()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
