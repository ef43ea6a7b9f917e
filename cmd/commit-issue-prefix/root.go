package main

import (
	"fmt"
	"os"

	"github.com/wahlandcase/commit-issue-prefix/internal/config"
	"github.com/wahlandcase/commit-issue-prefix/internal/git"
	"github.com/wahlandcase/commit-issue-prefix/internal/hook"
	"github.com/wahlandcase/commit-issue-prefix/internal/message"
	"github.com/wahlandcase/commit-issue-prefix/internal/models"
	"github.com/wahlandcase/commit-issue-prefix/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type rootOptions struct {
	configPath   string
	regex        string
	template     string
	suffix       bool
	branchSource string
	verbose      bool
	noColor      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "commit-issue-prefix <commit-msg-file> [source [sha]]",
		Short: "Add the issue number from the branch name to commit messages",
		Long: `Reads the current branch, extracts an issue number (default: '#' plus 1-5 digits)
and inserts it into the commit message file as a prefix or suffix, unless the
first line already contains it.

Meant to run as a commit-msg or prepare-commit-msg hook. It never blocks a
commit: every failure leaves the message unchanged and exits 0.`,
		Version:       version,
		Args:          cobra.RangeArgs(1, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ui.Configure(opts.noColor)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			runHook(cmd, opts, args)
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "Config file (default: repo "+config.FileName+", then user config)")
	pf.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	f := rootCmd.Flags()
	f.StringVarP(&opts.regex, "regex", "r", "", `Regex pattern to extract issue number from branch (default: #\d{1,5})`)
	f.StringVarP(&opts.template, "template", "t", "", "Commit message template (default: [{}] -> [#111])")
	f.BoolVarP(&opts.suffix, "suffix", "s", false, "Append the issue to the first line instead of prepending it")
	f.StringVar(&opts.branchSource, "branch-source", "", `How to read the branch: "git" (subprocess) or "go-git"`)
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Print what the hook did")

	rootCmd.AddCommand(newInstallCmd(), newUninstallCmd(), newConfigCmd(opts))
	return rootCmd
}

// loadConfig reads the config file and applies flags set on the command line
func loadConfig(flags *pflag.FlagSet, opts *rootOptions) (*config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(opts.configPath, wd)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if flags.Changed("regex") {
		cfg.Issue.Pattern = opts.regex
	}
	if flags.Changed("template") {
		cfg.Message.Template = opts.template
	}
	if flags.Changed("suffix") {
		cfg.Message.Placement = message.Prefix.String()
		if opts.suffix {
			cfg.Message.Placement = message.Suffix.String()
		}
	}
	if flags.Changed("branch-source") {
		cfg.Branch.Source = opts.branchSource
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runHook never fails: problems are printed as warnings and the message is left alone
func runHook(cmd *cobra.Command, opts *rootOptions, args []string) {
	cfg, err := loadConfig(cmd.Flags(), opts)
	if err != nil {
		ui.Warn("commit-issue-prefix: %v (message left unchanged)", err)
		return
	}

	runner := &hook.Runner{
		Branches:    git.NewBranchReader(cfg.Branch.Source, ""),
		Pattern:     cfg.IssueRegex(),
		Template:    cfg.Message.Template,
		Placement:   cfg.Placement(),
		SkipSources: cfg.Message.SkipSources,
	}

	var source string
	if len(args) > 1 {
		source = args[1]
	}

	result, err := runner.Run(cmd.Context(), args[0], source)
	if err != nil {
		ui.Warn("commit-issue-prefix: %v (message left unchanged)", err)
		return
	}

	if opts.verbose {
		report(result, cfg.Placement(), source)
	}
}

func report(result hook.Result, placement message.Placement, source string) {
	switch result.Outcome {
	case models.OutcomeChanged:
		ui.Success("Added %s as %s (branch %s)", ui.TokenStyle(result.Token), placement, ui.BranchStyle(result.Branch))
	case models.OutcomeUnchanged:
		ui.Info("%s already in subject line", ui.TokenStyle(result.Token))
	case models.OutcomeNoIssue:
		ui.Info("No issue number in branch %s", ui.BranchStyle(result.Branch))
	case models.OutcomeNoBranch:
		ui.Info("Not on a branch, message left unchanged")
	case models.OutcomeSkipped:
		ui.Info("Skipping %s commit", source)
	}
}
