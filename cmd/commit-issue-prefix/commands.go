package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wahlandcase/commit-issue-prefix/internal/app"
	"github.com/wahlandcase/commit-issue-prefix/internal/config"
	"github.com/wahlandcase/commit-issue-prefix/internal/git"
	"github.com/wahlandcase/commit-issue-prefix/internal/hook"
	"github.com/wahlandcase/commit-issue-prefix/internal/ui"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// interactive reports whether prompts can be shown
var interactive = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

func newInstallCmd() *cobra.Command {
	var (
		hookName string
		command  string
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the hook into the current repository",
		Long: `Writes a managed section into .git/hooks/commit-msg (or the hook chosen
with --hook) that runs commit-issue-prefix. Content outside the section is
kept. The hooks directory honours core.hooksPath.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := hook.ValidateName(hookName); err != nil {
				return err
			}

			hooksDir, err := git.HooksDir(cmd.Context(), "")
			if err != nil {
				return fmt.Errorf("not in a git repository: %w", err)
			}
			hookPath := filepath.Join(hooksDir, hookName)

			err = hook.Install(hooksDir, hookName, command, force)
			if errors.Is(err, hook.ErrForeignHook) {
				if !interactive() {
					return fmt.Errorf("%s already exists; rerun with --force to append to it", hookPath)
				}
				ok, promptErr := app.Confirm("Append to existing "+hookName+" hook?", hookPath)
				if promptErr != nil {
					return promptErr
				}
				if !ok {
					ui.Info("Left %s unchanged", hookPath)
					return nil
				}
				err = hook.Install(hooksDir, hookName, command, true)
			}
			if err != nil {
				return err
			}

			ui.Success("Installed %s hook", hookName)
			ui.Dim(hookPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&hookName, "hook", hook.CommitMsg, "Hook to install: commit-msg or prepare-commit-msg")
	cmd.Flags().StringVar(&command, "command", hook.DefaultCommand, "Command the hook runs, with any flags (e.g. \"commit-issue-prefix --suffix\")")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Append to an existing hook without asking")
	return cmd
}

func newUninstallCmd() *cobra.Command {
	var hookName string

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the hook section from the current repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hooksDir, err := git.HooksDir(cmd.Context(), "")
			if err != nil {
				return fmt.Errorf("not in a git repository: %w", err)
			}

			removed, err := hook.Uninstall(hooksDir, hookName)
			if err != nil {
				return err
			}
			if !removed {
				ui.Info("No commit-issue-prefix section in %s hook", hookName)
				return nil
			}
			ui.Success("Removed %s hook", hookName)
			return nil
		},
	}

	cmd.Flags().StringVar(&hookName, "hook", hook.CommitMsg, "Hook to remove: commit-msg or prepare-commit-msg")
	return cmd
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	var initFile bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if initFile {
				return initConfig(opts)
			}

			cfg, err := loadConfig(cmd.Flags(), opts)
			if err != nil {
				return err
			}
			data, err := cfg.Encode()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if src := cfg.Source(); src != "" {
				fmt.Fprintf(out, "# loaded from %s\n", src)
			} else {
				fmt.Fprintln(out, "# built-in defaults")
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, "Write the default config (to --config, or the user config path)")
	return cmd
}

func initConfig(opts *rootOptions) error {
	path := opts.configPath
	if path == "" {
		var err error
		if path, err = config.UserPath(); err != nil {
			return err
		}
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	ui.Success("Wrote default config")
	ui.Dim(path)
	return nil
}
