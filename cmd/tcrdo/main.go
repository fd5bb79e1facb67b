package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jnord/tcrdo/internal/config"
	"github.com/jnord/tcrdo/internal/logging"
	"github.com/jnord/tcrdo/internal/tui"
	"github.com/jnord/tcrdo/internal/update"
	"github.com/jnord/tcrdo/internal/vcs"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "tcrdo",
	Short: "Task list manager with a test && commit workflow",
	Long: `tcrdo keeps a task list in tasks.md and drives a TCR (test && commit
or revert) workflow: run your test command from inside the task list and
tcrdo commits on green, reverts on red.

Configuration is read from an optional tcrdo.toml in the working
directory; there are no flags and no environment variables.`,
	Version:      version,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade tcrdo to the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		release, hasUpdate, err := update.CheckForUpdate(cmd.Context(), version)
		if err != nil {
			return err
		}
		if !hasUpdate {
			fmt.Println("Already up to date.")
			return nil
		}
		fmt.Printf("Updating %s -> %s...\n", version, release.Version)
		if err := update.Update(cmd.Context(), version); err != nil {
			return err
		}
		fmt.Println("Done.")
		return nil
	},
}

func runTUI() error {
	cfg, err := config.Load(config.DefaultConfigFile)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	if !vcs.New(".").IsRepo() {
		logger.Warn("working directory is not a git repository, test runs will not commit or revert")
	}

	model, err := tui.New(tui.Config{
		TaskFile:    cfg.TaskFile,
		ExportFile:  cfg.ExportFile,
		TestCommand: cfg.TestCommand,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(upgradeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
