package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nhle/todokeeper/internal/logging"
	"github.com/nhle/todokeeper/internal/model"
)

func newRootCmd() *cobra.Command {
	s := &session{}

	rootCmd := &cobra.Command{
		Use:   "todo",
		Short: "Keep a todo list in a plain-text backup file",
		Long: `todo keeps a list of todos with titles, descriptions and colored tags.

The list lives in a flat-text backup file and can optionally be mirrored
into a SQLite database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&s.configPath, "config", model.DefaultConfigPath(), "config file")
	rootCmd.PersistentFlags().StringVar(&s.backupPath, "backup", "", "backup file (overrides backup.path)")
	rootCmd.PersistentFlags().StringVar(&s.logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddGroup(
		&cobra.Group{ID: "todos", Title: "Todo Commands:"},
		&cobra.Group{ID: "storage", Title: "Storage Commands:"},
	)

	rootCmd.AddCommand(
		newAddCmd(s),
		newListCmd(s),
		newRemoveCmd(s),
		newTitleCmd(s),
		newDescribeCmd(s),
		newTagCmd(s),
		newUntagCmd(s),
		newTagsCmd(s),
		newImportCmd(s),
		newDBCmd(s),
		newConfigCmd(s),
	)

	return rootCmd
}

func (s *session) init(cmd *cobra.Command) error {
	cfg, err := model.LoadConfig(s.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if s.backupPath != "" {
		cfg.Backup.Path = s.backupPath
	}
	if s.logLevel != "" {
		cfg.Log.Level = s.logLevel
	}
	s.cfg = cfg
	s.out = cmd.OutOrStdout()

	opts := logging.DefaultOptions()
	opts.Level = cfg.Log.Level
	opts.Format = cfg.Log.Format
	s.log = logging.New(cmd.ErrOrStderr(), opts)

	s.log.Debug("config loaded", "path", s.configPath, "backup", cfg.Backup.Path)
	return nil
}
