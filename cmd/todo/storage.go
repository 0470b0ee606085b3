package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nhle/todokeeper/internal/importer"
	"github.com/nhle/todokeeper/internal/model"
	"github.com/nhle/todokeeper/internal/store"
)

func newImportCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "import FILE.yaml",
		GroupID: "storage",
		Short:   "Add the todos listed in a YAML file",
		Long: `Add the todos listed in a YAML file:

  todos:
    - title: Buy milk
      description: two liters
      tags: [errand, urgent:RED]

Todos already in the list are skipped. Nothing is added if any entry is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			return s.update(cmd.Context(), func(list *store.ToDoList) error {
				n, err := importer.Import(list, string(data))
				if err != nil {
					return fmt.Errorf("importing %s: %w", args[0], err)
				}
				s.log.Info("todos imported", "file", args[0], "added", n, "todos", list.Size())
				return nil
			})
		},
	}
}

func newDBCmd(s *session) *cobra.Command {
	dbCmd := &cobra.Command{
		Use:     "db",
		GroupID: "storage",
		Short:   "Manage the SQLite mirror",
	}

	pushCmd := &cobra.Command{
		Use:   "push",
		Short: "Copy the backup file into the SQLite mirror",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := s.load()
			if err != nil {
				return err
			}
			if err := s.push(cmd.Context(), list); err != nil {
				return err
			}
			s.log.Info("mirror pushed", "path", s.cfg.Store.Path, "todos", list.Size())
			return nil
		},
	}

	pullCmd := &cobra.Command{
		Use:   "pull",
		Short: "Replace the backup file with the SQLite mirror",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := s.pull(cmd.Context())
			if err != nil {
				return err
			}
			if err := s.backup().Save(list); err != nil {
				return err
			}
			s.log.Info("mirror pulled", "path", s.cfg.Store.Path, "todos", list.Size())
			return nil
		},
	}

	dbCmd.AddCommand(pushCmd, pullCmd)
	return dbCmd
}

func newConfigCmd(s *session) *cobra.Command {
	configCmd := &cobra.Command{
		Use:     "config",
		GroupID: "storage",
		Short:   "Inspect configuration",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := yaml.Marshal(s.cfg)
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			_, err = s.out.Write(out)
			return err
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(s.configPath); err == nil {
				return fmt.Errorf("config file %s already exists", s.configPath)
			}
			if err := model.SaveConfig(s.configPath, s.cfg); err != nil {
				return err
			}
			s.log.Info("config written", "path", s.configPath)
			return nil
		},
	})

	return configCmd
}
