package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/monify-labs/sysfetch/internal/app"
	"github.com/monify-labs/sysfetch/internal/config"
	"github.com/monify-labs/sysfetch/internal/format"
	"github.com/monify-labs/sysfetch/pkg/models"
)

func newInitCmd(opts *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with every category enabled",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.path()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			if err := config.AllEnabled().Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")
	return cmd
}

func newCategoriesCmd(opts *options, log logrus.FieldLogger) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories and whether they are enabled",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.LoadConfig(opts.path(), log)

			data := pterm.TableData{{"Key", "Label", "Enabled"}}
			for _, cat := range models.Categories() {
				label := format.Label(cat)
				if label == "" {
					label = "-"
				}
				data = append(data, []string{cat.Key(), label, strconv.FormatBool(cfg.Enabled(cat))})
			}
			return pterm.DefaultTable.WithHasHeader().WithWriter(cmd.OutOrStdout()).WithData(data).Render()
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s v%s\n", config.AppName, config.Version)
			fmt.Fprintf(out, "Commit: %s\n", config.Commit)
			fmt.Fprintf(out, "Build Date: %s\n", config.BuildDate)
		},
	}
}
