package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// configFile is the optional JSON config shared by every subcommand.
var configFile string

var (
	success = color.New(color.FgGreen)
	heading = color.New(color.FgYellow, color.Bold)
	warning = color.New(color.FgRed)
)

// NewRootCmd creates the root command of the admin CLI.
func NewRootCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portalctl",
		Short: "Administer the internship portal",
		Long: `portalctl works directly against the portal's document store.
It reads the same STORAGE_* environment and JSON config as the server.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path")

	cmd.AddCommand(newMigrateCmd(d))
	cmd.AddCommand(newCandidatesCmd(d))
	cmd.AddCommand(newSettingsCmd(d))

	return cmd
}
