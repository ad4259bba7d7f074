package main

import (
	"github.com/spf13/cobra"
)

func newMigrateCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long:  `Connect to the configured store and apply every pending migration.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Println("Connecting to store...")
			s, err := d.open(cmd.Context(), configFile)
			if err != nil {
				return err
			}
			defer s.Close()

			if err = s.storages.Documents.Ping(cmd.Context()); err != nil {
				return err
			}
			success.Fprintln(cmd.OutOrStdout(), "Migrations completed successfully")
			return nil
		},
	}
}
