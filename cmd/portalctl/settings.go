package main

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newSettingsCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change program settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := d.open(cmd.Context(), configFile)
			if err != nil {
				return err
			}
			defer s.Close()

			settings, err := s.settings.Load(cmd.Context())
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Setting", "Value"})
			table.Append([]string{"Candidates may edit their profile", yesNo(settings.AllowCandidateEdit)})
			if !settings.UpdatedAt.IsZero() {
				table.Append([]string{"Last updated", settings.UpdatedAt.Format("2006-01-02 15:04 MST")})
			}
			table.Render()
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "allow-edit <true|false>",
		Short: "Allow or forbid candidates to edit their own profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			allow, err := strconv.ParseBool(args[0])
			if err != nil {
				return fmt.Errorf("expected true or false, got %q", args[0])
			}

			s, err := d.open(cmd.Context(), configFile)
			if err != nil {
				return err
			}
			defer s.Close()

			settings, err := s.settings.Update(cmd.Context(), allow)
			if err != nil {
				return err
			}
			if settings.AllowCandidateEdit {
				success.Fprintln(cmd.OutOrStdout(), "Candidates may now edit their profile")
			} else {
				warning.Fprintln(cmd.OutOrStdout(), "Candidate profile editing is now disabled")
			}
			return nil
		},
	})

	return cmd
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
