package main

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/intern-portal/internal/cpf"
	"github.com/MKhiriev/intern-portal/models"
)

func newCandidatesCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "candidates",
		Aliases: []string{"c"},
		Short:   "Inspect and manage candidate accounts",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every registered candidate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := d.open(cmd.Context(), configFile)
			if err != nil {
				return err
			}
			defer s.Close()

			profiles, err := s.credentials.List(cmd.Context())
			if err != nil {
				return err
			}

			heading.Fprintf(cmd.OutOrStdout(), "%d candidate(s)\n", len(profiles))
			renderCandidates(cmd.OutOrStdout(), profiles)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <cpf>",
		Short: "Delete a candidate account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := d.open(cmd.Context(), configFile)
			if err != nil {
				return err
			}
			defer s.Close()

			if err = s.credentials.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			success.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", cpf.Format(args[0]))
			return nil
		},
	})

	cmd.AddCommand(newRoleCmd(d, "grant-admin", "Make a candidate an administrator", models.RoleAdministrator))
	cmd.AddCommand(newRoleCmd(d, "revoke-admin", "Turn an administrator back into a candidate", models.RoleCandidate))

	return cmd
}

func newRoleCmd(d *deps, use, short string, role models.Role) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <cpf>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := d.open(cmd.Context(), configFile)
			if err != nil {
				return err
			}
			defer s.Close()

			profile, err := s.credentials.SetRole(cmd.Context(), args[0], role)
			if err != nil {
				return err
			}
			success.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", cpf.Format(profile.CPF), profile.Role)
			return nil
		},
	}
}

func renderCandidates(w io.Writer, profiles []models.CandidateProfile) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"CPF", "Name", "Email", "City", "Area", "Semester", "Role", "Registered"})

	for _, p := range profiles {
		table.Append([]string{
			cpf.Format(p.CPF),
			p.FullName,
			p.Email,
			string(p.ChosenCity),
			string(p.ChosenArea),
			strconv.Itoa(p.Semester),
			string(p.Role),
			p.CreatedAt.Format("2006-01-02"),
		})
	}

	table.Render()
}
