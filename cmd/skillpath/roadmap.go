// cmd/skillpath/roadmap.go
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"skillpath-workers/internal/catalog"
	"skillpath-workers/internal/models"
	"skillpath-workers/internal/roadmap"
)

func newRoadmapCmd(catalogPath *string) *cobra.Command {
	var (
		career      string
		profilePath string
	)

	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "Print the six-month roadmap for a career",
		Long:  "Prints the roadmap for --career. Without --profile the default budget, weekly hours and no learning style are assumed.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var profile models.Profile
			if profilePath != "" {
				p, err := loadProfile(profilePath)
				if err != nil {
					return err
				}
				profile = p
			}
			cat, err := catalog.Load(*catalogPath)
			if err != nil {
				return err
			}

			plan := roadmap.NewGenerator(cat).Plan(profile, career)
			return printPlan(cmd.OutOrStdout(), career, plan)
		},
	}

	cmd.Flags().StringVarP(&career, "career", "c", "", "Target career name (required)")
	cmd.Flags().StringVarP(&profilePath, "profile", "p", "", "Path to a JSON or YAML profile")
	if err := cmd.MarkFlagRequired("career"); err != nil {
		panic(fmt.Sprintf("failed to mark career flag as required: %v", err))
	}
	return cmd
}

func printPlan(w io.Writer, career string, plan roadmap.Plan) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Roadmap for %s (template: %s)\n", career, plan.Template)
	for _, m := range plan.Months {
		fmt.Fprintf(&b, "\n%s\n", m.Month)
		fmt.Fprintf(&b, "  Focus: %s\n", m.Focus)
		fmt.Fprintf(&b, "  Time:  %s\n", m.Time)
		b.WriteString("  Goals:\n")
		for _, g := range m.Goals {
			fmt.Fprintf(&b, "    - %s\n", g)
		}
		b.WriteString("  Resources:\n")
		for _, r := range m.Resources {
			fmt.Fprintf(&b, "    - %s\n", r)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
