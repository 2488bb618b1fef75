// cmd/skillpath/assess.go
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"skillpath-workers/internal/advisor"
	"skillpath-workers/internal/catalog"
	"skillpath-workers/internal/report"
)

func newAssessCmd(catalogPath *string) *cobra.Command {
	var (
		profilePath string
		format      string
		top         int
	)

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Run a full assessment for a profile",
		Long:  "Scores every career, suggests courses, builds the roadmap and prints the report (text) or the full assessment (json).",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "text" && format != "json" {
				return fmt.Errorf("unknown format %q, expected text or json", format)
			}

			profile, err := loadProfile(profilePath)
			if err != nil {
				return err
			}
			cat, err := catalog.Load(*catalogPath)
			if err != nil {
				return err
			}

			assessment := advisor.New(cat, advisor.Config{TopN: top}).Assess(profile)

			out := cmd.OutOrStdout()
			if format == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(assessment)
			}

			renderer, err := report.NewRenderer()
			if err != nil {
				return err
			}
			text, err := renderer.Render(assessment.ReportInput())
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, text)
			return err
		},
	}

	cmd.Flags().StringVarP(&profilePath, "profile", "p", "", "Path to a JSON or YAML profile (required)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text or json")
	cmd.Flags().IntVar(&top, "top", 10, "Number of ranked careers to keep (1-10)")
	if err := cmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	return cmd
}
