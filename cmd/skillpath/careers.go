// cmd/skillpath/careers.go
package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"skillpath-workers/internal/catalog"
)

func newCareersCmd(catalogPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "careers",
		Short: "List the careers in the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := catalog.Load(*catalogPath)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CAREER\tSALARY\tGROWTH")
			for _, c := range cat.Careers {
				fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name, c.SalaryRange, c.GrowthPotential)
			}
			return w.Flush()
		},
	}
}
