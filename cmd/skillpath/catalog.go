// cmd/skillpath/catalog.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"skillpath-workers/internal/catalog"
)

func newCatalogCmd(catalogPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Validate or export career catalogs",
	}
	cmd.AddCommand(newCatalogValidateCmd(), newCatalogExportCmd(catalogPath))
	return cmd
}

func newCatalogValidateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a JSON catalog file against the catalog schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := catalog.LoadFile(file)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: OK (%d careers, %d course branches)\n", file, len(c.Careers), len(c.Branches()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the catalog file (required)")
	if err := cmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}
	return cmd
}

func newCatalogExportCmd(catalogPath *string) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active catalog as JSON",
		Long:  "Writes the built-in catalog (or --catalog) as JSON, a starting point for a custom catalog file.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := catalog.Load(*catalogPath)
			if err != nil {
				return err
			}
			data, err := c.Export()
			if err != nil {
				return err
			}
			data = append(data, '\n')

			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0644); err != nil {
				return fmt.Errorf("failed to write catalog to %s: %w", out, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: stdout)")
	return cmd
}
