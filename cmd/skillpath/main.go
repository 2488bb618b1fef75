// Package main is the skillpath command line: it runs a career assessment
// from a profile file without a Zeebe cluster.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var catalogPath string

	root := &cobra.Command{
		Use:           "skillpath",
		Short:         "Career guidance from a student profile",
		Long:          "skillpath scores careers against a student profile, suggests courses and builds a six-month learning roadmap.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&catalogPath, "catalog", os.Getenv("SKILLPATH_CATALOG"), "Path to a JSON catalog file (default: built-in catalog)")

	root.AddCommand(
		newAssessCmd(&catalogPath),
		newCareersCmd(&catalogPath),
		newRoadmapCmd(&catalogPath),
		newCatalogCmd(&catalogPath),
	)
	return root
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
