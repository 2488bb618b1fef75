// cmd/tools/registry-updater/main.go
package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"skillpath-workers/pkg/registry"
)

func newRootCmd() *cobra.Command {
	var registryPath string

	root := &cobra.Command{
		Use:           "registry-updater",
		Short:         "Maintain configs/activity-registry.json",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&registryPath, "path", "configs/activity-registry.json", "Path to registry file")

	root.AddCommand(
		newAddCmd(&registryPath),
		newUpdateCmd(&registryPath),
		newValidateCmd(&registryPath),
		newListCmd(&registryPath),
	)
	return root
}

func newAddCmd(path *string) *cobra.Command {
	a := registry.Activity{
		InputSchema:  map[string]interface{}{},
		OutputSchema: map[string]interface{}{},
		ErrorCodes:   []string{},
		Workflows:    []string{},
		Tags:         []string{},
	}

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a new activity to the registry",
		Example: `  registry-updater add --id rank-careers --displayName "Rank Careers" --description "Ranks careers" --category career`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.TaskType == "" {
				a.TaskType = a.ID
			}
			now := time.Now()
			reg, err := registry.LoadRegistry(*path)
			if errors.Is(err, os.ErrNotExist) {
				reg = registry.New(now)
			} else if err != nil {
				return fmt.Errorf("failed to load registry: %w", err)
			}

			if err := reg.Add(a, now); err != nil {
				return err
			}
			if err := reg.Save(*path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added activity: %s\n", a.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&a.ID, "id", "", "Activity ID (e.g. rank-careers)")
	f.StringVar(&a.DisplayName, "displayName", "", "Display name")
	f.StringVar(&a.Description, "description", "", "Description")
	f.StringVar(&a.Category, "category", "", "Category (assessment, career, learning, report)")
	f.StringVar(&a.TaskType, "taskType", "", "Zeebe task type (default: the id)")
	f.StringVar(&a.Version, "version", "1.0.0", "Version")
	f.StringVar(&a.ImplementationStatus, "status", registry.StatusPlanned, "Implementation status (planned, in-progress, completed, verified)")
	f.StringVar(&a.Timeout, "timeout", "30s", "Job timeout")
	f.IntVar(&a.Retries, "retries", 3, "Job retries")
	for _, name := range []string{"id", "displayName", "description", "category"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
	return cmd
}

func newUpdateCmd(path *string) *cobra.Command {
	var id, field, value string

	cmd := &cobra.Command{
		Use:     "update",
		Short:   "Update one field of an existing activity",
		Example: "  registry-updater update --id rank-careers --field status --value completed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := registry.LoadRegistry(*path)
			if err != nil {
				return fmt.Errorf("failed to load registry: %w", err)
			}
			if err := reg.Update(id, field, value, time.Now()); err != nil {
				return err
			}
			if err := reg.Save(*path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated activity %s, field %s to %s\n", id, field, value)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Activity ID to update")
	cmd.Flags().StringVar(&field, "field", "", "Field to update (status, version, displayName, description, category, taskType, timeout, retries)")
	cmd.Flags().StringVar(&value, "value", "", "New value for the field")
	for _, name := range []string{"id", "field", "value"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
	return cmd
}

func newValidateCmd(path *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the registry file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := registry.LoadRegistry(*path)
			if err != nil {
				return fmt.Errorf("failed to load registry: %w", err)
			}
			if err := reg.Validate(); err != nil {
				return fmt.Errorf("registry validation failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registry validation passed. Found %d activities.\n", len(reg.Activities))
			return nil
		},
	}
}

func newListCmd(path *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered activities",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := registry.LoadRegistry(*path)
			if err != nil {
				return fmt.Errorf("failed to load registry: %w", err)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TASK TYPE\tCATEGORY\tSTATUS\tTIMEOUT")
			for _, a := range reg.Activities {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.TaskType, a.Category, a.ImplementationStatus, a.Timeout)
			}
			return w.Flush()
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
