// cmd/tools/worker-generator/main.go
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"skillpath-workers/pkg/registry"
)

// WorkerData holds data for templates
type WorkerData struct {
	Name         string
	PackageName  string
	TaskType     string
	Description  string
	Category     string
	InputFields  []Field
	OutputFields []Field
}

type Field struct {
	Name    string
	Type    string
	JSONTag string
}

// schemaFields turns the properties of a JSON schema object into struct
// fields, sorted by property name.
func schemaFields(schema map[string]interface{}) []Field {
	props, _ := schema["properties"].(map[string]interface{})
	required := map[string]bool{}
	if req, ok := schema["required"].([]interface{}); ok {
		for _, r := range req {
			if s, ok := r.(string); ok {
				required[s] = true
			}
		}
	}

	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]Field, 0, len(names))
	for _, name := range names {
		details, _ := props[name].(map[string]interface{})
		tag := name
		if !required[name] {
			tag += ",omitempty"
		}
		fields = append(fields, Field{
			Name:    exportedName(name),
			Type:    goType(details["type"]),
			JSONTag: tag,
		})
	}
	return fields
}

func goType(jsonType interface{}) string {
	switch jsonType {
	case "string":
		return "string"
	case "integer":
		return "int"
	case "number":
		return "float64"
	case "boolean":
		return "bool"
	case "object":
		return "map[string]interface{}"
	case "array":
		return "[]interface{}"
	default:
		return "interface{}"
	}
}

// exportedName upper-cases the first letter and a trailing "Id".
func exportedName(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToUpper(s[:1]) + s[1:]
	if strings.HasSuffix(s, "Id") {
		s = strings.TrimSuffix(s, "Id") + "ID"
	}
	return s
}

func newWorkerData(a registry.Activity) WorkerData {
	return WorkerData{
		Name:         a.DisplayName,
		PackageName:  strings.ReplaceAll(a.ID, "-", ""),
		TaskType:     a.TaskType,
		Description:  a.Description,
		Category:     a.Category,
		InputFields:  schemaFields(a.InputSchema),
		OutputFields: schemaFields(a.OutputSchema),
	}
}

var files = map[string]string{
	"config.go":       configTemplate,
	"models.go":       modelsTemplate,
	"handler.go":      handlerTemplate,
	"handler_test.go": handlerTestTemplate,
}

// generate writes a worker skeleton for a under outputDir/<category>/<id> and
// returns the directory. Existing files are only replaced with force.
func generate(a registry.Activity, outputDir string, force bool) (string, error) {
	data := newWorkerData(a)
	dir := filepath.Join(outputDir, a.Category, a.ID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil && !force {
			return "", fmt.Errorf("%s already exists, use --force to overwrite", path)
		}

		src, err := render(name, files[name], data)
		if err != nil {
			return "", err
		}
		if err := os.WriteFile(path, src, 0644); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return dir, nil
}

func render(name, text string, data WorkerData) ([]byte, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated %s does not parse: %w", name, err)
	}
	return src, nil
}

func newRootCmd() *cobra.Command {
	var (
		activityID   string
		outputDir    string
		registryPath string
		force        bool
	)

	cmd := &cobra.Command{
		Use:           "worker-generator",
		Short:         "Generate a worker skeleton from an activity registry entry",
		Example:       "  worker-generator --activity rank-careers",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := registry.LoadRegistry(registryPath)
			if err != nil {
				return fmt.Errorf("failed to load registry: %w", err)
			}
			activity, ok := reg.Find(activityID)
			if !ok {
				return fmt.Errorf("%w: %s", registry.ErrActivityNotFound, activityID)
			}

			dir, err := generate(*activity, outputDir, force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %s worker in %s\n", activity.TaskType, dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&activityID, "activity", "", "Activity ID from the registry (e.g. rank-careers)")
	cmd.Flags().StringVar(&outputDir, "output", "./internal/workers/", "Output directory for the generated worker")
	cmd.Flags().StringVar(&registryPath, "registry", "configs/activity-registry.json", "Path to the activity registry JSON file")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	if err := cmd.MarkFlagRequired("activity"); err != nil {
		panic(err)
	}
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
