// cmd/tools/worker-generator/main_test.go
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillpath-workers/pkg/registry"
)

func TestSchemaFields(t *testing.T) {
	schema := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"targetCareer": map[string]interface{}{"type": "string"},
			"assessmentId": map[string]interface{}{"type": "string"},
			"maxItems":     map[string]interface{}{"type": "integer"},
		},
		"required": []interface{}{"assessmentId"},
	}

	assert.Equal(t, []Field{
		{Name: "AssessmentID", Type: "string", JSONTag: "assessmentId"},
		{Name: "MaxItems", Type: "int", JSONTag: "maxItems,omitempty"},
		{Name: "TargetCareer", Type: "string", JSONTag: "targetCareer,omitempty"},
	}, schemaFields(schema))

	assert.Empty(t, schemaFields(nil))
}

func TestGenerate(t *testing.T) {
	reg, err := registry.LoadRegistry(filepath.Join("..", "..", "..", "configs", "activity-registry.json"))
	require.NoError(t, err)
	activity, ok := reg.Find("rank-careers")
	require.True(t, ok)

	out := t.TempDir()
	dir, err := generate(*activity, out, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "career", "rank-careers"), dir)

	handler, err := os.ReadFile(filepath.Join(dir, "handler.go"))
	require.NoError(t, err)
	assert.Contains(t, string(handler), "package rankcareers")
	assert.Contains(t, string(handler), `TaskType = "rank-careers"`)

	models, err := os.ReadFile(filepath.Join(dir, "models.go"))
	require.NoError(t, err)
	assert.Contains(t, string(models), "TargetCareer")

	_, err = generate(*activity, out, false)
	assert.Error(t, err, "existing files are not overwritten")

	_, err = generate(*activity, out, true)
	assert.NoError(t, err)
}
