// pkg/registry/registry_test.go
package registry

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func sampleActivity(id string) Activity {
	return Activity{
		ID:                   id,
		DisplayName:          "Rank Careers",
		Category:             "career",
		TaskType:             id,
		Version:              "1.0.0",
		ImplementationStatus: StatusPlanned,
		Timeout:              "10s",
	}
}

func TestRegistry_AddUpdateSaveLoad(t *testing.T) {
	reg := New(fixedNow)
	require.NoError(t, reg.Add(sampleActivity("rank-careers"), fixedNow))

	err := reg.Add(sampleActivity("rank-careers"), fixedNow)
	assert.ErrorIs(t, err, ErrDuplicateActivity)

	later := fixedNow.Add(time.Hour)
	require.NoError(t, reg.Update("rank-careers", "status", StatusCompleted, later))
	require.NoError(t, reg.Update("rank-careers", "retries", "3", later))
	assert.Equal(t, "2026-03-01T11:00:00Z", reg.LastUpdated)

	path := filepath.Join(t.TempDir(), "nested", "registry.json")
	require.NoError(t, reg.Save(path))

	loaded, err := LoadRegistry(path)
	require.NoError(t, err)
	a, ok := loaded.Find("rank-careers")
	require.True(t, ok)
	assert.Equal(t, StatusCompleted, a.ImplementationStatus)
	assert.Equal(t, 3, a.Retries)
}

func TestRegistry_UpdateErrors(t *testing.T) {
	reg := New(fixedNow)
	require.NoError(t, reg.Add(sampleActivity("rank-careers"), fixedNow))

	tests := []struct {
		name  string
		id    string
		field string
		value string
		is    error
	}{
		{"missing activity", "nope", "status", StatusPlanned, ErrActivityNotFound},
		{"unknown field", "rank-careers", "owner", "x", ErrUnknownField},
		{"bad status", "rank-careers", "status", "done", nil},
		{"bad timeout", "rank-careers", "timeout", "soon", nil},
		{"bad retries", "rank-careers", "retries", "three", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := reg.Update(tt.id, tt.field, tt.value, fixedNow)
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestRegistry_Validate(t *testing.T) {
	tests := []struct {
		name        string
		activities  []Activity
		expectError bool
	}{
		{name: "empty", expectError: true},
		{name: "valid", activities: []Activity{sampleActivity("rank-careers"), sampleActivity("score-careers")}},
		{
			name: "missing category",
			activities: []Activity{func() Activity {
				a := sampleActivity("rank-careers")
				a.Category = ""
				return a
			}()},
			expectError: true,
		},
		{
			name: "shared task type",
			activities: []Activity{sampleActivity("rank-careers"), func() Activity {
				a := sampleActivity("score-careers")
				a.TaskType = "rank-careers"
				return a
			}()},
			expectError: true,
		},
		{
			name:        "task type not hyphenated",
			activities:  []Activity{sampleActivity("rank")},
			expectError: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := &ActivityRegistry{Activities: tt.activities}
			if tt.expectError {
				assert.Error(t, reg.Validate())
			} else {
				assert.NoError(t, reg.Validate())
			}
		})
	}
}

func TestRegistry_Unregistered(t *testing.T) {
	reg := &ActivityRegistry{Activities: []Activity{sampleActivity("rank-careers"), sampleActivity("score-careers")}}

	assert.Equal(t, []string{"rank-careers", "score-careers"}, reg.TaskTypes())
	assert.Equal(t, []string{"deliver-report"}, reg.Unregistered([]string{"score-careers", "deliver-report"}))
	assert.Empty(t, reg.Unregistered([]string{"rank-careers"}))
}

func TestShippedRegistryIsValid(t *testing.T) {
	reg, err := LoadRegistry(filepath.Join("..", "..", "configs", "activity-registry.json"))
	require.NoError(t, err)
	require.NoError(t, reg.Validate())
	assert.Len(t, reg.Activities, 9)
}
