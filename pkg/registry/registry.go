// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"skillpath-workers/internal/common/validation"
)

var (
	ErrDuplicateActivity = errors.New("duplicate activity")
	ErrActivityNotFound  = errors.New("activity not found")
	ErrUnknownField      = errors.New("unknown field")
)

// New returns an empty registry stamped with now.
func New(now time.Time) *ActivityRegistry {
	return &ActivityRegistry{
		Version:     "1.0.0",
		LastUpdated: now.UTC().Format(time.RFC3339),
		Activities:  []Activity{},
	}
}

func LoadRegistry(path string) (*ActivityRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg ActivityRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("failed to parse registry %s: %w", path, err)
	}
	return &reg, nil
}

// Save writes the registry as indented JSON, creating the parent directory.
func (r *ActivityRegistry) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write registry file: %w", err)
	}
	return nil
}

func (r *ActivityRegistry) Find(id string) (*Activity, bool) {
	for i := range r.Activities {
		if r.Activities[i].ID == id {
			return &r.Activities[i], true
		}
	}
	return nil, false
}

// Add appends a new activity. IDs are unique.
func (r *ActivityRegistry) Add(a Activity, now time.Time) error {
	if _, ok := r.Find(a.ID); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateActivity, a.ID)
	}
	r.Activities = append(r.Activities, a)
	r.touch(now)
	return nil
}

// Update sets one named field on an existing activity.
func (r *ActivityRegistry) Update(id, field, value string, now time.Time) error {
	a, ok := r.Find(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrActivityNotFound, id)
	}

	switch field {
	case "status":
		if !statuses[value] {
			return fmt.Errorf("invalid status %q", value)
		}
		a.ImplementationStatus = value
	case "version":
		a.Version = value
	case "displayName":
		a.DisplayName = value
	case "description":
		a.Description = value
	case "category":
		a.Category = value
	case "taskType":
		a.TaskType = value
	case "timeout":
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid timeout value: %w", err)
		}
		a.Timeout = value
	case "retries":
		retries, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid retries value: %w", err)
		}
		a.Retries = retries
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	r.touch(now)
	return nil
}

// Validate checks required fields, task type naming and uniqueness, and
// implementation statuses.
func (r *ActivityRegistry) Validate() error {
	if len(r.Activities) == 0 {
		return errors.New("registry contains no activities")
	}

	ids := make(map[string]bool)
	taskTypes := make(map[string]bool)
	for _, a := range r.Activities {
		if a.ID == "" {
			return errors.New("activity missing required field: id")
		}
		if ids[a.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateActivity, a.ID)
		}
		ids[a.ID] = true

		if a.DisplayName == "" {
			return fmt.Errorf("activity %s missing required field: displayName", a.ID)
		}
		if a.TaskType == "" {
			return fmt.Errorf("activity %s missing required field: taskType", a.ID)
		}
		if err := validation.ValidateTaskType(a.TaskType); err != nil {
			return fmt.Errorf("activity %s: %w", a.ID, err)
		}
		if taskTypes[a.TaskType] {
			return fmt.Errorf("activity %s reuses task type %s", a.ID, a.TaskType)
		}
		taskTypes[a.TaskType] = true

		if a.Category == "" {
			return fmt.Errorf("activity %s missing required field: category", a.ID)
		}
		if a.ImplementationStatus != "" && !statuses[a.ImplementationStatus] {
			return fmt.Errorf("activity %s has invalid status %q", a.ID, a.ImplementationStatus)
		}
	}
	return nil
}

// TaskTypes returns the registered task types, sorted.
func (r *ActivityRegistry) TaskTypes() []string {
	out := make([]string, 0, len(r.Activities))
	for _, a := range r.Activities {
		out = append(out, a.TaskType)
	}
	sort.Strings(out)
	return out
}

// Unregistered returns the task types in running that the registry does not
// list, sorted.
func (r *ActivityRegistry) Unregistered(running []string) []string {
	known := make(map[string]bool, len(r.Activities))
	for _, a := range r.Activities {
		known[a.TaskType] = true
	}
	var out []string
	for _, t := range running {
		if !known[t] {
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}

func (r *ActivityRegistry) touch(now time.Time) {
	r.LastUpdated = now.UTC().Format(time.RFC3339)
}
