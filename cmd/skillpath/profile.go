// cmd/skillpath/profile.go
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"skillpath-workers/internal/common/validation"
	"skillpath-workers/internal/models"
)

// loadProfile reads a JSON or YAML profile, validates it against the
// questionnaire vocabularies and returns it normalized.
func loadProfile(path string) (models.Profile, error) {
	var p models.Profile

	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	raw := map[string]interface{}{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return p, fmt.Errorf("failed to parse profile file %s: %w", path, err)
	}

	if result := validation.ValidateProfile(raw); !result.Valid {
		return p, fmt.Errorf("invalid profile: %s", strings.Join(result.GetErrorMessages(), "; "))
	}

	normalized, err := json.Marshal(raw)
	if err != nil {
		return p, fmt.Errorf("failed to re-encode profile: %w", err)
	}
	if err := json.Unmarshal(normalized, &p); err != nil {
		return p, fmt.Errorf("failed to decode profile: %w", err)
	}
	return p.Normalized(), nil
}
