// internal/models/roadmap.go
package models

// MonthTemplate is one phase of a roadmap template.
type MonthTemplate struct {
	Phase     string   `json:"phase"`
	Focus     string   `json:"focus"`
	Goals     []string `json:"goals"`
	Resources []string `json:"resources"`
}

// RoadmapTemplate is a six-phase plan skeleton keyed by career name.
type RoadmapTemplate struct {
	Career string          `json:"career"`
	Months []MonthTemplate `json:"months"`
}

// MonthPlan is one personalised month of a generated roadmap.
type MonthPlan struct {
	Month     string   `json:"month"`
	Focus     string   `json:"focus"`
	Goals     []string `json:"goals"`
	Resources []string `json:"resources"`
	Time      string   `json:"time"`
}
