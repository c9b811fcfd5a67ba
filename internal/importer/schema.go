package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Snapshot is the file representation of one ProjectData handed over by the
// aggregator.
type Snapshot struct {
	Project    ProjectImport     `json:"project" yaml:"project"`
	Framing    map[string]string `json:"framing,omitempty" yaml:"framing,omitempty"`
	LastReview *ReviewImport     `json:"lastReview,omitempty" yaml:"lastReview,omitempty"`
	Risks      []RiskImport      `json:"risks,omitempty" yaml:"risks,omitempty"`
	Tasks      []TaskImport      `json:"tasks,omitempty" yaml:"tasks,omitempty"`
}

// ProjectImport defines the project-level fields of a snapshot.
type ProjectImport struct {
	Title        string `json:"title" yaml:"title"`
	Code         string `json:"code,omitempty" yaml:"code,omitempty"`
	Description  string `json:"description,omitempty" yaml:"description,omitempty"`
	ManagerName  string `json:"managerName,omitempty" yaml:"managerName,omitempty"`
	ManagerEmail string `json:"managerEmail,omitempty" yaml:"managerEmail,omitempty"`
	Status       string `json:"status,omitempty" yaml:"status,omitempty"`
	Priority     string `json:"priority,omitempty" yaml:"priority,omitempty"`
	Completion   int    `json:"completion,omitempty" yaml:"completion,omitempty"`
	StartDate    string `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	Pole         string `json:"pole,omitempty" yaml:"pole,omitempty"`
	Direction    string `json:"direction,omitempty" yaml:"direction,omitempty"`
	Service      string `json:"service,omitempty" yaml:"service,omitempty"`
}

// ReviewImport defines the most recent review.
type ReviewImport struct {
	Weather   string         `json:"weather,omitempty" yaml:"weather,omitempty"`
	Progress  string         `json:"progress,omitempty" yaml:"progress,omitempty"`
	Comment   string         `json:"comment,omitempty" yaml:"comment,omitempty"`
	CreatedAt string         `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	Actions   []ActionImport `json:"actions,omitempty" yaml:"actions,omitempty"`
}

type ActionImport struct {
	Description string `json:"description" yaml:"description"`
}

// RiskImport defines a risk entry.
type RiskImport struct {
	Description    string `json:"description" yaml:"description"`
	Probability    string `json:"probability" yaml:"probability"`
	Severity       string `json:"severity" yaml:"severity"`
	Status         string `json:"status,omitempty" yaml:"status,omitempty"`
	MitigationPlan string `json:"mitigationPlan,omitempty" yaml:"mitigationPlan,omitempty"`
}

// TaskImport defines a task. Subtasks point at their parent by id.
type TaskImport struct {
	ID           string  `json:"id" yaml:"id"`
	Title        string  `json:"title" yaml:"title"`
	Description  string  `json:"description,omitempty" yaml:"description,omitempty"`
	Status       string  `json:"status" yaml:"status"`
	Assignee     string  `json:"assignee,omitempty" yaml:"assignee,omitempty"`
	DueDate      string  `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	ParentTaskID *string `json:"parentTaskId,omitempty" yaml:"parentTaskId,omitempty"`
}

// batch is the multi-project file layout.
type batch struct {
	Projects []Snapshot `json:"projects" yaml:"projects"`
}

// IsYAML reports whether path is read as YAML rather than JSON.
func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Load reads a snapshot file. The file holds either one snapshot or a
// {"projects": [...]} list; both come back as a slice.
func Load(path string) ([]Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	snaps, err := Parse(data, IsYAML(path))
	if err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return snaps, nil
}

// Parse decodes snapshot file content.
func Parse(data []byte, asYAML bool) ([]Snapshot, error) {
	decode := json.Unmarshal
	if asYAML {
		decode = yaml.Unmarshal
	}

	var keys map[string]any
	if err := decode(data, &keys); err != nil {
		return nil, err
	}
	if _, ok := keys["projects"]; ok {
		var b batch
		if err := decode(data, &b); err != nil {
			return nil, err
		}
		return b.Projects, nil
	}

	var s Snapshot
	if err := decode(data, &s); err != nil {
		return nil, err
	}
	return []Snapshot{s}, nil
}
