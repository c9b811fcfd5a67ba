package importer

import (
	"fmt"
	"maps"
	"slices"

	"github.com/alexanderramin/cadrage/internal/domain"
)

// ValidateSnapshots validates every snapshot of a file. Errors of a
// multi-project file are prefixed with the project index.
func ValidateSnapshots(snaps []Snapshot) []error {
	if len(snaps) == 0 {
		return []error{fmt.Errorf("file holds no project")}
	}
	if len(snaps) == 1 {
		return ValidateSnapshot(&snaps[0])
	}
	var errs []error
	for i := range snaps {
		for _, err := range ValidateSnapshot(&snaps[i]) {
			errs = append(errs, fmt.Errorf("projects[%d].%w", i, err))
		}
	}
	return errs
}

// ValidateSnapshot checks a snapshot for errors before conversion.
// Returns a slice of all validation errors found. Weather, progress and dates
// are not checked; renderers fall back on them.
func ValidateSnapshot(s *Snapshot) []error {
	var errs []error

	errs = append(errs, validateProject(&s.Project)...)
	errs = append(errs, validateFraming(s.Framing)...)
	errs = append(errs, validateRisks(s.Risks)...)
	errs = append(errs, validateTasks(s.Tasks)...)

	return errs
}

func validateProject(p *ProjectImport) []error {
	var errs []error

	if p.Title == "" {
		errs = append(errs, fmt.Errorf("project.title is required"))
	}
	if p.Status != "" && !domain.ValidLifecycleStatuses[p.Status] {
		errs = append(errs, fmt.Errorf("project.status: invalid value %q", p.Status))
	}
	if p.Priority != "" && !domain.ValidPriorities[p.Priority] {
		errs = append(errs, fmt.Errorf("project.priority: invalid value %q", p.Priority))
	}

	return errs
}

func validateFraming(f map[string]string) []error {
	var errs []error
	for _, key := range slices.Sorted(maps.Keys(f)) {
		if !domain.ValidFramingKeys[key] {
			errs = append(errs, fmt.Errorf("framing.%s: unknown field", key))
		}
	}
	return errs
}

func validateRisks(risks []RiskImport) []error {
	var errs []error

	for i, r := range risks {
		prefix := fmt.Sprintf("risks[%d]", i)

		if r.Description == "" {
			errs = append(errs, fmt.Errorf("%s.description is required", prefix))
		}
		if !domain.ValidLevels[r.Probability] {
			errs = append(errs, fmt.Errorf("%s.probability: invalid value %q", prefix, r.Probability))
		}
		if !domain.ValidLevels[r.Severity] {
			errs = append(errs, fmt.Errorf("%s.severity: invalid value %q", prefix, r.Severity))
		}
		if r.Status != "" && !domain.ValidRiskStatuses[r.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, r.Status))
		}
	}

	return errs
}

func validateTasks(tasks []TaskImport) []error {
	var errs []error
	ids := make(map[string]bool)

	for i, t := range tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)

		if t.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if ids[t.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, t.ID))
		} else {
			ids[t.ID] = true
		}

		if t.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if !domain.ValidTaskStatuses[t.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, t.Status))
		}
	}

	// Parents may appear anywhere in the list, so references are checked once
	// every id is known.
	for i, t := range tasks {
		if t.ParentTaskID == nil {
			continue
		}
		prefix := fmt.Sprintf("tasks[%d]", i)
		switch {
		case *t.ParentTaskID == t.ID:
			errs = append(errs, fmt.Errorf("%s.parentTaskId: task %q is its own parent", prefix, t.ID))
		case !ids[*t.ParentTaskID]:
			errs = append(errs, fmt.Errorf("%s.parentTaskId: id %q not found in tasks", prefix, *t.ParentTaskID))
		}
	}

	errs = append(errs, detectCycles(tasks)...)

	return errs
}

// detectCycles follows parent links and reports every loop once.
func detectCycles(tasks []TaskImport) []error {
	parent := make(map[string]string)
	var order []string
	for _, t := range tasks {
		if t.ID == "" || t.ParentTaskID == nil || *t.ParentTaskID == t.ID {
			continue
		}
		if _, dup := parent[t.ID]; dup {
			continue
		}
		parent[t.ID] = *t.ParentTaskID
		order = append(order, t.ID)
	}

	const (
		white = 0 // unvisited
		gray  = 1 // in current chain
		black = 2 // fully processed
	)

	color := make(map[string]int)
	var errs []error

	for _, start := range order {
		if color[start] != white {
			continue
		}
		var chain []string
		node := start
		for {
			if color[node] == gray {
				errs = append(errs, fmt.Errorf("tasks: parent cycle detected involving %q and %q", chain[len(chain)-1], node))
				break
			}
			if color[node] == black {
				break
			}
			color[node] = gray
			chain = append(chain, node)
			next, ok := parent[node]
			if !ok {
				break
			}
			node = next
		}
		for _, n := range chain {
			color[n] = black
		}
	}

	return errs
}
