package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/cadrage/internal/domain"
)

var testTaskCounter atomic.Int64

// ProjectData options
type ProjectDataOption func(*domain.ProjectData)

func WithCode(code string) ProjectDataOption {
	return func(d *domain.ProjectData) {
		d.Project.Code = code
	}
}

func WithLifecycle(s domain.LifecycleStatus) ProjectDataOption {
	return func(d *domain.ProjectData) {
		d.Project.Status = s
	}
}

func WithDates(start, end string) ProjectDataOption {
	return func(d *domain.ProjectData) {
		d.Project.StartDate = start
		d.Project.EndDate = end
	}
}

func WithOrg(pole, direction, service string) ProjectDataOption {
	return func(d *domain.ProjectData) {
		d.Project.Org = domain.Organization{Pole: pole, Direction: direction, Service: service}
	}
}

func WithFraming(key domain.FramingKey, text string) ProjectDataOption {
	return func(d *domain.ProjectData) {
		if d.Framing == nil {
			d.Framing = domain.Framing{}
		}
		d.Framing[key] = text
	}
}

func WithReview(weather domain.Weather, progress domain.Progress, comment string, actions ...string) ProjectDataOption {
	return func(d *domain.ProjectData) {
		r := &domain.Review{
			Weather:   weather,
			Progress:  progress,
			Comment:   comment,
			CreatedAt: "2024-01-10",
		}
		for _, a := range actions {
			r.Actions = append(r.Actions, domain.ReviewAction{Description: a})
		}
		d.LastReview = r
	}
}

func WithRisks(risks ...domain.Risk) ProjectDataOption {
	return func(d *domain.ProjectData) {
		d.Risks = append(d.Risks, risks...)
	}
}

func WithTasks(tasks ...domain.Task) ProjectDataOption {
	return func(d *domain.ProjectData) {
		d.Tasks = append(d.Tasks, tasks...)
	}
}

// NewTestProjectData returns a minimal valid snapshot with no risks, tasks,
// framing or review.
func NewTestProjectData(title string, opts ...ProjectDataOption) *domain.ProjectData {
	d := &domain.ProjectData{
		Project: domain.Project{
			Title:        title,
			Description:  "Projet de test",
			ManagerName:  "Camille Martin",
			ManagerEmail: "camille.martin@example.org",
			Status:       domain.LifecycleInProgress,
			Priority:     domain.PriorityMedium,
			Completion:   40,
			StartDate:    "2024-01-15",
			EndDate:      "2024-12-31",
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Task options
type TaskOption func(*domain.Task)

func WithParent(id string) TaskOption {
	return func(t *domain.Task) {
		t.ParentTaskID = &id
	}
}

func WithTaskID(id string) TaskOption {
	return func(t *domain.Task) {
		t.ID = id
	}
}

func WithDueDate(d string) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = d
	}
}

func WithDescription(s string) TaskOption {
	return func(t *domain.Task) {
		t.Description = s
	}
}

func WithAssignee(s string) TaskOption {
	return func(t *domain.Task) {
		t.Assignee = s
	}
}

func NewTestTask(title string, status domain.TaskStatus, opts ...TaskOption) domain.Task {
	t := domain.Task{
		ID:     fmt.Sprintf("task-%d", testTaskCounter.Add(1)),
		Title:  title,
		Status: status,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

func NewTestRisk(desc string, probability, severity domain.Level, mitigation string) domain.Risk {
	return domain.Risk{
		Description:    desc,
		Probability:    probability,
		Severity:       severity,
		Status:         domain.RiskOpen,
		MitigationPlan: mitigation,
	}
}

// NewFullProjectData returns a snapshot exercising every section: framing with
// markup, a review, risks with and without plans, and nested tasks.
func NewFullProjectData(title string) *domain.ProjectData {
	return NewTestProjectData(title,
		WithCode("PRJ-001"),
		WithOrg("Pôle Numérique", "Direction SI", "Service Études"),
		WithFraming(domain.FramingContext, "## Origine\nLe projet remplace l'outil **historique**.\n- coûts\n- délais"),
		WithFraming(domain.FramingObjectives, "1. Réduire les coûts\n2. Livrer *avant* l'été"),
		WithFraming(domain.FramingGovernance, "   "),
		WithReview(domain.WeatherSunny, domain.ProgressBetter, "Bon démarrage", "Valider le budget"),
		WithRisks(
			NewTestRisk("Retard fournisseur", domain.LevelHigh, domain.LevelMedium, "Pénalités contractuelles"),
			NewTestRisk("Turnover", domain.LevelLow, domain.LevelHigh, ""),
		),
		WithTasks(
			NewTestTask("Cadrage", domain.TaskDone, WithTaskID("T1"), WithDueDate("2024-02-01")),
			NewTestTask("Développement", domain.TaskInProgress, WithTaskID("T2"), WithDescription("Sprint 1 à 4")),
			NewTestTask("API", domain.TaskDone, WithTaskID("T2a"), WithParent("T2")),
			NewTestTask("Front", domain.TaskTodo, WithTaskID("T2b"), WithParent("T2")),
			NewTestTask("Recette", domain.TaskTodo, WithTaskID("T3"), WithAssignee("Alex")),
		),
	)
}
