package domain

// ProjectData is the read-only snapshot a single export works from. It is
// produced once per export by the caller and never mutated by renderers.
type ProjectData struct {
	Project    Project
	Framing    Framing
	LastReview *Review
	Risks      []Risk
	Tasks      []Task
}

type Project struct {
	Title        string
	Code         string
	Description  string
	ManagerName  string
	ManagerEmail string
	Status       LifecycleStatus
	Priority     Priority
	Completion   int

	// Dates are kept as the caller supplied them; formatting decides how to
	// present missing or unparseable values.
	StartDate string
	EndDate   string

	Org Organization
}

// Organization is the pole/direction/service breadcrumb a project belongs to.
type Organization struct {
	Pole      string
	Direction string
	Service   string
}

// DisplayCode returns the project code, or the title when no code is set.
func (p *Project) DisplayCode() string {
	if p.Code != "" {
		return p.Code
	}
	return p.Title
}

// Framing holds the free-text planning fields keyed by FramingKey. Values are
// written in the markup subset understood by the markup package.
type Framing map[FramingKey]string

// Value returns the text stored under key, or "" when absent.
func (f Framing) Value(key FramingKey) string {
	if f == nil {
		return ""
	}
	return f[key]
}

type Review struct {
	Weather   Weather
	Progress  Progress
	Comment   string
	CreatedAt string
	Actions   []ReviewAction
}

type ReviewAction struct {
	Description string
}

type Risk struct {
	Description    string
	Probability    Level
	Severity       Level
	Status         RiskStatus
	MitigationPlan string
}

// HasMitigation reports whether the risk carries a non-blank mitigation plan.
func (r Risk) HasMitigation() bool {
	return trimmed(r.MitigationPlan) != ""
}

type Task struct {
	ID           string
	Title        string
	Description  string
	Status       TaskStatus
	Assignee     string
	DueDate      string
	ParentTaskID *string
}

// IsTopLevel reports whether the task has no parent.
func (t Task) IsTopLevel() bool {
	return t.ParentTaskID == nil
}
