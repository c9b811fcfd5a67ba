package domain

type LifecycleStatus string

const (
	LifecycleStudy      LifecycleStatus = "study"
	LifecycleValidated  LifecycleStatus = "validated"
	LifecycleInProgress LifecycleStatus = "in_progress"
	LifecycleCompleted  LifecycleStatus = "completed"
	LifecycleSuspended  LifecycleStatus = "suspended"
	LifecycleAbandoned  LifecycleStatus = "abandoned"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Level is the three-step scale shared by risk probability and severity.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

type RiskStatus string

const (
	RiskOpen       RiskStatus = "open"
	RiskInProgress RiskStatus = "in_progress"
	RiskResolved   RiskStatus = "resolved"
)

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

type Weather string

const (
	WeatherSunny  Weather = "sunny"
	WeatherCloudy Weather = "cloudy"
	WeatherStormy Weather = "stormy"
)

type Progress string

const (
	ProgressBetter Progress = "better"
	ProgressStable Progress = "stable"
	ProgressWorse  Progress = "worse"
)

type FramingKey string

const (
	FramingContext      FramingKey = "context"
	FramingObjectives   FramingKey = "objectives"
	FramingStakeholders FramingKey = "stakeholders"
	FramingGovernance   FramingKey = "governance"
	FramingTimeline     FramingKey = "timeline"
	FramingDeliverables FramingKey = "deliverables"
)

// FramingKeys lists the framing fields in the order documents present them.
var FramingKeys = []FramingKey{
	FramingContext,
	FramingObjectives,
	FramingStakeholders,
	FramingGovernance,
	FramingTimeline,
	FramingDeliverables,
}

// Canonical value sets, used by the importer to reject unknown enums.
var (
	ValidLifecycleStatuses = map[string]bool{
		"study": true, "validated": true, "in_progress": true,
		"completed": true, "suspended": true, "abandoned": true,
	}
	ValidPriorities   = map[string]bool{"low": true, "medium": true, "high": true}
	ValidLevels       = map[string]bool{"low": true, "medium": true, "high": true}
	ValidRiskStatuses = map[string]bool{"open": true, "in_progress": true, "resolved": true}
	ValidTaskStatuses = map[string]bool{"todo": true, "in_progress": true, "done": true}
	ValidFramingKeys  = map[string]bool{
		"context": true, "objectives": true, "stakeholders": true,
		"governance": true, "timeline": true, "deliverables": true,
	}
)
