package domain

// Display labels for the single supported locale (fr-FR). Unknown values fall
// back to the raw value so nothing silently disappears from a document.

const (
	labelUndefinedM = "Non défini"
	labelUndefinedF = "Non définie"
)

var lifecycleLabels = map[LifecycleStatus]string{
	LifecycleStudy:      "À l'étude",
	LifecycleValidated:  "Validé",
	LifecycleInProgress: "En cours",
	LifecycleCompleted:  "Terminé",
	LifecycleSuspended:  "Suspendu",
	LifecycleAbandoned:  "Abandonné",
}

func (s LifecycleStatus) Label() string {
	return lookupLabel(lifecycleLabels, s, labelUndefinedM)
}

var priorityLabels = map[Priority]string{
	PriorityLow:    "Faible",
	PriorityMedium: "Moyenne",
	PriorityHigh:   "Haute",
}

func (p Priority) Label() string {
	return lookupLabel(priorityLabels, p, labelUndefinedF)
}

var levelLabels = map[Level]string{
	LevelLow:    "Faible",
	LevelMedium: "Moyenne",
	LevelHigh:   "Élevée",
}

func (l Level) Label() string {
	return lookupLabel(levelLabels, l, labelUndefinedF)
}

var riskStatusLabels = map[RiskStatus]string{
	RiskOpen:       "Ouvert",
	RiskInProgress: "En cours",
	RiskResolved:   "Résolu",
}

func (s RiskStatus) Label() string {
	return lookupLabel(riskStatusLabels, s, labelUndefinedM)
}

var taskStatusLabels = map[TaskStatus]string{
	TaskTodo:       "À faire",
	TaskInProgress: "En cours",
	TaskDone:       "Terminée",
}

func (s TaskStatus) Label() string {
	return lookupLabel(taskStatusLabels, s, labelUndefinedM)
}

var weatherLabels = map[Weather]string{
	WeatherSunny:  "Ensoleillé",
	WeatherCloudy: "Nuageux",
	WeatherStormy: "Orageux",
}

func (w Weather) Label() string {
	return lookupLabel(weatherLabels, w, "Non renseignée")
}

var progressLabels = map[Progress]string{
	ProgressBetter: "En amélioration",
	ProgressStable: "Stable",
	ProgressWorse:  "En dégradation",
}

func (p Progress) Label() string {
	return lookupLabel(progressLabels, p, "Non renseignée")
}

var framingLabels = map[FramingKey]string{
	FramingContext:      "Contexte",
	FramingObjectives:   "Objectifs",
	FramingStakeholders: "Parties prenantes",
	FramingGovernance:   "Gouvernance",
	FramingTimeline:     "Planning",
	FramingDeliverables: "Livrables",
}

func (k FramingKey) Label() string {
	return lookupLabel(framingLabels, k, string(k))
}

func lookupLabel[K ~string](labels map[K]string, v K, empty string) string {
	if v == "" {
		return empty
	}
	if l, ok := labels[v]; ok {
		return l
	}
	return string(v)
}
