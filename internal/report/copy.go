package report

import "github.com/alexanderramin/cadrage/internal/domain"

// Application is recorded as the producer in document metadata.
const Application = "cadrage"

// Document wording shared by every output format.
const (
	DocumentTitle    = "Note de cadrage"
	GeneratedPrefix  = "Document généré le "
	SectionGeneral   = "Informations générales"
	SectionFraming   = "Cadrage du projet"
	SectionRisks     = "Risques"
	SectionTasks     = "Tâches"
	SectionMitigate  = "Plans de mitigation"
	NoDescription    = "Aucune description fournie."
	NoFraming        = "Aucun élément de cadrage renseigné."
	NoRisks          = "Aucun risque identifié pour ce projet."
	NoTasks          = "Aucune tâche définie pour ce projet."
	NoTasksInGroup   = "Aucune tâche dans cette catégorie."
	NoReview         = "Aucune revue"
	NoComment        = "Pas de commentaire"
	NotDefinedF      = "Non définie"
	NotAttached      = "Non rattaché"
	LabelCode        = "Code"
	LabelManager     = "Chef de projet"
	LabelStatus      = "Statut"
	LabelStart       = "Date de début"
	LabelEnd         = "Date de fin"
	LabelOrg         = "Rattachement"
	LabelPriority    = "Priorité"
	LabelCompletion  = "Avancement"
	LabelLastReview  = "Dernière revue"
	LabelWeather     = "Météo"
	LabelProgress    = "Tendance"
	LabelDescription = "Description"
	LabelDue         = "Échéance"
	LabelAssignee    = "Responsable"
	LabelComment     = "Commentaire"
)

// TaskGroupTitle is the heading of a task status section.
func TaskGroupTitle(s domain.TaskStatus) string {
	switch s {
	case domain.TaskTodo:
		return "À faire"
	case domain.TaskInProgress:
		return "En cours"
	case domain.TaskDone:
		return "Terminées"
	default:
		return string(s)
	}
}
