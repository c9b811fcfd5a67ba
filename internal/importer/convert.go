package importer

import (
	"github.com/alexanderramin/cadrage/internal/domain"
)

// Convert transforms a validated Snapshot into the ProjectData renderers read.
// Call ValidateSnapshot first; Convert assumes the snapshot is valid.
func Convert(s *Snapshot) *domain.ProjectData {
	p := s.Project
	data := &domain.ProjectData{
		Project: domain.Project{
			Title:        p.Title,
			Code:         p.Code,
			Description:  p.Description,
			ManagerName:  p.ManagerName,
			ManagerEmail: p.ManagerEmail,
			Status:       domain.LifecycleStatus(p.Status),
			Priority:     domain.Priority(p.Priority),
			Completion:   domain.ClampPercent(p.Completion),
			StartDate:    p.StartDate,
			EndDate:      p.EndDate,
			Org: domain.Organization{
				Pole:      p.Pole,
				Direction: p.Direction,
				Service:   p.Service,
			},
		},
	}

	if len(s.Framing) > 0 {
		data.Framing = make(domain.Framing, len(s.Framing))
		for k, v := range s.Framing {
			data.Framing[domain.FramingKey(k)] = v
		}
	}

	if r := s.LastReview; r != nil {
		review := &domain.Review{
			Weather:   domain.Weather(r.Weather),
			Progress:  domain.Progress(r.Progress),
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
		}
		for _, a := range r.Actions {
			review.Actions = append(review.Actions, domain.ReviewAction{Description: a.Description})
		}
		data.LastReview = review
	}

	data.Risks = make([]domain.Risk, 0, len(s.Risks))
	for _, r := range s.Risks {
		status := r.Status
		if status == "" {
			status = string(domain.RiskOpen)
		}
		data.Risks = append(data.Risks, domain.Risk{
			Description:    r.Description,
			Probability:    domain.Level(r.Probability),
			Severity:       domain.Level(r.Severity),
			Status:         domain.RiskStatus(status),
			MitigationPlan: r.MitigationPlan,
		})
	}

	data.Tasks = make([]domain.Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		var parentID *string
		if t.ParentTaskID != nil && *t.ParentTaskID != "" {
			pid := *t.ParentTaskID
			parentID = &pid
		}
		data.Tasks = append(data.Tasks, domain.Task{
			ID:           t.ID,
			Title:        t.Title,
			Description:  t.Description,
			Status:       domain.TaskStatus(t.Status),
			Assignee:     t.Assignee,
			DueDate:      t.DueDate,
			ParentTaskID: parentID,
		})
	}

	return data
}

// ConvertAll converts every snapshot of a file, in order.
func ConvertAll(snaps []Snapshot) []*domain.ProjectData {
	out := make([]*domain.ProjectData, len(snaps))
	for i := range snaps {
		out[i] = Convert(&snaps[i])
	}
	return out
}
