package formatter

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/cadrage/internal/aggregate"
	"github.com/alexanderramin/cadrage/internal/domain"
	"github.com/alexanderramin/cadrage/internal/markup"
	"github.com/alexanderramin/cadrage/internal/report"
	"github.com/charmbracelet/lipgloss"
)

const fieldWidth = 14

// FormatProjectInspect renders the terminal summary of one project: a
// metadata card next to the review status, then tasks, risks and plans.
func FormatProjectInspect(v *aggregate.View) string {
	card := lipgloss.JoinHorizontal(lipgloss.Top, metadataPanel(v), "    ", statusPanel(v))

	sections := []string{
		RenderBox("", card),
		tasksSection(v),
		risksSection(v),
	}
	if len(v.Risks.WithMitigation) > 0 {
		sections = append(sections, mitigationSection(v))
	}
	return strings.Join(sections, "\n\n") + "\n"
}

func metadataPanel(v *aggregate.View) string {
	p := v.Data.Project
	lines := []string{
		StyleBold.Render(p.Title),
		Dim(domain.CoalesceStr(v.Breadcrumb, report.NotAttached)),
		"",
		Field(strings.ToUpper(report.LabelCode), fieldWidth, domain.CoalesceStr(p.Code, "--")),
		Field(strings.ToUpper(report.LabelStatus), fieldWidth, LifecyclePill(p.Status)),
		Field(strings.ToUpper(report.LabelPriority), fieldWidth, p.Priority.Label()),
		Field(strings.ToUpper(report.LabelCompletion), fieldWidth, RenderCompletion(p.Completion, 16)),
		Field(strings.ToUpper(report.LabelManager), fieldWidth, aggregate.Manager(p)),
		Field(strings.ToUpper(report.LabelStart), fieldWidth, aggregate.FormatDateOr(p.StartDate, report.NotDefinedF)),
		Field(strings.ToUpper(report.LabelEnd), fieldWidth, aggregate.FormatDateOr(p.EndDate, report.NotDefinedF)),
	}
	return lipgloss.NewStyle().Width(64).Render(strings.Join(lines, "\n"))
}

func statusPanel(v *aggregate.View) string {
	var weather domain.Weather
	var progress domain.Progress
	if r := v.Data.LastReview; r != nil {
		weather, progress = r.Weather, r.Progress
	}
	lines := []string{
		StyleHeader.Render(strings.ToUpper(report.LabelLastReview)),
		Dim(v.ReviewDate(report.NoReview)),
		"",
		WeatherBadge(weather),
		ProgressBadge(progress),
		"",
		StyleItalic.Render(domain.CoalesceStr(v.ReviewComment(), report.NoComment)),
	}
	for _, a := range v.ReviewActions() {
		lines = append(lines, Dim("• ")+a)
	}
	return lipgloss.NewStyle().Width(40).Render(strings.Join(lines, "\n"))
}

func tasksSection(v *aggregate.View) string {
	var b strings.Builder
	b.WriteString(Header(report.SectionTasks) + "\n")
	if v.Tasks.Len() == 0 {
		b.WriteString(Dim(report.NoTasks) + "\n")
		return b.String()
	}
	for _, status := range aggregate.TaskStatusOrder {
		groups := v.Groups(status)
		b.WriteString("\n" + StyleBold.Render(report.TaskGroupTitle(status)) + Dim(" ("+strconv.Itoa(len(groups))+")") + "\n")
		if len(groups) == 0 {
			b.WriteString(Dim(report.NoTasksInGroup) + "\n")
			continue
		}
		b.WriteString(RenderTree(taskTree(groups)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func taskTree(groups []aggregate.TaskGroup) []TreeItem {
	var items []TreeItem
	for _, g := range groups {
		items = append(items, TreeItem{
			Title:  g.Task.Title,
			Status: string(g.Task.Status),
			Detail: taskDetail(g.Task),
		})
		for i, sub := range g.Subtasks {
			items = append(items, TreeItem{
				Title:  sub.Title,
				Level:  1,
				IsLast: i == len(g.Subtasks)-1,
				Status: string(sub.Status),
				Detail: sub.Status.Label(),
			})
		}
	}
	return items
}

func taskDetail(t domain.Task) string {
	var parts []string
	if t.DueDate != "" {
		parts = append(parts, aggregate.FormatDate(t.DueDate))
	}
	if t.Assignee != "" {
		parts = append(parts, t.Assignee)
	}
	return strings.Join(parts, " · ")
}

func risksSection(v *aggregate.View) string {
	head := Header(report.SectionRisks) + "\n"
	if len(v.Risks.All) == 0 {
		return head + Dim(report.NoRisks)
	}
	table := aggregate.RiskTable(v.Risks.All)
	rows := make([][]string, 0, len(v.Risks.All))
	for i, r := range v.Risks.All {
		row := table[i+1]
		rows = append(rows, []string{
			row[0],
			LevelStyle(r.Probability).Render(row[1]),
			LevelStyle(r.Severity).Render(row[2]),
			row[3],
		})
	}
	return head + strings.TrimRight(RenderTable(table[0], rows), "\n")
}

func mitigationSection(v *aggregate.View) string {
	var b strings.Builder
	b.WriteString(Header(report.SectionMitigate))
	for _, r := range v.Risks.WithMitigation {
		b.WriteString("\n\n" + StyleBold.Render(r.Description) + "\n")
		b.WriteString(strings.TrimRight(RenderBlocks(markup.Parse(r.MitigationPlan)), "\n"))
	}
	return b.String()
}
