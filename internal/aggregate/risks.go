package aggregate

import "github.com/alexanderramin/cadrage/internal/domain"

// RiskPartition keeps the full register alongside the risks that have a
// mitigation plan.
type RiskPartition struct {
	All            []domain.Risk
	WithMitigation []domain.Risk
}

func PartitionRisks(risks []domain.Risk) RiskPartition {
	p := RiskPartition{All: risks}
	for _, r := range risks {
		if r.HasMitigation() {
			p.WithMitigation = append(p.WithMitigation, r)
		}
	}
	return p
}

// RiskTableHeader is the column header row of every risk table.
var RiskTableHeader = []string{"Description", "Probabilité", "Gravité", "Statut"}

// RiskTable returns the header row followed by one labeled row per risk, so
// len(result) == len(risks)+1 always.
func RiskTable(risks []domain.Risk) [][]string {
	rows := make([][]string, 0, len(risks)+1)
	rows = append(rows, RiskTableHeader)
	for _, r := range risks {
		rows = append(rows, []string{
			r.Description,
			r.Probability.Label(),
			r.Severity.Label(),
			r.Status.Label(),
		})
	}
	return rows
}
