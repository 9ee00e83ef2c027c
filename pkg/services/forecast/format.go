package forecast

import (
	"math"
	"sort"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/models/domain"
)

// FormatSupply flattens supply projections into display rows: totals and
// changes rounded to whole registrants, financial-year labels attached.
// Rows come back ordered by (profession, scenario, year).
func FormatSupply(projections domain.SupplyProjections) []domain.SupplyRow {
	var rows []domain.SupplyRow
	for profession, scenarios := range projections {
		for scenario, points := range scenarios {
			for _, pt := range points {
				rows = append(rows, domain.SupplyRow{
					Profession:    profession,
					Year:          pt.Year,
					FinancialYear: domain.FinancialYear(pt.Year),
					Scenario:      scenario,
					Registrants:   displayInt(pt.Total),
					Change:        displayInt(pt.Change),
				})
			}
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Profession != rows[j].Profession {
			return rows[i].Profession < rows[j].Profession
		}
		if rows[i].Scenario != rows[j].Scenario {
			return rows[i].Scenario < rows[j].Scenario
		}
		return rows[i].Year < rows[j].Year
	})
	return rows
}

// FormatOps flattens ops projections into display rows ordered by
// (scenario, year).
func FormatOps(projections domain.OpsProjections) []domain.OpsRow {
	var rows []domain.OpsRow
	for scenario, points := range projections {
		for _, pt := range points {
			rows = append(rows, domain.OpsRow{
				Year:          pt.Year,
				FinancialYear: domain.FinancialYear(pt.Year),
				Scenario:      scenario,
				FTE:           displayInt(pt.Total),
				Change:        displayInt(pt.Change),
			})
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Scenario != rows[j].Scenario {
			return rows[i].Scenario < rows[j].Scenario
		}
		return rows[i].Year < rows[j].Year
	})
	return rows
}

func displayInt(x float64) int {
	return int(math.Round(x))
}
