package forecast

import (
	"fmt"
	"sort"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/models/domain"
)

// SupplyAggregator combines per-profession supply totals for one
// (year, scenario) cell into the single figure compared against ops.
type SupplyAggregator func(byProfession map[string]int) int

// SumProfessions is the default aggregation: professions are additive, one
// combined workforce figure per cell.
func SumProfessions(byProfession map[string]int) int {
	total := 0
	for _, v := range byProfession {
		total += v
	}
	return total
}

// GapAnalyzer joins formatted supply and ops rows on (year, scenario) and
// computes supply minus demand per cell.
type GapAnalyzer struct {
	aggregate SupplyAggregator
}

// NewGapAnalyzer builds an analyzer with the given aggregation policy;
// nil means SumProfessions.
func NewGapAnalyzer(aggregate SupplyAggregator) *GapAnalyzer {
	if aggregate == nil {
		aggregate = SumProfessions
	}
	return &GapAnalyzer{aggregate: aggregate}
}

// Analyze inner-joins supply and ops on (year, scenario). Both sides must
// carry exactly the same keys: a pair present on one side only means the
// series were projected with different horizons or scenario sets, and the
// join fails rather than silently dropping rows. Records come back sorted
// by (scenario, year).
func (g *GapAnalyzer) Analyze(supply []domain.SupplyRow, ops []domain.OpsRow) ([]domain.GapRecord, error) {
	type cell struct {
		year     int
		scenario string
	}

	supplyByCell := make(map[cell]map[string]int)
	for _, row := range supply {
		c := cell{row.Year, row.Scenario}
		if supplyByCell[c] == nil {
			supplyByCell[c] = make(map[string]int)
		}
		supplyByCell[c][row.Profession] += row.Registrants
	}

	opsByCell := make(map[cell]int, len(ops))
	for _, row := range ops {
		opsByCell[cell{row.Year, row.Scenario}] = row.FTE
	}

	for c := range supplyByCell {
		if _, ok := opsByCell[c]; !ok {
			return nil, fmt.Errorf("supply has %s/%d with no ops counterpart: %w",
				c.scenario, c.year, ErrMisalignedSeries)
		}
	}
	for c := range opsByCell {
		if _, ok := supplyByCell[c]; !ok {
			return nil, fmt.Errorf("ops has %s/%d with no supply counterpart: %w",
				c.scenario, c.year, ErrMisalignedSeries)
		}
	}

	records := make([]domain.GapRecord, 0, len(supplyByCell))
	for c, professions := range supplyByCell {
		supplyTotal := g.aggregate(professions)
		opsTotal := opsByCell[c]
		records = append(records, domain.GapRecord{
			Year:          c.year,
			FinancialYear: domain.FinancialYear(c.year),
			Scenario:      c.scenario,
			Supply:        supplyTotal,
			Ops:           opsTotal,
			Gap:           supplyTotal - opsTotal,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Scenario != records[j].Scenario {
			return records[i].Scenario < records[j].Scenario
		}
		return records[i].Year < records[j].Year
	})
	return records, nil
}
