package forecast

import (
	"fmt"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/models/domain"
)

const (
	ScenarioBaseline    = "baseline"
	ScenarioOptimistic  = "optimistic"
	ScenarioPessimistic = "pessimistic"
)

// Scenarios returns the canonical scenario set. The multipliers are fixed
// business policy: they never scale with the derived rates, which is why the
// rates argument is ignored beyond signalling that derivation ran.
func Scenarios(_ map[string]domain.GrowthRate) []domain.Scenario {
	return []domain.Scenario{
		{Name: ScenarioBaseline, Multiplier: 1.0},
		{Name: ScenarioOptimistic, Multiplier: 1.2},
		{Name: ScenarioPessimistic, Multiplier: 0.8},
	}
}

// ScenarioByName picks the named scenario out of a generated set.
func ScenarioByName(scenarios []domain.Scenario, name string) (domain.Scenario, error) {
	for _, s := range scenarios {
		if s.Name == name {
			return s, nil
		}
	}
	return domain.Scenario{}, fmt.Errorf("scenario %q: %w", name, ErrUnknownScenario)
}
