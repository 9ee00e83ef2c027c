package forecast

import (
	"math"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/models/domain"
)

// Projector compounds a base value forward over a fixed horizon.
type Projector struct {
	startYear int
	duration  int
}

func NewProjector(startYear, duration int) *Projector {
	return &Projector{startYear: startYear, duration: duration}
}

// Project compounds base under ratePct for the configured duration. The
// first point anchors at the start year with zero change; each later point
// applies the rate to the prior total. Intermediate values are held at five
// decimal places so repeated compounding stays drift-free; rounding to whole
// units happens at display time, never here.
func (p *Projector) Project(base float64, ratePct float64, scenario string) []domain.ProjectionPoint {
	points := make([]domain.ProjectionPoint, 0, p.duration+1)
	points = append(points, domain.ProjectionPoint{
		Year:     p.startYear,
		Total:    base,
		Change:   0,
		Scenario: scenario,
	})

	total := base
	for k := 1; k <= p.duration; k++ {
		change := round5(total * ratePct / 100)
		total = round5(total + change)
		points = append(points, domain.ProjectionPoint{
			Year:     p.startYear + k,
			Total:    total,
			Change:   change,
			Scenario: scenario,
		})
	}
	return points
}

// ProjectScenarios compounds one base value once per scenario, scaling the
// base rate by each scenario's multiplier.
func (p *Projector) ProjectScenarios(base float64, ratePct float64, scenarios []domain.Scenario) map[string][]domain.ProjectionPoint {
	out := make(map[string][]domain.ProjectionPoint, len(scenarios))
	for _, s := range scenarios {
		out[s.Name] = p.Project(base, ratePct*s.Multiplier, s.Name)
	}
	return out
}

func round5(x float64) float64 {
	return math.Round(x*1e5) / 1e5
}
