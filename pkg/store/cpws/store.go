// Package cpws reads Community Pharmacy Workforce Survey extracts, the
// survey-based baseline source for projections. Extracts arrive either as
// an INI file of published national totals or as a local database of
// regional returns.
package cpws

import (
	"context"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/models/store"
)

// Store supplies survey baseline FTE figures per profession.
type Store interface {
	Baselines(ctx context.Context) ([]store.SurveyBaseline, error)
}
