package ops

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/store/nhsbsa"
)

// StaticBaseline serves a pre-computed operations FTE, typically read from
// configuration after an earlier open-data run.
type StaticBaseline struct {
	fte float64
}

func NewStaticBaseline(fte float64) (*StaticBaseline, error) {
	if fte <= 0 {
		return nil, fmt.Errorf("operations baseline FTE must be positive, got %v", fte)
	}
	return &StaticBaseline{fte: fte}, nil
}

func (s *StaticBaseline) BaselineFTE(_ context.Context) (float64, error) {
	return s.fte, nil
}

// OpenDataBaseline derives the operations FTE from the consolidated pharmacy
// list: average contracted weekly hours across all pharmacies, converted
// through the FTE calculator.
type OpenDataBaseline struct {
	client     nhsbsa.Client
	resourceID string
	calc       *FTECalculator
}

func NewOpenDataBaseline(client nhsbsa.Client, resourceID string, calc *FTECalculator) (*OpenDataBaseline, error) {
	if client == nil {
		return nil, fmt.Errorf("open data client is required")
	}
	if resourceID == "" {
		return nil, fmt.Errorf("open data resource ID is required")
	}
	if calc == nil {
		return nil, fmt.Errorf("FTE calculator is required")
	}
	return &OpenDataBaseline{client: client, resourceID: resourceID, calc: calc}, nil
}

func (o *OpenDataBaseline) BaselineFTE(ctx context.Context) (float64, error) {
	pharmacies, err := o.client.Pharmacies(ctx, o.resourceID)
	if err != nil {
		return 0, fmt.Errorf("fetching pharmacy list: %w", err)
	}

	summary := Summarize(pharmacies)
	if summary.Pharmacies == 0 {
		return 0, fmt.Errorf("pharmacy list %s holds no rows", o.resourceID)
	}

	fte := o.calc.BaselineFTE(summary.AverageWeeklyHours, summary.Pharmacies)
	zerolog.Ctx(ctx).Info().
		Str("resource_id", o.resourceID).
		Int("pharmacies", summary.Pharmacies).
		Float64("avg_weekly_hours", summary.AverageWeeklyHours).
		Float64("baseline_fte", fte).
		Msg("derived operations baseline from open data")

	return fte, nil
}
