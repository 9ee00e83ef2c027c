package forecast

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/models/domain"
	"github.com/rs/zerolog"
)

// GrowthCalculator derives compound annual growth rates from census-month
// registrant snapshots.
type GrowthCalculator struct {
	baselineYear int
}

func NewGrowthCalculator(baselineYear int) *GrowthCalculator {
	return &GrowthCalculator{baselineYear: baselineYear}
}

// Rate computes the growth record for one profession. The series must
// already be filtered to the census month; only distinct years matter here.
// The rate is a true CAGR between the earliest and baseline years, so a
// shrinking register produces a negative percentage.
func (c *GrowthCalculator) Rate(ctx context.Context, profession string, series []domain.Snapshot) (domain.GrowthRate, error) {
	logger := zerolog.Ctx(ctx)

	totals := make(map[int]int, len(series))
	for _, s := range series {
		totals[s.Year] = s.Headcount
	}
	if len(totals) < 2 {
		return domain.GrowthRate{}, fmt.Errorf("profession %q has %d census year(s): %w",
			profession, len(totals), ErrInsufficientData)
	}

	years := make([]int, 0, len(totals))
	for y := range totals {
		years = append(years, y)
	}
	sort.Ints(years)

	baseline := c.baselineYear
	if _, ok := totals[baseline]; !ok {
		fallback := years[len(years)-1]
		logger.Warn().
			Str("profession", profession).
			Int("baseline_year", baseline).
			Int("fallback_year", fallback).
			Msg("baseline year missing from series, falling back to latest")
		baseline = fallback
	}

	earliest := years[0]
	if earliest == baseline {
		return domain.GrowthRate{}, fmt.Errorf("profession %q has no census year before baseline %d: %w",
			profession, baseline, ErrInsufficientData)
	}

	earliestTotal := totals[earliest]
	baselineTotal := totals[baseline]
	if earliestTotal <= 0 {
		return domain.GrowthRate{}, fmt.Errorf("profession %q total is %d in %d: %w",
			profession, earliestTotal, earliest, ErrInvalidBaseline)
	}

	yearsElapsed := baseline - earliest
	growthFactor := float64(baselineTotal) / float64(earliestTotal)

	return domain.GrowthRate{
		Profession:           profession,
		BaselineYear:         baseline,
		BaselineTotal:        baselineTotal,
		EarliestYear:         earliest,
		EarliestTotal:        earliestTotal,
		YearsElapsed:         yearsElapsed,
		AnnualGrowthRatePct:  (math.Pow(growthFactor, 1/float64(yearsElapsed)) - 1) * 100,
		AnnualChangeEstimate: float64(baselineTotal-earliestTotal) / float64(yearsElapsed),
	}, nil
}

// Rates groups snapshots by profession and derives one rate per profession.
// A profession with insufficient data is skipped with a warning and the run
// continues; every other failure aborts.
func (c *GrowthCalculator) Rates(ctx context.Context, snapshots []domain.Snapshot) (map[string]domain.GrowthRate, error) {
	logger := zerolog.Ctx(ctx)

	grouped := make(map[string][]domain.Snapshot)
	for _, s := range snapshots {
		grouped[s.Profession] = append(grouped[s.Profession], s)
	}

	rates := make(map[string]domain.GrowthRate, len(grouped))
	for profession, series := range grouped {
		rate, err := c.Rate(ctx, profession, series)
		if err != nil {
			if errors.Is(err, ErrInsufficientData) {
				logger.Warn().Err(err).Str("profession", profession).Msg("excluding profession from projections")
				continue
			}
			return nil, err
		}
		rates[profession] = rate
	}

	if len(rates) == 0 {
		return nil, fmt.Errorf("no profession has a usable snapshot series: %w", ErrInsufficientData)
	}
	return rates, nil
}
