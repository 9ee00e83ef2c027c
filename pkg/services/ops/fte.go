package ops

import (
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/models/store"
)

// HoursSummary aggregates weekly opening hours across the pharmacy estate.
type HoursSummary struct {
	Pharmacies         int
	TotalWeeklyHours   float64
	AverageWeeklyHours float64
}

// Summarize computes estate-wide weekly hours from a pharmacy list.
func Summarize(pharmacies []store.Pharmacy) HoursSummary {
	s := HoursSummary{Pharmacies: len(pharmacies)}
	for _, p := range pharmacies {
		s.TotalWeeklyHours += WeeklyHours(p)
	}
	if s.Pharmacies > 0 {
		s.AverageWeeklyHours = s.TotalWeeklyHours / float64(s.Pharmacies)
	}
	return s
}

// FTECalculator converts opening-hours demand into a full-time-equivalent
// operations baseline. WeeklyFTEHours defines one FTE (validated > 0 at
// config load); the utilisation rate adjusts for staffing overlap.
type FTECalculator struct {
	weeklyFTEHours  float64
	utilisationRate float64
}

func NewFTECalculator(weeklyFTEHours, utilisationRate float64) *FTECalculator {
	return &FTECalculator{
		weeklyFTEHours:  weeklyFTEHours,
		utilisationRate: utilisationRate,
	}
}

// BaselineFTE is avg hours x pharmacies / hours-per-FTE x utilisation.
// Downstream projection treats the result as an opaque starting value.
func (c *FTECalculator) BaselineFTE(avgWeeklyHours float64, pharmacyCount int) float64 {
	return avgWeeklyHours * float64(pharmacyCount) / c.weeklyFTEHours * c.utilisationRate
}
