package adapters

import (
	"sort"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/models/api"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/models/domain"
)

func MapGrowthRateDomainToApi(rate domain.GrowthRate) api.GrowthRate {
	return api.GrowthRate{
		Profession:           rate.Profession,
		BaselineYear:         rate.BaselineYear,
		BaselineTotal:        rate.BaselineTotal,
		EarliestYear:         rate.EarliestYear,
		EarliestTotal:        rate.EarliestTotal,
		YearsElapsed:         rate.YearsElapsed,
		AnnualGrowthRatePct:  rate.AnnualGrowthRatePct,
		AnnualChangeEstimate: rate.AnnualChangeEstimate,
	}
}

func MapGrowthRatesDomainToApi(rates map[string]domain.GrowthRate) []api.GrowthRate {
	professions := make([]string, 0, len(rates))
	for profession := range rates {
		professions = append(professions, profession)
	}
	sort.Strings(professions)

	out := make([]api.GrowthRate, 0, len(rates))
	for _, profession := range professions {
		out = append(out, MapGrowthRateDomainToApi(rates[profession]))
	}
	return out
}

func MapScenarioDomainToApi(scenario domain.Scenario) api.Scenario {
	return api.Scenario{
		Name:       scenario.Name,
		Multiplier: scenario.Multiplier,
	}
}

func MapScenariosDomainToApi(scenarios []domain.Scenario) []api.Scenario {
	out := make([]api.Scenario, 0, len(scenarios))
	for _, scenario := range scenarios {
		out = append(out, MapScenarioDomainToApi(scenario))
	}
	return out
}

func MapProjectionPointDomainToApi(point domain.ProjectionPoint) api.ProjectionPoint {
	return api.ProjectionPoint{
		Year:          point.Year,
		FinancialYear: domain.FinancialYear(point.Year),
		Scenario:      point.Scenario,
		Total:         point.Total,
		Change:        point.Change,
	}
}

func mapScenarioSeriesDomainToApi(series map[string][]domain.ProjectionPoint) map[string][]api.ProjectionPoint {
	out := make(map[string][]api.ProjectionPoint, len(series))
	for scenario, points := range series {
		mapped := make([]api.ProjectionPoint, 0, len(points))
		for _, point := range points {
			mapped = append(mapped, MapProjectionPointDomainToApi(point))
		}
		out[scenario] = mapped
	}
	return out
}

func MapSupplyProjectionsDomainToApi(supply domain.SupplyProjections) []api.SupplyProjection {
	out := make([]api.SupplyProjection, 0, len(supply))
	for _, profession := range supply.Professions() {
		out = append(out, api.SupplyProjection{
			Profession: profession,
			Scenarios:  mapScenarioSeriesDomainToApi(supply[profession]),
		})
	}
	return out
}

func MapOpsProjectionsDomainToApi(ops domain.OpsProjections) api.OpsProjection {
	return api.OpsProjection{
		Scenarios: mapScenarioSeriesDomainToApi(ops),
	}
}

func MapGapRecordDomainToApi(record domain.GapRecord) api.GapRecord {
	return api.GapRecord{
		Year:          record.Year,
		FinancialYear: record.FinancialYear,
		Scenario:      record.Scenario,
		Supply:        record.Supply,
		Ops:           record.Ops,
		Gap:           record.Gap,
	}
}

func MapGapRecordsDomainToApi(records []domain.GapRecord) []api.GapRecord {
	out := make([]api.GapRecord, 0, len(records))
	for _, record := range records {
		out = append(out, MapGapRecordDomainToApi(record))
	}
	return out
}
