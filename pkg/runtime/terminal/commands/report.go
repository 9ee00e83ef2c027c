package commands

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/models/domain"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/services/workforce"
)

func newReport(title, runID string, settings domain.Settings) *domain.Report {
	return &domain.Report{
		Title:       title,
		RunID:       runID,
		GeneratedAt: time.Now().UTC(),
		Horizon: domain.Horizon{
			StartYear: settings.StartYear,
			EndYear:   settings.StartYear + settings.Duration,
			Duration:  settings.Duration,
		},
	}
}

func ratesReport(runID string, settings domain.Settings, result *workforce.RatesResult) *domain.Report {
	report := newReport("Registrant growth rates", runID, settings)

	professions := make([]string, 0, len(result.Rates))
	for profession := range result.Rates {
		professions = append(professions, profession)
	}
	sort.Strings(professions)

	rates := domain.ReportSection{
		Title:   "Annual growth rates",
		Columns: []string{"Profession", "Window", "From", "To", "Rate %", "Change / yr"},
	}
	for _, profession := range professions {
		rate := result.Rates[profession]
		rates.Rows = append(rates.Rows, []string{
			profession,
			fmt.Sprintf("%d-%d", rate.EarliestYear, rate.BaselineYear),
			strconv.Itoa(rate.EarliestTotal),
			strconv.Itoa(rate.BaselineTotal),
			fmt.Sprintf("%.2f", rate.AnnualGrowthRatePct),
			fmt.Sprintf("%.1f", rate.AnnualChangeEstimate),
		})
	}
	report.Sections = append(report.Sections, rates)

	if len(result.Flows) > 0 {
		flows := domain.ReportSection{
			Title:   "Joiners and leavers",
			Columns: []string{"Profession", "Year", "Joiners", "Leavers", "Net"},
			Notes:   []string{"register flows shown for context only"},
		}
		for _, flow := range result.Flows {
			flows.Rows = append(flows.Rows, []string{
				flow.Profession,
				strconv.Itoa(flow.Year),
				strconv.Itoa(flow.Joiners),
				strconv.Itoa(flow.Leavers),
				strconv.Itoa(flow.Net()),
			})
		}
		report.Sections = append(report.Sections, flows)
	}

	return report
}

func supplyReport(runID string, settings domain.Settings, source string, rows []domain.SupplyRow) *domain.Report {
	report := newReport("Workforce supply projections", runID, settings)

	// Rows arrive sorted by (profession, scenario, year); one section per
	// profession.
	var section *domain.ReportSection
	for _, row := range rows {
		if section == nil || section.Title != row.Profession {
			if section != nil {
				report.Sections = append(report.Sections, *section)
			}
			section = &domain.ReportSection{
				Title:   row.Profession,
				Columns: []string{"Year", "Financial year", "Scenario", "Registrants", "Change"},
				Notes:   []string{fmt.Sprintf("baseline source: %s", source)},
			}
		}
		section.Rows = append(section.Rows, []string{
			strconv.Itoa(row.Year),
			row.FinancialYear,
			row.Scenario,
			strconv.Itoa(row.Registrants),
			strconv.Itoa(row.Change),
		})
	}
	if section != nil {
		report.Sections = append(report.Sections, *section)
	}

	return report
}

func opsReport(runID string, settings domain.Settings, rows []domain.OpsRow) *domain.Report {
	report := newReport("Operations demand projection", runID, settings)

	section := domain.ReportSection{
		Title:   "Demand (FTE)",
		Columns: []string{"Year", "Financial year", "Scenario", "FTE", "Change"},
	}
	for _, row := range rows {
		section.Rows = append(section.Rows, []string{
			strconv.Itoa(row.Year),
			row.FinancialYear,
			row.Scenario,
			strconv.Itoa(row.FTE),
			strconv.Itoa(row.Change),
		})
	}
	report.Sections = append(report.Sections, section)

	return report
}

func gapReport(settings domain.Settings, result *workforce.GapResult) *domain.Report {
	report := newReport("Workforce gap analysis", result.RunID, settings)
	report.GeneratedAt = result.GeneratedAt

	section := domain.ReportSection{
		Title:   "Supply vs demand",
		Columns: []string{"Year", "Financial year", "Scenario", "Supply", "Ops", "Gap"},
		Notes:   []string{fmt.Sprintf("baseline source: %s", result.Source)},
	}
	for _, record := range result.Records {
		section.Rows = append(section.Rows, []string{
			strconv.Itoa(record.Year),
			record.FinancialYear,
			record.Scenario,
			strconv.Itoa(record.Supply),
			strconv.Itoa(record.Ops),
			strconv.Itoa(record.Gap),
		})
	}
	report.Sections = append(report.Sections, section)

	return report
}
