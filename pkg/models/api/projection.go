package api

import "time"

type GrowthRate struct {
	Profession           string  `json:"profession"`
	BaselineYear         int     `json:"baseline_year"`
	BaselineTotal        int     `json:"baseline_total"`
	EarliestYear         int     `json:"earliest_year"`
	EarliestTotal        int     `json:"earliest_total"`
	YearsElapsed         int     `json:"years_elapsed"`
	AnnualGrowthRatePct  float64 `json:"annual_growth_rate_pct"`
	AnnualChangeEstimate float64 `json:"annual_change_estimate"`
}

type Scenario struct {
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

type ProjectionPoint struct {
	Year          int     `json:"year"`
	FinancialYear string  `json:"financial_year"`
	Scenario      string  `json:"scenario"`
	Total         float64 `json:"total"`
	Change        float64 `json:"change"`
}

type SupplyProjection struct {
	Profession string                       `json:"profession"`
	Scenarios  map[string][]ProjectionPoint `json:"scenarios"`
}

type OpsProjection struct {
	Scenarios map[string][]ProjectionPoint `json:"scenarios"`
}

type GapRecord struct {
	Year          int    `json:"year"`
	FinancialYear string `json:"financial_year"`
	Scenario      string `json:"scenario"`
	Supply        int    `json:"supply"`
	Ops           int    `json:"ops"`
	Gap           int    `json:"gap"`
}

type GapReport struct {
	RunID       string      `json:"run_id"`
	GeneratedAt time.Time   `json:"generated_at"`
	Source      string      `json:"source"`
	Records     []GapRecord `json:"records"`
}
