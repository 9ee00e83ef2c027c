package domain

import "sort"

// Scenario is a named multiplier applied to a base growth rate.
type Scenario struct {
	Name       string
	Multiplier float64
}

// ProjectionPoint is one year of a compounded series. The first point of a
// series anchors at the projection start year with Change = 0.
type ProjectionPoint struct {
	Year     int
	Total    float64
	Change   float64
	Scenario string
}

// SupplyProjections holds compounded workforce series keyed by profession,
// then by scenario name.
type SupplyProjections map[string]map[string][]ProjectionPoint

// OpsProjections holds compounded operations-demand series keyed by
// scenario name.
type OpsProjections map[string][]ProjectionPoint

// Professions returns the professions present in lexical order.
func (p SupplyProjections) Professions() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SupplyRow is a display-rounded supply point for one profession.
type SupplyRow struct {
	Profession    string
	Year          int
	FinancialYear string
	Scenario      string
	Registrants   int
	Change        int
}

// OpsRow is a display-rounded operations-demand point.
type OpsRow struct {
	Year          int
	FinancialYear string
	Scenario      string
	FTE           int
	Change        int
}

// GapRecord compares total projected supply against projected operations
// demand for one (year, scenario) pair. Gap = Supply - Ops.
type GapRecord struct {
	Year          int
	FinancialYear string
	Scenario      string
	Supply        int
	Ops           int
	Gap           int
}
