package domain

// Snapshot is a point-in-time registrant headcount for one profession,
// taken at the annual census month.
type Snapshot struct {
	Profession string
	Year       int
	Month      int // 1-12
	Country    string
	Headcount  int
}

// GrowthRate holds the derived annual growth figures for one profession.
// AnnualGrowthRatePct is a true CAGR between the earliest and baseline
// census years; AnnualChangeEstimate is a linear average kept for display.
type GrowthRate struct {
	Profession           string
	BaselineYear         int
	BaselineTotal        int
	EarliestYear         int
	EarliestTotal        int
	YearsElapsed         int
	AnnualGrowthRatePct  float64
	AnnualChangeEstimate float64
}

// RegistrantFlow is an annual joiners/leavers observation for a profession.
type RegistrantFlow struct {
	Profession string
	Year       int
	Joiners    int
	Leavers    int
}

// Net returns joiners minus leavers.
func (f RegistrantFlow) Net() int {
	return f.Joiners - f.Leavers
}
