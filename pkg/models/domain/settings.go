package domain

// Settings is the immutable projection configuration shared by one run.
// It is built once by the config service and passed into components at
// construction time.
type Settings struct {
	BaselineYear int // census year the baseline totals refer to
	CensusMonth  int // annual snapshot month, 1-12
	StartYear    int // first projected year (the anchor point)
	Duration     int // projected years after the anchor
	Country      string

	OpsGrowthRatePct float64 // fixed annual growth applied to operations demand
	OpsBaselineFTE   float64 // pre-computed operations baseline, 0 = derive live
	WeeklyFTEHours   float64 // contracted hours defining one FTE
	UtilisationRate  float64 // staffing adjustment applied to opening-hours demand
}
