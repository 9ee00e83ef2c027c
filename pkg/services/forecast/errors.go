package forecast

import "errors"

// Sentinel errors for projection preconditions. Wrapped messages carry the
// profession, year or scenario that tripped the check; callers classify
// with errors.Is.
var (
	// ErrInsufficientData marks a profession whose series cannot support a
	// growth rate: fewer than two distinct census years, or no year before
	// the baseline.
	ErrInsufficientData = errors.New("insufficient snapshot data")

	// ErrInvalidBaseline marks a zero or negative total where a growth
	// ratio needs a denominator.
	ErrInvalidBaseline = errors.New("invalid baseline total")

	// ErrMisalignedSeries marks supply and ops projections that do not
	// share the same (year, scenario) keys.
	ErrMisalignedSeries = errors.New("misaligned projection series")

	// ErrUnknownScenario marks a scenario name outside the generated set.
	ErrUnknownScenario = errors.New("unknown scenario")
)
