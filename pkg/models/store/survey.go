package store

// SurveyBaseline is one profession's baseline figure from a workforce
// survey extract.
type SurveyBaseline struct {
	Profession string
	FTE        float64
	SurveyYear int
}
