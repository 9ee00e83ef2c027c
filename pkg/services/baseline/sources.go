package baseline

import (
	"context"
	"fmt"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/store/cpws"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/store/gphc"
)

type surveySource struct {
	store cpws.Store
}

// NewSurveySource anchors baselines on survey FTE returns.
func NewSurveySource(store cpws.Store) (Source, error) {
	if store == nil {
		return nil, fmt.Errorf("survey store is nil")
	}
	return &surveySource{store: store}, nil
}

func (s *surveySource) Baselines(ctx context.Context) (map[string]float64, error) {
	rows, err := s.store.Baselines(ctx)
	if err != nil {
		return nil, fmt.Errorf("survey baselines: %w", err)
	}

	baselines := make(map[string]float64, len(rows))
	for _, row := range rows {
		baselines[row.Profession] = row.FTE
	}
	return baselines, nil
}

func (s *surveySource) Describe() string {
	return "community pharmacy workforce survey"
}

type registerSource struct {
	store gphc.Store
}

// NewRegisterSource anchors baselines on regulator register headcounts at
// the baseline census year.
func NewRegisterSource(store gphc.Store) (Source, error) {
	if store == nil {
		return nil, fmt.Errorf("register store is nil")
	}
	return &registerSource{store: store}, nil
}

func (s *registerSource) Baselines(ctx context.Context) (map[string]float64, error) {
	baselines, err := s.store.BaselineHeadcounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("register baselines: %w", err)
	}
	return baselines, nil
}

func (s *registerSource) Describe() string {
	return "regulator register headcounts"
}
