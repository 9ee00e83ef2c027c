package cpws

import (
	"context"
	"fmt"
	"sort"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/models/store"
	"gopkg.in/ini.v1"
)

// fileStore reads baselines from an INI extract. Each profession is a
// section named after it, carrying a baseline_fte key; a [survey] section
// holds the survey year:
//
//	[survey]
//	year = 2024
//
//	[Pharmacist]
//	baseline_fte = 18926.58922
type fileStore struct {
	cfg  *ini.File
	path string
}

func NewFileStore(path string) (Store, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading survey extract: %w", err)
	}
	return &fileStore{cfg: cfg, path: path}, nil
}

func (s *fileStore) Baselines(_ context.Context) ([]store.SurveyBaseline, error) {
	surveyYear := s.cfg.Section("survey").Key("year").MustInt(0)

	var baselines []store.SurveyBaseline
	for _, section := range s.cfg.Sections() {
		name := section.Name()
		if name == ini.DefaultSection || name == "survey" {
			continue
		}
		if !section.HasKey("baseline_fte") {
			continue
		}

		fte, err := section.Key("baseline_fte").Float64()
		if err != nil {
			return nil, fmt.Errorf("section %q: bad baseline_fte: %w", name, err)
		}
		if fte < 0 {
			return nil, fmt.Errorf("section %q: negative baseline_fte %v", name, fte)
		}

		baselines = append(baselines, store.SurveyBaseline{
			Profession: name,
			FTE:        fte,
			SurveyYear: surveyYear,
		})
	}

	if len(baselines) == 0 {
		return nil, fmt.Errorf("no profession sections with baseline_fte in %s", s.path)
	}

	sort.Slice(baselines, func(i, j int) bool {
		return baselines[i].Profession < baselines[j].Profession
	})
	return baselines, nil
}
