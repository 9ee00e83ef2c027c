package workforce

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/services/baseline"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/services/config"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/services/ops"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/store/cpws"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/store/gphc"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/store/nhsbsa"
)

// BuildController assembles the projection controller from file settings.
// liveOps forces the operations baseline to be derived from the open-data
// pharmacy list, even when a configured value is present.
func BuildController(logger zerolog.Logger, cfg *config.Config, liveOps bool) (Controller, error) {
	snapshots, err := gphc.NewStore(gphc.Config{
		RegistrantsPath: cfg.Registrants.SnapshotsPath,
		JoinersPath:     cfg.Registrants.JoinersPath,
		LeaversPath:     cfg.Registrants.LeaversPath,
		Country:         cfg.Projection.Country,
		CensusMonth:     cfg.Projection.CensusMonth,
		BaselineYear:    cfg.Projection.BaselineYear,
	})
	if err != nil {
		return nil, fmt.Errorf("building snapshot store: %w", err)
	}

	registry := baseline.NewRegistry()
	if err := registry.Register(baseline.SourceRegistry, func() (baseline.Source, error) {
		return baseline.NewRegisterSource(snapshots)
	}); err != nil {
		return nil, err
	}

	switch cfg.Survey.Backend {
	case config.SurveyBackendINI:
		path := cfg.Survey.INIPath
		err = registry.Register(baseline.SourceSurvey, func() (baseline.Source, error) {
			store, err := cpws.NewFileStore(path)
			if err != nil {
				return nil, err
			}
			return baseline.NewSurveySource(store)
		})
	case config.SurveyBackendSQL:
		path := cfg.Survey.DatabasePath
		year := cfg.Survey.Year
		err = registry.Register(baseline.SourceSurvey, func() (baseline.Source, error) {
			db, err := cpws.OpenDatabase(path)
			if err != nil {
				return nil, err
			}
			store, err := cpws.NewSQLStore(db, year)
			if err != nil {
				return nil, err
			}
			return baseline.NewSurveySource(store)
		})
	}
	if err != nil {
		return nil, err
	}

	provider, err := buildOpsProvider(logger, cfg, liveOps)
	if err != nil {
		return nil, err
	}

	return NewController(Deps{
		Settings:  cfg.Settings(),
		Snapshots: snapshots,
		Sources:   registry,
		Ops:       provider,
	})
}

func buildOpsProvider(logger zerolog.Logger, cfg *config.Config, liveOps bool) (OpsBaselineProvider, error) {
	if !liveOps && cfg.Ops.BaselineFTE > 0 {
		return ops.NewStaticBaseline(cfg.Ops.BaselineFTE)
	}

	if cfg.OpenData.ResourceID == "" {
		return nil, fmt.Errorf("no operations baseline: set ops.baseline_fte or open_data.resource_id")
	}

	client := nhsbsa.NewClient(logger, nhsbsa.Config{
		BaseURL:  cfg.OpenData.BaseURL,
		PageSize: cfg.OpenData.PageSize,
		Retries:  cfg.OpenData.Retries,
	})
	calc := ops.NewFTECalculator(cfg.Ops.WeeklyFTEHours, cfg.Ops.UtilisationRate)
	return ops.NewOpenDataBaseline(client, cfg.OpenData.ResourceID, calc)
}
