// Package workforce orchestrates the projection pipeline: census snapshots
// to growth rates, scenario compounding for supply and operations demand,
// and the gap table that compares them.
package workforce

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/models/domain"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/services/baseline"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/services/forecast"
)

// SnapshotStore supplies census-month registrant series and, optionally,
// joiners/leavers context.
type SnapshotStore interface {
	Snapshots(ctx context.Context) ([]domain.Snapshot, error)
	Flows(ctx context.Context) ([]domain.RegistrantFlow, error)
}

// OpsBaselineProvider yields the operations-demand starting FTE.
type OpsBaselineProvider interface {
	BaselineFTE(ctx context.Context) (float64, error)
}

// RatesResult pairs derived growth rates with registrant-flow context.
type RatesResult struct {
	Rates map[string]domain.GrowthRate
	Flows []domain.RegistrantFlow
}

// GapResult carries the gap table plus run metadata.
type GapResult struct {
	RunID       string
	GeneratedAt time.Time
	Source      string
	Records     []domain.GapRecord
}

// Controller runs the projection pipeline end to end.
type Controller interface {
	Rates(ctx context.Context) (*RatesResult, error)
	Supply(ctx context.Context, source string) (domain.SupplyProjections, error)
	Ops(ctx context.Context) (domain.OpsProjections, error)
	Gap(ctx context.Context, source string) (*GapResult, error)
	Scenarios() []domain.Scenario
	Sources() []string
}

// Deps wires the controller's collaborators.
type Deps struct {
	Settings  domain.Settings
	Snapshots SnapshotStore
	Sources   baseline.Registry
	Ops       OpsBaselineProvider
	Aggregate forecast.SupplyAggregator // nil means professions are summed
}

type controller struct {
	settings  domain.Settings
	snapshots SnapshotStore
	sources   baseline.Registry
	ops       OpsBaselineProvider
	analyzer  *forecast.GapAnalyzer
}

func NewController(deps Deps) (Controller, error) {
	if deps.Snapshots == nil {
		return nil, fmt.Errorf("snapshot store is required")
	}
	if deps.Sources == nil {
		return nil, fmt.Errorf("baseline source registry is required")
	}
	if deps.Ops == nil {
		return nil, fmt.Errorf("ops baseline provider is required")
	}
	if deps.Settings.Duration <= 0 {
		return nil, fmt.Errorf("projection duration must be positive")
	}

	return &controller{
		settings:  deps.Settings,
		snapshots: deps.Snapshots,
		sources:   deps.Sources,
		ops:       deps.Ops,
		analyzer:  forecast.NewGapAnalyzer(deps.Aggregate),
	}, nil
}

func (c *controller) Rates(ctx context.Context) (*RatesResult, error) {
	rates, err := c.rates(ctx)
	if err != nil {
		return nil, err
	}

	// Flow extracts are context for the rates report, never a reason to
	// fail the run.
	flows, err := c.snapshots.Flows(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("registrant flow extracts unavailable")
		flows = nil
	}

	return &RatesResult{Rates: rates, Flows: flows}, nil
}

func (c *controller) Supply(ctx context.Context, source string) (domain.SupplyProjections, error) {
	logger := zerolog.Ctx(ctx)

	rates, err := c.rates(ctx)
	if err != nil {
		return nil, err
	}

	src, err := c.sources.Create(source)
	if err != nil {
		return nil, err
	}
	baselines, err := src.Baselines(ctx)
	if err != nil {
		return nil, err
	}

	scenarios := forecast.Scenarios(rates)
	projector := forecast.NewProjector(c.settings.StartYear, c.settings.Duration)

	supply := make(domain.SupplyProjections)
	for profession, rate := range rates {
		base, ok := baselines[profession]
		if !ok {
			logger.Warn().
				Str("profession", profession).
				Str("source", source).
				Msg("no baseline for profession, skipping projection")
			continue
		}
		supply[profession] = projector.ProjectScenarios(base, rate.AnnualGrowthRatePct, scenarios)
	}

	if len(supply) == 0 {
		return nil, fmt.Errorf("source %q covers no profession with a growth rate: %w",
			source, forecast.ErrInsufficientData)
	}
	return supply, nil
}

func (c *controller) Ops(ctx context.Context) (domain.OpsProjections, error) {
	base, err := c.ops.BaselineFTE(ctx)
	if err != nil {
		return nil, fmt.Errorf("operations baseline: %w", err)
	}

	projector := forecast.NewProjector(c.settings.StartYear, c.settings.Duration)
	series := projector.ProjectScenarios(base, c.settings.OpsGrowthRatePct, forecast.Scenarios(nil))
	return domain.OpsProjections(series), nil
}

func (c *controller) Gap(ctx context.Context, source string) (*GapResult, error) {
	supply, err := c.Supply(ctx, source)
	if err != nil {
		return nil, err
	}
	ops, err := c.Ops(ctx)
	if err != nil {
		return nil, err
	}

	records, err := c.analyzer.Analyze(forecast.FormatSupply(supply), forecast.FormatOps(ops))
	if err != nil {
		return nil, err
	}

	return &GapResult{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Source:      source,
		Records:     records,
	}, nil
}

func (c *controller) Scenarios() []domain.Scenario {
	return forecast.Scenarios(nil)
}

func (c *controller) Sources() []string {
	return c.sources.ListSources()
}

func (c *controller) rates(ctx context.Context) (map[string]domain.GrowthRate, error) {
	snapshots, err := c.snapshots.Snapshots(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading snapshots: %w", err)
	}
	return forecast.NewGrowthCalculator(c.settings.BaselineYear).Rates(ctx, snapshots)
}
