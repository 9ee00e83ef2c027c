package workforce

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/models/domain"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/services/baseline"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/services/forecast"
)

type fakeSnapshots struct {
	snapshots    []domain.Snapshot
	flows        []domain.RegistrantFlow
	snapshotsErr error
	flowsErr     error
}

func (f *fakeSnapshots) Snapshots(_ context.Context) ([]domain.Snapshot, error) {
	return f.snapshots, f.snapshotsErr
}

func (f *fakeSnapshots) Flows(_ context.Context) ([]domain.RegistrantFlow, error) {
	return f.flows, f.flowsErr
}

type staticBaselines struct {
	byProfession map[string]float64
}

func (s *staticBaselines) Baselines(_ context.Context) (map[string]float64, error) {
	return s.byProfession, nil
}

func (s *staticBaselines) Describe() string { return "static test baselines" }

type fakeOps struct {
	fte float64
	err error
}

func (f *fakeOps) BaselineFTE(_ context.Context) (float64, error) {
	return f.fte, f.err
}

func testSnapshots() []domain.Snapshot {
	return []domain.Snapshot{
		{Profession: "Pharmacist", Year: 2017, Month: 3, Country: "England", Headcount: 100},
		{Profession: "Pharmacist", Year: 2024, Month: 3, Country: "England", Headcount: 200},
		{Profession: "Pharmacy Technician", Year: 2020, Month: 3, Country: "England", Headcount: 400},
		{Profession: "Pharmacy Technician", Year: 2024, Month: 3, Country: "England", Headcount: 500},
	}
}

func testRegistry(t *testing.T, byProfession map[string]float64) baseline.Registry {
	t.Helper()

	registry := baseline.NewRegistry()
	err := registry.Register("survey", func() (baseline.Source, error) {
		return &staticBaselines{byProfession: byProfession}, nil
	})
	require.NoError(t, err)
	return registry
}

func testController(t *testing.T, deps Deps) Controller {
	t.Helper()

	if deps.Settings == (domain.Settings{}) {
		deps.Settings = domain.Settings{
			BaselineYear:     2024,
			CensusMonth:      3,
			StartYear:        2025,
			Duration:         3,
			Country:          "England",
			OpsGrowthRatePct: 0.1,
		}
	}
	if deps.Snapshots == nil {
		deps.Snapshots = &fakeSnapshots{snapshots: testSnapshots()}
	}
	if deps.Sources == nil {
		deps.Sources = testRegistry(t, map[string]float64{
			"Pharmacist":          1000,
			"Pharmacy Technician": 400,
		})
	}
	if deps.Ops == nil {
		deps.Ops = &fakeOps{fte: 12000}
	}

	controller, err := NewController(deps)
	require.NoError(t, err)
	return controller
}

func TestNewControllerValidation(t *testing.T) {
	settings := domain.Settings{BaselineYear: 2024, StartYear: 2025, Duration: 3}
	snapshots := &fakeSnapshots{}
	registry := baseline.NewRegistry()
	ops := &fakeOps{fte: 1}

	tests := []struct {
		name string
		deps Deps
	}{
		{"missing snapshots", Deps{Settings: settings, Sources: registry, Ops: ops}},
		{"missing sources", Deps{Settings: settings, Snapshots: snapshots, Ops: ops}},
		{"missing ops provider", Deps{Settings: settings, Snapshots: snapshots, Sources: registry}},
		{"zero duration", Deps{Snapshots: snapshots, Sources: registry, Ops: ops}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewController(tt.deps)
			assert.Error(t, err)
		})
	}
}

func TestControllerRates(t *testing.T) {
	flows := []domain.RegistrantFlow{
		{Profession: "Pharmacist", Year: 2024, Joiners: 3100, Leavers: 2100},
	}
	controller := testController(t, Deps{
		Snapshots: &fakeSnapshots{snapshots: testSnapshots(), flows: flows},
	})

	result, err := controller.Rates(context.Background())
	require.NoError(t, err)

	require.Contains(t, result.Rates, "Pharmacist")
	rate := result.Rates["Pharmacist"]
	assert.Equal(t, 2024, rate.BaselineYear)
	assert.Equal(t, 200, rate.BaselineTotal)
	assert.Equal(t, 2017, rate.EarliestYear)
	assert.InDelta(t, 10.4089514, rate.AnnualGrowthRatePct, 1e-6)

	require.Contains(t, result.Rates, "Pharmacy Technician")
	assert.Equal(t, flows, result.Flows)
}

func TestControllerRatesFlowsUnavailable(t *testing.T) {
	controller := testController(t, Deps{
		Snapshots: &fakeSnapshots{
			snapshots: testSnapshots(),
			flowsErr:  fmt.Errorf("no flow extracts configured"),
		},
	})

	result, err := controller.Rates(context.Background())
	require.NoError(t, err)
	assert.Nil(t, result.Flows)
	assert.Len(t, result.Rates, 2)
}

func TestControllerRatesSnapshotError(t *testing.T) {
	controller := testController(t, Deps{
		Snapshots: &fakeSnapshots{snapshotsErr: fmt.Errorf("registrants.csv: no such file")},
	})

	_, err := controller.Rates(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading snapshots")
}

func TestControllerSupply(t *testing.T) {
	controller := testController(t, Deps{})

	supply, err := controller.Supply(context.Background(), "survey")
	require.NoError(t, err)

	require.Contains(t, supply, "Pharmacist")
	require.Contains(t, supply, "Pharmacy Technician")

	scenarios := supply["Pharmacist"]
	require.Len(t, scenarios, 3)
	for _, name := range []string{forecast.ScenarioBaseline, forecast.ScenarioOptimistic, forecast.ScenarioPessimistic} {
		points := scenarios[name]
		require.Len(t, points, 4, "anchor plus one point per projected year")
		assert.Equal(t, 2025, points[0].Year)
		assert.Equal(t, 1000.0, points[0].Total)
		assert.Equal(t, 0.0, points[0].Change)
	}

	// The optimistic first-year change is base * rate * 1.2 / 100.
	optimistic := scenarios[forecast.ScenarioOptimistic]
	baselineScenario := scenarios[forecast.ScenarioBaseline]
	assert.Greater(t, optimistic[1].Change, baselineScenario[1].Change)
}

func TestControllerSupplySkipsProfessionWithoutBaseline(t *testing.T) {
	controller := testController(t, Deps{
		Sources: testRegistry(t, map[string]float64{"Pharmacist": 1000}),
	})

	supply, err := controller.Supply(context.Background(), "survey")
	require.NoError(t, err)

	assert.Contains(t, supply, "Pharmacist")
	assert.NotContains(t, supply, "Pharmacy Technician")
}

func TestControllerSupplyNoCoverage(t *testing.T) {
	controller := testController(t, Deps{
		Sources: testRegistry(t, map[string]float64{"Dispensing Assistant": 900}),
	})

	_, err := controller.Supply(context.Background(), "survey")
	require.Error(t, err)
	assert.ErrorIs(t, err, forecast.ErrInsufficientData)
}

func TestControllerSupplyUnknownSource(t *testing.T) {
	controller := testController(t, Deps{})

	_, err := controller.Supply(context.Background(), "census")
	assert.Error(t, err)
}

func TestControllerOps(t *testing.T) {
	controller := testController(t, Deps{Ops: &fakeOps{fte: 12000}})

	ops, err := controller.Ops(context.Background())
	require.NoError(t, err)

	require.Len(t, ops, 3)
	points := ops[forecast.ScenarioBaseline]
	require.Len(t, points, 4)
	assert.Equal(t, 12000.0, points[0].Total)
	// 0.1% of 12000 is 12 in the first projected year.
	assert.Equal(t, 12.0, points[1].Change)
	assert.Equal(t, 12012.0, points[1].Total)
}

func TestControllerOpsBaselineError(t *testing.T) {
	controller := testController(t, Deps{
		Ops: &fakeOps{err: fmt.Errorf("pharmacy list empty")},
	})

	_, err := controller.Ops(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "operations baseline")
}

func TestControllerGap(t *testing.T) {
	controller := testController(t, Deps{})

	result, err := controller.Gap(context.Background(), "survey")
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.False(t, result.GeneratedAt.IsZero())
	assert.Equal(t, "survey", result.Source)

	// Anchor year plus three projected years, across three scenarios.
	require.Len(t, result.Records, 12)
	for _, record := range result.Records {
		assert.Equal(t, record.Supply-record.Ops, record.Gap)
		assert.Equal(t, domain.FinancialYear(record.Year), record.FinancialYear)
	}

	// The anchor year gap is identical in every scenario.
	anchor := map[string]int{}
	for _, record := range result.Records {
		if record.Year == 2025 {
			anchor[record.Scenario] = record.Gap
		}
	}
	require.Len(t, anchor, 3)
	assert.Equal(t, anchor[forecast.ScenarioBaseline], anchor[forecast.ScenarioOptimistic])
	assert.Equal(t, anchor[forecast.ScenarioBaseline], anchor[forecast.ScenarioPessimistic])
	assert.Equal(t, 1000+400-12000, anchor[forecast.ScenarioBaseline])
}

func TestControllerGapSupplyError(t *testing.T) {
	controller := testController(t, Deps{})

	_, err := controller.Gap(context.Background(), "census")
	assert.Error(t, err)
}

func TestControllerScenariosAndSources(t *testing.T) {
	controller := testController(t, Deps{})

	scenarios := controller.Scenarios()
	require.Len(t, scenarios, 3)
	assert.Equal(t, forecast.ScenarioBaseline, scenarios[0].Name)

	assert.Equal(t, []string{"survey"}, controller.Sources())
}
