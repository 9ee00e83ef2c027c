package projection

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/models/api"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/models/domain"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/services/baseline"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/services/forecast"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/services/workforce"
)

type mockController struct {
	mock.Mock
}

func (m *mockController) Rates(ctx context.Context) (*workforce.RatesResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workforce.RatesResult), args.Error(1)
}

func (m *mockController) Supply(ctx context.Context, source string) (domain.SupplyProjections, error) {
	args := m.Called(ctx, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.SupplyProjections), args.Error(1)
}

func (m *mockController) Ops(ctx context.Context) (domain.OpsProjections, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.OpsProjections), args.Error(1)
}

func (m *mockController) Gap(ctx context.Context, source string) (*workforce.GapResult, error) {
	args := m.Called(ctx, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workforce.GapResult), args.Error(1)
}

func (m *mockController) Scenarios() []domain.Scenario {
	args := m.Called()
	return args.Get(0).([]domain.Scenario)
}

func (m *mockController) Sources() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func TestGetRates(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*mockController)
		expectedStatus int
		expectedBody   []api.GrowthRate
	}{
		{
			name: "successful response",
			setupMock: func(m *mockController) {
				m.On("Rates", mock.Anything).Return(&workforce.RatesResult{
					Rates: map[string]domain.GrowthRate{
						"Pharmacy Technician": {
							Profession:           "Pharmacy Technician",
							BaselineYear:         2024,
							BaselineTotal:        500,
							EarliestYear:         2020,
							EarliestTotal:        400,
							YearsElapsed:         4,
							AnnualGrowthRatePct:  5.7370592,
							AnnualChangeEstimate: 25,
						},
						"Pharmacist": {
							Profession:           "Pharmacist",
							BaselineYear:         2024,
							BaselineTotal:        200,
							EarliestYear:         2017,
							EarliestTotal:        100,
							YearsElapsed:         7,
							AnnualGrowthRatePct:  10.4089514,
							AnnualChangeEstimate: 14.3,
						},
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: []api.GrowthRate{
				{
					Profession:           "Pharmacist",
					BaselineYear:         2024,
					BaselineTotal:        200,
					EarliestYear:         2017,
					EarliestTotal:        100,
					YearsElapsed:         7,
					AnnualGrowthRatePct:  10.4089514,
					AnnualChangeEstimate: 14.3,
				},
				{
					Profession:           "Pharmacy Technician",
					BaselineYear:         2024,
					BaselineTotal:        500,
					EarliestYear:         2020,
					EarliestTotal:        400,
					YearsElapsed:         4,
					AnnualGrowthRatePct:  5.7370592,
					AnnualChangeEstimate: 25,
				},
			},
		},
		{
			name: "snapshot store failure",
			setupMock: func(m *mockController) {
				m.On("Rates", mock.Anything).Return(nil, fmt.Errorf("loading snapshots: broken extract"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := new(mockController)
			tt.setupMock(ctrl)
			handler := NewHandler(ctrl)

			req := httptest.NewRequest("GET", "/rates", nil)
			rec := httptest.NewRecorder()

			handler.GetRates(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var response []api.GrowthRate
				err := json.NewDecoder(rec.Body).Decode(&response)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBody, response)
			}

			ctrl.AssertExpectations(t)
		})
	}
}

func TestListScenarios(t *testing.T) {
	ctrl := new(mockController)
	ctrl.On("Scenarios").Return([]domain.Scenario{
		{Name: "baseline", Multiplier: 1.0},
		{Name: "optimistic", Multiplier: 1.2},
		{Name: "pessimistic", Multiplier: 0.8},
	})
	handler := NewHandler(ctrl)

	req := httptest.NewRequest("GET", "/scenarios", nil)
	rec := httptest.NewRecorder()

	handler.ListScenarios(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response []api.Scenario
	err := json.NewDecoder(rec.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, []api.Scenario{
		{Name: "baseline", Multiplier: 1.0},
		{Name: "optimistic", Multiplier: 1.2},
		{Name: "pessimistic", Multiplier: 0.8},
	}, response)

	ctrl.AssertExpectations(t)
}

func TestGetSupplyProjections(t *testing.T) {
	supply := domain.SupplyProjections{
		"Pharmacist": {
			"baseline": []domain.ProjectionPoint{
				{Year: 2025, Total: 1000, Change: 0, Scenario: "baseline"},
				{Year: 2026, Total: 1050, Change: 50, Scenario: "baseline"},
			},
		},
	}

	tests := []struct {
		name           string
		url            string
		setupMock      func(*mockController)
		expectedStatus int
		expectedBody   []api.SupplyProjection
	}{
		{
			name: "successful response",
			url:  "/projections/supply?source=registry",
			setupMock: func(m *mockController) {
				m.On("Supply", mock.Anything, "registry").Return(supply, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: []api.SupplyProjection{
				{
					Profession: "Pharmacist",
					Scenarios: map[string][]api.ProjectionPoint{
						"baseline": {
							{Year: 2025, FinancialYear: "2025/26", Scenario: "baseline", Total: 1000, Change: 0},
							{Year: 2026, FinancialYear: "2026/27", Scenario: "baseline", Total: 1050, Change: 50},
						},
					},
				},
			},
		},
		{
			name: "defaults to the survey source",
			url:  "/projections/supply",
			setupMock: func(m *mockController) {
				m.On("Supply", mock.Anything, baseline.SourceSurvey).Return(supply, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: []api.SupplyProjection{
				{
					Profession: "Pharmacist",
					Scenarios: map[string][]api.ProjectionPoint{
						"baseline": {
							{Year: 2025, FinancialYear: "2025/26", Scenario: "baseline", Total: 1000, Change: 0},
							{Year: 2026, FinancialYear: "2026/27", Scenario: "baseline", Total: 1050, Change: 50},
						},
					},
				},
			},
		},
		{
			name: "unknown source",
			url:  "/projections/supply?source=census",
			setupMock: func(m *mockController) {
				m.On("Supply", mock.Anything, "census").Return(nil,
					fmt.Errorf(`source "census" is not registered: %w`, baseline.ErrUnknownSource))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "no usable baselines",
			url:  "/projections/supply",
			setupMock: func(m *mockController) {
				m.On("Supply", mock.Anything, baseline.SourceSurvey).Return(nil,
					fmt.Errorf("source %q covers no profession with a growth rate: %w",
						baseline.SourceSurvey, forecast.ErrInsufficientData))
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := new(mockController)
			tt.setupMock(ctrl)
			handler := NewHandler(ctrl)

			req := httptest.NewRequest("GET", tt.url, nil)
			rec := httptest.NewRecorder()

			handler.GetSupplyProjections(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var response []api.SupplyProjection
				err := json.NewDecoder(rec.Body).Decode(&response)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBody, response)
			} else {
				var response api.Error
				err := json.NewDecoder(rec.Body).Decode(&response)
				assert.NoError(t, err)
				assert.NotEmpty(t, response.Message)
			}

			ctrl.AssertExpectations(t)
		})
	}
}

func TestGetOpsProjections(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*mockController)
		expectedStatus int
		expectedBody   api.OpsProjection
	}{
		{
			name: "successful response",
			setupMock: func(m *mockController) {
				m.On("Ops", mock.Anything).Return(domain.OpsProjections{
					"baseline": []domain.ProjectionPoint{
						{Year: 2025, Total: 12000, Change: 0, Scenario: "baseline"},
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: api.OpsProjection{
				Scenarios: map[string][]api.ProjectionPoint{
					"baseline": {
						{Year: 2025, FinancialYear: "2025/26", Scenario: "baseline", Total: 12000, Change: 0},
					},
				},
			},
		},
		{
			name: "baseline provider failure",
			setupMock: func(m *mockController) {
				m.On("Ops", mock.Anything).Return(nil,
					fmt.Errorf("operations baseline: fetching pharmacy list: connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := new(mockController)
			tt.setupMock(ctrl)
			handler := NewHandler(ctrl)

			req := httptest.NewRequest("GET", "/projections/ops", nil)
			rec := httptest.NewRecorder()

			handler.GetOpsProjections(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var response api.OpsProjection
				err := json.NewDecoder(rec.Body).Decode(&response)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBody, response)
			}

			ctrl.AssertExpectations(t)
		})
	}
}

func TestGetGap(t *testing.T) {
	generatedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		url            string
		setupMock      func(*mockController)
		expectedStatus int
		expectedBody   api.GapReport
	}{
		{
			name: "successful response",
			url:  "/gap?source=survey",
			setupMock: func(m *mockController) {
				m.On("Gap", mock.Anything, "survey").Return(&workforce.GapResult{
					RunID:       "run-42",
					GeneratedAt: generatedAt,
					Source:      "survey",
					Records: []domain.GapRecord{
						{Year: 2025, FinancialYear: "2025/26", Scenario: "baseline", Supply: 1400, Ops: 12000, Gap: -10600},
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: api.GapReport{
				RunID:       "run-42",
				GeneratedAt: generatedAt,
				Source:      "survey",
				Records: []api.GapRecord{
					{Year: 2025, FinancialYear: "2025/26", Scenario: "baseline", Supply: 1400, Ops: 12000, Gap: -10600},
				},
			},
		},
		{
			name: "misaligned series",
			url:  "/gap",
			setupMock: func(m *mockController) {
				m.On("Gap", mock.Anything, baseline.SourceSurvey).Return(nil,
					fmt.Errorf("ops has baseline/2031 with no supply counterpart: %w", forecast.ErrMisalignedSeries))
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := new(mockController)
			tt.setupMock(ctrl)
			handler := NewHandler(ctrl)

			req := httptest.NewRequest("GET", tt.url, nil)
			rec := httptest.NewRecorder()

			handler.GetGap(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var response api.GapReport
				err := json.NewDecoder(rec.Body).Decode(&response)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBody, response)
			}

			ctrl.AssertExpectations(t)
		})
	}
}
