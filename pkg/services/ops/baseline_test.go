package ops

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/models/store"
)

type fakePharmacyClient struct {
	pharmacies []store.Pharmacy
	err        error
}

func (f *fakePharmacyClient) Count(_ context.Context, _ string) (int, error) {
	return len(f.pharmacies), f.err
}

func (f *fakePharmacyClient) Pharmacies(_ context.Context, _ string) ([]store.Pharmacy, error) {
	return f.pharmacies, f.err
}

func TestStaticBaseline(t *testing.T) {
	provider, err := NewStaticBaseline(12000)
	require.NoError(t, err)

	fte, err := provider.BaselineFTE(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12000.0, fte)
}

func TestStaticBaselineRejectsNonPositive(t *testing.T) {
	_, err := NewStaticBaseline(0)
	assert.Error(t, err)

	_, err = NewStaticBaseline(-3)
	assert.Error(t, err)
}

func TestOpenDataBaseline(t *testing.T) {
	client := &fakePharmacyClient{
		pharmacies: []store.Pharmacy{
			{ODSCode: "FA001", OpeningHours: map[string]string{"MON": "09:00-17:00", "TUE": "09:00-17:00"}},
			{ODSCode: "FA002", OpeningHours: map[string]string{"MON": "08:00-20:00"}},
		},
	}
	calc := NewFTECalculator(37.5, 1.0)

	provider, err := NewOpenDataBaseline(client, "test-resource", calc)
	require.NoError(t, err)

	fte, err := provider.BaselineFTE(context.Background())
	require.NoError(t, err)

	// (16 + 12) hours over two pharmacies averages 14; 14 * 2 / 37.5.
	assert.InDelta(t, 14.0*2/37.5, fte, 1e-9)
}

func TestOpenDataBaselineClientError(t *testing.T) {
	client := &fakePharmacyClient{err: fmt.Errorf("service unavailable")}
	provider, err := NewOpenDataBaseline(client, "test-resource", NewFTECalculator(37.5, 1.0))
	require.NoError(t, err)

	_, err = provider.BaselineFTE(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching pharmacy list")
}

func TestOpenDataBaselineEmptyList(t *testing.T) {
	provider, err := NewOpenDataBaseline(&fakePharmacyClient{}, "test-resource", NewFTECalculator(37.5, 1.0))
	require.NoError(t, err)

	_, err = provider.BaselineFTE(context.Background())
	assert.Error(t, err)
}

func TestNewOpenDataBaselineValidation(t *testing.T) {
	calc := NewFTECalculator(37.5, 1.0)

	_, err := NewOpenDataBaseline(nil, "test-resource", calc)
	assert.Error(t, err)

	_, err = NewOpenDataBaseline(&fakePharmacyClient{}, "", calc)
	assert.Error(t, err)

	_, err = NewOpenDataBaseline(&fakePharmacyClient{}, "test-resource", nil)
	assert.Error(t, err)
}
