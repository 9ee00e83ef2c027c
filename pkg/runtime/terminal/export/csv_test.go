package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/models/domain"
)

func readBack(t *testing.T, path string) [][]string {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteSupply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "supply.csv")
	writer := NewCSVWriter("run-1234")

	err := writer.WriteSupply(path, []domain.SupplyRow{
		{Profession: "Pharmacist", Year: 2025, FinancialYear: "2025/26", Scenario: "baseline", Registrants: 18927, Change: 0},
		{Profession: "Pharmacist", Year: 2026, FinancialYear: "2026/27", Scenario: "baseline", Registrants: 19211, Change: 284},
	})
	require.NoError(t, err)

	records := readBack(t, path)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"profession", "year", "financial_year", "scenario", "registrants", "change", "run_id"}, records[0])
	assert.Equal(t, []string{"Pharmacist", "2025", "2025/26", "baseline", "18927", "0", "run-1234"}, records[1])
	assert.Equal(t, []string{"Pharmacist", "2026", "2026/27", "baseline", "19211", "284", "run-1234"}, records[2])
}

func TestWriteOps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.csv")

	err := NewCSVWriter("run-1").WriteOps(path, []domain.OpsRow{
		{Year: 2025, FinancialYear: "2025/26", Scenario: "optimistic", FTE: 12000, Change: 0},
	})
	require.NoError(t, err)

	records := readBack(t, path)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"2025", "2025/26", "optimistic", "12000", "0", "run-1"}, records[1])
}

func TestWriteGap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gap.csv")

	err := NewCSVWriter("run-9").WriteGap(path, []domain.GapRecord{
		{Year: 2025, FinancialYear: "2025/26", Scenario: "baseline", Supply: 23218, Ops: 12000, Gap: 11218},
	})
	require.NoError(t, err)

	records := readBack(t, path)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"year", "financial_year", "scenario", "supply", "ops", "gap", "run_id"}, records[0])
	assert.Equal(t, []string{"2025", "2025/26", "baseline", "23218", "12000", "11218", "run-9"}, records[1])
}

func TestWriteToBadPath(t *testing.T) {
	err := NewCSVWriter("run-1").WriteGap(filepath.Join(t.TempDir(), "missing", "gap.csv"), nil)
	assert.Error(t, err)
}
