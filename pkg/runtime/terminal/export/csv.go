package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/models/domain"
)

// CSVWriter exports projection tables. Every row carries the run ID so an
// extract can be joined back to the run that produced it.
type CSVWriter struct {
	runID string
}

func NewCSVWriter(runID string) *CSVWriter {
	return &CSVWriter{runID: runID}
}

func (w *CSVWriter) WriteSupply(path string, rows []domain.SupplyRow) error {
	records := [][]string{
		{"profession", "year", "financial_year", "scenario", "registrants", "change", "run_id"},
	}
	for _, row := range rows {
		records = append(records, []string{
			row.Profession,
			strconv.Itoa(row.Year),
			row.FinancialYear,
			row.Scenario,
			strconv.Itoa(row.Registrants),
			strconv.Itoa(row.Change),
			w.runID,
		})
	}
	return w.writeAll(path, records)
}

func (w *CSVWriter) WriteOps(path string, rows []domain.OpsRow) error {
	records := [][]string{
		{"year", "financial_year", "scenario", "fte", "change", "run_id"},
	}
	for _, row := range rows {
		records = append(records, []string{
			strconv.Itoa(row.Year),
			row.FinancialYear,
			row.Scenario,
			strconv.Itoa(row.FTE),
			strconv.Itoa(row.Change),
			w.runID,
		})
	}
	return w.writeAll(path, records)
}

func (w *CSVWriter) WriteGap(path string, records []domain.GapRecord) error {
	rows := [][]string{
		{"year", "financial_year", "scenario", "supply", "ops", "gap", "run_id"},
	}
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Year),
			record.FinancialYear,
			record.Scenario,
			strconv.Itoa(record.Supply),
			strconv.Itoa(record.Ops),
			strconv.Itoa(record.Gap),
			w.runID,
		})
	}
	return w.writeAll(path, rows)
}

func (w *CSVWriter) writeAll(path string, records [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := csv.NewWriter(file).WriteAll(records); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
