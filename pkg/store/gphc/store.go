package gphc

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/models/domain"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/models/store"
)

// Store reads regulator registrant extracts from local CSV files.
type Store interface {
	// Snapshots returns the census-month series for every profession,
	// filtered to the configured country and sorted by (profession, year).
	Snapshots(ctx context.Context) ([]domain.Snapshot, error)
	// BaselineHeadcounts returns the baseline-year headcount per profession.
	BaselineHeadcounts(ctx context.Context) (map[string]float64, error)
	// Flows returns joiners/leavers per (profession, year) when flow
	// extracts are configured, nil otherwise.
	Flows(ctx context.Context) ([]domain.RegistrantFlow, error)
}

// Config locates the extracts and pins the census scope.
type Config struct {
	RegistrantsPath string
	JoinersPath     string // optional
	LeaversPath     string // optional
	Country         string
	CensusMonth     int
	BaselineYear    int
}

type fileStore struct {
	cfg Config
}

func NewStore(cfg Config) (Store, error) {
	if cfg.RegistrantsPath == "" {
		return nil, fmt.Errorf("registrants path is required")
	}
	if cfg.CensusMonth < 1 || cfg.CensusMonth > 12 {
		return nil, fmt.Errorf("census month %d out of range", cfg.CensusMonth)
	}
	return &fileStore{cfg: cfg}, nil
}

func (s *fileStore) Snapshots(_ context.Context) ([]domain.Snapshot, error) {
	records, err := s.readRegistrants()
	if err != nil {
		return nil, err
	}

	snapshots := make([]domain.Snapshot, 0, len(records))
	for _, r := range records {
		snapshots = append(snapshots, domain.Snapshot{
			Profession: r.Profession,
			Year:       r.Year,
			Month:      r.Month,
			Country:    r.Country,
			Headcount:  r.Total,
		})
	}

	sort.Slice(snapshots, func(i, j int) bool {
		if snapshots[i].Profession != snapshots[j].Profession {
			return snapshots[i].Profession < snapshots[j].Profession
		}
		return snapshots[i].Year < snapshots[j].Year
	})
	return snapshots, nil
}

func (s *fileStore) BaselineHeadcounts(ctx context.Context) (map[string]float64, error) {
	snapshots, err := s.Snapshots(ctx)
	if err != nil {
		return nil, err
	}

	baselines := make(map[string]float64)
	for _, snap := range snapshots {
		if snap.Year == s.cfg.BaselineYear {
			baselines[snap.Profession] = float64(snap.Headcount)
		}
	}
	if len(baselines) == 0 {
		return nil, fmt.Errorf("no registrant rows for baseline year %d", s.cfg.BaselineYear)
	}
	return baselines, nil
}

func (s *fileStore) Flows(_ context.Context) ([]domain.RegistrantFlow, error) {
	if s.cfg.JoinersPath == "" && s.cfg.LeaversPath == "" {
		return nil, nil
	}

	type key struct {
		profession string
		year       int
	}
	merged := make(map[key]*domain.RegistrantFlow)

	add := func(records []store.FlowRecord, assign func(*domain.RegistrantFlow, int)) {
		for _, r := range records {
			k := key{r.Profession, r.Year}
			flow, ok := merged[k]
			if !ok {
				flow = &domain.RegistrantFlow{Profession: r.Profession, Year: r.Year}
				merged[k] = flow
			}
			assign(flow, r.Count)
		}
	}

	if s.cfg.JoinersPath != "" {
		joiners, err := readFlows(s.cfg.JoinersPath, "joiners", "total_joiners")
		if err != nil {
			return nil, fmt.Errorf("reading joiners: %w", err)
		}
		add(joiners, func(f *domain.RegistrantFlow, n int) { f.Joiners = n })
	}
	if s.cfg.LeaversPath != "" {
		leavers, err := readFlows(s.cfg.LeaversPath, "leavers", "total_leavers")
		if err != nil {
			return nil, fmt.Errorf("reading leavers: %w", err)
		}
		add(leavers, func(f *domain.RegistrantFlow, n int) { f.Leavers = n })
	}

	flows := make([]domain.RegistrantFlow, 0, len(merged))
	for _, f := range merged {
		flows = append(flows, *f)
	}
	sort.Slice(flows, func(i, j int) bool {
		if flows[i].Profession != flows[j].Profession {
			return flows[i].Profession < flows[j].Profession
		}
		return flows[i].Year < flows[j].Year
	})
	return flows, nil
}

// totalAliases are the column names accepted for the headcount figure.
var totalAliases = []string{"registrants", "registrant_count", "headcount", "total"}

func (s *fileStore) readRegistrants() ([]store.RegistrantRecord, error) {
	f, err := os.Open(s.cfg.RegistrantsPath)
	if err != nil {
		return nil, fmt.Errorf("opening registrants extract: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading registrants header: %w", err)
	}
	cols := indexColumns(header)

	required := []string{"profession", "year", "month"}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("registrants extract is missing column %q", name)
		}
	}
	totalCol := -1
	for _, alias := range totalAliases {
		if idx, ok := cols[alias]; ok {
			totalCol = idx
			break
		}
	}
	if totalCol < 0 {
		return nil, fmt.Errorf("registrants extract has no headcount column (tried %s)",
			strings.Join(totalAliases, ", "))
	}
	countryCol, hasCountry := cols["country"]

	var records []store.RegistrantRecord
	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading registrants row: %w", err)
		}
		line++

		if blankRow(row) {
			continue
		}

		country := ""
		if hasCountry {
			country = strings.TrimSpace(row[countryCol])
			if s.cfg.Country != "" && country != s.cfg.Country {
				continue
			}
		}

		year, err := cleanInt(row[cols["year"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad year %q: %w", line, row[cols["year"]], err)
		}
		month, err := cleanInt(row[cols["month"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad month %q: %w", line, row[cols["month"]], err)
		}
		if month != s.cfg.CensusMonth {
			continue
		}

		total, err := cleanInt(row[totalCol])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad headcount %q: %w", line, row[totalCol], err)
		}
		if total < 0 {
			return nil, fmt.Errorf("row %d: negative headcount %d", line, total)
		}

		records = append(records, store.RegistrantRecord{
			Profession: strings.TrimSpace(row[cols["profession"]]),
			Year:       year,
			Month:      month,
			Country:    country,
			Total:      total,
		})
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no census rows for month %d (country %q) in %s",
			s.cfg.CensusMonth, s.cfg.Country, s.cfg.RegistrantsPath)
	}
	return records, nil
}

func readFlows(path, countCol, countAlias string) ([]store.FlowRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	cols := indexColumns(header)

	for _, name := range []string{"profession", "year"} {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("flow extract is missing column %q", name)
		}
	}
	idx, ok := cols[countCol]
	if !ok {
		if idx, ok = cols[countAlias]; !ok {
			return nil, fmt.Errorf("flow extract has neither %q nor %q column", countCol, countAlias)
		}
	}

	var records []store.FlowRecord
	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		line++

		if blankRow(row) {
			continue
		}

		year, err := cleanInt(row[cols["year"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad year %q: %w", line, row[cols["year"]], err)
		}
		count, err := cleanInt(row[idx])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad count %q: %w", line, row[idx], err)
		}

		records = append(records, store.FlowRecord{
			Profession: strings.TrimSpace(row[cols["profession"]]),
			Year:       year,
			Count:      count,
		})
	}
	return records, nil
}

func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// cleanInt parses a numeric cell, tolerating thousands separators and
// stray quotes ("54,752" -> 54752).
func cleanInt(cell string) (int, error) {
	cleaned := strings.NewReplacer(",", "", `"`, "", " ", "").Replace(cell)
	return strconv.Atoi(cleaned)
}
