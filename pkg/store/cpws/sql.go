package cpws

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/models/store"
	_ "modernc.org/sqlite"
)

// sqlStore aggregates regional survey returns into national baselines.
// The extract schema is survey_workforce(profession, region, fte, year).
type sqlStore struct {
	db         *sql.DB
	surveyYear int
}

func NewSQLStore(db *sql.DB, surveyYear int) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	if surveyYear <= 0 {
		return nil, fmt.Errorf("survey year is required")
	}
	return &sqlStore{db: db, surveyYear: surveyYear}, nil
}

// OpenDatabase opens a local survey extract database.
func OpenDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening survey database: %w", err)
	}
	return db, nil
}

func (s *sqlStore) Baselines(ctx context.Context) ([]store.SurveyBaseline, error) {
	query := `
		SELECT profession, SUM(fte) AS baseline_fte
		FROM survey_workforce
		WHERE year = ?
		GROUP BY profession
		ORDER BY profession`

	rows, err := s.db.QueryContext(ctx, query, s.surveyYear)
	if err != nil {
		return nil, fmt.Errorf("survey baselines query failed: %w", err)
	}
	defer rows.Close()

	var baselines []store.SurveyBaseline
	for rows.Next() {
		var b store.SurveyBaseline
		if err := rows.Scan(&b.Profession, &b.FTE); err != nil {
			return nil, err
		}
		if b.FTE < 0 {
			return nil, fmt.Errorf("profession %q: negative baseline_fte %v", b.Profession, b.FTE)
		}
		b.SurveyYear = s.surveyYear
		baselines = append(baselines, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(baselines) == 0 {
		return nil, fmt.Errorf("no survey rows for year %d", s.surveyYear)
	}
	return baselines, nil
}
