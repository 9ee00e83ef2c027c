package domain

import "time"

// Report represents a complete projection report ready for rendering
type Report struct {
	Title       string
	RunID       string
	GeneratedAt time.Time
	Horizon     Horizon
	Sections    []ReportSection
}

// Horizon represents the projected year range covered by the report
type Horizon struct {
	StartYear int
	EndYear   int
	Duration  int // projected years after the anchor
}

// ReportSection represents a logical table in the report
type ReportSection struct {
	Title   string
	Columns []string
	Rows    [][]string
	Notes   []string
}
