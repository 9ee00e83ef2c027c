// Package config loads and validates the workforce settings file.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/models/domain"
)

// Survey backends.
const (
	SurveyBackendINI = "ini"
	SurveyBackendSQL = "sql"
)

type ProjectionConfig struct {
	BaselineYear int    `mapstructure:"baseline_year"`
	CensusMonth  int    `mapstructure:"census_month"`
	StartYear    int    `mapstructure:"start_year"`
	Duration     int    `mapstructure:"duration"`
	Country      string `mapstructure:"country"`
}

type RegistrantsConfig struct {
	SnapshotsPath string `mapstructure:"snapshots_path"`
	JoinersPath   string `mapstructure:"joiners_path"`
	LeaversPath   string `mapstructure:"leavers_path"`
}

type SurveyConfig struct {
	Backend      string `mapstructure:"backend"`
	INIPath      string `mapstructure:"ini_path"`
	DatabasePath string `mapstructure:"database_path"`
	Year         int    `mapstructure:"year"`
}

type OpenDataConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	ResourceID string `mapstructure:"resource_id"`
	PageSize   int    `mapstructure:"page_size"`
	Retries    int    `mapstructure:"retries"`
}

type OpsConfig struct {
	GrowthRatePct   float64 `mapstructure:"growth_rate_pct"`
	BaselineFTE     float64 `mapstructure:"baseline_fte"`
	WeeklyFTEHours  float64 `mapstructure:"weekly_fte_hours"`
	UtilisationRate float64 `mapstructure:"utilisation_rate"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type Config struct {
	Projection  ProjectionConfig  `mapstructure:"projection"`
	Registrants RegistrantsConfig `mapstructure:"registrants"`
	Survey      SurveyConfig      `mapstructure:"survey"`
	OpenData    OpenDataConfig    `mapstructure:"open_data"`
	Ops         OpsConfig         `mapstructure:"ops"`
	Server      ServerConfig      `mapstructure:"server"`
}

// LoadConfig reads the settings file, fills defaults, and validates the
// result.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse workforce config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Projection.BaselineYear == 0 {
		c.Projection.BaselineYear = 2025
	}
	if c.Projection.CensusMonth == 0 {
		c.Projection.CensusMonth = 3
	}
	if c.Projection.StartYear == 0 {
		c.Projection.StartYear = c.Projection.BaselineYear
	}
	if c.Projection.Duration == 0 {
		c.Projection.Duration = 10
	}
	if c.Projection.Country == "" {
		c.Projection.Country = "England"
	}
	if c.Ops.GrowthRatePct == 0 {
		c.Ops.GrowthRatePct = 0.1
	}
	if c.Ops.WeeklyFTEHours == 0 {
		c.Ops.WeeklyFTEHours = 37.5
	}
	if c.Ops.UtilisationRate == 0 {
		c.Ops.UtilisationRate = 1.0
	}
	if c.Survey.Backend == "" && (c.Survey.INIPath != "" || c.Survey.DatabasePath != "") {
		c.Survey.Backend = SurveyBackendINI
	}
	if c.OpenData.PageSize == 0 {
		c.OpenData.PageSize = 32000
	}
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
}

func (c *Config) Validate() error {
	if c.Registrants.SnapshotsPath == "" {
		return fmt.Errorf("registrants.snapshots_path is required")
	}
	if c.Projection.CensusMonth < 1 || c.Projection.CensusMonth > 12 {
		return fmt.Errorf("projection.census_month must be 1-12, got %d", c.Projection.CensusMonth)
	}
	if c.Projection.Duration < 1 {
		return fmt.Errorf("projection.duration must be positive, got %d", c.Projection.Duration)
	}
	if c.Ops.WeeklyFTEHours <= 0 {
		return fmt.Errorf("ops.weekly_fte_hours must be positive, got %v", c.Ops.WeeklyFTEHours)
	}
	if c.Ops.UtilisationRate <= 0 {
		return fmt.Errorf("ops.utilisation_rate must be positive, got %v", c.Ops.UtilisationRate)
	}
	if c.Ops.BaselineFTE < 0 {
		return fmt.Errorf("ops.baseline_fte must not be negative, got %v", c.Ops.BaselineFTE)
	}

	switch c.Survey.Backend {
	case "":
		// No survey source configured; the registry source still works.
	case SurveyBackendINI:
		if c.Survey.INIPath == "" {
			return fmt.Errorf("survey.ini_path is required for the ini backend")
		}
	case SurveyBackendSQL:
		if c.Survey.DatabasePath == "" {
			return fmt.Errorf("survey.database_path is required for the sql backend")
		}
		if c.Survey.Year < 1 {
			return fmt.Errorf("survey.year is required for the sql backend")
		}
	default:
		return fmt.Errorf("survey.backend must be %q or %q, got %q",
			SurveyBackendINI, SurveyBackendSQL, c.Survey.Backend)
	}

	return nil
}

// Settings projects the file-level config onto the immutable settings struct
// the services consume.
func (c *Config) Settings() domain.Settings {
	return domain.Settings{
		BaselineYear:     c.Projection.BaselineYear,
		CensusMonth:      c.Projection.CensusMonth,
		StartYear:        c.Projection.StartYear,
		Duration:         c.Projection.Duration,
		Country:          c.Projection.Country,
		OpsGrowthRatePct: c.Ops.GrowthRatePct,
		OpsBaselineFTE:   c.Ops.BaselineFTE,
		WeeklyFTEHours:   c.Ops.WeeklyFTEHours,
		UtilisationRate:  c.Ops.UtilisationRate,
	}
}
