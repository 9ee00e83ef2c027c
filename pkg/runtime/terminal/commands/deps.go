// Package commands implements the workforce CLI subcommands.
package commands

import (
	"github.com/rs/zerolog"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/runtime/terminal/export"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/services/config"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/services/workforce"
)

// Deps carries the shared CLI plumbing into each command.
type Deps struct {
	Logger   zerolog.Logger
	Reporter *export.Reporter
	// ConfigPath points at the root --config flag value, which is only
	// known once flags are parsed.
	ConfigPath *string
}

func (d Deps) load() (*config.Config, error) {
	return config.LoadConfig(*d.ConfigPath)
}

func (d Deps) controller(liveOps bool) (workforce.Controller, *config.Config, error) {
	cfg, err := d.load()
	if err != nil {
		return nil, nil, err
	}
	ctrl, err := workforce.BuildController(d.Logger, cfg, liveOps)
	if err != nil {
		return nil, nil, err
	}
	return ctrl, cfg, nil
}
