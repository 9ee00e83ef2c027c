package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/models/domain"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/runtime/charts"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/runtime/terminal/export"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/services/baseline"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/services/forecast"
)

type ProjectCmd struct {
	source      string
	professions []string
	csvPath     string
	chartsDir   string
	deps        Deps
}

func NewProjectCmd(deps Deps) *cobra.Command {
	pc := &ProjectCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project registrant supply under the three scenarios",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.source, "source", baseline.SourceSurvey, "Baseline source (survey or registry)")
	cmd.Flags().StringSliceVar(&pc.professions, "professions", nil, "Limit output to these professions")
	cmd.Flags().StringVar(&pc.csvPath, "csv", "", "Write the projection table to this CSV file")
	cmd.Flags().StringVar(&pc.chartsDir, "charts", "", "Render PNG charts into this directory")

	return cmd
}

func (pc *ProjectCmd) run(cmd *cobra.Command, args []string) error {
	ctx := pc.deps.Logger.WithContext(cmd.Context())

	ctrl, cfg, err := pc.deps.controller(false)
	if err != nil {
		return err
	}

	supply, err := ctrl.Supply(ctx, pc.source)
	if err != nil {
		if errors.Is(err, baseline.ErrUnknownSource) {
			return fmt.Errorf("%w (registered sources: %s)", err, strings.Join(ctrl.Sources(), ", "))
		}
		return fmt.Errorf("failed to project supply: %w", err)
	}

	if len(pc.professions) > 0 {
		supply = filterProfessions(supply, pc.professions)
		if len(supply) == 0 {
			return fmt.Errorf("no projections for professions %v", pc.professions)
		}
	}

	runID := uuid.New().String()
	rows := forecast.FormatSupply(supply)

	if pc.csvPath != "" {
		if err := export.NewCSVWriter(runID).WriteSupply(pc.csvPath, rows); err != nil {
			return err
		}
	}
	if pc.chartsDir != "" {
		if _, err := charts.SupplyCharts(pc.chartsDir, supply); err != nil {
			return err
		}
	}

	return pc.deps.Reporter.Handle(supplyReport(runID, cfg.Settings(), pc.source, rows))
}

func filterProfessions(supply domain.SupplyProjections, keep []string) domain.SupplyProjections {
	want := make(map[string]bool, len(keep))
	for _, profession := range keep {
		want[strings.ToLower(strings.TrimSpace(profession))] = true
	}

	filtered := make(domain.SupplyProjections)
	for profession, series := range supply {
		if want[strings.ToLower(profession)] {
			filtered[profession] = series
		}
	}
	return filtered
}
