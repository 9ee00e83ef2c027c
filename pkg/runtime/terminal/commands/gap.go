package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/runtime/charts"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/runtime/terminal/export"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/services/baseline"
)

type GapCmd struct {
	source    string
	csvPath   string
	chartsDir string
	deps      Deps
}

func NewGapCmd(deps Deps) *cobra.Command {
	gc := &GapCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "gap",
		Short: "Compare projected supply against operations demand",
		RunE:  gc.run,
	}

	cmd.Flags().StringVar(&gc.source, "source", baseline.SourceSurvey, "Baseline source (survey or registry)")
	cmd.Flags().StringVar(&gc.csvPath, "csv", "", "Write the gap table to this CSV file")
	cmd.Flags().StringVar(&gc.chartsDir, "charts", "", "Render PNG charts into this directory")

	return cmd
}

func (gc *GapCmd) run(cmd *cobra.Command, args []string) error {
	ctx := gc.deps.Logger.WithContext(cmd.Context())

	ctrl, cfg, err := gc.deps.controller(false)
	if err != nil {
		return err
	}

	result, err := ctrl.Gap(ctx, gc.source)
	if err != nil {
		if errors.Is(err, baseline.ErrUnknownSource) {
			return fmt.Errorf("%w (registered sources: %s)", err, strings.Join(ctrl.Sources(), ", "))
		}
		return fmt.Errorf("failed to analyze workforce gap: %w", err)
	}

	if gc.csvPath != "" {
		if err := export.NewCSVWriter(result.RunID).WriteGap(gc.csvPath, result.Records); err != nil {
			return err
		}
	}
	if gc.chartsDir != "" {
		if _, err := charts.GapCharts(gc.chartsDir, result.Records); err != nil {
			return err
		}
	}

	return gc.deps.Reporter.Handle(gapReport(cfg.Settings(), result))
}
