package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/runtime/terminal/export"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/services/forecast"
)

type OpsCmd struct {
	live    bool
	csvPath string
	deps    Deps
}

func NewOpsCmd(deps Deps) *cobra.Command {
	oc := &OpsCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "ops",
		Short: "Project operations demand from the configured or live baseline",
		RunE:  oc.run,
	}

	cmd.Flags().BoolVar(&oc.live, "live", false, "Derive the baseline from the NHSBSA pharmacy list")
	cmd.Flags().StringVar(&oc.csvPath, "csv", "", "Write the projection table to this CSV file")

	return cmd
}

func (oc *OpsCmd) run(cmd *cobra.Command, args []string) error {
	ctx := oc.deps.Logger.WithContext(cmd.Context())

	ctrl, cfg, err := oc.deps.controller(oc.live)
	if err != nil {
		return err
	}

	ops, err := ctrl.Ops(ctx)
	if err != nil {
		return fmt.Errorf("failed to project operations demand: %w", err)
	}

	runID := uuid.New().String()
	rows := forecast.FormatOps(ops)

	if oc.csvPath != "" {
		if err := export.NewCSVWriter(runID).WriteOps(oc.csvPath, rows); err != nil {
			return err
		}
	}

	return oc.deps.Reporter.Handle(opsReport(runID, cfg.Settings(), rows))
}
