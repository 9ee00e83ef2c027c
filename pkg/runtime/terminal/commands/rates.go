package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type RatesCmd struct {
	deps Deps
}

func NewRatesCmd(deps Deps) *cobra.Command {
	rc := &RatesCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Derive annual growth rates from registrant extracts",
		RunE:  rc.run,
	}

	return cmd
}

func (rc *RatesCmd) run(cmd *cobra.Command, args []string) error {
	ctx := rc.deps.Logger.WithContext(cmd.Context())

	ctrl, cfg, err := rc.deps.controller(false)
	if err != nil {
		return err
	}

	result, err := ctrl.Rates(ctx)
	if err != nil {
		return fmt.Errorf("failed to derive growth rates: %w", err)
	}

	return rc.deps.Reporter.Handle(ratesReport(uuid.New().String(), cfg.Settings(), result))
}
