package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/services/ops"
	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/store/nhsbsa"
)

type PharmaciesCmd struct {
	resourceID string
	deps       Deps
}

func NewPharmaciesCmd(deps Deps) *cobra.Command {
	pc := &PharmaciesCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "pharmacies",
		Short: "Summarize the open-data pharmacy list and its opening hours",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.resourceID, "resource", "", "Pharmacy list resource ID (defaults to the configured one)")

	return cmd
}

func (pc *PharmaciesCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(pc.deps.Logger.WithContext(cmd.Context()), 2*time.Minute)
	defer cancel()

	cfg, err := pc.deps.load()
	if err != nil {
		return err
	}

	resource := pc.resourceID
	if resource == "" {
		resource = cfg.OpenData.ResourceID
	}
	if resource == "" {
		return fmt.Errorf("no resource ID: pass --resource or set open_data.resource_id")
	}

	client := nhsbsa.NewClient(pc.deps.Logger, nhsbsa.Config{
		BaseURL:  cfg.OpenData.BaseURL,
		PageSize: cfg.OpenData.PageSize,
		Retries:  cfg.OpenData.Retries,
	})

	count, err := client.Count(ctx, resource)
	if err != nil {
		return fmt.Errorf("failed to count pharmacy records: %w", err)
	}

	pharmacies, err := client.Pharmacies(ctx, resource)
	if err != nil {
		return fmt.Errorf("failed to fetch pharmacy records: %w", err)
	}

	summary := ops.Summarize(pharmacies)
	calc := ops.NewFTECalculator(cfg.Ops.WeeklyFTEHours, cfg.Ops.UtilisationRate)
	fte := calc.BaselineFTE(summary.AverageWeeklyHours, summary.Pharmacies)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Pharmacy list %s", resource)
	if year, err := nhsbsa.ResourceYear(resource); err == nil {
		fmt.Fprintf(out, " (%d)", year)
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Records reported: %d\n", count)
	fmt.Fprintf(out, "Records fetched: %d\n", summary.Pharmacies)
	fmt.Fprintf(out, "Average weekly opening hours: %.1f\n", summary.AverageWeeklyHours)
	fmt.Fprintf(out, "Derived ops baseline: %.1f FTE (%.1fh week, utilisation %.2f)\n",
		fte, cfg.Ops.WeeklyFTEHours, cfg.Ops.UtilisationRate)

	return nil
}
