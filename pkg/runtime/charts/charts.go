// Package charts renders projection outputs as PNG charts.
package charts

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/models/domain"
)

var scenarioColors = map[string]color.RGBA{
	"baseline":    {R: 70, G: 130, B: 180, A: 255},
	"optimistic":  {R: 34, G: 139, B: 34, A: 255},
	"pessimistic": {R: 220, G: 20, B: 60, A: 255},
}

func scenarioColor(name string) color.RGBA {
	if c, ok := scenarioColors[name]; ok {
		return c
	}
	return color.RGBA{R: 105, G: 105, B: 105, A: 255}
}

// SupplyCharts renders one line chart per profession, with a line per
// scenario, and returns the paths written.
func SupplyCharts(dir string, supply domain.SupplyProjections) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create chart directory %s: %w", dir, err)
	}

	var written []string
	for _, profession := range supply.Professions() {
		path := filepath.Join(dir, fileName(profession)+"_supply.png")
		title := fmt.Sprintf("%s supply projection", profession)
		if err := renderScenarioLines(path, title, "Registrants", supply[profession]); err != nil {
			return nil, err
		}
		written = append(written, path)
	}
	return written, nil
}

// OpsChart renders the operations demand projection.
func OpsChart(dir string, ops domain.OpsProjections) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create chart directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, "ops_demand.png")
	if err := renderScenarioLines(path, "Operations demand projection", "FTE", ops); err != nil {
		return "", err
	}
	return path, nil
}

// GapCharts renders one chart per scenario: supply and ops lines, gap bars,
// and a dashed zero line.
func GapCharts(dir string, records []domain.GapRecord) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create chart directory %s: %w", dir, err)
	}

	byScenario := make(map[string][]domain.GapRecord)
	for _, record := range records {
		byScenario[record.Scenario] = append(byScenario[record.Scenario], record)
	}

	scenarios := make([]string, 0, len(byScenario))
	for scenario := range byScenario {
		scenarios = append(scenarios, scenario)
	}
	sort.Strings(scenarios)

	var written []string
	for _, scenario := range scenarios {
		path := filepath.Join(dir, fileName(scenario)+"_gap.png")
		if err := renderGapChart(path, scenario, byScenario[scenario]); err != nil {
			return nil, err
		}
		written = append(written, path)
	}
	return written, nil
}

func renderScenarioLines(path, title, yLabel string, series map[string][]domain.ProjectionPoint) error {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Financial year"
	p.Y.Label.Text = yLabel

	scenarios := make([]string, 0, len(series))
	for scenario := range series {
		scenarios = append(scenarios, scenario)
	}
	sort.Strings(scenarios)

	var labels []string
	for _, scenario := range scenarios {
		points := series[scenario]
		if labels == nil {
			for _, point := range points {
				labels = append(labels, domain.FinancialYear(point.Year))
			}
		}

		xys := make(plotter.XYs, len(points))
		for i, point := range points {
			xys[i].X = float64(i)
			xys[i].Y = point.Total
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("failed to build %s line: %w", scenario, err)
		}
		line.Color = scenarioColor(scenario)
		line.Width = vg.Points(2)

		p.Add(line)
		p.Legend.Add(scenario, line)
	}

	p.Add(plotter.NewGrid())
	p.NominalX(labels...)
	p.Legend.Top = true

	if err := p.Save(12*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func renderGapChart(path, scenario string, records []domain.GapRecord) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Workforce gap (%s scenario)", scenario)
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Financial year"
	p.Y.Label.Text = "FTE"

	labels := make([]string, 0, len(records))
	supplyXYs := make(plotter.XYs, len(records))
	opsXYs := make(plotter.XYs, len(records))
	gapValues := make(plotter.Values, len(records))

	for i, record := range records {
		labels = append(labels, record.FinancialYear)
		supplyXYs[i].X = float64(i)
		supplyXYs[i].Y = float64(record.Supply)
		opsXYs[i].X = float64(i)
		opsXYs[i].Y = float64(record.Ops)
		gapValues[i] = float64(record.Gap)
	}

	supplyLine, err := plotter.NewLine(supplyXYs)
	if err != nil {
		return fmt.Errorf("failed to build supply line: %w", err)
	}
	supplyLine.Color = scenarioColor("baseline")
	supplyLine.Width = vg.Points(2)

	opsLine, err := plotter.NewLine(opsXYs)
	if err != nil {
		return fmt.Errorf("failed to build ops line: %w", err)
	}
	opsLine.Color = scenarioColor("pessimistic")
	opsLine.Width = vg.Points(2)

	bars, err := plotter.NewBarChart(gapValues, vg.Points(18))
	if err != nil {
		return fmt.Errorf("failed to build gap bars: %w", err)
	}
	bars.Color = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	bars.LineStyle.Width = vg.Length(0)

	zero := plotter.NewFunction(func(float64) float64 { return 0 })
	zero.Color = color.RGBA{A: 255}
	zero.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}

	p.Add(bars)
	p.Add(supplyLine)
	p.Add(opsLine)
	p.Add(zero)
	p.Add(plotter.NewGrid())

	p.Legend.Add("supply", supplyLine)
	p.Legend.Add("ops demand", opsLine)
	p.Legend.Add("gap", bars)
	p.Legend.Top = true

	p.NominalX(labels...)

	if err := p.Save(12*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func fileName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}
