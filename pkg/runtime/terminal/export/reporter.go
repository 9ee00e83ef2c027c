package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/chaeyoonyunakim/community-pharmacy-workforce-with-open-data/pkg/models/domain"
)

type TableConfig struct {
	ColumnWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		ColumnWidth: 18,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(report *domain.Report) error {
	funcMap := template.FuncMap{
		"formatRow": func(cells []string) string {
			padded := make([]string, 0, len(cells))
			for _, cell := range cells {
				padded = append(padded, fmt.Sprintf("%-*s", c.config.ColumnWidth, cell))
			}
			return "| " + strings.Join(padded, " | ") + " |"
		},
		"separator": func(cells []string) string {
			parts := make([]string, 0, len(cells))
			for range cells {
				parts = append(parts, strings.Repeat("-", c.config.ColumnWidth+2))
			}
			return "+" + strings.Join(parts, "+") + "+"
		},
	}

	tmpl := `
{{.Title}} ({{.Horizon.StartYear}} to {{.Horizon.EndYear}}, {{.Horizon.Duration}} projected years)

Run: {{.RunID}}
Generated: {{.GeneratedAt.Format "2006-01-02 15:04:05"}}

{{range .Sections}}
=== {{.Title}} ===
{{separator .Columns}}
{{formatRow .Columns}}
{{separator .Columns}}
{{range .Rows}}{{formatRow .}}
{{end}}{{separator .Columns}}
{{range .Notes}}
note: {{.}}{{end}}
{{end}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
