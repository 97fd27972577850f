package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"sort"

	"github.com/ksandoval/mood-mirror/internal/engine"
)

//go:embed templates/*.html
var templatesFS embed.FS

var emailTmpl = template.Must(template.ParseFS(templatesFS, "templates/report.html"))

// BreakdownRow is one mood's share in the email distribution list.
type BreakdownRow struct {
	Label      string
	Count      int
	Percentage float64
	Dominant   bool
}

// EmailData feeds the report email template.
type EmailData struct {
	UserName        string
	Dominant        string
	DominantColor   string
	DominantPercent float64
	Breakdown       []BreakdownRow
	Suggestions     []string
	Narrative       string
}

// RenderEmailBody renders the HTML report email for a result. The optional
// narrative paragraph is included when non-empty.
func RenderEmailBody(res *engine.Result, narrative string) (string, error) {
	dist := res.Distribution

	rows := make([]BreakdownRow, 0, len(dist.Labels))
	for _, label := range dist.Labels {
		rows = append(rows, BreakdownRow{
			Label:      label,
			Count:      dist.Counts[label],
			Percentage: dist.Percentages[label],
			Dominant:   label == dist.Dominant,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Percentage > rows[j].Percentage
	})

	data := EmailData{
		UserName:        res.UserName,
		Dominant:        dist.Dominant,
		DominantColor:   "#" + MoodColor(dist.Dominant),
		DominantPercent: dist.Percentages[dist.Dominant],
		Breakdown:       rows,
		Suggestions:     res.Suggestions,
		Narrative:       narrative,
	}

	var buf bytes.Buffer
	if err := emailTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering report email: %w", err)
	}
	return buf.String(), nil
}
