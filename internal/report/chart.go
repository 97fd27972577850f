// Package report turns engine results into delivery artifacts: the mood
// chart, the HTML email body, SMTP delivery, and the optional AI narrative.
package report

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ksandoval/mood-mirror/internal/engine"
)

// moodColors maps well-known mood labels to their report colors.
var moodColors = map[string]string{
	"Happy":   "4CAF50", // green
	"Calm":    "2196F3", // blue
	"Anxious": "FF9800", // orange
	"Neutral": "9E9E9E", // grey
	"Sad":     "F44336", // red
}

// defaultMoodColor is used for moods outside the known vocabulary.
const defaultMoodColor = "607D8B"

// barColor is the fill for non-dominant bars.
const barColor = "80CBC4"

// MoodColor returns the hex color (without '#') for a mood label.
func MoodColor(mood string) string {
	if c, ok := moodColors[mood]; ok {
		return c
	}
	return defaultMoodColor
}

// RenderChart draws a bar chart of mood counts with percentage labels. The
// dominant mood's bar is filled with its mood color; the rest share a muted
// fill. Bars follow first-seen label order so repeated requests render
// identically.
func RenderChart(dist *engine.Distribution, userName string) ([]byte, error) {
	bars := make([]chart.Value, 0, len(dist.Labels))
	for _, label := range dist.Labels {
		fill := barColor
		if label == dist.Dominant {
			fill = MoodColor(label)
		}
		bars = append(bars, chart.Value{
			Value: float64(dist.Counts[label]),
			Label: fmt.Sprintf("%s (%.1f%%)", label, dist.Percentages[label]),
			Style: chart.Style{
				FillColor:   drawing.ColorFromHex(fill),
				StrokeColor: drawing.ColorBlack,
				StrokeWidth: 1,
			},
		})
	}

	graph := chart.BarChart{
		Title:    fmt.Sprintf("Mood Trend for %s", userName),
		Width:    900,
		Height:   500,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 8},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("rendering mood chart: %w", err)
	}
	return buf.Bytes(), nil
}
