package engine

import (
	"fmt"
	"sort"
)

// EncodingTable maps the distinct string values of one categorical feature to
// dense integer codes 0..k-1. Tables are built fresh per request from the
// values actually observed; there is no global vocabulary.
type EncodingTable struct {
	codes  map[string]int
	values []string
}

// NewEncodingTable builds a table from the observed values of one feature.
// Codes are assigned in sorted lexicographic order of the distinct values, so
// the same inputs produce the same table across process restarts.
func NewEncodingTable(observed []string) *EncodingTable {
	distinct := make(map[string]struct{}, len(observed))
	for _, v := range observed {
		distinct[v] = struct{}{}
	}

	values := make([]string, 0, len(distinct))
	for v := range distinct {
		values = append(values, v)
	}
	sort.Strings(values)

	codes := make(map[string]int, len(values))
	for i, v := range values {
		codes[v] = i
	}

	return &EncodingTable{codes: codes, values: values}
}

// Code returns the integer code for a value observed at construction time.
func (t *EncodingTable) Code(value string) (int, bool) {
	c, ok := t.codes[value]
	return c, ok
}

// Value returns the original string for a code, or false when the code is out
// of range.
func (t *EncodingTable) Value(code int) (string, bool) {
	if code < 0 || code >= len(t.values) {
		return "", false
	}
	return t.values[code], true
}

// Size returns the number of distinct values in the table.
func (t *EncodingTable) Size() int {
	return len(t.values)
}

// EncodedSurvey holds the integer-coded view of a request's survey logs.
type EncodedSurvey struct {
	// Features is one row per survey log, columns in featureNames order.
	// Mood is intentionally excluded to avoid clustering on the target.
	Features [][]float64

	// Moods holds the encoded mood per row, tracked alongside for labeling.
	Moods []float64

	// Tables maps each feature name (plus "mood") to its encoding table.
	Tables map[string]*EncodingTable
}

// EncodeSurvey builds per-feature encoding tables and the coded feature
// matrix for the survey logs. Returns ErrInsufficientData when no survey log
// is present or any log lacks one of the six features; the caller skips the
// clustering branch in that case.
func EncodeSurvey(logs []MoodLog) (*EncodedSurvey, error) {
	if len(logs) == 0 {
		return nil, fmt.Errorf("no survey logs: %w", ErrInsufficientData)
	}
	for i, l := range logs {
		if !l.IsSurvey() {
			return nil, fmt.Errorf("survey log %d incomplete: %w", i, ErrInsufficientData)
		}
	}

	tables := make(map[string]*EncodingTable, len(featureNames)+1)
	for _, name := range featureNames {
		observed := make([]string, len(logs))
		for i, l := range logs {
			observed[i] = l.feature(name)
		}
		tables[name] = NewEncodingTable(observed)
	}

	moods := make([]string, len(logs))
	for i, l := range logs {
		moods[i] = l.Mood
	}
	tables["mood"] = NewEncodingTable(moods)

	enc := &EncodedSurvey{
		Features: make([][]float64, len(logs)),
		Moods:    make([]float64, len(logs)),
		Tables:   tables,
	}

	for i, l := range logs {
		row := make([]float64, len(featureNames))
		for j, name := range featureNames {
			code, _ := tables[name].Code(l.feature(name))
			row[j] = float64(code)
		}
		enc.Features[i] = row
		moodCode, _ := tables["mood"].Code(l.Mood)
		enc.Moods[i] = float64(moodCode)
	}

	return enc, nil
}
