package engine

import (
	"errors"
	"testing"
)

func TestNewEncodingTable(t *testing.T) {
	tests := []struct {
		name       string
		observed   []string
		wantSize   int
		wantValues []string
	}{
		{
			name:       "distinct values sorted",
			observed:   []string{"Low", "High", "Medium"},
			wantSize:   3,
			wantValues: []string{"High", "Low", "Medium"},
		},
		{
			name:       "duplicates collapse",
			observed:   []string{"Low", "Low", "High", "Low"},
			wantSize:   2,
			wantValues: []string{"High", "Low"},
		},
		{
			name:       "single value",
			observed:   []string{"Medium", "Medium"},
			wantSize:   1,
			wantValues: []string{"Medium"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewEncodingTable(tt.observed)

			if table.Size() != tt.wantSize {
				t.Errorf("Size() = %d, want %d", table.Size(), tt.wantSize)
			}
			for code, want := range tt.wantValues {
				got, ok := table.Value(code)
				if !ok || got != want {
					t.Errorf("Value(%d) = %q, %v, want %q", code, got, ok, want)
				}
			}
		})
	}
}

func TestEncodingTableBijection(t *testing.T) {
	observed := []string{"Poor", "Good", "Fair", "Good", "Excellent", "Poor"}
	table := NewEncodingTable(observed)

	// Every distinct value maps to a unique code in 0..k-1 and back.
	seen := make(map[int]bool)
	for _, v := range []string{"Poor", "Good", "Fair", "Excellent"} {
		code, ok := table.Code(v)
		if !ok {
			t.Fatalf("Code(%q) not found", v)
		}
		if code < 0 || code >= table.Size() {
			t.Errorf("Code(%q) = %d, outside 0..%d", v, code, table.Size()-1)
		}
		if seen[code] {
			t.Errorf("code %d assigned twice", code)
		}
		seen[code] = true

		back, ok := table.Value(code)
		if !ok || back != v {
			t.Errorf("Value(Code(%q)) = %q, want %q", v, back, v)
		}
	}

	if table.Size() != 4 {
		t.Errorf("Size() = %d, want 4", table.Size())
	}
}

func TestEncodingTableUnknowns(t *testing.T) {
	table := NewEncodingTable([]string{"Low", "High"})

	if _, ok := table.Code("Medium"); ok {
		t.Error("Code for unobserved value should not exist")
	}
	if _, ok := table.Value(-1); ok {
		t.Error("Value(-1) should be out of range")
	}
	if _, ok := table.Value(2); ok {
		t.Error("Value(Size()) should be out of range")
	}
}

func surveyLog(mood, sleep, water, exercise, pain, energy string) MoodLog {
	return MoodLog{
		Mood:     mood,
		Sleep:    sleep,
		Water:    water,
		Exercise: exercise,
		Pain:     pain,
		Energy:   energy,
	}
}

func TestEncodeSurvey(t *testing.T) {
	logs := []MoodLog{
		surveyLog("Sad", "Low", "Low", "None", "High", "Low"),
		surveyLog("Happy", "High", "High", "Daily", "Low", "High"),
	}

	enc, err := EncodeSurvey(logs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(enc.Features) != 2 {
		t.Fatalf("got %d rows, want 2", len(enc.Features))
	}
	if len(enc.Features[0]) != 5 {
		t.Fatalf("got %d columns, want 5", len(enc.Features[0]))
	}

	// Sorted order: "High" < "Low" for sleep, so row 0 (Low) encodes as 1.
	if enc.Features[0][0] != 1 || enc.Features[1][0] != 0 {
		t.Errorf("sleep codes = %v/%v, want 1/0", enc.Features[0][0], enc.Features[1][0])
	}

	// "Happy" < "Sad", so the sad row carries the higher mood code.
	if enc.Moods[0] != 1 || enc.Moods[1] != 0 {
		t.Errorf("mood codes = %v, want [1 0]", enc.Moods)
	}

	for _, name := range []string{"sleep", "water", "exercise", "pain", "energy", "mood"} {
		if enc.Tables[name] == nil {
			t.Errorf("missing table for %q", name)
		}
	}
}

func TestEncodeSurveyInsufficientData(t *testing.T) {
	tests := []struct {
		name string
		logs []MoodLog
	}{
		{
			name: "no survey logs",
			logs: nil,
		},
		{
			name: "record missing exercise",
			logs: []MoodLog{
				surveyLog("Happy", "High", "High", "Daily", "Low", "High"),
				{Mood: "Sad", Sleep: "Low", Water: "Low", Pain: "High", Energy: "Low"},
			},
		},
		{
			name: "camera-shaped record mixed in",
			logs: []MoodLog{
				surveyLog("Happy", "High", "High", "Daily", "Low", "High"),
				{Mood: "Calm"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := EncodeSurvey(tt.logs)
			if !errors.Is(err, ErrInsufficientData) {
				t.Fatalf("error = %v, want ErrInsufficientData", err)
			}
			if enc != nil {
				t.Error("expected nil result on insufficient data")
			}
		})
	}
}

func TestEncodeSurveyIndependentTables(t *testing.T) {
	// Vocabularies are per feature: two features sharing the value "Low" must
	// still get independent tables sized to their own distinct values.
	logs := []MoodLog{
		surveyLog("Happy", "Low", "Low", "None", "Low", "Low"),
		surveyLog("Sad", "Medium", "Low", "Daily", "High", "Low"),
		surveyLog("Calm", "High", "Low", "Weekly", "Low", "Low"),
	}

	enc, err := EncodeSurvey(logs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := enc.Tables["sleep"].Size(); got != 3 {
		t.Errorf("sleep table size = %d, want 3", got)
	}
	if got := enc.Tables["water"].Size(); got != 1 {
		t.Errorf("water table size = %d, want 1", got)
	}
	if got := enc.Tables["exercise"].Size(); got != 3 {
		t.Errorf("exercise table size = %d, want 3", got)
	}
	if got := enc.Tables["pain"].Size(); got != 2 {
		t.Errorf("pain table size = %d, want 2", got)
	}
	if got := enc.Tables["mood"].Size(); got != 3 {
		t.Errorf("mood table size = %d, want 3", got)
	}
}
