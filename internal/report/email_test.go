package report

import (
	"errors"
	"strings"
	"testing"
)

func TestRenderEmailBody(t *testing.T) {
	res := testResult(t)

	body, err := RenderEmailBody(res, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Weekly Mood Report for Marge",
		"Happy",
		"#4CAF50",
		"Sad",
		res.Suggestions[0],
	} {
		if !strings.Contains(body, want) {
			t.Errorf("email body missing %q", want)
		}
	}

	if strings.Contains(body, "Weekly Narrative") {
		t.Error("narrative section rendered without a narrative")
	}
}

func TestRenderEmailBodyWithNarrative(t *testing.T) {
	res := testResult(t)

	body, err := RenderEmailBody(res, "Marge had a mostly upbeat week.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(body, "Weekly Narrative") {
		t.Error("narrative section missing")
	}
	if !strings.Contains(body, "Marge had a mostly upbeat week.") {
		t.Error("narrative text missing")
	}
}

func TestRenderEmailBodyEscapesHTML(t *testing.T) {
	res := testResult(t)
	res.UserName = "<script>alert(1)</script>"

	body, err := RenderEmailBody(res, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(body, "<script>") {
		t.Error("user name not escaped")
	}
}

func TestNewMailerNotConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  MailerConfig
	}{
		{name: "empty"},
		{
			name: "missing password",
			cfg:  MailerConfig{Host: "smtp.example.com", From: "a@b.c", Username: "a"},
		},
		{
			name: "missing host",
			cfg:  MailerConfig{From: "a@b.c", Username: "a", Password: "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewMailer(tt.cfg); !errors.Is(err, ErrMailerNotConfigured) {
				t.Errorf("error = %v, want ErrMailerNotConfigured", err)
			}
		})
	}
}
