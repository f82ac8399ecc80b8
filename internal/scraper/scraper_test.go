package scraper

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestParseCFP(t *testing.T) {
	data, err := os.ReadFile("../../testdata/fixtures/sample_cfp.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	s := New(0)
	cfp, err := s.parseCFP(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("parseCFP failed: %v", err)
	}

	if cfp == "" {
		t.Fatal("expected cfp text to be extracted, got empty string")
	}

	for _, want := range []string{
		"Call For Papers",
		"Jane Doe (Stanford University)",
		"John Smith, MIT",
	} {
		if !strings.Contains(cfp, want) {
			t.Errorf("expected cfp text to contain %q, got %q", want, cfp)
		}
	}

	// Preprocessing guarantees: no newlines, tabs, doubled spaces, or
	// non-ASCII characters survive extraction.
	if strings.ContainsAny(cfp, "\n\t") {
		t.Error("cfp text should not contain newlines or tabs")
	}
	if strings.Contains(cfp, "  ") {
		t.Error("cfp text should not contain consecutive spaces")
	}
	for _, r := range cfp {
		if r > 127 {
			t.Errorf("cfp text should be ASCII only, found %q", r)
			break
		}
	}
	if !strings.Contains(cfp, "Caf sessions") {
		t.Errorf("expected accented characters to be dropped, got %q", cfp)
	}
}

func TestParseCFPMissingSection(t *testing.T) {
	html := `<html><body><div class="contsec">Not a CFP page</div></body></html>`

	s := New(0)
	_, err := s.parseCFP(strings.NewReader(html))
	if !errors.Is(err, ErrNoCFP) {
		t.Errorf("expected ErrNoCFP, got %v", err)
	}
}

func TestPreprocess(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "newlines and tabs become spaces",
			input:    "Call\nFor\tPapers",
			expected: "Call For Papers",
		},
		{
			name:     "runs of whitespace collapse",
			input:    "  Jane   Doe \n\n MIT  ",
			expected: "Jane Doe MIT",
		},
		{
			name:     "non-ASCII characters are dropped",
			input:    "Café – 2026",
			expected: "Caf 2026",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := preprocess(tt.input); got != tt.expected {
				t.Errorf("preprocess(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
