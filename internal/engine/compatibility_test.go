package engine

import (
	"strings"
	"testing"
)

func TestAnalyzeCompatibilityWordCountTiers(t *testing.T) {
	tests := []struct {
		name    string
		words   int
		score   int
		issue   bool
		warning bool
	}{
		{"too short", 100, 0, true, false},
		{"brief", 300, 2, false, true},
		{"optimal", 600, 5, false, false},
		{"long", 1000, 3, false, true},
		{"too long", 1500, 0, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// "zz" carries no headers, dates, or contact info
			text := strings.TrimSpace(strings.Repeat("zz ", tt.words))
			result := analyzeCompatibility(text, text)

			if result.WordCount != tt.words {
				t.Fatalf("wordCount = %d, want %d", result.WordCount, tt.words)
			}
			// +3 special chars, +3 consistent dates on every fixture
			if want := tt.score + 6; result.Score != want {
				t.Errorf("score = %d, want %d", result.Score, want)
			}

			hasLengthIssue := len(result.Issues) > 0
			if hasLengthIssue != tt.issue {
				t.Errorf("issues = %v, issue wanted: %v", result.Issues, tt.issue)
			}
			hasLengthWarning := containsSubstring(result.Warnings, "Resume")
			if hasLengthWarning != tt.warning {
				t.Errorf("warnings = %v, length warning wanted: %v", result.Warnings, tt.warning)
			}
		})
	}
}

func TestAnalyzeCompatibilityContactAndHeaders(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("zz ", 450)) +
		" experience education skills summary" +
		" a.b@example.com (415) 555-0134"
	result := analyzeCompatibility(text, strings.ToLower(text))

	// 5 (length) + 3 (chars) + 3 (dates) + 4 (headers) + 2 (email) + 1
	// (phone) exceeds the category maximum
	if result.Score != result.MaxScore {
		t.Errorf("score = %d, want capped at %d", result.Score, result.MaxScore)
	}
	if len(result.Issues) != 0 {
		t.Errorf("unexpected issues: %v", result.Issues)
	}
}

func TestAnalyzeCompatibilityInconsistentDates(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("zz ", 500)) +
		" 2019 2020 2021 01/23 02/23 03/23"
	result := analyzeCompatibility(text, text)

	if !containsSubstring(result.Issues, "consistent date formatting") {
		t.Errorf("issues = %v, want date-consistency issue", result.Issues)
	}
}

func TestAnalyzeCompatibilitySpecialChars(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("zz ", 600)) +
		" " + strings.Repeat("★", 12)
	result := analyzeCompatibility(text, text)

	if !containsSubstring(result.Warnings, "special characters") {
		t.Errorf("warnings = %v, want special-character warning", result.Warnings)
	}
	// optimal length +5, consistent dates +3, headers missed
	if result.Score != 8 {
		t.Errorf("score = %d, want 8", result.Score)
	}
}

func TestDateFormatsConsistent(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"no dates", "nothing dated here", true},
		{"single style", "2019 2020 2021 2022", true},
		{"dominant style", "2019 2020 2021 2022 2023 2024 2025 01/23", true},
		{"split styles", "2019 2020 01/23 02/23", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dateFormatsConsistent(tt.text); got != tt.want {
				t.Errorf("dateFormatsConsistent(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
