package engine

import (
	"reflect"
	"testing"

	"atsgauge/internal/patterns"
)

func TestAnalyzeSectionsEmpty(t *testing.T) {
	result := analyzeSections("zzz yyy xxx")

	if result.Score != 0 {
		t.Errorf("score = %d, want 0", result.Score)
	}
	if result.MaxScore != 80 {
		t.Errorf("maxScore = %d, want 80", result.MaxScore)
	}

	wantMissing := []string{"Contact Information", "Work Experience", "Education", "Technical Skills"}
	if !reflect.DeepEqual(result.MissingSections, wantMissing) {
		t.Errorf("missingSections = %v, want %v", result.MissingSections, wantMissing)
	}
}

func TestAnalyzeSectionsKeywordHits(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		score   int
		missing int
	}{
		{
			name:    "all required present",
			text:    "email experience education skills",
			score:   12 + 20 + 12 + 16,
			missing: 0,
		},
		{
			name:    "at sign counts as contact",
			text:    "someone@example.com",
			score:   12,
			missing: 3,
		},
		{
			name:    "optional sections add weight",
			text:    "email experience education skills summary projects certified",
			score:   12 + 8 + 20 + 12 + 16 + 8 + 4,
			missing: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analyzeSections(tt.text)
			if result.Score != tt.score {
				t.Errorf("score = %d, want %d", result.Score, tt.score)
			}
			if len(result.MissingSections) != tt.missing {
				t.Errorf("missing = %v, want %d entries", result.MissingSections, tt.missing)
			}
		})
	}
}

func TestAnalyzeSectionsCarriesRuleMetadata(t *testing.T) {
	result := analyzeSections("someone@example.com experience education skills")

	if len(result.Sections) != len(patterns.SectionRules) {
		t.Fatalf("got %d section statuses, want %d", len(result.Sections), len(patterns.SectionRules))
	}
	for i, status := range result.Sections {
		rule := patterns.SectionRules[i]
		if status.Name != rule.Name {
			t.Errorf("section %d name = %q, want %q", i, status.Name, rule.Name)
		}
		if status.Weight != rule.Weight {
			t.Errorf("section %q weight = %d, want %d", status.Name, status.Weight, rule.Weight)
		}
		if status.Description != rule.Description {
			t.Errorf("section %q description = %q, want %q", status.Name, status.Description, rule.Description)
		}
	}
}

func TestAnalyzeSectionsMonotonic(t *testing.T) {
	base := analyzeSections("email experience education skills")
	more := analyzeSections("email experience education skills projects")

	if more.Score != base.Score+8 {
		t.Errorf("adding a projects keyword changed score %d -> %d, want +8", base.Score, more.Score)
	}
}
