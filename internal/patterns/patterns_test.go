package patterns

import "testing"

func TestSectionWeightsSumToMax(t *testing.T) {
	total := 0
	required := 0
	for _, rule := range SectionRules {
		if rule.Weight <= 0 {
			t.Errorf("rule %q has non-positive weight %d", rule.Name, rule.Weight)
		}
		if len(rule.Keywords) == 0 {
			t.Errorf("rule %q has no keywords", rule.Name)
		}
		if rule.Description == "" {
			t.Errorf("rule %q has no description", rule.Name)
		}
		total += rule.Weight
		if rule.Required {
			required += rule.Weight
		}
	}
	if total != SectionMaxScore {
		t.Errorf("section weights sum to %d, want %d", total, SectionMaxScore)
	}
	if required != 60 {
		t.Errorf("required section weights sum to %d, want 60", required)
	}
}

func TestTaxonomyShape(t *testing.T) {
	if len(TechnicalCategories) != 7 {
		t.Errorf("got %d technical categories, want 7", len(TechnicalCategories))
	}
	seen := make(map[string]bool)
	for _, cat := range TechnicalCategories {
		if seen[cat.Name] {
			t.Errorf("duplicate category %q", cat.Name)
		}
		seen[cat.Name] = true
		if len(cat.Keywords) == 0 {
			t.Errorf("category %q has no keywords", cat.Name)
		}
	}
	if len(StandardHeaders) != 9 {
		t.Errorf("got %d standard headers, want 9", len(StandardHeaders))
	}
	if len(ActionVerbs) != 15 {
		t.Errorf("got %d action verbs, want 15", len(ActionVerbs))
	}
}

func TestDatePattern(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		count int
	}{
		{"bare years", "2019 to 2023", 2},
		{"month year", "Jan 2020 - Dec 2022", 2},
		{"numeric", "01/2023 and 6/21", 2},
		{"no dates", "no chronology here", 0},
		{"long number", "cgpa 3.85 id 123456", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := len(DatePattern.FindAllString(tt.text, -1))
			if got != tt.count {
				t.Errorf("DatePattern found %d matches in %q, want %d", got, tt.text, tt.count)
			}
		})
	}
}

func TestQuantifiedPattern(t *testing.T) {
	tests := []struct {
		text  string
		match bool
	}{
		{"grew revenue 20k", true},
		{"served 1.5million requests", true},
		{"cut latency by 30% overall", false}, // symbol unit with no trailing word char
		{"five team members", false},
	}
	for _, tt := range tests {
		got := QuantifiedPattern.MatchString(tt.text)
		if got != tt.match {
			t.Errorf("QuantifiedPattern.MatchString(%q) = %v, want %v", tt.text, got, tt.match)
		}
	}
}

func TestContactPatterns(t *testing.T) {
	if !EmailPattern.MatchString("Reach me at dev.hire+1@mail.example.org today") {
		t.Error("email not detected")
	}
	if EmailPattern.MatchString("not an address") {
		t.Error("false positive email")
	}
	if !PhonePattern.MatchString("call 0301-1234567") {
		t.Error("local phone not detected")
	}
	if !PhonePattern.MatchString("(415) 555-0134") {
		t.Error("parenthesized phone not detected")
	}
}
