package engine

import (
	"atsgauge/internal/patterns"
	"atsgauge/internal/types"
)

// analyzeSections checks the text against every section rule. A section
// counts as present when any of its keywords appears anywhere in the
// lowercased text; only missing required sections are reported.
func analyzeSections(lower string) types.SectionResult {
	result := types.SectionResult{
		MaxScore:        patterns.SectionMaxScore,
		Sections:        make([]types.SectionStatus, 0, len(patterns.SectionRules)),
		MissingSections: []string{},
	}

	for _, rule := range patterns.SectionRules {
		found := containsAny(lower, rule.Keywords)
		result.Sections = append(result.Sections, types.SectionStatus{
			Name:        rule.Name,
			Found:       found,
			Required:    rule.Required,
			Weight:      rule.Weight,
			Description: rule.Description,
		})
		if found {
			result.Score += rule.Weight
		} else if rule.Required {
			result.MissingSections = append(result.MissingSections, rule.Name)
		}
	}

	return result
}
