package engine

import (
	"strings"

	"atsgauge/internal/patterns"
	"atsgauge/internal/types"
)

// analyzeKeywords matches the technical taxonomy, soft skills, industry
// keywords, and trending technologies against the lowercased text.
// Matching is plain substring containment, which keeps the check cheap
// and predictable at the cost of the occasional generous hit ("go" in
// "google"). The technical portion is worth at most 15 points; soft,
// industry, and trending bonuses can push past the category maximum, so
// the total is clamped.
func analyzeKeywords(lower string) types.KeywordResult {
	result := types.KeywordResult{
		MaxScore:              patterns.KeywordMaxScore,
		FoundSkills:           make(map[string][]string, len(patterns.TechnicalCategories)),
		FoundSoftSkills:       []string{},
		FoundIndustryKeywords: []string{},
		Recommendations:       []string{},
	}

	for _, cat := range patterns.TechnicalCategories {
		found := []string{}
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, kw) {
				found = append(found, kw)
			}
		}
		result.FoundSkills[cat.Name] = found
		result.TotalSkillsFound += len(found)
	}

	for _, skill := range patterns.SoftSkills {
		if strings.Contains(lower, skill) {
			result.FoundSoftSkills = append(result.FoundSoftSkills, skill)
		}
	}

	for _, kw := range patterns.IndustryKeywords {
		if strings.Contains(lower, kw) {
			result.FoundIndustryKeywords = append(result.FoundIndustryKeywords, kw)
		}
	}

	score := result.TotalSkillsFound
	if score > 15 {
		score = 15
	}
	if len(result.FoundSoftSkills) >= 3 {
		score += 3
	}
	if len(result.FoundIndustryKeywords) >= 1 {
		score += 2
	}

	if result.TotalSkillsFound < 8 {
		result.Recommendations = append(result.Recommendations,
			"Add more relevant technical skills to improve ATS keyword matching")
	}
	if len(result.FoundSoftSkills) < 3 {
		result.Recommendations = append(result.Recommendations,
			`Include soft skills like "teamwork", "leadership", and "communication"`)
	}

	for _, tech := range patterns.TrendingTechnologies {
		if strings.Contains(lower, tech) {
			result.TrendingCount++
		}
	}
	if result.TrendingCount >= 3 {
		score += 2
	} else {
		result.Recommendations = append(result.Recommendations,
			"Consider adding trending technologies like React, Node.js, Python, or AWS")
	}

	if score > result.MaxScore {
		score = result.MaxScore
	}
	result.Score = score

	return result
}
