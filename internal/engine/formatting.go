package engine

import (
	"strings"
	"unicode/utf8"

	"atsgauge/internal/patterns"
	"atsgauge/internal/types"
)

// analyzeFormatting runs the structural formatting checks. Each check
// either awards its points or records an issue (hard ATS problem) or a
// warning (quality concern). The listed points exceed the category
// maximum, so the score is capped.
func analyzeFormatting(text string, meta types.ResumeMetadata) types.FormattingResult {
	result := types.FormattingResult{
		MaxScore: patterns.FormattingMaxScore,
		Issues:   []string{},
		Warnings: []string{},
	}

	// Very short text usually means the parser choked on the layout.
	switch length := utf8.RuneCountInString(text); {
	case length < 500:
		result.Issues = append(result.Issues,
			"Resume appears too short - this might indicate parsing issues with complex formatting")
	case length < 1000:
		result.Warnings = append(result.Warnings,
			"Resume content seems brief - consider adding more details about your experience")
		result.Score += 3
	default:
		result.Score += 5
	}

	if len(patterns.BulletPattern.FindAllString(text, -1)) >= 5 {
		result.Score += 5
	} else {
		result.Issues = append(result.Issues,
			"Use bullet points to improve readability and ATS parsing")
	}

	if len(patterns.DatePattern.FindAllString(text, -1)) >= 3 {
		result.Score += 5
	} else {
		result.Issues = append(result.Issues,
			"Include clear dates for your experience and education (Month/Year format recommended)")
	}

	if len(patterns.QuantifiedPattern.FindAllString(text, -1)) >= 2 {
		result.Score += 5
	} else {
		result.Warnings = append(result.Warnings,
			`Add quantifiable achievements (e.g., "Improved performance by 30%", "Led team of 5 developers")`)
	}

	lower := strings.ToLower(text)
	verbCount := 0
	for _, verb := range patterns.ActionVerbs {
		if strings.Contains(lower, verb) {
			verbCount++
		}
	}
	if verbCount >= 5 {
		result.Score += 5
	} else {
		result.Warnings = append(result.Warnings,
			"Use more action verbs to describe your accomplishments (developed, created, implemented, etc.)")
	}

	if meta.HasComplexFormatting {
		result.Warnings = append(result.Warnings,
			"Complex formatting detected - consider using a simpler layout for better ATS compatibility")
	} else {
		result.Score += 3
	}

	if meta.HasImages {
		result.Issues = append(result.Issues,
			"Potential graphics or images detected - ATS systems cannot read visual elements")
	} else {
		result.Score += 2
	}

	if result.Score > result.MaxScore {
		result.Score = result.MaxScore
	}

	return result
}
