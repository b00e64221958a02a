package engine

import (
	"strings"

	"atsgauge/internal/patterns"
	"atsgauge/internal/types"
)

// analyzeCompatibility runs the ATS parser-compatibility checks: length
// in words, special-character density, date-format consistency, standard
// headers, and machine-readable contact details.
func analyzeCompatibility(text, lower string) types.CompatibilityResult {
	result := types.CompatibilityResult{
		MaxScore: patterns.CompatibilityMaxScore,
		Issues:   []string{},
		Warnings: []string{},
	}

	result.WordCount = len(strings.Fields(text))
	switch wc := result.WordCount; {
	case wc < 200:
		result.Issues = append(result.Issues,
			"Resume is too short - ATS systems may flag as incomplete")
	case wc < 400:
		result.Warnings = append(result.Warnings,
			"Resume could be more detailed for better ATS scoring")
		result.Score += 2
	case wc <= 800:
		result.Score += 5
	case wc <= 1200:
		result.Score += 3
		result.Warnings = append(result.Warnings,
			"Resume is quite long - consider condensing for better ATS processing")
	default:
		result.Issues = append(result.Issues,
			"Resume is too long - ATS systems may not process all content")
	}

	if len(patterns.SpecialCharPattern.FindAllString(text, -1)) < 10 {
		result.Score += 3
	} else {
		result.Warnings = append(result.Warnings,
			"Minimize special characters that might cause ATS parsing issues")
	}

	if dateFormatsConsistent(text) {
		result.Score += 3
	} else {
		result.Issues = append(result.Issues,
			"Use consistent date formatting throughout your resume")
	}

	foundHeaders := 0
	for _, header := range patterns.StandardHeaders {
		if strings.Contains(lower, header) {
			foundHeaders++
		}
	}
	if foundHeaders >= 4 {
		result.Score += 4
	} else {
		result.Warnings = append(result.Warnings,
			"Use standard section headers for better ATS recognition")
	}

	if patterns.EmailPattern.MatchString(text) {
		result.Score += 2
	}
	if patterns.PhonePattern.MatchString(text) {
		result.Score += 1
	}

	if result.Score > result.MaxScore {
		result.Score = result.MaxScore
	}

	return result
}

// dateFormatsConsistent reports whether one date style dominates. A
// resume with no dates at all counts as consistent; the missing-dates
// problem is the formatting analyzer's to report.
func dateFormatsConsistent(text string) bool {
	total := 0
	max := 0
	for _, pattern := range patterns.DateFormatPatterns {
		n := len(pattern.FindAllString(text, -1))
		total += n
		if n > max {
			max = n
		}
	}
	if total == 0 {
		return true
	}
	return float64(max)/float64(total) >= patterns.DateConsistencyThreshold
}
