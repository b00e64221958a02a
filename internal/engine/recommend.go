package engine

import (
	"strings"

	"atsgauge/internal/types"
)

// buildRecommendations derives the ordered recommendation list from the
// category results. The order is fixed: critical findings first
// (missing sections, formatting issues, compatibility issues), then
// important ones, then suggestions, then the overall verdict.
// Compatibility warnings are surfaced in the compatibility result only.
func buildRecommendations(result types.AnalysisResult) []types.Recommendation {
	recs := []types.Recommendation{}

	if len(result.Sections.MissingSections) > 0 {
		recs = append(recs, types.Recommendation{
			Type:        types.RecommendationCritical,
			Title:       "Add Missing Essential Sections",
			Description: "Include these required sections: " + strings.Join(result.Sections.MissingSections, ", "),
			Impact:      types.ImpactHigh,
		})
	}

	for _, issue := range result.Formatting.Issues {
		recs = append(recs, types.Recommendation{
			Type:        types.RecommendationCritical,
			Title:       "Fix Formatting Issue",
			Description: issue,
			Impact:      types.ImpactHigh,
		})
	}

	for _, issue := range result.Compatibility.Issues {
		recs = append(recs, types.Recommendation{
			Type:        types.RecommendationCritical,
			Title:       "ATS Compatibility Issue",
			Description: issue,
			Impact:      types.ImpactHigh,
		})
	}

	if result.Keywords.TotalSkillsFound < 8 {
		recs = append(recs, types.Recommendation{
			Type:        types.RecommendationImportant,
			Title:       "Enhance Technical Skills Section",
			Description: "Add more relevant technical skills to improve keyword matching with job descriptions",
			Impact:      types.ImpactMedium,
		})
	}

	for _, warning := range result.Formatting.Warnings {
		recs = append(recs, types.Recommendation{
			Type:        types.RecommendationImportant,
			Title:       "Improve Formatting",
			Description: warning,
			Impact:      types.ImpactMedium,
		})
	}

	if len(result.Keywords.FoundSoftSkills) < 3 {
		recs = append(recs, types.Recommendation{
			Type:        types.RecommendationSuggestion,
			Title:       "Add Soft Skills",
			Description: "Include soft skills like teamwork, leadership, and communication",
			Impact:      types.ImpactLow,
		})
	}

	switch {
	case result.OverallScore >= 80:
		recs = append(recs, types.Recommendation{
			Type:        types.RecommendationPositive,
			Title:       "Excellent ATS Compatibility!",
			Description: "Your resume shows strong ATS compatibility. Consider minor optimizations for perfection.",
			Impact:      types.ImpactPositive,
		})
	case result.OverallScore >= 60:
		recs = append(recs, types.Recommendation{
			Type:        types.RecommendationSuggestion,
			Title:       "Good Foundation",
			Description: "Your resume has a solid foundation. Focus on the critical issues to improve your ATS score.",
			Impact:      types.ImpactMedium,
		})
	}

	return recs
}
