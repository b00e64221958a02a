package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"atsgauge/internal/patterns"

	"github.com/spf13/cobra"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Show the pattern library used for scoring",
	Long: `Show the section rules, keyword taxonomy and score caps that the
scoring engine applies. Useful for auditing why a resume scored the way it
did, and for diffing pattern library versions.`,
	RunE: runPatterns,
}

var patternsJSON bool

func init() {
	patternsCmd.Flags().BoolVar(&patternsJSON, "json", false, "Print the pattern library as JSON")
}

type patternSummary struct {
	Version       string         `json:"version"`
	Sections      []sectionEntry `json:"sections"`
	TechCategory  map[string]int `json:"technicalCategories"`
	SoftSkills    int            `json:"softSkills"`
	Industry      int            `json:"industryKeywords"`
	Trending      []string       `json:"trendingTechnologies"`
	ActionVerbs   int            `json:"actionVerbs"`
	MaxScores     map[string]int `json:"maxScores"`
	StandardHdrs  int            `json:"standardHeaders"`
	DateThreshold float64        `json:"dateConsistencyThreshold"`
}

type sectionEntry struct {
	Name     string `json:"name"`
	Weight   int    `json:"weight"`
	Required bool   `json:"required"`
	Keywords int    `json:"keywords"`
}

func runPatterns(cmd *cobra.Command, args []string) error {
	summary := patternSummary{
		Version:      patterns.Version,
		TechCategory: map[string]int{},
		SoftSkills:   len(patterns.SoftSkills),
		Industry:     len(patterns.IndustryKeywords),
		Trending:     patterns.TrendingTechnologies,
		ActionVerbs:  len(patterns.ActionVerbs),
		MaxScores: map[string]int{
			"sections":      patterns.SectionMaxScore,
			"formatting":    patterns.FormattingMaxScore,
			"keywords":      patterns.KeywordMaxScore,
			"compatibility": patterns.CompatibilityMaxScore,
			"overall":       patterns.OverallMaxScore,
		},
		StandardHdrs:  len(patterns.StandardHeaders),
		DateThreshold: patterns.DateConsistencyThreshold,
	}
	for _, rule := range patterns.SectionRules {
		summary.Sections = append(summary.Sections, sectionEntry{
			Name:     rule.Name,
			Weight:   rule.Weight,
			Required: rule.Required,
			Keywords: len(rule.Keywords),
		})
	}
	for _, cat := range patterns.TechnicalCategories {
		summary.TechCategory[cat.Name] = len(cat.Keywords)
	}

	if patternsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	fmt.Printf("Pattern library version %s\n\n", summary.Version)
	fmt.Println("Sections (weight, required):")
	for _, s := range summary.Sections {
		req := "optional"
		if s.Required {
			req = "required"
		}
		fmt.Printf("  %-32s %3d  %s  (%d keywords)\n", s.Name, s.Weight, req, s.Keywords)
	}
	fmt.Println("\nKeyword taxonomy:")
	for _, cat := range patterns.TechnicalCategories {
		fmt.Printf("  %-18s %d keywords\n", cat.Name, len(cat.Keywords))
	}
	fmt.Printf("  soft skills        %d\n", summary.SoftSkills)
	fmt.Printf("  industry           %d\n", summary.Industry)
	fmt.Printf("  trending           %s\n", strings.Join(summary.Trending, ", "))
	fmt.Println("\nScore caps:")
	fmt.Printf("  sections %d, formatting %d, keywords %d, compatibility %d, overall %d\n",
		patterns.SectionMaxScore, patterns.FormattingMaxScore, patterns.KeywordMaxScore,
		patterns.CompatibilityMaxScore, patterns.OverallMaxScore)
	return nil
}
