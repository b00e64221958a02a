package formatters

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"atsgauge/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "AnalysisResult", &AnalysisTextFormatter{})
	registry.RegisterFormatter("markdown", "AnalysisResult", &AnalysisMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.AnalysisResult:
		return "AnalysisResult"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// AnalysisTextFormatter handles text formatting for scoring reports
type AnalysisTextFormatter struct{}

func (atf *AnalysisTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnalysisResult)
	if !ok {
		return "", fmt.Errorf("expected AnalysisResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ATS COMPATIBILITY REPORT ===\n\n")
	output.WriteString(fmt.Sprintf("Overall Score: %d/%d\n", result.OverallScore, result.MaxScore))
	output.WriteString(fmt.Sprintf("Pattern Version: %s\n\n", result.PatternVersion))

	output.WriteString("=== ESSENTIAL SECTIONS ===\n")
	output.WriteString(fmt.Sprintf("Score: %d/%d\n", result.Sections.Score, result.Sections.MaxScore))
	for _, section := range result.Sections.Sections {
		marker := "found"
		if !section.Found {
			marker = "missing"
		}
		output.WriteString(fmt.Sprintf("- %s: %s (weight %d, %s)\n", section.Name, marker, section.Weight, section.Description))
	}
	if len(result.Sections.MissingSections) > 0 {
		output.WriteString("Missing required: ")
		output.WriteString(strings.Join(result.Sections.MissingSections, ", "))
		output.WriteString("\n")
	}
	output.WriteString("\n")

	output.WriteString("=== FORMATTING ===\n")
	output.WriteString(fmt.Sprintf("Score: %d/%d\n", result.Formatting.Score, result.Formatting.MaxScore))
	writeFindings(&output, result.Formatting.Issues, result.Formatting.Warnings)

	output.WriteString("=== KEYWORDS & SKILLS ===\n")
	output.WriteString(fmt.Sprintf("Score: %d/%d\n", result.Keywords.Score, result.Keywords.MaxScore))
	output.WriteString(fmt.Sprintf("Technical matches: %d\n", result.Keywords.TotalSkillsFound))
	for _, category := range sortedCategories(result.Keywords.FoundSkills) {
		found := result.Keywords.FoundSkills[category]
		if len(found) == 0 {
			continue
		}
		output.WriteString(fmt.Sprintf("- %s: %s\n", category, strings.Join(found, ", ")))
	}
	if len(result.Keywords.FoundSoftSkills) > 0 {
		output.WriteString(fmt.Sprintf("Soft skills: %s\n", strings.Join(result.Keywords.FoundSoftSkills, ", ")))
	}
	output.WriteString("\n")

	output.WriteString("=== ATS COMPATIBILITY ===\n")
	output.WriteString(fmt.Sprintf("Score: %d/%d\n", result.Compatibility.Score, result.Compatibility.MaxScore))
	output.WriteString(fmt.Sprintf("Word count: %d\n", result.Compatibility.WordCount))
	writeFindings(&output, result.Compatibility.Issues, result.Compatibility.Warnings)

	if len(result.Recommendations) > 0 {
		output.WriteString("=== RECOMMENDATIONS ===\n")
		for i, rec := range result.Recommendations {
			output.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, rec.Type, rec.Title))
			output.WriteString("   ")
			output.WriteString(rec.Description)
			output.WriteString("\n")
		}
	}

	return output.String(), nil
}

func (atf *AnalysisTextFormatter) SupportedType() string {
	return "AnalysisResult"
}

func writeFindings(output *strings.Builder, issues, warnings []string) {
	if len(issues) > 0 {
		output.WriteString("Issues:\n")
		for _, issue := range issues {
			output.WriteString(fmt.Sprintf("- %s\n", issue))
		}
	}
	if len(warnings) > 0 {
		output.WriteString("Warnings:\n")
		for _, warning := range warnings {
			output.WriteString(fmt.Sprintf("- %s\n", warning))
		}
	}
	output.WriteString("\n")
}

// sortedCategories keeps map iteration out of the rendered output
func sortedCategories(found map[string][]string) []string {
	categories := make([]string, 0, len(found))
	for category := range found {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// AnalysisMarkdownFormatter handles markdown formatting for scoring reports
type AnalysisMarkdownFormatter struct{}

func (amf *AnalysisMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnalysisResult)
	if !ok {
		return "", fmt.Errorf("expected AnalysisResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# ATS Compatibility Report\n\n")
	output.WriteString(fmt.Sprintf("**Overall Score:** %d/%d\n\n", result.OverallScore, result.MaxScore))
	output.WriteString(fmt.Sprintf("**Pattern Version:** %s\n\n", result.PatternVersion))

	output.WriteString("## Essential Sections\n\n")
	output.WriteString(fmt.Sprintf("**Score:** %d/%d\n\n", result.Sections.Score, result.Sections.MaxScore))
	output.WriteString("| Section | Found | Required | Weight | Description |\n")
	output.WriteString("|---------|-------|----------|--------|-------------|\n")
	for _, section := range result.Sections.Sections {
		output.WriteString(fmt.Sprintf("| %s | %v | %v | %d | %s |\n",
			section.Name, section.Found, section.Required, section.Weight, section.Description))
	}
	output.WriteString("\n")

	output.WriteString("## Formatting\n\n")
	output.WriteString(fmt.Sprintf("**Score:** %d/%d\n\n", result.Formatting.Score, result.Formatting.MaxScore))
	writeMarkdownFindings(&output, result.Formatting.Issues, result.Formatting.Warnings)

	output.WriteString("## Keywords & Skills\n\n")
	output.WriteString(fmt.Sprintf("**Score:** %d/%d\n\n", result.Keywords.Score, result.Keywords.MaxScore))
	output.WriteString(fmt.Sprintf("**Technical matches:** %d\n\n", result.Keywords.TotalSkillsFound))
	for _, category := range sortedCategories(result.Keywords.FoundSkills) {
		found := result.Keywords.FoundSkills[category]
		if len(found) == 0 {
			continue
		}
		output.WriteString(fmt.Sprintf("- **%s:** %s\n", category, strings.Join(found, ", ")))
	}
	output.WriteString("\n")

	output.WriteString("## ATS Compatibility\n\n")
	output.WriteString(fmt.Sprintf("**Score:** %d/%d\n\n", result.Compatibility.Score, result.Compatibility.MaxScore))
	output.WriteString(fmt.Sprintf("**Word count:** %d\n\n", result.Compatibility.WordCount))
	writeMarkdownFindings(&output, result.Compatibility.Issues, result.Compatibility.Warnings)

	if len(result.Recommendations) > 0 {
		output.WriteString("## Recommendations\n\n")
		for i, rec := range result.Recommendations {
			output.WriteString(fmt.Sprintf("### %d. %s\n\n", i+1, rec.Title))
			output.WriteString(fmt.Sprintf("**Type:** %s | **Impact:** %s\n\n", rec.Type, rec.Impact))
			output.WriteString(rec.Description)
			output.WriteString("\n\n")
		}
	}

	return output.String(), nil
}

func writeMarkdownFindings(output *strings.Builder, issues, warnings []string) {
	if len(issues) > 0 {
		output.WriteString("### Issues\n")
		for _, issue := range issues {
			output.WriteString(fmt.Sprintf("- %s\n", issue))
		}
		output.WriteString("\n")
	}
	if len(warnings) > 0 {
		output.WriteString("### Warnings\n")
		for _, warning := range warnings {
			output.WriteString(fmt.Sprintf("- %s\n", warning))
		}
		output.WriteString("\n")
	}
}

func (amf *AnalysisMarkdownFormatter) SupportedType() string {
	return "AnalysisResult"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
