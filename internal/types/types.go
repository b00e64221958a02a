package types

// ResumeMetadata carries document-level facts the scoring engine cannot
// derive from plain text alone. All fields are optional; a zero
// PageCount is treated as 1.
type ResumeMetadata struct {
	PageCount            int  `json:"pageCount"`
	HasImages            bool `json:"hasImages"`
	HasComplexFormatting bool `json:"hasComplexFormatting"`
}

// AnalyzeInput represents the input for scoring a resume
type AnalyzeInput struct {
	Text     string         `json:"text"`
	Metadata ResumeMetadata `json:"metadata"`
}

// SectionStatus describes one resume section rule and whether the resume satisfied it
type SectionStatus struct {
	Name        string `json:"name"`
	Found       bool   `json:"found"`
	Required    bool   `json:"required"`
	Weight      int    `json:"weight"`
	Description string `json:"description"`
}

// SectionResult represents the outcome of section-presence analysis
type SectionResult struct {
	Score           int             `json:"score"`
	MaxScore        int             `json:"maxScore"`
	Sections        []SectionStatus `json:"sections"`
	MissingSections []string        `json:"missingSections"` // required sections only, rule order
}

// FormattingResult represents the outcome of formatting analysis
type FormattingResult struct {
	Score    int      `json:"score"`
	MaxScore int      `json:"maxScore"`
	Issues   []string `json:"issues"`
	Warnings []string `json:"warnings"`
}

// KeywordResult represents the outcome of keyword and skill analysis.
// FoundSkills maps every technical category to the keywords detected
// for it; categories with no hits map to an empty slice.
type KeywordResult struct {
	Score                 int                 `json:"score"`
	MaxScore              int                 `json:"maxScore"`
	FoundSkills           map[string][]string `json:"foundSkills"`
	FoundSoftSkills       []string            `json:"foundSoftSkills"`
	FoundIndustryKeywords []string            `json:"foundIndustryKeywords"`
	TrendingCount         int                 `json:"trendingCount"`
	TotalSkillsFound      int                 `json:"totalSkillsFound"`
	Recommendations       []string            `json:"recommendations"`
}

// CompatibilityResult represents the outcome of structural compatibility analysis
type CompatibilityResult struct {
	Score     int      `json:"score"`
	MaxScore  int      `json:"maxScore"`
	WordCount int      `json:"wordCount"`
	Issues    []string `json:"issues"`
	Warnings  []string `json:"warnings"`
}

// RecommendationType classifies a recommendation by urgency
type RecommendationType string

const (
	RecommendationCritical   RecommendationType = "critical"
	RecommendationImportant  RecommendationType = "important"
	RecommendationSuggestion RecommendationType = "suggestion"
	RecommendationPositive   RecommendationType = "positive"
)

// RecommendationImpact estimates how much acting on a recommendation would move the score
type RecommendationImpact string

const (
	ImpactHigh     RecommendationImpact = "high"
	ImpactMedium   RecommendationImpact = "medium"
	ImpactLow      RecommendationImpact = "low"
	ImpactPositive RecommendationImpact = "positive"
)

// Recommendation is one actionable finding derived from the category results
type Recommendation struct {
	Type        RecommendationType   `json:"type"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Impact      RecommendationImpact `json:"impact"`
}

// AnalysisResult represents the complete scoring report for one resume
type AnalysisResult struct {
	OverallScore    int                 `json:"overallScore"`
	MaxScore        int                 `json:"maxScore"`
	Sections        SectionResult       `json:"sections"`
	Formatting      FormattingResult    `json:"formatting"`
	Keywords        KeywordResult       `json:"keywords"`
	Compatibility   CompatibilityResult `json:"atsCompatibility"`
	Recommendations []Recommendation    `json:"recommendations"`
	PatternVersion  string              `json:"patternVersion"`
}

// ExtractedDocument represents analyzable text pulled out of a resume
// file, together with what extraction observed about the document.
type ExtractedDocument struct {
	Text     string         `json:"text"`
	Metadata ResumeMetadata `json:"metadata"`
}
