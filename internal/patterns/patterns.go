// Package patterns holds the static keyword tables and compiled regular
// expressions the scoring analyzers match against. Everything here is
// built once at package initialization and treated as read-only; scoring
// behavior for a given Version is fully determined by these tables.
package patterns

import "regexp"

// Version identifies the pattern tables. Bump it whenever a table or
// expression changes, since scores are only comparable within a version.
const Version = "2025.1"

// SectionRule describes one essential resume section: the substrings
// that count as evidence of it, its score weight, whether a resume is
// incomplete without it, and a reader-facing description of what the
// section should contain.
type SectionRule struct {
	Name        string
	Keywords    []string
	Weight      int
	Required    bool
	Description string
}

// SectionRules is the ordered list of essential sections. Weights sum to
// SectionMaxScore; required weights sum to 60.
var SectionRules = []SectionRule{
	{
		Name:        "Contact Information",
		Keywords:    []string{"email", "@", "phone", "linkedin", "github", "portfolio"},
		Weight:      12,
		Required:    true,
		Description: "Email, phone, and professional profiles",
	},
	{
		Name:        "Professional Summary/Objective",
		Keywords:    []string{"summary", "objective", "profile", "about", "overview"},
		Weight:      8,
		Required:    false,
		Description: "Brief professional summary or career objective",
	},
	{
		Name:        "Work Experience",
		Keywords:    []string{"experience", "work", "employment", "intern", "job", "position", "role"},
		Weight:      20,
		Required:    true,
		Description: "Professional work experience and internships",
	},
	{
		Name:        "Education",
		Keywords:    []string{"education", "university", "degree", "bachelor", "master", "college", "cgpa", "gpa"},
		Weight:      12,
		Required:    true,
		Description: "Educational background and qualifications",
	},
	{
		Name:        "Technical Skills",
		Keywords:    []string{"skills", "technologies", "programming", "languages", "frameworks", "tools"},
		Weight:      16,
		Required:    true,
		Description: "Technical skills and programming languages",
	},
	{
		Name:        "Projects",
		Keywords:    []string{"projects", "portfolio", "developed", "built", "created", "github"},
		Weight:      8,
		Required:    false,
		Description: "Personal or academic projects",
	},
	{
		Name:        "Certifications",
		Keywords:    []string{"certification", "certified", "certificate", "course", "training"},
		Weight:      4,
		Required:    false,
		Description: "Professional certifications and courses",
	},
}

// Category maxima. The overall maximum is less than the sum of the
// category maxima on purpose: a resume does not need a perfect score in
// every category to reach 100.
const (
	SectionMaxScore       = 80
	FormattingMaxScore    = 25
	KeywordMaxScore       = 20
	CompatibilityMaxScore = 15
	OverallMaxScore       = 100
)

// SkillCategory groups technical keywords under a market-facing label.
type SkillCategory struct {
	Name     string
	Keywords []string
}

// TechnicalCategories is the ordered technical-skill taxonomy.
var TechnicalCategories = []SkillCategory{
	{
		Name: "Programming Languages",
		Keywords: []string{
			"javascript", "python", "java", "c++", "c#", "php", "ruby", "go", "swift", "kotlin",
			"typescript", "dart", "scala", "r", "matlab",
		},
	},
	{
		Name: "Web Technologies",
		Keywords: []string{
			"react", "angular", "vue", "nodejs", "express", "django", "flask", "laravel",
			"html", "css", "sass", "bootstrap", "tailwind", "jquery",
		},
	},
	{
		Name: "Mobile Development",
		Keywords: []string{
			"android", "ios", "flutter", "react native", "xamarin", "ionic",
		},
	},
	{
		Name: "Databases",
		Keywords: []string{
			"mysql", "postgresql", "mongodb", "redis", "sqlite", "oracle", "sql server",
			"firebase", "dynamodb", "cassandra",
		},
	},
	{
		Name: "Cloud & DevOps",
		Keywords: []string{
			"aws", "azure", "google cloud", "docker", "kubernetes", "jenkins", "git",
			"gitlab", "github", "ci/cd", "terraform", "ansible",
		},
	},
	{
		Name: "Data Science & AI",
		Keywords: []string{
			"machine learning", "deep learning", "tensorflow", "pytorch", "pandas",
			"numpy", "scikit-learn", "opencv", "nlp", "computer vision",
		},
	},
	{
		Name: "Testing & Quality",
		Keywords: []string{
			"unit testing", "integration testing", "selenium", "jest", "cypress",
			"postman", "jira", "agile", "scrum",
		},
	},
}

// SoftSkills are matched as plain substrings, like technical keywords.
var SoftSkills = []string{
	"teamwork", "leadership", "communication", "problem solving", "analytical",
	"creative", "adaptable", "detail oriented", "time management", "collaborative",
}

// IndustryKeywords signal domain familiarity.
var IndustryKeywords = []string{
	"fintech", "ecommerce", "healthcare", "education", "logistics", "retail",
	"banking", "telecommunications", "startup", "enterprise",
}

// TrendingTechnologies earn a small bonus when several appear.
var TrendingTechnologies = []string{
	"react", "nodejs", "python", "aws", "docker", "mongodb",
}

// ActionVerbs are counted as distinct substring hits in the formatting
// analysis.
var ActionVerbs = []string{
	"developed", "created", "built", "designed", "implemented", "managed", "led", "improved",
	"optimized", "automated", "integrated", "collaborated", "achieved", "delivered", "maintained",
}

// StandardHeaders are section titles ATS parsers reliably recognize.
var StandardHeaders = []string{
	"experience", "education", "skills", "summary", "objective", "projects",
	"work experience", "professional experience", "technical skills",
}

// Compiled expressions. These mirror each other across analyzers: the
// combined DatePattern is the union of the three DateFormatPatterns used
// for the consistency check.
var (
	// BulletPattern matches the glyphs commonly used for bullet lists.
	BulletPattern = regexp.MustCompile(`[•\-*►‣]`)

	// DatePattern matches bare years, month-plus-year forms, and
	// numeric month/year dates.
	DatePattern = regexp.MustCompile(`(?i)\b(19|20)\d{2}\b|\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\s*(19|20)?\d{2}\b|\b\d{1,2}/\d{2,4}\b`)

	// QuantifiedPattern matches numbers directly followed by an outcome
	// unit, e.g. "20k" or "5users". Units ending in a symbol need a word
	// character after them to close the boundary.
	QuantifiedPattern = regexp.MustCompile(`\b\d+([.,]\d+)?(%|k|K|million|thousand|users|projects|team|members|increase|decrease|improve|reduce)\b`)

	// SpecialCharPattern matches characters outside the set ATS parsers
	// handle reliably.
	SpecialCharPattern = regexp.MustCompile(`[^\w\s.,;:!?\-()\[\]/@#$%&*+=]`)

	// EmailPattern and PhonePattern detect parseable contact details.
	// The phone form covers local mobile numbers and (xxx) xxx-xxxx.
	EmailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	PhonePattern = regexp.MustCompile(`(\+92|0)?[\s-]?[0-9]{3}[\s-]?[0-9]{7}|\(\d{3}\)[\s-]?\d{3}[\s-]?\d{4}`)
)

// DateFormatPatterns are the individual date styles checked for
// consistency: bare year, numeric month/year, and month-name forms.
var DateFormatPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(19|20)\d{2}\b`),
	regexp.MustCompile(`\b\d{1,2}/\d{2,4}\b`),
	regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\s*(19|20)?\d{2}\b`),
}

// DateConsistencyThreshold is the minimum share of all date matches the
// dominant format must hold for formatting to count as consistent.
const DateConsistencyThreshold = 0.7
