package engine

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	apperrors "atsgauge/internal/errors"
	"atsgauge/internal/types"
)

const sampleResume = `Ayesha Khan
Email: ayesha.khan@example.com | Phone: 0301-1234567 | linkedin.com/in/ayeshakhan | github.com/ayeshakhan

Professional Summary
Software engineer with 4 years of experience building fintech products for the banking sector.

Work Experience
Senior Software Engineer, PayFlow (Jan 2022 - Dec 2024)
• Developed a payment reconciliation service in Python and Go handling 20k transactions daily
• Led a team of developers and improved deployment frequency using Docker and Kubernetes on AWS
• Designed REST APIs with nodejs and express backed by PostgreSQL and Redis
Software Engineer, ShopLink (Mar 2020 - Dec 2021)
• Built ecommerce dashboards in React and typescript with automated integration testing
• Created CI/CD pipelines in GitLab and maintained unit testing coverage above 90users

Education
Bachelor of Science in Computer Science, National University (2016 - 2020), CGPA 3.7

Technical Skills
Programming Languages: Python, JavaScript, TypeScript, Java
Web Technologies: React, nodejs, express, django, html, css
Databases: PostgreSQL, MongoDB, Redis, MySQL
Cloud & DevOps: AWS, Docker, Kubernetes, Jenkins, git

Projects
• Developed an open-source expense tracker, collaborated with 10users on GitHub

Certifications
AWS Certified Solutions Architect, 2023

Soft skills: teamwork, leadership, communication, problem solving`

// polishedResume clears every analyzer check: 400+ words, consistent
// bare-year dates, quantified results, and zero ATS-hostile characters.
const polishedResume = `Bilal Ahmed
Email: bilal.ahmed@example.com Phone: 0321-7654321 linkedin.com/in/bilalahmed github.com/bilalahmed

Professional Summary
Senior software engineer with eight years of experience designing and operating large scale
backend platforms for fintech and ecommerce companies. Focused on reliable distributed
systems, cloud infrastructure, and mentoring engineering teams through delivery of
high impact products in regulated environments.

Work Experience
Principal Software Engineer, LedgerWorks (2022 - 2025)
- Designed and implemented a double entry settlement platform in Go and Python processing 40k transactions every hour under strict auditing requirements
- Led a group of nine engineers through the migration of legacy billing services onto Kubernetes and AWS, cutting yearly infrastructure spend by 130k
- Developed streaming reconciliation pipelines with Kafka and PostgreSQL that reduced settlement disputes across 25k merchant accounts
- Integrated machine learning based anomaly detection into the payment flow and automated the manual review queue for the risk operations group
Senior Software Engineer, CartStream (2018 - 2022)
- Built REST and GraphQL APIs in nodejs and typescript serving the storefront used by 300k monthly shoppers
- Created CI and CD pipelines with Jenkins and Docker and maintained automated unit testing and integration testing coverage above the agreed target
- Optimized slow PostgreSQL and Redis query paths and improved checkout latency for customers in every region
- Collaborated with product managers and designers on agile delivery of the subscription billing initiative
- Achieved a measurable reduction in incident volume by introducing structured on call runbooks and observability dashboards for the platform group
Software Engineer, BrightPath Labs (2014 - 2018)
- Implemented internal tooling for data engineering workflows in Python and Java and supported analytics teams across three departments
- Managed the rollout of containerized build agents and mentored junior engineers during quarterly onboarding cycles

Education
Bachelor of Science in Software Engineering, National University of Technology (2010 - 2014)
Graduated with honors after a senior thesis on distributed consensus protocols
Completed elective coursework in operating systems, computer networks, and database design

Technical Skills
Programming Languages: Python, Java, TypeScript, JavaScript, golang
Web Technologies: React, nodejs, express, django, html, css
Databases: PostgreSQL, MySQL, MongoDB, Redis, elasticsearch
Cloud and DevOps: AWS, Azure, Docker, Kubernetes, terraform, Jenkins, git
Practices: microservices, devops, api development, database design, machine learning

Projects
- Developed an open source job queue library in Go that reached 15k downloads and maintained its documentation site
- Created a personal finance tracker with React and MongoDB and delivered the scheduled export features requested by the community

Certifications
AWS Certified Solutions Architect Professional (2024)
Certified Kubernetes Administrator (2023)

Soft skills: teamwork, leadership, communication, problem solving, time management, collaborative mindset`

func TestAnalyzeInputTooShort(t *testing.T) {
	eng := New(Config{})

	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"empty", "", true},
		{"forty nine runes", strings.Repeat("q", 49), true},
		{"whitespace padding does not count", "   " + strings.Repeat("q", 49) + "   ", true},
		{"exactly fifty runes", strings.Repeat("q", 50), false},
		{"multibyte runes counted as one", strings.Repeat("é", 50), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eng.Analyze(context.Background(), types.AnalyzeInput{Text: tt.text})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Analyze error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var appErr *apperrors.AppError
			if !errors.As(err, &appErr) {
				t.Fatalf("error is %T, want *AppError", err)
			}
			if appErr.Code != apperrors.ErrCodeInputTooShort {
				t.Errorf("error code = %s, want %s", appErr.Code, apperrors.ErrCodeInputTooShort)
			}
		})
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	input := types.AnalyzeInput{Text: sampleResume, Metadata: types.ResumeMetadata{PageCount: 1}}

	sequential := New(Config{})
	parallel := New(Config{Parallel: true})

	first, err := sequential.Analyze(context.Background(), input)
	if err != nil {
		t.Fatalf("sequential: %v", err)
	}
	second, err := sequential.Analyze(context.Background(), input)
	if err != nil {
		t.Fatalf("sequential repeat: %v", err)
	}
	concurrent, err := parallel.Analyze(context.Background(), input)
	if err != nil {
		t.Fatalf("parallel: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated analysis of identical input differs")
	}
	if !reflect.DeepEqual(first, concurrent) {
		t.Error("parallel analysis differs from sequential")
	}
}

func TestAnalyzeScoreComposition(t *testing.T) {
	// weak fixture kept well below the overall cap
	input := types.AnalyzeInput{Text: strings.TrimSpace(strings.Repeat("zz ", 100))}
	result, err := New(Config{}).Analyze(context.Background(), input)
	if err != nil {
		t.Fatal(err)
	}

	sum := result.Sections.Score + result.Formatting.Score +
		result.Keywords.Score + result.Compatibility.Score
	if result.OverallScore != sum {
		t.Errorf("overallScore = %d, want category sum %d", result.OverallScore, sum)
	}
	if result.OverallScore != 11 {
		t.Errorf("overallScore = %d, want 11", result.OverallScore)
	}
	if result.MaxScore != 100 {
		t.Errorf("maxScore = %d, want 100", result.MaxScore)
	}
}

func TestAnalyzeScoreBounds(t *testing.T) {
	for name, text := range map[string]string{
		"weak":   strings.TrimSpace(strings.Repeat("zz ", 100)),
		"strong": sampleResume,
	} {
		t.Run(name, func(t *testing.T) {
			result, err := New(Config{}).Analyze(context.Background(), types.AnalyzeInput{Text: text})
			if err != nil {
				t.Fatal(err)
			}
			checkBounds(t, "overall", result.OverallScore, result.MaxScore)
			checkBounds(t, "sections", result.Sections.Score, result.Sections.MaxScore)
			checkBounds(t, "formatting", result.Formatting.Score, result.Formatting.MaxScore)
			checkBounds(t, "keywords", result.Keywords.Score, result.Keywords.MaxScore)
			checkBounds(t, "compatibility", result.Compatibility.Score, result.Compatibility.MaxScore)
		})
	}
}

func checkBounds(t *testing.T, name string, score, max int) {
	t.Helper()
	if score < 0 || score > max {
		t.Errorf("%s score %d outside [0, %d]", name, score, max)
	}
}

func TestAnalyzeStrongResume(t *testing.T) {
	result, err := New(Config{}).Analyze(context.Background(), types.AnalyzeInput{
		Text:     sampleResume,
		Metadata: types.ResumeMetadata{PageCount: 1},
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Sections.MissingSections) != 0 {
		t.Errorf("missing sections: %v", result.Sections.MissingSections)
	}
	if result.Sections.Score != 80 {
		t.Errorf("sections score = %d, want 80", result.Sections.Score)
	}
	if result.Keywords.Score != result.Keywords.MaxScore {
		t.Errorf("keywords score = %d, want %d", result.Keywords.Score, result.Keywords.MaxScore)
	}
	if result.OverallScore < 60 {
		t.Errorf("overallScore = %d, want at least 60", result.OverallScore)
	}
	if result.PatternVersion == "" {
		t.Error("patternVersion not set")
	}
}

func TestAnalyzeHighScoringResume(t *testing.T) {
	result, err := New(Config{}).Analyze(context.Background(), types.AnalyzeInput{
		Text:     polishedResume,
		Metadata: types.ResumeMetadata{PageCount: 1},
	})
	if err != nil {
		t.Fatal(err)
	}

	if result.OverallScore < 80 {
		t.Errorf("overallScore = %d, want at least 80", result.OverallScore)
	}
	if len(result.Formatting.Issues) != 0 {
		t.Errorf("formatting issues: %v", result.Formatting.Issues)
	}
	if len(result.Compatibility.Issues) != 0 {
		t.Errorf("compatibility issues: %v", result.Compatibility.Issues)
	}

	positives := 0
	for _, rec := range result.Recommendations {
		switch rec.Type {
		case types.RecommendationCritical:
			t.Errorf("unexpected critical recommendation %q", rec.Title)
		case types.RecommendationPositive:
			positives++
			if rec.Impact != types.ImpactPositive {
				t.Errorf("positive recommendation impact = %q", rec.Impact)
			}
		}
	}
	if positives != 1 {
		t.Errorf("got %d positive recommendations, want 1", positives)
	}
}

func TestAnalyzeRecommendationOrder(t *testing.T) {
	input := types.AnalyzeInput{Text: strings.TrimSpace(strings.Repeat("zz ", 100))}
	result, err := New(Config{}).Analyze(context.Background(), input)
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Recommendations) == 0 {
		t.Fatal("no recommendations for a weak resume")
	}
	if got := result.Recommendations[0].Title; got != "Add Missing Essential Sections" {
		t.Errorf("first recommendation = %q, want missing-sections", got)
	}

	// urgency never increases down the list
	rank := map[types.RecommendationType]int{
		types.RecommendationCritical:   0,
		types.RecommendationImportant:  1,
		types.RecommendationSuggestion: 2,
		types.RecommendationPositive:   3,
	}
	prev := 0
	for _, rec := range result.Recommendations {
		r, ok := rank[rec.Type]
		if !ok {
			t.Fatalf("unknown recommendation type %q", rec.Type)
		}
		if r < prev {
			t.Errorf("recommendation %q (%s) out of order", rec.Title, rec.Type)
		}
		prev = r
	}
}

func TestAnalyzeMetadataCoercion(t *testing.T) {
	text := strings.Repeat("q", 60)
	base, err := New(Config{}).Analyze(context.Background(), types.AnalyzeInput{Text: text})
	if err != nil {
		t.Fatal(err)
	}
	zeroPages, err := New(Config{}).Analyze(context.Background(), types.AnalyzeInput{
		Text:     text,
		Metadata: types.ResumeMetadata{PageCount: -3},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(base, zeroPages) {
		t.Error("nonsense pageCount changed the result")
	}
}

func TestAnalyzeMinLengthOverride(t *testing.T) {
	eng := New(Config{MinTextLength: 10})
	if _, err := eng.Analyze(context.Background(), types.AnalyzeInput{Text: "brief note"}); err != nil {
		t.Fatalf("custom min length not honored: %v", err)
	}
}

func BenchmarkAnalyze(b *testing.B) {
	eng := New(Config{})
	input := types.AnalyzeInput{Text: sampleResume, Metadata: types.ResumeMetadata{PageCount: 1}}
	for b.Loop() {
		if _, err := eng.Analyze(context.Background(), input); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAnalyzeParallel(b *testing.B) {
	eng := New(Config{Parallel: true})
	input := types.AnalyzeInput{Text: sampleResume, Metadata: types.ResumeMetadata{PageCount: 1}}
	for b.Loop() {
		if _, err := eng.Analyze(context.Background(), input); err != nil {
			b.Fatal(err)
		}
	}
}
