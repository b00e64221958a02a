// Package engine scores resume text for ATS compatibility. Scoring is
// deterministic and rule-based: the same text and metadata always
// produce the same report, with no model calls and no I/O.
package engine

import (
	"context"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"atsgauge/internal/errors"
	"atsgauge/internal/patterns"
	"atsgauge/internal/types"
)

// MinTextLength is the default minimum trimmed length of analyzable text.
// Anything shorter is almost always a failed extraction, not a resume.
const MinTextLength = 50

// Config controls engine behavior.
type Config struct {
	// MinTextLength overrides the input-length precondition when > 0.
	MinTextLength int
	// Parallel runs the four category analyzers concurrently. Results
	// are identical to sequential runs; only latency changes.
	Parallel bool
}

// Engine is a stateless scorer. The zero value is not usable; construct
// with New. An Engine is safe for concurrent use.
type Engine struct {
	minTextLength int
	parallel      bool
}

// New creates an Engine from cfg, applying defaults.
func New(cfg Config) *Engine {
	minLen := cfg.MinTextLength
	if minLen <= 0 {
		minLen = MinTextLength
	}
	return &Engine{
		minTextLength: minLen,
		parallel:      cfg.Parallel,
	}
}

// Analyze scores resume text and returns the full report. It fails only
// on the input-length precondition; every other condition is reported
// inside the result rather than as an error.
func (e *Engine) Analyze(ctx context.Context, input types.AnalyzeInput) (types.AnalysisResult, error) {
	trimmed := strings.TrimSpace(input.Text)
	if utf8.RuneCountInString(trimmed) < e.minTextLength {
		return types.AnalysisResult{}, errors.NewValidationError(
			errors.ErrCodeInputTooShort,
			"resume text is too short to analyze",
			nil,
		).WithContext("length", utf8.RuneCountInString(trimmed)).
			WithContext("min_length", e.minTextLength)
	}

	meta := normalizeMetadata(input.Metadata)
	text := input.Text
	lower := strings.ToLower(text)

	result := types.AnalysisResult{
		MaxScore:       patterns.OverallMaxScore,
		PatternVersion: patterns.Version,
	}

	if e.parallel {
		g, _ := errgroup.WithContext(ctx)
		g.Go(func() error {
			result.Sections = analyzeSections(lower)
			return nil
		})
		g.Go(func() error {
			result.Formatting = analyzeFormatting(text, meta)
			return nil
		})
		g.Go(func() error {
			result.Keywords = analyzeKeywords(lower)
			return nil
		})
		g.Go(func() error {
			result.Compatibility = analyzeCompatibility(text, lower)
			return nil
		})
		if err := g.Wait(); err != nil {
			return types.AnalysisResult{}, err
		}
	} else {
		result.Sections = analyzeSections(lower)
		result.Formatting = analyzeFormatting(text, meta)
		result.Keywords = analyzeKeywords(lower)
		result.Compatibility = analyzeCompatibility(text, lower)
	}

	overall := result.Sections.Score +
		result.Formatting.Score +
		result.Keywords.Score +
		result.Compatibility.Score
	if overall > patterns.OverallMaxScore {
		overall = patterns.OverallMaxScore
	}
	result.OverallScore = overall

	result.Recommendations = buildRecommendations(result)

	return result, nil
}

// normalizeMetadata coerces absent or nonsensical metadata to safe
// defaults. Metadata is advisory; it must never make Analyze fail.
func normalizeMetadata(meta types.ResumeMetadata) types.ResumeMetadata {
	if meta.PageCount < 1 {
		meta.PageCount = 1
	}
	return meta
}

// containsAny reports whether any needle occurs in haystack. The
// haystack is expected to be lowercased already.
func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
