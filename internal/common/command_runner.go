package common

import (
	"context"

	"atsgauge/internal/errors"
	"atsgauge/internal/extract"
	"atsgauge/internal/types"
	"atsgauge/internal/utils"
)

// ScoreOperationFunc is the signature of the scoring operation run by
// file-based CLI commands.
type ScoreOperationFunc func(context.Context, types.AnalyzeInput) (types.AnalysisResult, error)

// RunScoreCommand encapsulates the common logic for scoring a resume
// file: validate the path, extract text and metadata, run the scorer,
// and write the formatted report.
func RunScoreCommand(
	ctx context.Context,
	logger *errors.Logger,
	cmdConfig CommandConfig,
	path string,
	score ScoreOperationFunc,
) error {
	if err := utils.ValidateInputFile(path); err != nil {
		return errors.NewValidationError("INVALID_INPUT_FILE",
			"invalid resume file", err).WithContext("path", path)
	}

	doc, err := extract.FromFile(path)
	if err != nil {
		return err
	}

	if logger != nil {
		logger.Debug("Extracted resume text",
			"path", path,
			"length", len(doc.Text),
			"pages", doc.Metadata.PageCount,
			"has_images", doc.Metadata.HasImages,
			"has_complex_formatting", doc.Metadata.HasComplexFormatting)
	}

	result, err := score(ctx, types.AnalyzeInput{Text: doc.Text, Metadata: doc.Metadata})
	if err != nil {
		return err
	}

	if logger != nil {
		logger.Info("Resume scored",
			"path", path,
			"overall_score", result.OverallScore,
			"recommendations", len(result.Recommendations))
	}

	outputHandler := NewOutputHandler(logger)
	return outputHandler.HandleOutput(result, cmdConfig)
}
