// Package extract turns resume files into analyzable plain text plus
// document metadata. The scoring engine never reads files itself; it
// consumes what this package produces.
package extract

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	pdftypes "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"atsgauge/internal/errors"
	"atsgauge/internal/types"
)

// MinExtractedLength is the point below which extracted text is treated
// as a failed extraction (scanned pages, image-only PDFs).
const MinExtractedLength = 50

// pages with many positioning operators usually carry tables or
// multi-column layouts
const complexOpsPerPage = 50

// pages that render almost no text while the document carries image
// streams are probably graphics
const sparsePageChars = 100

var whitespaceRun = regexp.MustCompile(`\s+`)

// CleanText normalizes raw extracted text: whitespace runs collapse to
// a single space and the result is trimmed. Scoring operates on this
// cleaned form.
func CleanText(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// FromText wraps already-extracted text as a document with default
// metadata.
func FromText(text string) types.ExtractedDocument {
	return types.ExtractedDocument{
		Text:     CleanText(text),
		Metadata: types.ResumeMetadata{PageCount: 1},
	}
}

// FromFile reads a resume file and extracts its text. PDF files go
// through structural extraction; anything else is treated as plain
// text.
func FromFile(path string) (types.ExtractedDocument, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return fromPDF(path)
	case ".txt", ".md", ".text", "":
		return fromPlainText(path)
	default:
		return types.ExtractedDocument{}, errors.NewValidationError(
			errors.ErrCodeUnsupportedFile,
			"unsupported resume file type",
			nil,
		).WithContext("path", path)
	}
}

func fromPlainText(path string) (types.ExtractedDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.ExtractedDocument{}, errors.NewIOError(
				errors.ErrCodeFileNotFound, "resume file does not exist", err,
			).WithContext("path", path)
		}
		return types.ExtractedDocument{}, errors.NewIOError(
			errors.ErrCodeFileNotReadable, "failed to read resume file", err,
		).WithContext("path", path)
	}

	doc := FromText(string(data))
	if err := checkExtractedLength(doc.Text, path); err != nil {
		return types.ExtractedDocument{}, err
	}
	return doc, nil
}

func fromPDF(path string) (types.ExtractedDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.ExtractedDocument{}, errors.NewIOError(
				errors.ErrCodeFileNotFound, "resume file does not exist", err,
			).WithContext("path", path)
		}
		return types.ExtractedDocument{}, errors.NewIOError(
			errors.ErrCodeFileNotReadable, "failed to open resume file", err,
		).WithContext("path", path)
	}
	defer f.Close()

	ctx, err := api.ReadValidateAndOptimize(f, model.NewDefaultConfiguration())
	if err != nil {
		return types.ExtractedDocument{}, errors.NewExtractionError(
			errors.ErrCodeExtractionFailed, "failed to parse PDF", err,
		).WithContext("path", path)
	}

	hasImages := detectImageStreams(ctx)

	meta := types.ResumeMetadata{
		PageCount: ctx.PageCount,
		HasImages: false,
	}

	var all strings.Builder
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		pageText, positionOps := extractPageText(ctx, pageNr)

		if positionOps > complexOpsPerPage {
			meta.HasComplexFormatting = true
		}
		if hasImages && utf8.RuneCountInString(strings.TrimSpace(pageText)) < sparsePageChars {
			meta.HasImages = true
		}

		if pageText == "" {
			continue
		}
		if all.Len() > 0 {
			all.WriteByte('\n')
		}
		all.WriteString(pageText)
	}

	text := CleanText(all.String())
	if err := checkExtractedLength(text, path); err != nil {
		return types.ExtractedDocument{}, err
	}

	return types.ExtractedDocument{Text: text, Metadata: meta}, nil
}

func checkExtractedLength(text, path string) error {
	if n := utf8.RuneCountInString(text); n < MinExtractedLength {
		return errors.NewExtractionError(
			errors.ErrCodeExtractionFailed,
			"extracted text is too short; the file may be scanned or image-only",
			nil,
		).WithContext("path", path).WithContext("length", n)
	}
	return nil
}

// extractPageText pulls text out of one page's content stream and
// counts text-positioning operators as a layout-complexity signal.
func extractPageText(ctx *model.Context, pageNr int) (string, int) {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil {
		return "", 0
	}
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return "", 0
	}
	return parseContentStream(data)
}

// detectImageStreams reports whether the PDF carries image XObjects.
func detectImageStreams(ctx *model.Context) bool {
	if ctx.Optimize != nil {
		for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
			if len(pdfcpu.ImageObjNrs(ctx, pageNr)) > 0 {
				return true
			}
		}
	}
	for _, entry := range ctx.Table {
		if entry == nil || entry.Free || entry.Compressed {
			continue
		}
		sd, ok := entry.Object.(pdftypes.StreamDict)
		if !ok {
			continue
		}
		if subtype, found := sd.Find("Subtype"); found {
			if name, isName := subtype.(pdftypes.Name); isName && name == "Image" {
				return true
			}
		}
	}
	return false
}
