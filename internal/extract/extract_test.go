package extract

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "atsgauge/internal/errors"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapses spaces", "a   b\t\tc", "a b c"},
		{"collapses newlines", "line one\n\n\nline two", "line one line two"},
		{"trims", "  padded  ", "padded"},
		{"empty", "   \n \t ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.in); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromTextDefaults(t *testing.T) {
	doc := FromText("  some   resume\ntext  ")
	if doc.Text != "some resume text" {
		t.Errorf("text = %q", doc.Text)
	}
	if doc.Metadata.PageCount != 1 {
		t.Errorf("pageCount = %d, want 1", doc.Metadata.PageCount)
	}
	if doc.Metadata.HasImages || doc.Metadata.HasComplexFormatting {
		t.Error("text input should not flag images or complex formatting")
	}
}

func TestFromFilePlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	content := strings.Repeat("experienced developer ", 10)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := FromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Text != strings.TrimSpace(content) {
		t.Errorf("text = %q", doc.Text)
	}
}

func TestFromFileErrors(t *testing.T) {
	dir := t.TempDir()
	short := filepath.Join(dir, "short.txt")
	if err := os.WriteFile(short, []byte("tiny"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		code string
	}{
		{"missing file", filepath.Join(dir, "absent.txt"), apperrors.ErrCodeFileNotFound},
		{"unsupported extension", filepath.Join(dir, "resume.docx"), apperrors.ErrCodeUnsupportedFile},
		{"too short", short, apperrors.ErrCodeExtractionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromFile(tt.path)
			var appErr *apperrors.AppError
			if !errors.As(err, &appErr) {
				t.Fatalf("error = %v, want *AppError", err)
			}
			if appErr.Code != tt.code {
				t.Errorf("code = %s, want %s", appErr.Code, tt.code)
			}
		})
	}
}

func TestParseContentStream(t *testing.T) {
	stream := []byte("BT\n/F1 12 Tf\n(Hello) Tj\n10 0 Td\n[(wor) -20 (ld)] TJ\nT*\n(next line) Tj\nET\n")
	text, ops := parseContentStream(stream)

	if !strings.Contains(text, "Hello") || !strings.Contains(text, "world") {
		t.Errorf("text = %q, want Hello and world", text)
	}
	if !strings.Contains(text, "next line") {
		t.Errorf("text = %q, want next line", text)
	}
	if ops != 1 {
		t.Errorf("positioning ops = %d, want 1", ops)
	}
}

func TestDecodePDFString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain`, "plain"},
		{`a\(b\)c`, "a(b)c"},
		{`tab\there`, "tab\there"},
		{`octal\040space`, "octal space"},
		{`back\\slash`, `back\slash`},
	}
	for _, tt := range tests {
		if got := decodePDFString([]byte(tt.in)); got != tt.want {
			t.Errorf("decodePDFString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
