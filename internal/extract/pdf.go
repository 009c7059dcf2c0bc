package extract

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"github.com/mfortin/dv-analyzer/internal/common"
)

// Extractor produces normalized plain text from disclosure PDFs.
type Extractor struct {
	resolver *Resolver
	logger   *slog.Logger
}

func NewExtractor(resolver *Resolver, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{resolver: resolver, logger: logger}
}

// Text resolves a content field (URL or base64) and extracts normalized text.
func (e *Extractor) Text(ctx context.Context, content string) (string, error) {
	data, err := e.resolver.Resolve(ctx, content)
	if err != nil {
		return "", err
	}
	return e.PDFText(data)
}

// PDFText extracts text from every page and normalizes it: lowercased, with
// newlines flattened to spaces and double spaces collapsed, so the conformity
// scanner can do plain substring checks against it.
func (e *Extractor) PDFText(data []byte) (string, error) {
	start := time.Now()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", common.NewAppError("PDF_ERROR", fmt.Sprintf("open pdf: %v", err), common.ErrInternal)
	}

	var sb strings.Builder
	pages := reader.NumPage()
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			e.logger.Warn("extract.pdf.page_error", "page", i, "error", err)
			continue
		}
		sb.WriteString(text)
	}

	out := Normalize(sb.String())
	e.logger.Info("extract.pdf.ok",
		"pages", pages,
		"chars", len(out),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// Normalize lowercases and flattens whitespace the same way the analysis
// prompts and the scanner expect.
func Normalize(text string) string {
	out := strings.ToLower(text)
	out = strings.ReplaceAll(out, "\n", " ")
	out = strings.ReplaceAll(out, "  ", " ")
	return out
}
