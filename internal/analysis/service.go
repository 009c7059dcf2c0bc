// Package analysis orchestrates one document analysis: text extraction,
// checklist scan, the two model calls, and report parsing.
package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/mfortin/dv-analyzer/internal/checklist"
	"github.com/mfortin/dv-analyzer/internal/common"
	"github.com/mfortin/dv-analyzer/internal/llm"
	"github.com/mfortin/dv-analyzer/internal/report"
)

// DocumentExtractor resolves a content field and returns normalized text.
type DocumentExtractor interface {
	Text(ctx context.Context, content string) (string, error)
}

// ContentResolver resolves a content field to raw bytes.
type ContentResolver interface {
	Resolve(ctx context.Context, content string) ([]byte, error)
}

// ChecklistLoader parses workbook bytes into checklist rows.
type ChecklistLoader interface {
	Load(data []byte) ([]checklist.Row, error)
}

// Request carries the /analyze inputs.
type Request struct {
	PDFContent       string
	ChecklistContent string
	APIKey           string
}

// Response merges the parsed specialized report with the standard narrative.
type Response struct {
	JSONOutput     report.Report `json:"json_output"`
	StandardReport string        `json:"standard_report"`
}

type Service struct {
	extractor DocumentExtractor
	resolver  ContentResolver
	loader    ChecklistLoader
	completer llm.Completer
	logger    *slog.Logger
}

func NewService(
	extractor DocumentExtractor,
	resolver ContentResolver,
	loader ChecklistLoader,
	completer llm.Completer,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		extractor: extractor,
		resolver:  resolver,
		loader:    loader,
		completer: completer,
		logger:    logger,
	}
}

// Analyze runs the full pipeline. The specialized path is load-bearing: any
// failure there fails the request. The standard narrative is best-effort and
// degrades to an empty string.
func (s *Service) Analyze(ctx context.Context, req Request) (Response, error) {
	start := time.Now()

	if req.PDFContent == "" || req.ChecklistContent == "" {
		return Response{}, common.NewAppError("MISSING_INPUT",
			"Missing required parameters: pdf_content and checklist_content are required",
			common.ErrInvalidInput)
	}

	pdfText, err := s.extractor.Text(ctx, req.PDFContent)
	if err != nil {
		return Response{}, err
	}
	s.logger.Info("analysis.pdf_text.ok", "chars", len(pdfText))

	data, err := s.resolver.Resolve(ctx, req.ChecklistContent)
	if err != nil {
		return Response{}, err
	}
	rows, err := s.loader.Load(data)
	if err != nil {
		return Response{}, err
	}
	s.logger.Info("analysis.checklist.ok", "rows", len(rows))

	table := llm.RenderChecklistTable(rows)
	completer := s.completer.WithAPIKey(req.APIKey)

	specialized, err := completer.Complete(ctx, llm.BuildSpecializedPrompt(pdfText, table))
	if err != nil {
		s.logger.Error("analysis.specialized.failed", "error", err)
		return Response{}, err
	}
	parsed := report.Parse(specialized)
	s.logger.Info("analysis.specialized.ok",
		"completion_len", len(specialized),
		"actions", len(parsed.RecommendedActions),
		"warnings", len(parsed.Warnings),
	)

	findings := checklist.RenderFindings(checklist.Scan(pdfText, rows))
	standard, err := completer.Complete(ctx, llm.BuildStandardPrompt(findings, table))
	if err != nil {
		// The narrative is a bonus on top of the structured result; keep the
		// request alive and return it empty.
		s.logger.Warn("analysis.standard.failed", "error", err)
		standard = ""
	}

	s.logger.Info("analysis.ok", "elapsed_ms", time.Since(start).Milliseconds())
	return Response{JSONOutput: parsed, StandardReport: standard}, nil
}
