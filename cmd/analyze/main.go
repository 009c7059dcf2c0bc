// Command analyze runs one document analysis against local files and prints
// the merged JSON result. Useful for poking at prompts and parser behavior
// without standing up the HTTP server.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mfortin/dv-analyzer/internal/analysis"
	"github.com/mfortin/dv-analyzer/internal/checklist"
	"github.com/mfortin/dv-analyzer/internal/common"
	"github.com/mfortin/dv-analyzer/internal/extract"
	"github.com/mfortin/dv-analyzer/internal/llm/openrouter"
)

func main() {
	var (
		pdfPath       = flag.String("pdf", "", "path to the DV disclosure PDF")
		checklistPath = flag.String("checklist", "", "path to the XLSX validation checklist")
		apiKey        = flag.String("key", "", "OpenRouter API key (falls back to OPENROUTER_API_KEY)")
		timeout       = flag.Duration("timeout", 5*time.Minute, "overall analysis timeout")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *pdfPath == "" || *checklistPath == "" {
		fmt.Fprintln(os.Stderr, "usage: analyze -pdf <file> -checklist <file> [-key <api key>]")
		os.Exit(2)
	}

	pdfData, err := os.ReadFile(*pdfPath)
	if err != nil {
		logger.Error("read pdf", "error", err)
		os.Exit(1)
	}
	checklistData, err := os.ReadFile(*checklistPath)
	if err != nil {
		logger.Error("read checklist", "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	resolver := extract.NewResolver(cfg.Download.Timeout, logger)
	extractor := extract.NewExtractor(resolver, logger)
	loader := checklist.NewLoader(logger)
	client := openrouter.NewClient(openrouter.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Referer: cfg.LLM.Referer,
		Timeout: cfg.LLM.Timeout,
	}, logger)
	svc := analysis.NewService(extractor, resolver, loader, client, logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	resp, err := svc.Analyze(ctx, analysis.Request{
		PDFContent:       base64.StdEncoding.EncodeToString(pdfData),
		ChecklistContent: base64.StdEncoding.EncodeToString(checklistData),
		APIKey:           *apiKey,
	})
	if err != nil {
		logger.Error("analysis failed", "error", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
