package extract

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mfortin/dv-analyzer/internal/common"
)

// Resolver turns request content fields into raw bytes. A field is either a
// URL to fetch or the file content itself, base64-encoded.
type Resolver struct {
	client *http.Client
	logger *slog.Logger
}

func NewResolver(timeout time.Duration, logger *slog.Logger) *Resolver {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Resolve returns the raw bytes behind a content field.
func (r *Resolver) Resolve(ctx context.Context, content string) ([]byte, error) {
	if IsURL(content) {
		return r.download(ctx, content)
	}
	if decoded, err := decodeBase64(content); err == nil {
		return decoded, nil
	}
	// Not a URL and not valid base64: treat as raw bytes.
	return []byte(content), nil
}

// IsURL reports whether content should be fetched rather than decoded.
func IsURL(content string) bool {
	return strings.HasPrefix(content, "http://") || strings.HasPrefix(content, "https://")
}

func (r *Resolver) download(ctx context.Context, url string) ([]byte, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, common.NewAppError("DOWNLOAD_ERROR", fmt.Sprintf("build request for %s", url), common.ErrDownload)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Error("extract.download.send_error", "url", url, "error", err)
		return nil, common.NewAppError("DOWNLOAD_ERROR", fmt.Sprintf("failed to download content from URL: %v", err), common.ErrDownload)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			r.logger.Warn("extract.download.body_close_error", "url", url, "error", cerr)
		}
	}()

	if resp.StatusCode/100 != 2 {
		r.logger.Error("extract.download.bad_status", "url", url, "status", resp.StatusCode)
		return nil, common.NewAppError("DOWNLOAD_ERROR", fmt.Sprintf("failed to download content from URL: status %d", resp.StatusCode), common.ErrDownload)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, common.NewAppError("DOWNLOAD_ERROR", fmt.Sprintf("failed to download content from URL: %v", err), common.ErrDownload)
	}

	r.logger.Info("extract.download.ok",
		"url", url,
		"bytes", len(data),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return data, nil
}

func decodeBase64(content string) ([]byte, error) {
	trimmed := strings.TrimSpace(content)
	// Frontends sometimes send data URLs; strip the prefix before decoding.
	if i := strings.Index(trimmed, ";base64,"); i >= 0 {
		trimmed = trimmed[i+len(";base64,"):]
	}
	if decoded, err := base64.StdEncoding.DecodeString(trimmed); err == nil {
		return decoded, nil
	}
	return base64.RawStdEncoding.DecodeString(trimmed)
}
