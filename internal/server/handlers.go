package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mfortin/dv-analyzer/internal/analysis"
	"github.com/mfortin/dv-analyzer/internal/common"
	"github.com/mfortin/dv-analyzer/internal/pdfgen"
)

type analyzeRequest struct {
	PDFContent       string `json:"pdf_content"`
	ChecklistContent string `json:"checklist_content"`
	APIKey           string `json:"api_key"`
}

type convertRequest struct {
	Text string `json:"text" form:"text"`
}

// errorBody mirrors the {"detail": ...} error shape clients already consume.
func errorBody(msg string) gin.H {
	return gin.H{"detail": msg}
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid request body: "+err.Error()))
		return
	}
	if req.PDFContent == "" || req.ChecklistContent == "" {
		c.JSON(http.StatusBadRequest, errorBody("Missing required parameters: pdf_content and checklist_content are required"))
		return
	}

	s.logger.Info("server.analyze.request",
		"request_id", common.RequestIDFromContext(c.Request.Context()),
		"pdf_is_url", strings.HasPrefix(req.PDFContent, "http"),
		"api_key_provided", req.APIKey != "",
	)

	resp, err := s.svc.Analyze(c.Request.Context(), analysis.Request{
		PDFContent:       req.PDFContent,
		ChecklistContent: req.ChecklistContent,
		APIKey:           req.APIKey,
	})
	if err != nil {
		s.logger.Error("server.analyze.failed",
			"request_id", common.RequestIDFromContext(c.Request.Context()),
			"error", err,
		)
		c.JSON(common.HTTPStatus(err), errorBody(err.Error()))
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleConvert(c *gin.Context) {
	var req convertRequest
	if strings.Contains(c.ContentType(), "application/json") {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorBody("invalid request body: "+err.Error()))
			return
		}
	} else {
		req.Text = c.PostForm("text")
	}

	if req.Text == "" {
		c.JSON(http.StatusBadRequest, errorBody("No text provided"))
		return
	}

	data, err := pdfgen.Render(req.Text)
	if err != nil {
		s.logger.Error("server.convert.failed",
			"request_id", common.RequestIDFromContext(c.Request.Context()),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, errorBody(err.Error()))
		return
	}

	c.Header("Content-Disposition", "attachment; filename=converted.pdf")
	c.Data(http.StatusOK, "application/pdf", data)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
