// Package server exposes the analysis pipeline over HTTP.
package server

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mfortin/dv-analyzer/internal/analysis"
	"github.com/mfortin/dv-analyzer/internal/common"
)

// Server wires the analysis service to the gin router.
type Server struct {
	svc    *analysis.Service
	logger *slog.Logger
}

func New(svc *analysis.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{svc: svc, logger: logger}
}

// Router builds the gin engine with middleware and routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()

	// Correlation IDs: honor the caller's header, generate otherwise.
	r.Use(func(c *gin.Context) {
		cid := c.GetHeader("x-correlation-id")
		if cid == "" {
			cid = uuid.NewString()
		}
		c.Request = c.Request.WithContext(common.WithRequestID(c.Request.Context(), cid))
		c.Header("x-correlation-id", cid)
		c.Next()
	})

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AddAllowMethods("GET", "POST", "OPTIONS")
	corsConfig.AddAllowHeaders("Origin", "Content-Type", "Authorization")
	r.Use(cors.New(corsConfig))

	r.Use(gin.Recovery())

	r.POST("/analyze", s.handleAnalyze)
	r.POST("/convert", s.handleConvert)
	r.GET("/health", s.handleHealth)

	return r
}
