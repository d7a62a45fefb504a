package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nexus-controls/plcforge/pkg/config"
	"github.com/nexus-controls/plcforge/pkg/prompts"
	"github.com/nexus-controls/plcforge/pkg/services"
	"github.com/nexus-controls/plcforge/pkg/version"
)

// healthTimeout bounds the backing-store check on /health.
const healthTimeout = 5 * time.Second

// HealthFunc reports the backing store's health. A nil func means the server
// runs on in-memory repositories.
type HealthFunc func(ctx context.Context) (any, error)

// Server is the HTTP front of the engine.
type Server struct {
	cfg     config.ServerConfig
	svc     *services.Services
	prompts *prompts.Catalog
	health  HealthFunc
	http    *http.Server
}

// NewServer assembles the router and binds every route.
func NewServer(cfg config.ServerConfig, svc *services.Services, catalog *prompts.Catalog, health HealthFunc) *Server {
	s := &Server{cfg: cfg, svc: svc, prompts: catalog, health: health}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), securityHeaders())
	s.routes(engine)

	s.http = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler: engine,
	}
	return s
}

func (s *Server) routes(engine *gin.Engine) {
	engine.GET("/health", s.handleHealth)
	engine.GET("/version", s.handleVersion)

	v1 := engine.Group("/api/v1", requireUser())

	v1.POST("/projects", s.handleCreateProject)
	v1.GET("/projects", s.handleListProjects)
	v1.GET("/projects/:id", s.handleGetProject)
	v1.DELETE("/projects/:id", s.handleDeleteProject)

	v1.POST("/projects/:id/logic", s.handleIngestLogic)
	v1.POST("/projects/:id/logic/preview", s.handlePreviewLogic)
	v1.GET("/projects/:id/stages", s.handleListStages)

	v1.GET("/stages/:id", s.handleGetStage)
	v1.PUT("/stages/:id/logic", s.handleUpdateStageLogic)
	v1.POST("/stages/:id/validate", s.handleValidateStage)
	v1.POST("/stages/:id/finalize", s.handleFinalizeStage)
	v1.GET("/stages/:id/versions", s.handleVersionHistory)
	v1.GET("/stages/:id/versions/summary", s.handleVersionSummary)
	v1.GET("/stages/:id/versions/:version", s.handleVersionByNumber)

	v1.POST("/projects/:id/generate", s.handleGenerateCode)
	v1.GET("/projects/:id/codes", s.handleListCodes)
	v1.GET("/stages/:id/code", s.handleGetStageCode)
	v1.PUT("/stages/:id/code", s.handleUpdateStageCode)

	v1.GET("/projects/:id/exports/global-labels", s.handleExportGlobalLabels)
	v1.GET("/projects/:id/exports/local-labels", s.handleExportAllLocalLabels)
	v1.GET("/stages/:id/exports/local-labels", s.handleExportStageLocalLabels)

	v1.POST("/projects/:id/safety-manual", s.handleUploadSafetyManual)
	v1.GET("/projects/:id/safety-manual", s.handleGetSafetyManual)
	v1.POST("/stages/:id/safety-check", s.handleSafetyCheck)

	v1.POST("/projects/:id/files", s.handleUploadFile)
	v1.GET("/projects/:id/files", s.handleListFiles)

	v1.GET("/prompts/:agent", s.handleGetPrompt)
	v1.PUT("/prompts/:agent", s.handleSavePrompt)
	v1.GET("/prompts/:agent/versions", s.handleListPromptVersions)
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	slog.Info("HTTP server starting", "addr", s.http.Addr, "version", version.Full())
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests within the configured timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()
	return s.http.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	if s.health == nil {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "storage": "in-memory"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	status, err := s.health(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": status,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": status})
}

func (s *Server) handleVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    version.AppName,
		"commit":  version.GitCommit,
		"version": version.Full(),
	})
}
