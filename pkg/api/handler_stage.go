package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleGetStage(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	stage, err := s.svc.Stages.Get(c.Request.Context(), id, userID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stage)
}

type updateLogicRequest struct {
	EditedLogic string `json:"edited_logic"`
}

func (s *Server) handleUpdateStageLogic(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req updateLogicRequest
	if !bindJSON(c, &req) {
		return
	}

	stage, err := s.svc.Stages.UpdateLogic(c.Request.Context(), id, userID(c), req.EditedLogic)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stage)
}

func (s *Server) handleValidateStage(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	report, err := s.svc.Stages.Validate(c.Request.Context(), id, userID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleFinalizeStage(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	stage, err := s.svc.Stages.Finalize(c.Request.Context(), id, userID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stage)
}

func (s *Server) handleVersionHistory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	entries, err := s.svc.Stages.VersionHistory(c.Request.Context(), id, userID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"versions": entries})
}

func (s *Server) handleVersionSummary(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	summary, err := s.svc.Stages.VersionSummary(c.Request.Context(), id, userID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) handleVersionByNumber(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	entry, err := s.svc.Stages.VersionByNumber(c.Request.Context(), id, userID(c), c.Param("version"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}
