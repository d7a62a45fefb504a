package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ingestLogicRequest struct {
	ControlLogic string `json:"control_logic"`
}

func (s *Server) handleIngestLogic(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req ingestLogicRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := s.svc.Planner.IngestLogic(c.Request.Context(), id, userID(c), req.ControlLogic)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (s *Server) handlePreviewLogic(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req ingestLogicRequest
	if !bindJSON(c, &req) {
		return
	}

	plan, err := s.svc.Planner.Preview(c.Request.Context(), id, userID(c), req.ControlLogic)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (s *Server) handleListStages(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	stages, err := s.svc.Stages.List(c.Request.Context(), id, userID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stages": stages})
}
