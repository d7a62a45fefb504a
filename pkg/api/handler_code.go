package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexus-controls/plcforge/pkg/models"
	"github.com/nexus-controls/plcforge/pkg/services"
)

func (s *Server) handleGenerateCode(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	codes, err := s.svc.Codes.GenerateProjectCode(c.Request.Context(), id, userID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"codes": codes})
}

func (s *Server) handleListCodes(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	codes, err := s.svc.Codes.ListByProject(c.Request.Context(), id, userID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"codes": codes})
}

func (s *Server) handleGetStageCode(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	code, err := s.svc.Codes.GetByStage(c.Request.Context(), id, userID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, code)
}

type updateCodeRequest struct {
	ProgramBody string `json:"program_body"`
	// Omitted label lists leave the stored tables untouched; explicit empty
	// lists clear them.
	GlobalLabels *[]models.Label `json:"global_labels"`
	LocalLabels  *[]models.Label `json:"local_labels"`
}

func (s *Server) handleUpdateStageCode(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req updateCodeRequest
	if !bindJSON(c, &req) {
		return
	}

	code, err := s.svc.Codes.UpdateCode(c.Request.Context(), id, userID(c), services.CodeUpdate{
		ProgramBody:  req.ProgramBody,
		GlobalLabels: req.GlobalLabels,
		LocalLabels:  req.LocalLabels,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, code)
}

func (s *Server) handleExportGlobalLabels(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	data, err := s.svc.Codes.ExportGlobalLabels(c.Request.Context(), id, userID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	sendLabelCSV(c, fmt.Sprintf("project_%d_global_labels.csv", id), data)
}

func (s *Server) handleExportAllLocalLabels(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	data, err := s.svc.Codes.ExportAllLocalLabels(c.Request.Context(), id, userID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	sendLabelCSV(c, fmt.Sprintf("project_%d_local_labels.csv", id), data)
}

func (s *Server) handleExportStageLocalLabels(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	data, err := s.svc.Codes.ExportStageLocalLabels(c.Request.Context(), id, userID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	sendLabelCSV(c, fmt.Sprintf("stage_%d_local_labels.csv", id), data)
}
