package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleUploadFile stores a planning document. With ?ingest=true the
// extracted text is planned and persisted as the project's stages in the
// same request.
func (s *Server) handleUploadFile(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	filename, content, ok := formFile(c, "file")
	if !ok {
		return
	}

	record, text, err := s.svc.Files.Upload(c.Request.Context(), id, userID(c), filename, content)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if c.Query("ingest") != "true" {
		c.JSON(http.StatusCreated, gin.H{"file": record})
		return
	}

	result, err := s.svc.Planner.IngestLogic(c.Request.Context(), id, userID(c), text)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"file": record, "plan": result.Plan, "stages": result.Stages})
}

func (s *Server) handleListFiles(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	files, err := s.svc.Files.List(c.Request.Context(), id, userID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"files": files})
}
