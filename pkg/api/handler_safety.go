package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleUploadSafetyManual(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	filename, content, ok := formFile(c, "file")
	if !ok {
		return
	}

	path, err := s.svc.Files.SavePath(filename, content)
	if err != nil {
		abortWithError(c, err)
		return
	}

	manual, err := s.svc.Safety.UploadManual(c.Request.Context(), id, userID(c), filename, path)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, manual)
}

func (s *Server) handleGetSafetyManual(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	manual, err := s.svc.Safety.GetManual(c.Request.Context(), id, userID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, manual)
}

func (s *Server) handleSafetyCheck(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	report, err := s.svc.Safety.CheckStage(c.Request.Context(), id, userID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
