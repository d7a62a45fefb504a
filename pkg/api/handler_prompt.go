package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexus-controls/plcforge/pkg/prompts"
)

func (s *Server) handleGetPrompt(c *gin.Context) {
	agent := c.Param("agent")
	version := c.Query("version")

	content, err := s.prompts.Load(agent, version)
	if err != nil {
		if errors.Is(err, prompts.ErrPromptNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "prompt not found"})
			return
		}
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"agent": agent, "content": content})
}

type savePromptRequest struct {
	Content string `json:"content"`
}

func (s *Server) handleSavePrompt(c *gin.Context) {
	agent := c.Param("agent")
	var req savePromptRequest
	if !bindJSON(c, &req) {
		return
	}

	version, err := s.prompts.Save(agent, req.Content)
	if err != nil {
		if errors.Is(err, prompts.ErrPromptNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown agent"})
			return
		}
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"agent": agent, "version": version})
}

func (s *Server) handleListPromptVersions(c *gin.Context) {
	agent := c.Param("agent")

	versions, err := s.prompts.List(agent)
	if err != nil {
		if errors.Is(err, prompts.ErrPromptNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown agent"})
			return
		}
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"agent": agent, "versions": versions})
}
