// Package api exposes the engine over HTTP with gin. It owns request
// decoding, user identification, and the mapping from service errors onto
// status codes; all behavior lives in the service layer.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexus-controls/plcforge/pkg/codegen"
	"github.com/nexus-controls/plcforge/pkg/llm"
	"github.com/nexus-controls/plcforge/pkg/planner"
	"github.com/nexus-controls/plcforge/pkg/retrieval"
	"github.com/nexus-controls/plcforge/pkg/services"
)

// mapServiceError maps service-layer errors to an HTTP status and message.
func mapServiceError(err error) (int, string) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, validErr.Error()
	}
	var inputErr *planner.InputError
	if errors.As(err, &inputErr) {
		return http.StatusBadRequest, inputErr.Error()
	}
	if errors.Is(err, services.ErrForbidden) {
		return http.StatusForbidden, "not authorized for this project"
	}
	if errors.Is(err, services.ErrNotFound) {
		return http.StatusNotFound, "resource not found"
	}
	if errors.Is(err, services.ErrNoCodeForStage) {
		return http.StatusNotFound, "no generated code for this stage"
	}
	if errors.Is(err, services.ErrNotValidated) {
		return http.StatusConflict, "stage must be validated first"
	}
	var notValidated *services.StagesNotValidatedError
	if errors.As(err, &notValidated) {
		return http.StatusConflict, notValidated.Error()
	}
	var notReady *retrieval.NotReadyError
	if errors.As(err, &notReady) {
		return http.StatusServiceUnavailable, notReady.Error()
	}
	var genErr *services.GenerationError
	if errors.As(err, &genErr) {
		return http.StatusBadGateway, genErr.Error()
	}
	var parseErr *codegen.ParseError
	if errors.As(err, &parseErr) {
		return http.StatusBadGateway, parseErr.Error()
	}
	var llmErr *llm.Error
	if errors.As(err, &llmErr) {
		return http.StatusBadGateway, "upstream model request failed"
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return http.StatusInternalServerError, "internal server error"
}

// abortWithError writes the mapped error response and stops the handler
// chain.
func abortWithError(c *gin.Context, err error) {
	status, message := mapServiceError(err)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
