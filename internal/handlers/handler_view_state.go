package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/currency_board/internal/apperrors"
	portssvc "github.com/SscSPs/currency_board/internal/core/ports/services"
	"github.com/SscSPs/currency_board/internal/dto"
	"github.com/SscSPs/currency_board/internal/middleware"
	"github.com/gin-gonic/gin"
)

// viewStateHandler exposes the session state and accepts rendering intents.
type viewStateHandler struct {
	session portssvc.SessionSvcFacade
}

// newViewStateHandler creates a new viewStateHandler.
func newViewStateHandler(session portssvc.SessionSvcFacade) *viewStateHandler {
	return &viewStateHandler{session: session}
}

// registerViewStateRoutes registers the state and intent routes.
func registerViewStateRoutes(rg *gin.RouterGroup, session portssvc.SessionSvcFacade) {
	h := newViewStateHandler(session)

	rg.GET("/state", h.getState)
	rg.POST("/base-currency", h.selectBaseCurrency)
	rg.POST("/favorites/:code/toggle", h.toggleFavorite)
	rg.PUT("/sort", h.setSortMode)
	rg.PUT("/content-mode", h.setContentMode)
}

func (h *viewStateHandler) getState(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToViewStateResponse(h.session.Snapshot()))
}

func (h *viewStateHandler) selectBaseCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.SelectBaseCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SelectBaseCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to select base currency", slog.String("currency_code", req.Code))
	if err := h.session.SelectBaseCurrency(c.Request.Context(), req.Code); err != nil {
		writeIntentError(c, logger, err, "Failed to select base currency")
		return
	}
	c.JSON(http.StatusOK, dto.ToViewStateResponse(h.session.Snapshot()))
}

func (h *viewStateHandler) toggleFavorite(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	code := strings.ToUpper(c.Param("code"))
	if !dto.IsCurrencyCode(code) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
		return
	}

	logger = logger.With(slog.String("currency_code", code))
	logger.Info("Received request to toggle favorite")
	if err := h.session.ToggleFavorite(c.Request.Context(), code); err != nil {
		writeIntentError(c, logger, err, "Failed to toggle favorite")
		return
	}
	c.JSON(http.StatusOK, dto.ToViewStateResponse(h.session.Snapshot()))
}

func (h *viewStateHandler) setSortMode(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.SetSortModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetSortMode", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.session.SetSortMode(c.Request.Context(), *req.ByAlphabet); err != nil {
		writeIntentError(c, logger, err, "Failed to sort content")
		return
	}
	c.JSON(http.StatusOK, dto.ToViewStateResponse(h.session.Snapshot()))
}

func (h *viewStateHandler) setContentMode(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.SetContentModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetContentMode", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.session.SetContentMode(c.Request.Context(), *req.FavoritesOnly); err != nil {
		writeIntentError(c, logger, err, "Failed to switch content mode")
		return
	}
	c.JSON(http.StatusOK, dto.ToViewStateResponse(h.session.Snapshot()))
}

// writeIntentError maps service errors onto HTTP statuses.
func writeIntentError(c *gin.Context, logger *slog.Logger, err error, msg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
