package handlers

import (
	"context"
	"errors"
	"net/http"

	"training-service/internal/service"

	"github.com/gin-gonic/gin"
)

type SimulationHandler struct {
	Service *service.SimulationService
}

func NewSimulationHandler(s *service.SimulationService) *SimulationHandler {
	return &SimulationHandler{Service: s}
}

type simulationActionRequest struct {
	Action        string `json:"action"`
	TimeRemaining int    `json:"time_remaining"`
	TimedOut      bool   `json:"timed_out"`
}

// ScoreAction is the interactive step: it scores the learner's reaction but
// persists nothing.
func (h *SimulationHandler) ScoreAction(c *gin.Context) {
	blockID := c.Param("blockId")

	var req simulationActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Service.ScoreAction(context.Background(), blockID, req.Action, req.TimeRemaining, req.TimedOut)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Block not found"})
		case errors.Is(err, service.ErrScenarioUnavailable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Scenario content is unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

type simulationCompletionRequest struct {
	SimulationID     string `json:"simulation_id"`
	Score            int    `json:"score"`
	Action           string `json:"action"`
	TimeSpentSeconds int    `json:"time_spent_seconds"`
}

// RecordCompletion persists the attempt and the completion progress record.
func (h *SimulationHandler) RecordCompletion(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	blockID := c.Param("blockId")

	var req simulationCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	clamped, err := h.Service.RecordCompletion(context.Background(), userID, blockID, req.SimulationID, req.Score, req.Action, req.TimeSpentSeconds)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "score": clamped})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"score": clamped})
}

func (h *SimulationHandler) GetAttemptsByUser(c *gin.Context) {
	userID := c.Param("id")
	attempts, err := h.Service.GetAttemptsByUser(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, attempts)
}
