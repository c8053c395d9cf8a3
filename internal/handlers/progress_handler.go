package handlers

import (
	"context"
	"net/http"

	"training-service/internal/models"
	"training-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	Progress *service.ProgressService
	Stats    *service.StatsService
}

func NewProgressHandler(progress *service.ProgressService, stats *service.StatsService) *ProgressHandler {
	return &ProgressHandler{Progress: progress, Stats: stats}
}

type startRequest struct {
	BlockID string `json:"block_id" binding:"required"`
}

// RecordStart never fails from the caller's point of view; the learner
// proceeds into the content whether or not the write landed.
func (h *ProgressHandler) RecordStart(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")

	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.Progress.RecordStart(context.Background(), userID, req.BlockID)
	c.JSON(http.StatusAccepted, gin.H{"message": "Started"})
}

type completeRequest struct {
	BlockID   string           `json:"block_id" binding:"required"`
	BlockType models.BlockType `json:"block_type"`
}

func (h *ProgressHandler) RecordCompletion(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")

	var req completeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.BlockType == "" {
		req.BlockType = models.BlockTypeVideo
	}

	if err := h.Progress.RecordVideoCompletion(context.Background(), userID, req.BlockID, req.BlockType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Completed"})
}

func (h *ProgressHandler) GetUserStats(c *gin.Context) {
	stats, err := h.Stats.GetUserStats(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
