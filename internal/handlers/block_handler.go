package handlers

import (
	"context"
	"errors"
	"net/http"

	"training-service/internal/models"
	"training-service/internal/service"

	"github.com/gin-gonic/gin"
)

type BlockHandler struct {
	Service *service.BlockService
}

func NewBlockHandler(s *service.BlockService) *BlockHandler {
	return &BlockHandler{Service: s}
}

func (h *BlockHandler) ListBlocks(c *gin.Context) {
	blocks, err := h.Service.GetAllBlocks(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, blocks)
}

func (h *BlockHandler) GetBlock(c *gin.Context) {
	block, err := h.Service.GetBlock(context.Background(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Block not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, block)
}

func (h *BlockHandler) CreateBlock(c *gin.Context) {
	var block models.Block
	if err := c.ShouldBindJSON(&block); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.CreateBlock(context.Background(), &block); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrValidation) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, block)
}

func (h *BlockHandler) UpdateBlock(c *gin.Context) {
	var block models.Block
	if err := c.ShouldBindJSON(&block); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.UpdateBlock(context.Background(), c.Param("id"), &block); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Block not found"})
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Block updated"})
}

func (h *BlockHandler) DeleteBlock(c *gin.Context) {
	if err := h.Service.DeleteBlock(context.Background(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Block not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Block deleted"})
}
