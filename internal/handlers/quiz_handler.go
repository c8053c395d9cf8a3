package handlers

import (
	"context"
	"errors"
	"net/http"

	"training-service/internal/service"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	Service *service.QuizService
}

func NewQuizHandler(s *service.QuizService) *QuizHandler {
	return &QuizHandler{Service: s}
}

type submitQuizRequest struct {
	Answers map[string]int `json:"answers" binding:"required"`
}

func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	blockID := c.Param("blockId")

	var req submitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Service.SubmitQuiz(context.Background(), userID, blockID, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Block not found"})
		case errors.Is(err, service.ErrQuizUnavailable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Quiz content is unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *QuizHandler) GetResultsByUser(c *gin.Context) {
	userID := c.Param("id")
	results, err := h.Service.GetResultsByUser(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, results)
}
