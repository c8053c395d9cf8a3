package handlers

import (
	"context"
	"net/http"

	"training-service/internal/progression"
	"training-service/internal/service"

	"github.com/gin-gonic/gin"
)

type LearningHandler struct {
	Service *service.LearningService
}

func NewLearningHandler(s *service.LearningService) *LearningHandler {
	return &LearningHandler{Service: s}
}

// GetBlocks returns the ordered block list with derived lock state for the
// requesting user. Role comes from the gateway headers; anything other than
// admin is treated as a learner.
func (h *LearningHandler) GetBlocks(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	role := progression.RoleLearner
	if c.GetHeader("X-User-Role") == string(progression.RoleAdmin) {
		role = progression.RoleAdmin
	}

	states, err := h.Service.GetBlocksWithLockState(context.Background(), userID, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, states)
}
