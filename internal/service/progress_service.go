package service

import (
	"context"
	"time"

	"training-service/internal/models"
	"training-service/internal/repository"

	"go.uber.org/zap"
)

type ProgressService struct {
	Blocks   *repository.BlockRepository
	Progress *repository.ProgressRepository
	Log      *zap.Logger
}

func NewProgressService(blocks *repository.BlockRepository, progress *repository.ProgressRepository, log *zap.Logger) *ProgressService {
	return &ProgressService{Blocks: blocks, Progress: progress, Log: log}
}

// RecordStart writes a started record when a learner opens a block. The
// write is best-effort: any failure is logged and swallowed so the learner
// always gets into the content.
func (s *ProgressService) RecordStart(ctx context.Context, userID, blockID string) {
	blockType := models.BlockType("")
	if block, err := s.Blocks.FindByID(ctx, blockID); err == nil {
		blockType = block.Type
	}

	now := time.Now()
	rec := &models.ProgressRecord{
		UserID:    userID,
		BlockID:   blockID,
		BlockType: blockType,
		Started:   true,
		StartedAt: &now,
	}
	if err := s.Progress.Create(ctx, rec); err != nil {
		s.Log.Warn("failed to record block start",
			zap.String("user_id", userID), zap.String("block_id", blockID), zap.Error(err))
	}
}

// RecordVideoCompletion marks a video (or document/link) block as finished.
func (s *ProgressService) RecordVideoCompletion(ctx context.Context, userID, blockID string, blockType models.BlockType) error {
	now := time.Now()
	rec := &models.ProgressRecord{
		UserID:      userID,
		BlockID:     blockID,
		BlockType:   blockType,
		Started:     true,
		Completed:   true,
		CompletedAt: &now,
	}
	return s.Progress.Create(ctx, rec)
}
