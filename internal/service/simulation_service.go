package service

import (
	"context"
	"errors"
	"time"

	"training-service/internal/models"
	"training-service/internal/repository"
	"training-service/internal/scoring"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type SimulationService struct {
	Blocks   *repository.BlockRepository
	Results  *repository.SimulationResultRepository
	Progress *repository.ProgressRepository
	Users    *repository.UserRepository
	Log      *zap.Logger
}

func NewSimulationService(blocks *repository.BlockRepository, results *repository.SimulationResultRepository, progress *repository.ProgressRepository, users *repository.UserRepository, log *zap.Logger) *SimulationService {
	return &SimulationService{Blocks: blocks, Results: results, Progress: progress, Users: users, Log: log}
}

// ScoreAction runs the interactive scoring step for a phishing scenario.
// timedOut selects the forced-zero path without any action lookup. Nothing
// is persisted here; completion is a separate call so abandoning mid-scenario
// leaves no record.
func (s *SimulationService) ScoreAction(ctx context.Context, blockID, action string, timeRemaining int, timedOut bool) (*scoring.ActionResult, error) {
	block, err := s.Blocks.FindByID(ctx, blockID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if block.Type != models.BlockTypeSimulation || block.Scenario == nil {
		return nil, ErrScenarioUnavailable
	}

	var res scoring.ActionResult
	if timedOut {
		res = scoring.Timeout()
	} else {
		res = scoring.ScoreAction(block.Scenario, action, timeRemaining)
	}
	return &res, nil
}

// RecordCompletion persists one simulation attempt: a raw-score history row
// (always a new insert) plus a completion progress record carrying the
// clamped display score. Returns the clamped score. Write failures are
// logged, not returned; the learner sees their score regardless, the same
// policy as quiz submission.
func (s *SimulationService) RecordCompletion(ctx context.Context, userID, blockID, simulationID string, rawScore int, action string, timeSpentSeconds int) (int, error) {
	clamped := scoring.Clamp(rawScore)
	now := time.Now()

	attempt := &models.SimulationResult{
		UserID:           userID,
		SimulationID:     simulationID,
		BlockID:          blockID,
		Score:            rawScore,
		Action:           action,
		TimeSpentSeconds: timeSpentSeconds,
		CompletedAt:      now,
	}
	if err := s.Results.Create(ctx, attempt); err != nil {
		s.Log.Error("failed to persist simulation attempt",
			zap.String("user_id", userID), zap.String("block_id", blockID), zap.Error(err))
	}

	score := float64(clamped)
	rec := &models.ProgressRecord{
		UserID:      userID,
		BlockID:     blockID,
		BlockType:   models.BlockTypeSimulation,
		Started:     true,
		Completed:   true,
		Score:       &score,
		CompletedAt: &now,
	}
	if err := s.Progress.Create(ctx, rec); err != nil {
		s.Log.Error("failed to persist simulation completion record",
			zap.String("user_id", userID), zap.String("block_id", blockID), zap.Error(err))
	}

	if err := s.Users.AddCompletedBlock(ctx, userID, blockID); err != nil {
		s.Log.Warn("failed to update completed-blocks list",
			zap.String("user_id", userID), zap.String("block_id", blockID), zap.Error(err))
	}

	return clamped, nil
}

// GetAttemptsByUser lists a user's simulation history, newest data included;
// attempts are never deduplicated.
func (s *SimulationService) GetAttemptsByUser(ctx context.Context, userID string) ([]models.SimulationResult, error) {
	return s.Results.FindByUser(ctx, userID)
}
