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

type QuizService struct {
	Blocks   *repository.BlockRepository
	Results  *repository.QuizResultRepository
	Progress *repository.ProgressRepository
	Users    *repository.UserRepository
	Log      *zap.Logger
}

func NewQuizService(blocks *repository.BlockRepository, results *repository.QuizResultRepository, progress *repository.ProgressRepository, users *repository.UserRepository, log *zap.Logger) *QuizService {
	return &QuizService{Blocks: blocks, Results: results, Progress: progress, Users: users, Log: log}
}

type QuizSubmission struct {
	Score  float64 `json:"score"`
	Passed bool    `json:"passed"`
}

// SubmitQuiz scores the submission and records the outcome. The score is
// computed first and returned even when persistence fails; a storage outage
// must not read as "you failed", so write errors are logged and the learner
// still sees the result. The failed writes surface later as a still-locked
// next block.
func (s *QuizService) SubmitQuiz(ctx context.Context, userID, blockID string, answers map[string]int) (*QuizSubmission, error) {
	block, err := s.Blocks.FindByID(ctx, blockID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if block.Type != models.BlockTypeQuiz || len(block.Questions) == 0 {
		return nil, ErrQuizUnavailable
	}

	score := scoring.QuizScore(block.Questions, answers)
	passed := scoring.Passed(score)
	now := time.Now()

	result := &models.QuizResult{
		UserID:      userID,
		BlockID:     blockID,
		Score:       score,
		Answers:     answers,
		Passed:      passed,
		CompletedAt: now,
	}
	// Each write is attempted independently; the learner sees the computed
	// score no matter what lands.
	if err := s.Results.Upsert(ctx, result); err != nil {
		s.Log.Error("failed to persist quiz result",
			zap.String("user_id", userID), zap.String("block_id", blockID), zap.Error(err))
	}

	rec := &models.ProgressRecord{
		UserID:      userID,
		BlockID:     blockID,
		BlockType:   models.BlockTypeQuiz,
		Started:     true,
		Completed:   true,
		Score:       &score,
		Passed:      &passed,
		CompletedAt: &now,
	}
	if err := s.Progress.Create(ctx, rec); err != nil {
		s.Log.Error("failed to persist quiz completion record",
			zap.String("user_id", userID), zap.String("block_id", blockID), zap.Error(err))
	}

	// Best-effort aggregate list for the profile view, not consulted for
	// gating.
	if passed {
		if err := s.Users.AddCompletedBlock(ctx, userID, blockID); err != nil {
			s.Log.Warn("failed to update completed-blocks list",
				zap.String("user_id", userID), zap.String("block_id", blockID), zap.Error(err))
		}
	}

	return &QuizSubmission{Score: score, Passed: passed}, nil
}

// GetResultsByUser lists a user's quiz results for the profile page.
func (s *QuizService) GetResultsByUser(ctx context.Context, userID string) ([]models.QuizResult, error) {
	return s.Results.FindByUser(ctx, userID)
}
