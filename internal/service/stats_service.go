package service

import (
	"context"
	"math"

	"training-service/internal/models"
	"training-service/internal/repository"
)

type StatsService struct {
	Progress    *repository.ProgressRepository
	QuizResults *repository.QuizResultRepository
}

func NewStatsService(progress *repository.ProgressRepository, quizResults *repository.QuizResultRepository) *StatsService {
	return &StatsService{Progress: progress, QuizResults: quizResults}
}

type UserStats struct {
	UserID            string                  `json:"user_id"`
	CompletedBlocks   int                     `json:"completed_blocks"`
	QuizzesPassed     int                     `json:"quizzes_passed"`
	QuizzesTaken      int                     `json:"quizzes_taken"`
	AverageQuizScore  float64                 `json:"average_quiz_score"`
	CompletionHistory []models.ProgressRecord `json:"completion_history"`
}

// GetUserStats aggregates a user's progress for the profile page. Completed
// blocks are counted after de-duplicating by block id, since completion
// records are append-only and a block can be finished more than once. The
// history list stays raw.
func (s *StatsService) GetUserStats(ctx context.Context, userID string) (*UserStats, error) {
	records, err := s.Progress.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	results, err := s.QuizResults.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	completed := make(map[string]bool)
	var history []models.ProgressRecord
	for _, rec := range records {
		if rec.Completed {
			completed[rec.BlockID] = true
			history = append(history, rec)
		}
	}

	stats := &UserStats{
		UserID:            userID,
		CompletedBlocks:   len(completed),
		QuizzesTaken:      len(results),
		CompletionHistory: history,
	}
	if len(results) > 0 {
		total := 0.0
		for _, res := range results {
			total += res.Score
			if res.Passed {
				stats.QuizzesPassed++
			}
		}
		stats.AverageQuizScore = math.Round(total/float64(len(results))*100) / 100
	}
	return stats, nil
}
