package service

import (
	"context"

	"training-service/internal/models"
	"training-service/internal/progression"
	"training-service/internal/repository"

	"golang.org/x/sync/errgroup"
)

type LearningService struct {
	Blocks      *repository.BlockRepository
	Progress    *repository.ProgressRepository
	QuizResults *repository.QuizResultRepository
}

func NewLearningService(blocks *repository.BlockRepository, progress *repository.ProgressRepository, quizResults *repository.QuizResultRepository) *LearningService {
	return &LearningService{Blocks: blocks, Progress: progress, QuizResults: quizResults}
}

// GetBlocksWithLockState loads the block list and the user's history in
// parallel, folds the history into one authoritative record per block, and
// runs the lock evaluation. This is what the learning page renders from.
func (s *LearningService) GetBlocksWithLockState(ctx context.Context, userID string, role progression.Role) ([]progression.BlockState, error) {
	var (
		blocks  []models.Block
		records []models.ProgressRecord
		results []models.QuizResult
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		blocks, err = s.Blocks.FindAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.Progress.FindByUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		results, err = s.QuizResults.FindByUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := progression.Reduce(records, results)
	return progression.Evaluate(blocks, merged, role), nil
}
