package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"training-service/internal/models"
	"training-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type BlockService struct {
	Repo *repository.BlockRepository
}

func NewBlockService(repo *repository.BlockRepository) *BlockService {
	return &BlockService{Repo: repo}
}

func (s *BlockService) GetAllBlocks(ctx context.Context) ([]models.Block, error) {
	return s.Repo.FindAll(ctx)
}

func (s *BlockService) GetBlock(ctx context.Context, id string) (*models.Block, error) {
	block, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return block, nil
}

func (s *BlockService) CreateBlock(ctx context.Context, block *models.Block) error {
	if err := s.validate(ctx, block, ""); err != nil {
		return err
	}
	block.Status = "active"
	block.CreatedAt = time.Now()
	block.UpdatedAt = block.CreatedAt
	return s.Repo.Create(ctx, block)
}

func (s *BlockService) UpdateBlock(ctx context.Context, id string, block *models.Block) error {
	if _, err := s.GetBlock(ctx, id); err != nil {
		return err
	}
	if err := s.validate(ctx, block, id); err != nil {
		return err
	}
	return s.Repo.Update(ctx, id, bson.M{
		"title":            block.Title,
		"type":             block.Type,
		"position":         block.Position,
		"duration_minutes": block.DurationMinutes,
		"video_url":        block.VideoURL,
		"document_text":    block.DocumentText,
		"link_url":         block.LinkURL,
		"questions":        block.Questions,
		"scenario":         block.Scenario,
		"dependencies":     block.Dependencies,
		"updated_at":       time.Now(),
	})
}

func (s *BlockService) DeleteBlock(ctx context.Context, id string) error {
	if _, err := s.GetBlock(ctx, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}

// validate enforces the authoring rules: known type, non-empty title, unique
// position, well-formed questions for quizzes, scenario content for
// simulations, and dependencies that exist and do not self-refer. All of
// this runs on the admin path only; learners never see half-authored blocks.
func (s *BlockService) validate(ctx context.Context, block *models.Block, selfID string) error {
	if !models.KnownBlockTypes[block.Type] {
		return fmt.Errorf("%w: unknown block type %q", ErrValidation, block.Type)
	}
	if strings.TrimSpace(block.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if block.Position <= 0 {
		return fmt.Errorf("%w: position must be positive", ErrValidation)
	}
	if existing, err := s.Repo.FindByPosition(ctx, block.Position); err == nil && existing.ID != selfID {
		return fmt.Errorf("%w: position %d is already taken by %q", ErrValidation, block.Position, existing.Title)
	}

	switch block.Type {
	case models.BlockTypeQuiz:
		if len(block.Questions) == 0 {
			return fmt.Errorf("%w: quiz block needs at least one question", ErrValidation)
		}
		for i, q := range block.Questions {
			if err := validateQuestion(q); err != nil {
				return fmt.Errorf("question %d: %w", i+1, err)
			}
		}
	case models.BlockTypeSimulation:
		if block.Scenario == nil || (len(block.Scenario.CorrectActions) == 0 && len(block.Scenario.WrongActions) == 0) {
			return fmt.Errorf("%w: simulation block needs a scenario with actions", ErrValidation)
		}
		if block.Scenario.TimeLimitSeconds <= 0 {
			return fmt.Errorf("%w: scenario time limit must be positive", ErrValidation)
		}
	}

	if len(block.Dependencies) > 0 {
		for _, depID := range block.Dependencies {
			if depID == selfID && selfID != "" {
				return fmt.Errorf("%w: block cannot depend on itself", ErrValidation)
			}
			if _, err := s.Repo.FindByID(ctx, depID); err != nil {
				return fmt.Errorf("%w: dependency %q does not exist", ErrValidation, depID)
			}
		}
		if selfID != "" {
			all, err := s.Repo.FindAll(ctx)
			if err != nil {
				return err
			}
			graph := make(map[string][]string, len(all))
			for _, b := range all {
				graph[b.ID] = b.Dependencies
			}
			for _, depID := range block.Dependencies {
				if dependsOn(graph, depID, selfID) {
					return fmt.Errorf("%w: dependency %q would create a cycle", ErrValidation, depID)
				}
			}
		}
	}
	return nil
}

// dependsOn reports whether target is reachable from start over the stored
// dependency graph. A block may not list a dependency that, directly or
// transitively, depends back on it; such a cycle would lock both blocks for
// every learner forever.
func dependsOn(graph map[string][]string, start, target string) bool {
	visited := make(map[string]bool)
	stack := []string{start}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == target {
			return true
		}
		if visited[id] {
			continue
		}
		visited[id] = true
		stack = append(stack, graph[id]...)
	}
	return false
}

func validateQuestion(q models.Question) error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("%w: question text is required", ErrValidation)
	}
	nonEmpty := 0
	for _, opt := range q.Options {
		if strings.TrimSpace(opt.Text) != "" {
			nonEmpty++
		}
	}
	if nonEmpty < 2 {
		return fmt.Errorf("%w: at least 2 non-empty options are required", ErrValidation)
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return fmt.Errorf("%w: correct answer index %d is out of range", ErrValidation, q.CorrectAnswer)
	}
	return nil
}
