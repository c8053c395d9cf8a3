package repository

import (
	"context"

	"training-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuizResultRepository struct {
	Col *mongo.Collection
}

func NewQuizResultRepository(db *mongo.Database) *QuizResultRepository {
	return &QuizResultRepository{Col: db.Collection("quiz_results")}
}

func (r *QuizResultRepository) FindByUser(ctx context.Context, userID string) ([]models.QuizResult, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var results []models.QuizResult
	for cur.Next(ctx) {
		var res models.QuizResult
		if err := cur.Decode(&res); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, cur.Err()
}

func (r *QuizResultRepository) FindByUserAndBlock(ctx context.Context, userID, blockID string) (*models.QuizResult, error) {
	var result models.QuizResult
	err := r.Col.FindOne(ctx, bson.M{"_id": models.QuizResultID(userID, blockID)}).Decode(&result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Upsert writes the result under its composite id in one atomic operation.
// $max keeps the best score and a once-true passed flag, so a weaker retry
// never regresses a result that already cleared the threshold.
func (r *QuizResultRepository) Upsert(ctx context.Context, result *models.QuizResult) error {
	result.ID = models.QuizResultID(result.UserID, result.BlockID)
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": result.ID}, quizResultUpdate(result), options.Update().SetUpsert(true))
	return err
}

// quizResultUpdate builds the upsert document. Because every submission for
// the same user and block targets the same composite _id, two submissions can
// only ever produce one stored record, and $max keeps the governing score.
func quizResultUpdate(result *models.QuizResult) bson.M {
	return bson.M{
		"$max": bson.M{
			"score":  result.Score,
			"passed": result.Passed,
		},
		"$set": bson.M{
			"answers":      result.Answers,
			"completed_at": result.CompletedAt,
		},
		"$setOnInsert": bson.M{
			"user_id":  result.UserID,
			"block_id": result.BlockID,
		},
	}
}
