package repository

import (
	"context"

	"training-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProgressRepository struct {
	Col *mongo.Collection
}

func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{Col: db.Collection("progress")}
}

func (r *ProgressRepository) FindByUser(ctx context.Context, userID string) ([]models.ProgressRecord, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var records []models.ProgressRecord
	for cur.Next(ctx) {
		var rec models.ProgressRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, cur.Err()
}

func (r *ProgressRepository) FindByUserAndBlock(ctx context.Context, userID, blockID string) ([]models.ProgressRecord, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID, "block_id": blockID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var records []models.ProgressRecord
	for cur.Next(ctx) {
		var rec models.ProgressRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, cur.Err()
}

// Create always inserts. Progress history is append-only; deduplication
// happens at read time.
func (r *ProgressRepository) Create(ctx context.Context, rec *models.ProgressRecord) error {
	if rec.ID == "" {
		rec.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Col.InsertOne(ctx, rec)
	return err
}
