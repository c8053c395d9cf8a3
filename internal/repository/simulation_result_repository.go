package repository

import (
	"context"

	"training-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type SimulationResultRepository struct {
	Col *mongo.Collection
}

func NewSimulationResultRepository(db *mongo.Database) *SimulationResultRepository {
	return &SimulationResultRepository{Col: db.Collection("simulation_results")}
}

// Create always inserts; simulation attempts keep full history.
func (r *SimulationResultRepository) Create(ctx context.Context, result *models.SimulationResult) error {
	if result.ID == "" {
		result.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Col.InsertOne(ctx, result)
	return err
}

func (r *SimulationResultRepository) FindByUser(ctx context.Context, userID string) ([]models.SimulationResult, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var results []models.SimulationResult
	for cur.Next(ctx) {
		var res models.SimulationResult
		if err := cur.Decode(&res); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, cur.Err()
}

func (r *SimulationResultRepository) FindByUserAndBlock(ctx context.Context, userID, blockID string) ([]models.SimulationResult, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID, "block_id": blockID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var results []models.SimulationResult
	for cur.Next(ctx) {
		var res models.SimulationResult
		if err := cur.Decode(&res); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, cur.Err()
}
