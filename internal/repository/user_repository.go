package repository

import (
	"context"

	"training-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	Col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Col: db.Collection("users")}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// AddCompletedBlock appends to the user's aggregate completed list. $addToSet
// keeps the list duplicate-free; gating never reads this list, it exists for
// the profile view only.
func (r *UserRepository) AddCompletedBlock(ctx context.Context, userID, blockID string) error {
	_, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"completed_blocks": blockID}},
	)
	return err
}
