package repository

import (
	"context"

	"training-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BlockRepository struct {
	Col *mongo.Collection
}

func NewBlockRepository(db *mongo.Database) *BlockRepository {
	return &BlockRepository{Col: db.Collection("blocks")}
}

// FindAll returns every non-deleted block, normalized to canonical shape.
func (r *BlockRepository) FindAll(ctx context.Context) ([]models.Block, error) {
	cur, err := r.Col.Find(ctx, bson.M{"status": bson.M{"$ne": "deleted"}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var blocks []models.Block
	for cur.Next(ctx) {
		var b models.Block
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		b.Normalize()
		blocks = append(blocks, b)
	}
	return blocks, cur.Err()
}

func (r *BlockRepository) FindByID(ctx context.Context, id string) (*models.Block, error) {
	var block models.Block
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&block)
	if err != nil {
		return nil, err
	}
	block.Normalize()
	return &block, nil
}

func (r *BlockRepository) FindByPosition(ctx context.Context, position int) (*models.Block, error) {
	var block models.Block
	err := r.Col.FindOne(ctx, bson.M{
		"position": position,
		"status":   bson.M{"$ne": "deleted"},
	}).Decode(&block)
	if err != nil {
		return nil, err
	}
	return &block, nil
}

func (r *BlockRepository) Create(ctx context.Context, block *models.Block) error {
	if block.ID == "" {
		block.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Col.InsertOne(ctx, block)
	return err
}

func (r *BlockRepository) Update(ctx context.Context, id string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

// Delete is a soft delete; learners never see deleted blocks but history
// referencing them stays intact.
func (r *BlockRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": "deleted"}})
	return err
}
