package models

import "time"

type User struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Role            string    `bson:"role" json:"role"`
	Department      string    `bson:"department,omitempty" json:"department,omitempty"`
	CompletedBlocks []string  `bson:"completed_blocks,omitempty" json:"completed_blocks,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
