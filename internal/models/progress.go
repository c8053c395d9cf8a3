package models

import "time"

// ProgressRecord is one stored fact about a user's interaction with a block.
// A user accumulates records over time; "started" writes are best-effort and
// completion is established by any record with Completed set, not a specific
// one, so duplicates are harmless for gating.
type ProgressRecord struct {
	ID          string     `bson:"_id,omitempty" json:"id"`
	UserID      string     `bson:"user_id" json:"user_id"`
	BlockID     string     `bson:"block_id" json:"block_id"`
	BlockType   BlockType  `bson:"block_type" json:"block_type"`
	Started     bool       `bson:"started" json:"started"`
	Completed   bool       `bson:"completed" json:"completed"`
	Score       *float64   `bson:"score,omitempty" json:"score,omitempty"`
	Passed      *bool      `bson:"passed,omitempty" json:"passed,omitempty"`
	StartedAt   *time.Time `bson:"started_at,omitempty" json:"started_at,omitempty"`
	CompletedAt *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}
