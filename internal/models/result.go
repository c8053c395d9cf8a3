package models

import "time"

// QuizResult is the single authoritative quiz outcome per (user, block).
// Its document id is the deterministic composite QuizResultID(user, block),
// which makes insert-or-update a single atomic upsert with no read-then-write
// race between concurrent submissions.
type QuizResult struct {
	ID          string         `bson:"_id,omitempty" json:"id"`
	UserID      string         `bson:"user_id" json:"user_id"`
	BlockID     string         `bson:"block_id" json:"block_id"`
	Score       float64        `bson:"score" json:"score"`
	Answers     map[string]int `bson:"answers" json:"answers"`
	Passed      bool           `bson:"passed" json:"passed"`
	CompletedAt time.Time      `bson:"completed_at" json:"completed_at"`
}

func QuizResultID(userID, blockID string) string {
	return userID + ":" + blockID
}

// SimulationResult is a per-attempt history entry. Every attempt inserts a
// new record; Score is the raw engine output and may be negative, the clamped
// display value lives on the completion progress record.
type SimulationResult struct {
	ID               string    `bson:"_id,omitempty" json:"id"`
	UserID           string    `bson:"user_id" json:"user_id"`
	SimulationID     string    `bson:"simulation_id" json:"simulation_id"`
	BlockID          string    `bson:"block_id" json:"block_id"`
	Score            int       `bson:"score" json:"score"`
	Action           string    `bson:"action" json:"action"`
	TimeSpentSeconds int       `bson:"time_spent_seconds" json:"time_spent_seconds"`
	CompletedAt      time.Time `bson:"completed_at" json:"completed_at"`
}
