package repository

import (
	"testing"
	"time"

	"training-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

func TestQuizResultIDDeterministic(t *testing.T) {
	a := models.QuizResultID("u1", "b1")
	b := models.QuizResultID("u1", "b1")
	if a != b {
		t.Errorf("Expected identical ids for the same pair, got %q and %q", a, b)
	}
	if a == models.QuizResultID("u1", "b2") {
		t.Error("Different blocks must not share a result id")
	}
	if a == models.QuizResultID("u2", "b1") {
		t.Error("Different users must not share a result id")
	}
}

func TestQuizResultUpdateKeepsGoverningScore(t *testing.T) {
	result := &models.QuizResult{
		UserID:      "u1",
		BlockID:     "b1",
		Score:       66.67,
		Passed:      false,
		Answers:     map[string]int{"q1": 0, "q2": 1, "q3": 0},
		CompletedAt: time.Now(),
	}
	update := quizResultUpdate(result)

	maxDoc, ok := update["$max"].(bson.M)
	if !ok {
		t.Fatal("Expected a $max clause so a weaker retry cannot lower the stored score")
	}
	if maxDoc["score"] != result.Score {
		t.Errorf("Expected score %.2f under $max, got %v", result.Score, maxDoc["score"])
	}
	if maxDoc["passed"] != result.Passed {
		t.Errorf("Expected passed flag under $max, got %v", maxDoc["passed"])
	}

	setDoc, ok := update["$set"].(bson.M)
	if !ok {
		t.Fatal("Expected a $set clause for answers and completion time")
	}
	if _, found := setDoc["score"]; found {
		t.Error("Score must not appear under $set, that would let a retry regress it")
	}
	if _, found := setDoc["passed"]; found {
		t.Error("Passed must not appear under $set")
	}

	insertDoc, ok := update["$setOnInsert"].(bson.M)
	if !ok {
		t.Fatal("Expected a $setOnInsert clause for the identifying pair")
	}
	if insertDoc["user_id"] != "u1" || insertDoc["block_id"] != "b1" {
		t.Errorf("Unexpected identifying pair: %v", insertDoc)
	}
}

// Two submissions for the same pair target the same composite _id, so the
// second one updates in place instead of inserting a sibling record.
func TestUpsertTargetsCompositeID(t *testing.T) {
	first := &models.QuizResult{UserID: "u1", BlockID: "b1", Score: 33.33}
	second := &models.QuizResult{UserID: "u1", BlockID: "b1", Score: 100, Passed: true}

	firstID := models.QuizResultID(first.UserID, first.BlockID)
	secondID := models.QuizResultID(second.UserID, second.BlockID)
	if firstID != secondID {
		t.Fatalf("Submissions for the same pair must share an id, got %q and %q", firstID, secondID)
	}

	update := quizResultUpdate(second)
	if update["$max"].(bson.M)["score"] != 100.0 {
		t.Errorf("Expected the later, higher score to govern, got %v", update["$max"].(bson.M)["score"])
	}
}
