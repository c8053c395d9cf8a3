package progression

import (
	"testing"
	"time"

	"training-service/internal/models"
)

func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func courseBlocks() []models.Block {
	return []models.Block{
		{ID: "b3", Title: "בוחן אבטחה", Type: models.BlockTypeQuiz, Position: 3},
		{ID: "b1", Title: "סרטון פתיחה", Type: models.BlockTypeVideo, Position: 1},
		{ID: "b2", Title: "נוהל סיסמאות", Type: models.BlockTypeDocument, Position: 2},
		{ID: "b4", Title: "סימולציית דיוג", Type: models.BlockTypeSimulation, Position: 4},
	}
}

func completedRecord(blockID string, blockType models.BlockType) models.ProgressRecord {
	now := time.Now()
	return models.ProgressRecord{
		UserID: "u1", BlockID: blockID, BlockType: blockType,
		Started: true, Completed: true, CompletedAt: &now,
	}
}

func TestEvaluateSortsByPosition(t *testing.T) {
	states := Evaluate(courseBlocks(), nil, RoleLearner)
	if len(states) != 4 {
		t.Fatalf("Expected 4 states, got %d", len(states))
	}
	for i, id := range []string{"b1", "b2", "b3", "b4"} {
		if states[i].ID != id {
			t.Errorf("Position %d: expected %s, got %s", i, id, states[i].ID)
		}
	}
}

func TestEvaluateAdminNeverLocked(t *testing.T) {
	states := Evaluate(courseBlocks(), nil, RoleAdmin)
	for _, st := range states {
		if st.IsLocked {
			t.Errorf("Admin should never see %s locked", st.ID)
		}
	}
}

func TestEvaluateLearnerGating(t *testing.T) {
	testCases := []struct {
		name           string
		progress       map[string]models.ProgressRecord
		expectedLocked map[string]bool
	}{
		{
			"no progress locks everything after the first block",
			nil,
			map[string]bool{"b1": false, "b2": true, "b3": true, "b4": true},
		},
		{
			"completing a block unlocks the next one",
			map[string]models.ProgressRecord{
				"b1": completedRecord("b1", models.BlockTypeVideo),
			},
			map[string]bool{"b1": false, "b2": false, "b3": true, "b4": true},
		},
		{
			"failed quiz keeps the next block locked",
			map[string]models.ProgressRecord{
				"b1": completedRecord("b1", models.BlockTypeVideo),
				"b2": completedRecord("b2", models.BlockTypeDocument),
				"b3": quizRecord(40, false),
			},
			map[string]bool{"b1": false, "b2": false, "b3": false, "b4": true},
		},
		{
			"passed quiz unlocks the next block",
			map[string]models.ProgressRecord{
				"b1": completedRecord("b1", models.BlockTypeVideo),
				"b2": completedRecord("b2", models.BlockTypeDocument),
				"b3": quizRecord(100, true),
			},
			map[string]bool{"b1": false, "b2": false, "b3": false, "b4": false},
		},
		{
			"quiz with threshold score but no passed flag still unlocks",
			map[string]models.ProgressRecord{
				"b1": completedRecord("b1", models.BlockTypeVideo),
				"b2": completedRecord("b2", models.BlockTypeDocument),
				"b3": {UserID: "u1", BlockID: "b3", Completed: true, Score: floatPtr(70)},
			},
			map[string]bool{"b1": false, "b2": false, "b3": false, "b4": false},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			states := Evaluate(courseBlocks(), tc.progress, RoleLearner)
			for _, st := range states {
				if st.IsLocked != tc.expectedLocked[st.ID] {
					t.Errorf("Block %s: expected locked=%v, got %v", st.ID, tc.expectedLocked[st.ID], st.IsLocked)
				}
			}
		})
	}
}

func quizRecord(score float64, passed bool) models.ProgressRecord {
	rec := completedRecord("b3", models.BlockTypeQuiz)
	rec.Score = floatPtr(score)
	rec.Passed = boolPtr(passed)
	return rec
}

func TestEvaluateExplicitDependencies(t *testing.T) {
	blocks := []models.Block{
		{ID: "intro", Type: models.BlockTypeVideo, Position: 1},
		{ID: "policy", Type: models.BlockTypeDocument, Position: 2},
		// Depends on intro only, so it opens even while policy is untouched.
		{ID: "quiz", Type: models.BlockTypeQuiz, Position: 3, Dependencies: []string{"intro"}},
		// Depends on both branches.
		{ID: "final", Type: models.BlockTypeSimulation, Position: 4, Dependencies: []string{"policy", "quiz"}},
	}
	progress := map[string]models.ProgressRecord{
		"intro": completedRecord("intro", models.BlockTypeVideo),
	}

	states := Evaluate(blocks, progress, RoleLearner)
	byID := make(map[string]BlockState)
	for _, st := range states {
		byID[st.ID] = st
	}

	if byID["quiz"].IsLocked {
		t.Error("quiz depends only on intro and should be unlocked")
	}
	if !byID["final"].IsLocked {
		t.Error("final requires policy which is incomplete, should be locked")
	}
	if byID["policy"].IsLocked {
		t.Error("policy follows the completed intro, should be unlocked")
	}
}

func TestEvaluateMissingDependencyLocks(t *testing.T) {
	blocks := []models.Block{
		{ID: "a", Type: models.BlockTypeVideo, Position: 1},
		{ID: "b", Type: models.BlockTypeVideo, Position: 2, Dependencies: []string{"removed"}},
	}
	states := Evaluate(blocks, map[string]models.ProgressRecord{
		"a": completedRecord("a", models.BlockTypeVideo),
	}, RoleLearner)
	if !states[1].IsLocked {
		t.Error("A dependency on a missing block must lock, not silently open")
	}
}

func TestStatusLabels(t *testing.T) {
	started := models.ProgressRecord{UserID: "u1", BlockID: "b1", Started: true}

	testCases := []struct {
		name     string
		progress map[string]models.ProgressRecord
		blockID  string
		expected Status
	}{
		{"no record", nil, "b1", StatusAvailable},
		{"locked block", nil, "b2", StatusLocked},
		{"started not completed", map[string]models.ProgressRecord{"b1": started}, "b1", StatusInProgress},
		{
			"completed video",
			map[string]models.ProgressRecord{"b1": completedRecord("b1", models.BlockTypeVideo)},
			"b1", StatusCompleted,
		},
		{
			"failed quiz",
			map[string]models.ProgressRecord{
				"b1": completedRecord("b1", models.BlockTypeVideo),
				"b2": completedRecord("b2", models.BlockTypeDocument),
				"b3": quizRecord(40, false),
			},
			"b3", StatusFailed,
		},
		{
			"failed quiz without passed flag",
			map[string]models.ProgressRecord{
				"b1": completedRecord("b1", models.BlockTypeVideo),
				"b2": completedRecord("b2", models.BlockTypeDocument),
				"b3": {UserID: "u1", BlockID: "b3", Completed: true, Score: floatPtr(40)},
			},
			"b3", StatusFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			states := Evaluate(courseBlocks(), tc.progress, RoleLearner)
			for _, st := range states {
				if st.ID == tc.blockID && st.Status != tc.expected {
					t.Errorf("Block %s: expected status %q, got %q", tc.blockID, tc.expected, st.Status)
				}
			}
		})
	}
}

func TestReducePrefersBestAttempt(t *testing.T) {
	records := []models.ProgressRecord{
		{UserID: "u1", BlockID: "b3", Started: true},
		{UserID: "u1", BlockID: "b3", Completed: true, Score: floatPtr(40), Passed: boolPtr(false)},
	}
	results := []models.QuizResult{
		{UserID: "u1", BlockID: "b3", Score: 80, Passed: true, CompletedAt: time.Now()},
	}

	merged := Reduce(records, results)
	rec, ok := merged["b3"]
	if !ok {
		t.Fatal("Expected a merged record for b3")
	}
	if !rec.Completed {
		t.Error("Merged record should be completed")
	}
	if rec.Passed == nil || !*rec.Passed {
		t.Error("Best attempt passed, merged record should reflect it")
	}
	if rec.Score == nil || *rec.Score != 80 {
		t.Errorf("Expected best score 80, got %v", rec.Score)
	}
}

func TestReduceDuplicateCompletionsHarmless(t *testing.T) {
	records := []models.ProgressRecord{
		completedRecord("b1", models.BlockTypeVideo),
		completedRecord("b1", models.BlockTypeVideo),
		completedRecord("b1", models.BlockTypeVideo),
	}
	merged := Reduce(records, nil)
	if len(merged) != 1 {
		t.Errorf("Expected one merged record, got %d", len(merged))
	}
	if !merged["b1"].Completed {
		t.Error("Merged record should stay completed")
	}
}
