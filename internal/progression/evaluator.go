package progression

import (
	"sort"

	"training-service/internal/models"
	"training-service/internal/scoring"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleLearner Role = "learner"
)

type Status string

const (
	StatusLocked     Status = "locked"
	StatusAvailable  Status = "available"
	StatusInProgress Status = "inProgress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// BlockState is a block annotated with its derived lock state. Nothing here
// is persisted; it is recomputed on every load from the progress records.
type BlockState struct {
	models.Block
	IsLocked bool   `json:"is_locked"`
	Status   Status `json:"status"`
}

// Evaluate sorts blocks by position and derives each block's lock state for
// the given role. Admins are never locked. For learners the first block is
// always open; a block with an explicit dependency list unlocks when every
// dependency passes, a block without one falls back to the immediately
// preceding block in sorted order. A quiz only counts as passed when its
// score reaches the threshold (or the passed flag is set), so a failed quiz
// keeps the next block locked even though a completed record exists.
func Evaluate(blocks []models.Block, progress map[string]models.ProgressRecord, role Role) []BlockState {
	sorted := make([]models.Block, len(blocks))
	copy(sorted, blocks)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Position < sorted[j].Position })

	byID := make(map[string]models.Block, len(sorted))
	for _, b := range sorted {
		byID[b.ID] = b
	}

	states := make([]BlockState, 0, len(sorted))
	for i, b := range sorted {
		locked := false
		if role != RoleAdmin {
			switch {
			case len(b.Dependencies) > 0:
				for _, depID := range b.Dependencies {
					dep, ok := byID[depID]
					if !ok || !blockPassed(dep, progress) {
						locked = true
						break
					}
				}
			case i > 0:
				locked = !blockPassed(sorted[i-1], progress)
			}
		}
		states = append(states, BlockState{
			Block:    b,
			IsLocked: locked,
			Status:   statusOf(b, progress, locked),
		})
	}
	return states
}

// blockPassed reports whether a block satisfies the gating pass condition:
// some completed record exists, and for quiz blocks the score or passed flag
// clears the threshold.
func blockPassed(b models.Block, progress map[string]models.ProgressRecord) bool {
	rec, ok := progress[b.ID]
	if !ok || !rec.Completed {
		return false
	}
	if b.Type != models.BlockTypeQuiz {
		return true
	}
	if rec.Passed != nil && *rec.Passed {
		return true
	}
	return rec.Score != nil && *rec.Score >= scoring.PassThreshold
}

// statusOf derives the display label. It is not used for gating.
func statusOf(b models.Block, progress map[string]models.ProgressRecord, locked bool) Status {
	if locked {
		return StatusLocked
	}
	rec, ok := progress[b.ID]
	if !ok {
		return StatusAvailable
	}
	if rec.Completed {
		if b.Type == models.BlockTypeQuiz && quizFailed(rec) {
			return StatusFailed
		}
		return StatusCompleted
	}
	return StatusInProgress
}

func quizFailed(rec models.ProgressRecord) bool {
	if rec.Passed != nil {
		return !*rec.Passed
	}
	return rec.Score != nil && *rec.Score < scoring.PassThreshold
}

// Reduce folds a user's raw progress history plus quiz results into one
// authoritative record per block. Completion beats non-completion and the
// best score wins, so duplicate completion records and lower retry scores
// never regress a block that was once passed.
func Reduce(records []models.ProgressRecord, quizResults []models.QuizResult) map[string]models.ProgressRecord {
	out := make(map[string]models.ProgressRecord)
	for _, rec := range records {
		merge(out, rec)
	}
	for _, qr := range quizResults {
		score := qr.Score
		passed := qr.Passed
		completedAt := qr.CompletedAt
		merge(out, models.ProgressRecord{
			UserID:      qr.UserID,
			BlockID:     qr.BlockID,
			BlockType:   models.BlockTypeQuiz,
			Started:     true,
			Completed:   true,
			Score:       &score,
			Passed:      &passed,
			CompletedAt: &completedAt,
		})
	}
	return out
}

func merge(out map[string]models.ProgressRecord, rec models.ProgressRecord) {
	cur, ok := out[rec.BlockID]
	if !ok || better(rec, cur) {
		out[rec.BlockID] = rec
	}
}

func better(a, b models.ProgressRecord) bool {
	if a.Completed != b.Completed {
		return a.Completed
	}
	ap := a.Passed != nil && *a.Passed
	bp := b.Passed != nil && *b.Passed
	if ap != bp {
		return ap
	}
	return scoreOf(a) > scoreOf(b)
}

func scoreOf(rec models.ProgressRecord) float64 {
	if rec.Score == nil {
		return -1
	}
	return *rec.Score
}
