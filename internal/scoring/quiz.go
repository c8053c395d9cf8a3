package scoring

import (
	"math"

	"training-service/internal/models"
)

// PassThreshold is the fixed percentage a quiz score must reach to count as
// passed, both for the result record and for block gating.
const PassThreshold = 70.0

// QuizScore returns the percentage of correctly answered questions, rounded
// to two decimals. answers maps question id to the selected option index; a
// missing entry counts as incorrect, never as an error, so the function is
// safe on abandoned or partial submissions.
func QuizScore(questions []models.Question, answers map[string]int) float64 {
	if len(questions) == 0 {
		return 0
	}
	correct := 0
	for _, q := range questions {
		if idx, ok := answers[q.ID]; ok && idx == q.CorrectAnswer {
			correct++
		}
	}
	pct := float64(correct) / float64(len(questions)) * 100
	return math.Round(pct*100) / 100
}

func Passed(score float64) bool {
	return score >= PassThreshold
}
