package scoring

import (
	"math"

	"training-service/internal/models"
)

// MaxTimeBonus is awarded for an instant reaction and decays linearly with
// the remaining time.
const MaxTimeBonus = 50

// TimeUpFeedback is shown when the countdown expires before any action.
const TimeUpFeedback = "הזמן נגמר! בתרחיש אמיתי, היסוס ממושך מול הודעה חשודה מסוכן לא פחות מלחיצה עליה."

// ActionResult is the outcome of scoring one simulation action. Points are
// raw and unclamped, they can be negative or exceed 100.
type ActionResult struct {
	Points   int    `json:"points"`
	Feedback string `json:"feedback"`
	Matched  bool   `json:"matched"`
}

// ScoreAction looks the action up across the scenario's correct and wrong
// action lists and adds the time bonus. The bonus applies to wrong actions
// too; a fast wrong answer still earns it. This mirrors how the training
// scenarios were authored and is intentional.
func ScoreAction(sc *models.Scenario, action string, timeRemaining int) ActionResult {
	res := ActionResult{}
	for _, a := range sc.CorrectActions {
		if a.Action == action {
			res.Points = a.Points
			res.Feedback = a.Feedback
			res.Matched = true
			break
		}
	}
	if !res.Matched {
		for _, a := range sc.WrongActions {
			if a.Action == action {
				res.Points = -a.Penalty
				res.Feedback = a.Feedback
				res.Matched = true
				break
			}
		}
	}
	res.Points += TimeBonus(timeRemaining, sc.TimeLimitSeconds)
	return res
}

// Timeout is the forced outcome when the countdown reaches zero: no action
// lookup, no bonus, score zero.
func Timeout() ActionResult {
	return ActionResult{Points: 0, Feedback: TimeUpFeedback}
}

// TimeBonus is floor(remaining/limit * MaxTimeBonus).
func TimeBonus(timeRemaining, timeLimit int) int {
	if timeLimit <= 0 {
		return 0
	}
	return int(math.Floor(float64(timeRemaining) / float64(timeLimit) * MaxTimeBonus))
}

// Clamp maps any raw simulation score into the 0..100 display range. It is
// shared by every simulation type, phishing or otherwise, so scenario scoring
// stays free to produce out-of-range values.
func Clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
