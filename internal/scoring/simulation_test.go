package scoring

import (
	"testing"

	"training-service/internal/models"
)

func phishingScenario() *models.Scenario {
	return &models.Scenario{
		ID:               "phishing-email-1",
		Title:            "הודעת דיוג מהבנק",
		TimeLimitSeconds: 45,
		CorrectActions: []models.ActionConfig{
			{Action: "report_phishing", Points: 50, Feedback: "מצוין! דיווח על ההודעה הוא הפעולה הנכונה."},
			{Action: "delete_email", Points: 30, Feedback: "טוב, אבל עדיף לדווח לפני המחיקה."},
		},
		WrongActions: []models.ActionConfig{
			{Action: "click_link", Penalty: 40, Feedback: "לחיצה על קישור חשוד עלולה לחשוף את הארגון."},
			{Action: "reply_with_details", Penalty: 50, Feedback: "אסור למסור פרטים בתגובה להודעה חשודה."},
		},
	}
}

func TestScoreAction(t *testing.T) {
	testCases := []struct {
		name           string
		action         string
		timeRemaining  int
		expectedPoints int
		expectMatched  bool
	}{
		{"correct action instant", "report_phishing", 45, 100, true}, // 50 + full bonus
		{"correct action no time left", "report_phishing", 0, 50, true},
		{"lesser correct action", "delete_email", 45, 80, true},
		{"wrong action still earns bonus", "click_link", 45, 10, true}, // -40 + 50
		{"wrong action no time left", "reply_with_details", 0, -50, true},
		{"unknown action", "forward_to_friend", 45, 50, false},    // 0 + bonus
		{"partial bonus floors", "report_phishing", 30, 83, true}, // 50 + floor(33.33)
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := ScoreAction(phishingScenario(), tc.action, tc.timeRemaining)
			if res.Points != tc.expectedPoints {
				t.Errorf("Expected %d points, got %d", tc.expectedPoints, res.Points)
			}
			if res.Matched != tc.expectMatched {
				t.Errorf("Expected matched=%v, got %v", tc.expectMatched, res.Matched)
			}
			if tc.expectMatched && res.Feedback == "" {
				t.Error("Expected feedback for matched action")
			}
			if !tc.expectMatched && res.Feedback != "" {
				t.Errorf("Expected empty feedback for unmatched action, got %q", res.Feedback)
			}
		})
	}
}

func TestTimeout(t *testing.T) {
	res := Timeout()
	if res.Points != 0 {
		t.Errorf("Expected 0 points on timeout, got %d", res.Points)
	}
	if res.Feedback != TimeUpFeedback {
		t.Errorf("Expected fixed timeout feedback, got %q", res.Feedback)
	}
	if res.Matched {
		t.Error("Timeout must not report a matched action")
	}
}

func TestTimeBonus(t *testing.T) {
	testCases := []struct {
		name          string
		timeRemaining int
		timeLimit     int
		expected      int
	}{
		{"immediate action", 45, 45, 50},
		{"no time left", 0, 45, 0},
		{"two thirds remaining floors", 30, 45, 33},
		{"half remaining", 30, 60, 25},
		{"zero limit", 10, 0, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TimeBonus(tc.timeRemaining, tc.timeLimit); got != tc.expected {
				t.Errorf("TimeBonus(%d, %d) expected %d, got %d", tc.timeRemaining, tc.timeLimit, tc.expected, got)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	testCases := []struct {
		raw      int
		expected int
	}{
		{-50, 0},
		{-1, 0},
		{0, 0},
		{55, 55},
		{100, 100},
		{101, 100},
		{150, 100},
	}
	for _, tc := range testCases {
		got := Clamp(tc.raw)
		if got != tc.expected {
			t.Errorf("Clamp(%d) expected %d, got %d", tc.raw, tc.expected, got)
		}
		if Clamp(got) != got {
			t.Errorf("Clamp is not idempotent at %d", tc.raw)
		}
	}
}
