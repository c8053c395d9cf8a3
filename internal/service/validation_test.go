package service

import (
	"errors"
	"testing"

	"training-service/internal/models"
)

func TestValidateQuestion(t *testing.T) {
	testCases := []struct {
		name     string
		question models.Question
		valid    bool
	}{
		{
			"well formed",
			models.Question{Text: "שאלה", CorrectAnswer: 1, Options: []models.Option{{Text: "א"}, {Text: "ב"}}},
			true,
		},
		{
			"empty text",
			models.Question{Text: "  ", CorrectAnswer: 0, Options: []models.Option{{Text: "א"}, {Text: "ב"}}},
			false,
		},
		{
			"single option",
			models.Question{Text: "שאלה", CorrectAnswer: 0, Options: []models.Option{{Text: "א"}}},
			false,
		},
		{
			"two options but one blank",
			models.Question{Text: "שאלה", CorrectAnswer: 0, Options: []models.Option{{Text: "א"}, {Text: " "}}},
			false,
		},
		{
			"correct index out of range",
			models.Question{Text: "שאלה", CorrectAnswer: 2, Options: []models.Option{{Text: "א"}, {Text: "ב"}}},
			false,
		},
		{
			"negative correct index",
			models.Question{Text: "שאלה", CorrectAnswer: -1, Options: []models.Option{{Text: "א"}, {Text: "ב"}}},
			false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateQuestion(tc.question)
			if tc.valid && err != nil {
				t.Errorf("Expected valid, got %v", err)
			}
			if !tc.valid {
				if err == nil {
					t.Fatal("Expected validation error")
				}
				if !errors.Is(err, ErrValidation) {
					t.Errorf("Expected ErrValidation, got %v", err)
				}
			}
		})
	}
}

func TestDependsOn(t *testing.T) {
	// a -> b -> c, d isolated, e <-> f is a stored cycle.
	graph := map[string][]string{
		"a": {"b"},
		"b": {"c"},
		"c": nil,
		"d": nil,
		"e": {"f"},
		"f": {"e"},
	}

	testCases := []struct {
		name     string
		start    string
		target   string
		expected bool
	}{
		{"direct dependency", "a", "b", true},
		{"transitive dependency", "a", "c", true},
		{"reverse direction", "c", "a", false},
		{"isolated block", "d", "a", false},
		{"self", "a", "a", true},
		{"two-block cycle reaches back", "e", "f", true},
		{"cycle does not loop forever", "e", "d", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := dependsOn(graph, tc.start, tc.target); got != tc.expected {
				t.Errorf("dependsOn(%q, %q) expected %v, got %v", tc.start, tc.target, tc.expected, got)
			}
		})
	}
}
