package service

import "errors"

var (
	// ErrNotFound covers missing blocks/users and mongo no-document results.
	ErrNotFound = errors.New("not found")
	// ErrValidation marks authoring-time rejections on the admin path.
	ErrValidation = errors.New("validation failed")
	// ErrQuizUnavailable is a structural problem with a quiz block (wrong
	// type, missing questions). The learner is shown a blocking error rather
	// than a misleading score of zero.
	ErrQuizUnavailable = errors.New("quiz unavailable")
	// ErrScenarioUnavailable is the simulation equivalent.
	ErrScenarioUnavailable = errors.New("simulation scenario unavailable")
)
