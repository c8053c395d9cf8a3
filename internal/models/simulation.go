package models

// ActionConfig describes one action a learner can take inside a phishing
// scenario. Correct actions carry positive points, wrong actions a penalty.
type ActionConfig struct {
	Action   string `bson:"action" json:"action"`
	Points   int    `bson:"points,omitempty" json:"points,omitempty"`
	Penalty  int    `bson:"penalty,omitempty" json:"penalty,omitempty"`
	Feedback string `bson:"feedback" json:"feedback"`
}

// Scenario is the authored payload of a simulation block.
type Scenario struct {
	ID                 string         `bson:"id" json:"id"`
	Title              string         `bson:"title" json:"title"`
	Description        string         `bson:"description,omitempty" json:"description,omitempty"`
	SuspiciousElements []string       `bson:"suspicious_elements,omitempty" json:"suspicious_elements,omitempty"`
	CorrectActions     []ActionConfig `bson:"correct_actions" json:"correct_actions"`
	WrongActions       []ActionConfig `bson:"wrong_actions" json:"wrong_actions"`
	TimeLimitSeconds   int            `bson:"time_limit" json:"time_limit"`
}
