package models

import "time"

type BlockType string

const (
	BlockTypeVideo      BlockType = "video"
	BlockTypeDocument   BlockType = "document"
	BlockTypeQuiz       BlockType = "quiz"
	BlockTypeSimulation BlockType = "simulation"
	BlockTypeLink       BlockType = "link"
)

// KnownBlockTypes lists every type the platform can render.
var KnownBlockTypes = map[BlockType]bool{
	BlockTypeVideo:      true,
	BlockTypeDocument:   true,
	BlockTypeQuiz:       true,
	BlockTypeSimulation: true,
	BlockTypeLink:       true,
}

// Block is one ordered unit of course content. Position defines the sequence;
// Dependencies, when present, override positional adjacency for gating.
type Block struct {
	ID              string     `bson:"_id,omitempty" json:"id"`
	Title           string     `bson:"title" json:"title"`
	Type            BlockType  `bson:"type" json:"type"`
	Position        int        `bson:"position" json:"position"`
	DurationMinutes int        `bson:"duration_minutes" json:"duration_minutes"`
	VideoURL        string     `bson:"video_url,omitempty" json:"video_url,omitempty"`
	DocumentText    string     `bson:"document_text,omitempty" json:"document_text,omitempty"`
	LinkURL         string     `bson:"link_url,omitempty" json:"link_url,omitempty"`
	Questions       []Question `bson:"questions,omitempty" json:"questions,omitempty"`
	Scenario        *Scenario  `bson:"scenario,omitempty" json:"scenario,omitempty"`
	Dependencies    []string   `bson:"dependencies,omitempty" json:"dependencies,omitempty"`
	Status          string     `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt       time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `bson:"updated_at" json:"updated_at"`
}

// Normalize brings a stored block into canonical shape before any engine
// sees it. Legacy documents may carry string options or options without ids.
func (b *Block) Normalize() {
	for i := range b.Questions {
		b.Questions[i].Normalize()
	}
}
