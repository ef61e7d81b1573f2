package models

import "time"

// ProgressRecord is a single saved slot of learner state
type ProgressRecord struct {
	LearnerID string    `json:"learner_id"`
	Slot      string    `json:"slot"`
	Payload   string    `json:"payload"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Paraphrase is a learner's saved summary of a track. Never persisted.
type Paraphrase struct {
	Text  string `json:"text"`
	Date  string `json:"date"`
	Audio string `json:"audio"`
}
