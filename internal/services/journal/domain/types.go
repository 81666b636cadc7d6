// Package domain defines the journal entry model, validation rules, and ports
package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxFieldLen is the per-field limit in unicode code points
const MaxFieldLen = 256

// Entry is one daily reflection record
type Entry struct {
	ID        uuid.UUID `json:"id"`
	Work      string    `json:"work"`
	Struggle  string    `json:"struggle"`
	Intention string    `json:"intention"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EntryInput carries the client-writable fields of an entry
// validation tags drive the transport-level check; the service re-validates
type EntryInput struct {
	Work      string `json:"work"      validate:"notblank,max=256"`
	Struggle  string `json:"struggle"  validate:"notblank,max=256"`
	Intention string `json:"intention" validate:"notblank,max=256"`
}

// EntryList is the payload for listing entries
type EntryList struct {
	Entries []Entry `json:"entries"`
	Count   int     `json:"count"`
}

// Sentiment is the closed label set analysis may produce
type Sentiment string

// Sentiment labels
const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Valid reports whether s is one of the known labels
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

// Topic count bounds for an analysis
const (
	MinTopics = 2
	MaxTopics = 4
)

// Analysis is the raw shape an analyzer returns for entry text
type Analysis struct {
	Sentiment Sentiment `json:"sentiment"`
	Summary   string    `json:"summary"`
	Topics    []string  `json:"topics"`
}

// AnalysisResult is an analysis tied to its source entry
// derived on demand and never persisted
type AnalysisResult struct {
	EntryID   uuid.UUID `json:"entry_id"`
	Sentiment Sentiment `json:"sentiment"`
	Summary   string    `json:"summary"`
	Topics    []string  `json:"topics"`
	CreatedAt time.Time `json:"created_at"`
}
