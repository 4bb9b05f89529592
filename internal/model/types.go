// Package model defines shared data structures.
package model

import "time"

// WordID identifies a word by its headword. Headwords are unique within a
// catalog.
type WordID string

// Word is a single catalog entry.
type Word struct {
	ID       WordID
	Text     string
	Meaning  string
	Phonetic string
	Example  string
}

// Progress tracks how a single word has been drilled.
type Progress struct {
	Seen    int
	Known   int
	Unknown int
	Starred bool
}

// NeedsReview reports whether a word belongs in the review deck.
func (p Progress) NeedsReview() bool {
	return p.Starred || p.Unknown > 0
}

// Config defines runtime settings for a learning session.
type Config struct {
	WordsPath      string
	Theme          string
	ReviewMode     bool
	DisguiseStyle  string
	DisguiseQuit   bool
	DebounceWindow time.Duration
	TickInterval   time.Duration
	LLMBaseURL     string
	LLMModel       string
}

// StatsSummary aggregates progress across the whole catalog.
type StatsSummary struct {
	Total   int
	Seen    int
	Known   int
	Unknown int
	Starred int
}

// SessionRecord summarizes one finished learning session.
type SessionRecord struct {
	StartedAt time.Time
	EndedAt   time.Time
	Mode      string
	WordsSeen int
	Known     int
	Unknown   int
}
