package models

import (
	"fmt"
	"time"
)

// Unanswered marks an answer slot that has not been filled yet. It is
// deliberately outside the valid choice range so an unanswered slot can
// never compare equal to a correct index.
const Unanswered = -1

// PassThreshold is the minimum percentage required to pass a test.
const PassThreshold = 80

type SessionStatus string

const (
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
)

// Session is one attempt at a category's question set. It owns a shuffled
// copy of the category's questions and a parallel answer slice; mutating a
// session never touches the question bank.
type Session struct {
	ID         string
	CategoryID string
	Questions  []Question
	Answers    []int
	Cursor     int
	StudyMode  bool
	Status     SessionStatus

	StartedAt   time.Time
	CompletedAt *time.Time
}

// Current returns the question at the cursor.
func (s *Session) Current() Question {
	return s.Questions[s.Cursor]
}

// Answered reports whether the question at index i has a recorded answer.
func (s *Session) Answered(i int) bool {
	return s.Answers[i] != Unanswered
}

// Progress returns a "current/total" display string, 1-based.
func (s *Session) Progress() string {
	return fmt.Sprintf("%d/%d", s.Cursor+1, len(s.Questions))
}

// ScoreResult is the outcome of finishing a session.
type ScoreResult struct {
	CorrectCount   int  `json:"correct_count"`
	IncorrectCount int  `json:"incorrect_count"`
	Percentage     int  `json:"percentage"`
	Passed         bool `json:"passed"`
}
