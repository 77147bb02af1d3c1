package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/overtone-ring/Kentucky-cdl-prep/internal/events"
	"github.com/overtone-ring/Kentucky-cdl-prep/internal/models"
)

// ReviewService replays a completed session question by question without
// mutating it.
type ReviewService interface {
	Open(ctx context.Context, session *models.Session) (*Review, error)
}

// Review is a read-only walk over a completed session. It keeps its own
// cursor; the session it was opened from is never written to.
type Review struct {
	session *models.Session
	cursor  int
}

// ReviewEntry is one question of a review pass together with the answer
// that was recorded for it, if any.
type ReviewEntry struct {
	Text         string
	Choices      []string
	CorrectIndex int
	Explanation  string
	Answer       int
	Answered     bool
	Correct      bool
}

type reviewService struct {
	publisher events.Publisher
	logger    *slog.Logger
}

func NewReviewService(publisher events.Publisher, logger *slog.Logger) ReviewService {
	return &reviewService{
		publisher: publisher,
		logger:    logger,
	}
}

func (s *reviewService) Open(ctx context.Context, session *models.Session) (*Review, error) {
	if session.Status != models.SessionCompleted {
		return nil, ErrSessionInProgress
	}

	s.logger.Info("Review opened",
		"session_id", session.ID,
		"question_count", len(session.Questions))

	event := events.NewReviewOpenedEvent(events.ReviewOpenedEvent{
		SessionID:     session.ID,
		QuestionCount: len(session.Questions),
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("Failed to publish event",
			"event_type", event.Type,
			"error", err)
	}

	return &Review{session: session, cursor: 0}, nil
}

// Current returns the entry under the review cursor.
func (r *Review) Current() ReviewEntry {
	question := r.session.Questions[r.cursor]
	answer := r.session.Answers[r.cursor]
	answered := answer != models.Unanswered
	return ReviewEntry{
		Text:         question.Text,
		Choices:      question.Choices,
		CorrectIndex: question.Correct,
		Explanation:  question.Explanation,
		Answer:       answer,
		Answered:     answered,
		Correct:      answered && answer == question.Correct,
	}
}

// Advance moves the review cursor forward, a no-op on the last question.
func (r *Review) Advance() {
	if r.cursor < len(r.session.Questions)-1 {
		r.cursor++
	}
}

// Retreat moves the review cursor back, a no-op on the first question.
func (r *Review) Retreat() {
	if r.cursor > 0 {
		r.cursor--
	}
}

// IsLast reports whether the cursor sits on the final question.
func (r *Review) IsLast() bool {
	return r.cursor == len(r.session.Questions)-1
}

// Index returns the zero-based cursor position.
func (r *Review) Index() int {
	return r.cursor
}

// Len returns the number of questions under review.
func (r *Review) Len() int {
	return len(r.session.Questions)
}

// Progress renders the cursor as a "current/total" counter.
func (r *Review) Progress() string {
	return fmt.Sprintf("%d/%d", r.cursor+1, len(r.session.Questions))
}
