package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/overtone-ring/Kentucky-cdl-prep/internal/bank"
	"github.com/overtone-ring/Kentucky-cdl-prep/internal/events"
	"github.com/overtone-ring/Kentucky-cdl-prep/internal/models"
	"github.com/overtone-ring/Kentucky-cdl-prep/internal/shuffle"
	"github.com/overtone-ring/Kentucky-cdl-prep/internal/stores"
	"github.com/overtone-ring/Kentucky-cdl-prep/internal/validator"
)

// SessionService owns the test-session state machine: sequencing, answer
// capture, completion detection and scoring.
type SessionService interface {
	Start(ctx context.Context, req *StartSessionRequest) (*models.Session, error)
	SubmitAnswer(ctx context.Context, session *models.Session, choiceIndex int) error
	Advance(session *models.Session)
	Retreat(session *models.Session)
	IsLastQuestion(session *models.Session) bool
	CountUnanswered(session *models.Session) int
	Finish(ctx context.Context, session *models.Session) (*models.ScoreResult, error)
}

type StartSessionRequest struct {
	CategoryID string `json:"category_id" validate:"required"`
	StudyMode  bool   `json:"study_mode"`
}

type submitAnswerRequest struct {
	ChoiceIndex int `json:"choice_index" validate:"choice_index"`
}

type sessionService struct {
	bank      *bank.QuestionBank
	stats     stores.StatsStore
	publisher events.Publisher
	rng       shuffle.Source
	logger    *slog.Logger
	validator *validator.Validator
}

func NewSessionService(
	questionBank *bank.QuestionBank,
	stats stores.StatsStore,
	publisher events.Publisher,
	rng shuffle.Source,
	logger *slog.Logger,
	validator *validator.Validator,
) SessionService {
	return &sessionService{
		bank:      questionBank,
		stats:     stats,
		publisher: publisher,
		rng:       rng,
		logger:    logger,
		validator: validator,
	}
}

// ===== CORE SESSION OPERATIONS =====

func (s *sessionService) Start(ctx context.Context, req *StartSessionRequest) (*models.Session, error) {
	// Validate request
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	category, err := s.bank.Category(req.CategoryID)
	if err != nil {
		if errors.Is(err, bank.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	session := &models.Session{
		ID:         uuid.NewString(),
		CategoryID: category.ID,
		Questions:  shuffle.Slice(s.rng, category.Questions),
		Answers:    make([]int, len(category.Questions)),
		Cursor:     0,
		StudyMode:  req.StudyMode,
		Status:     models.SessionInProgress,
		StartedAt:  time.Now(),
	}
	for i := range session.Answers {
		session.Answers[i] = models.Unanswered
	}

	s.logger.Info("Session started",
		"session_id", session.ID,
		"category_id", category.ID,
		"question_count", len(session.Questions),
		"study_mode", req.StudyMode)

	s.publish(ctx, events.NewSessionStartedEvent(events.SessionStartedEvent{
		SessionID:     session.ID,
		CategoryID:    category.ID,
		CategoryName:  category.Name,
		QuestionCount: len(session.Questions),
		StudyMode:     req.StudyMode,
	}))

	return session, nil
}

func (s *sessionService) SubmitAnswer(ctx context.Context, session *models.Session, choiceIndex int) error {
	if session.Status != models.SessionInProgress {
		return ErrSessionCompleted
	}

	if err := s.validator.Validate(&submitAnswerRequest{ChoiceIndex: choiceIndex}); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	// Answers are write-once: re-submitting an answered question is a
	// silent no-op, including for auto-advance timers racing a manual
	// answer.
	if session.Answered(session.Cursor) {
		return nil
	}

	session.Answers[session.Cursor] = choiceIndex
	question := session.Current()

	s.logger.Debug("Answer recorded",
		"session_id", session.ID,
		"question_index", session.Cursor,
		"correct", choiceIndex == question.Correct)

	s.publish(ctx, events.NewAnswerRecordedEvent(events.AnswerRecordedEvent{
		SessionID:     session.ID,
		QuestionIndex: session.Cursor,
		ChoiceIndex:   choiceIndex,
		CorrectIndex:  question.Correct,
		Correct:       choiceIndex == question.Correct,
		StudyMode:     session.StudyMode,
		LastQuestion:  s.IsLastQuestion(session),
	}))

	return nil
}

// ===== NAVIGATION =====

// Advance moves the cursor forward one question. At the last question it
// is a no-op; IsLastQuestion tells the caller to finish instead.
func (s *sessionService) Advance(session *models.Session) {
	if session.Status != models.SessionInProgress {
		return
	}
	if session.Cursor < len(session.Questions)-1 {
		session.Cursor++
	}
}

// Retreat moves the cursor back one question, a no-op at index 0.
func (s *sessionService) Retreat(session *models.Session) {
	if session.Status != models.SessionInProgress {
		return
	}
	if session.Cursor > 0 {
		session.Cursor--
	}
}

func (s *sessionService) IsLastQuestion(session *models.Session) bool {
	return session.Cursor == len(session.Questions)-1
}

// CountUnanswered reports how many slots are still open so the caller can
// decide whether to warn before finishing. Confirmation itself is a
// presentation concern.
func (s *sessionService) CountUnanswered(session *models.Session) int {
	count := 0
	for i := range session.Answers {
		if !session.Answered(i) {
			count++
		}
	}
	return count
}

// ===== SCORING =====

func (s *sessionService) Finish(ctx context.Context, session *models.Session) (*models.ScoreResult, error) {
	// The state guard is what keeps a double finish from double-counting
	// the attempt in the stats store.
	if session.Status != models.SessionInProgress {
		return nil, ErrSessionCompleted
	}

	correct := 0
	for i, question := range session.Questions {
		if session.Answered(i) && session.Answers[i] == question.Correct {
			correct++
		}
	}

	total := len(session.Questions)
	percentage := int(math.Round(float64(correct) / float64(total) * 100))
	result := &models.ScoreResult{
		CorrectCount:   correct,
		IncorrectCount: total - correct,
		Percentage:     percentage,
		Passed:         percentage >= models.PassThreshold,
	}

	now := time.Now()
	session.Status = models.SessionCompleted
	session.CompletedAt = &now

	if err := s.stats.Record(ctx, session.CategoryID, result.Percentage, result.Passed); err != nil {
		// Stats are best-effort: a storage failure never blocks the
		// result.
		s.logger.Warn("Failed to record stats",
			"session_id", session.ID,
			"category_id", session.CategoryID,
			"error", err)
	}

	s.logger.Info("Session completed",
		"session_id", session.ID,
		"category_id", session.CategoryID,
		"percentage", result.Percentage,
		"passed", result.Passed)

	s.publish(ctx, events.NewSessionCompletedEvent(events.SessionCompletedEvent{
		SessionID:      session.ID,
		CategoryID:     session.CategoryID,
		CorrectCount:   result.CorrectCount,
		IncorrectCount: result.IncorrectCount,
		Percentage:     result.Percentage,
		Passed:         result.Passed,
	}))

	return result, nil
}

// publish sends a notification toward the presentation layer. Notifications
// are advisory; a publish failure is logged, never surfaced.
func (s *sessionService) publish(ctx context.Context, event *events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("Failed to publish event",
			"event_type", event.Type,
			"error", err)
	}
}
