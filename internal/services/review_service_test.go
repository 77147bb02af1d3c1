package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/overtone-ring/Kentucky-cdl-prep/internal/events"
	"github.com/overtone-ring/Kentucky-cdl-prep/internal/models"
)

type reviewFixture struct {
	sessions  SessionService
	reviews   ReviewService
	publisher *events.MockPublisher
	fixture   *sessionFixture
}

func newReviewFixture(t *testing.T, questionCount int) *reviewFixture {
	t.Helper()
	f := newSessionFixture(t, map[string]int{"general": questionCount})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &reviewFixture{
		sessions:  f.service,
		reviews:   NewReviewService(f.publisher, logger),
		publisher: f.publisher,
		fixture:   f,
	}
}

// completedSession runs a session end to end: the first question answered
// correctly, the second wrong, the rest left unanswered.
func (f *reviewFixture) completedSession(t *testing.T) *models.Session {
	t.Helper()
	ctx := context.Background()

	session := f.fixture.start(t, "general")
	require.NoError(t, f.sessions.SubmitAnswer(ctx, session, session.Questions[0].Correct))
	f.sessions.Advance(session)
	wrong := (session.Questions[1].Correct + 1) % models.ChoiceCount
	require.NoError(t, f.sessions.SubmitAnswer(ctx, session, wrong))

	_, err := f.sessions.Finish(ctx, session)
	require.NoError(t, err)
	return session
}

func TestReviewService_Open(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects a session still in progress", func(t *testing.T) {
		f := newReviewFixture(t, 3)
		session := f.fixture.start(t, "general")

		_, err := f.reviews.Open(ctx, session)
		assert.ErrorIs(t, err, ErrSessionInProgress)
		assert.True(t, IsInvalidState(err))
	})

	t.Run("starts at the first question", func(t *testing.T) {
		f := newReviewFixture(t, 3)
		review, err := f.reviews.Open(ctx, f.completedSession(t))
		require.NoError(t, err)

		assert.Equal(t, 0, review.Index())
		assert.Equal(t, 3, review.Len())
		assert.Equal(t, "1/3", review.Progress())
	})

	t.Run("emits review opened", func(t *testing.T) {
		f := newReviewFixture(t, 3)
		session := f.completedSession(t)
		f.publisher.Clear()

		_, err := f.reviews.Open(ctx, session)
		require.NoError(t, err)

		published := f.publisher.ByType(events.EventReviewOpened)
		require.Len(t, published, 1)
		data := published[0].Data.(events.ReviewOpenedEvent)
		assert.Equal(t, session.ID, data.SessionID)
		assert.Equal(t, 3, data.QuestionCount)
	})
}

func TestReview_Entries(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture(t, 3)
	session := f.completedSession(t)

	review, err := f.reviews.Open(ctx, session)
	require.NoError(t, err)

	t.Run("correctly answered question", func(t *testing.T) {
		entry := review.Current()
		assert.Equal(t, session.Questions[0].Text, entry.Text)
		assert.True(t, entry.Answered)
		assert.True(t, entry.Correct)
		assert.Equal(t, session.Questions[0].Correct, entry.Answer)
	})

	t.Run("incorrectly answered question", func(t *testing.T) {
		review.Advance()
		entry := review.Current()
		assert.True(t, entry.Answered)
		assert.False(t, entry.Correct)
		assert.NotEqual(t, entry.CorrectIndex, entry.Answer)
	})

	t.Run("unanswered question is marked neither answered nor correct", func(t *testing.T) {
		review.Advance()
		entry := review.Current()
		assert.False(t, entry.Answered)
		assert.False(t, entry.Correct)
		assert.Equal(t, models.Unanswered, entry.Answer)
	})
}

func TestReview_Navigation(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture(t, 3)

	review, err := f.reviews.Open(ctx, f.completedSession(t))
	require.NoError(t, err)

	review.Retreat()
	assert.Equal(t, 0, review.Index())

	review.Advance()
	review.Advance()
	assert.True(t, review.IsLast())

	review.Advance()
	assert.Equal(t, 2, review.Index())
	assert.Equal(t, "3/3", review.Progress())

	review.Retreat()
	assert.Equal(t, 1, review.Index())
}

func TestReview_DoesNotMutateSession(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture(t, 3)
	session := f.completedSession(t)

	answersBefore := append([]int(nil), session.Answers...)
	cursorBefore := session.Cursor

	review, err := f.reviews.Open(ctx, session)
	require.NoError(t, err)
	for !review.IsLast() {
		review.Current()
		review.Advance()
	}

	assert.Equal(t, answersBefore, session.Answers)
	assert.Equal(t, cursorBefore, session.Cursor)
	assert.Equal(t, models.SessionCompleted, session.Status)
}
