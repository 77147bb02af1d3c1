package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType represents the notifications the engine emits toward the
// presentation layer.
type EventType string

const (
	// Session events
	EventSessionStarted   EventType = "session.started"
	EventAnswerRecorded   EventType = "session.answer_recorded"
	EventSessionCompleted EventType = "session.completed"

	// Review events
	EventReviewOpened EventType = "review.opened"
)

// Event is the base envelope for all engine notifications.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Data      interface{} `json:"data"`
}

// Envelope is the consumer-side counterpart of Event: the payload stays
// raw until the subscriber knows the type to decode it into.
type Envelope struct {
	ID        string          `json:"id"`
	Type      EventType       `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Source    string          `json:"source"`
	Version   string          `json:"version"`
	Data      json.RawMessage `json:"data"`
}

// DecodeEnvelope parses a published event payload.
func DecodeEnvelope(payload []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// Decode unmarshals the payload into the typed event for the envelope's
// Type.
func (e *Envelope) Decode(v any) error {
	return json.Unmarshal(e.Data, v)
}

// Event payloads

type SessionStartedEvent struct {
	SessionID     string `json:"session_id"`
	CategoryID    string `json:"category_id"`
	CategoryName  string `json:"category_name"`
	QuestionCount int    `json:"question_count"`
	StudyMode     bool   `json:"study_mode"`
}

// AnswerRecordedEvent carries everything the presentation layer needs to
// render feedback and, outside study mode, schedule its auto-advance.
type AnswerRecordedEvent struct {
	SessionID     string `json:"session_id"`
	QuestionIndex int    `json:"question_index"`
	ChoiceIndex   int    `json:"choice_index"`
	CorrectIndex  int    `json:"correct_index"`
	Correct       bool   `json:"correct"`
	StudyMode     bool   `json:"study_mode"`
	LastQuestion  bool   `json:"last_question"`
}

type SessionCompletedEvent struct {
	SessionID      string `json:"session_id"`
	CategoryID     string `json:"category_id"`
	CorrectCount   int    `json:"correct_count"`
	IncorrectCount int    `json:"incorrect_count"`
	Percentage     int    `json:"percentage"`
	Passed         bool   `json:"passed"`
}

type ReviewOpenedEvent struct {
	SessionID     string `json:"session_id"`
	QuestionCount int    `json:"question_count"`
}

// Event factory functions

func NewSessionStartedEvent(data SessionStartedEvent) *Event {
	return newEvent(EventSessionStarted, data)
}

func NewAnswerRecordedEvent(data AnswerRecordedEvent) *Event {
	return newEvent(EventAnswerRecorded, data)
}

func NewSessionCompletedEvent(data SessionCompletedEvent) *Event {
	return newEvent(EventSessionCompleted, data)
}

func NewReviewOpenedEvent(data ReviewOpenedEvent) *Event {
	return newEvent(EventReviewOpened, data)
}

func newEvent(eventType EventType, data interface{}) *Event {
	return &Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Source:    "cdl-prep",
		Version:   "1.0",
		Data:      data,
	}
}
