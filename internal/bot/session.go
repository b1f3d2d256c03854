// Package bot implements the conversational core of EduBot: the
// per-conversation session state, the multi-turn activity flows, and
// the dialogue controller that routes each utterance. One Session and
// one Controller serve exactly one conversation; a host serving many
// conversations creates one pair per conversation and processes turns
// one at a time, so the package takes no locks.
package bot

import (
	"math/rand"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/oklog/ulid/v2"
	"github.com/samber/lo"

	"github.com/prashanth-31/EduBot-Your-Smart-Study-Helper/internal/models"
)

// Greeting is the assistant message that opens every new conversation.
const Greeting = "Hi there! I'm EduBot, your smart study helper. I can generate quizzes, summarize text, solve math problems, create flashcards, and answer your study questions. How can I help you today?"

// collectStep is the input an in-flight activity flow is waiting for.
type collectStep int

const (
	stepTopic collectStep = iota // next utterance is the topic, taken verbatim
	stepCount                    // next utterance is an integer (count/days/minutes)
	stepText                     // next utterance is a free-text passage (summarize)
)

// collection is the single in-flight parameter-gathering flow. Holding
// at most one of these makes "awaiting two topics at once" unrepresentable.
type collection struct {
	kind  models.ActivityKind
	step  collectStep
	topic string
}

type flashcardSession struct {
	topic   string
	cards   []models.Flashcard
	index   int
	flipped bool
}

type quizSession struct {
	topic     string
	questions []models.QuizQuestion
	index     int
	score     int
	answered  []bool
}

type pomodoroTimer struct {
	active    bool
	duration  int // minutes
	startedAt time.Time
}

// Session is the mutable state of one conversation.
type Session struct {
	Messages []models.Message

	history    []models.StudySession
	collecting *collection
	flashcards *flashcardSession
	quiz       *quizSession
	pomodoro   pomodoroTimer
}

// NewSession creates a session seeded with the assistant greeting.
func NewSession() *Session {
	return &Session{
		Messages: []models.Message{
			{Role: models.RoleAssistant, Content: Greeting},
		},
	}
}

// logStudySession appends one record to the study history.
func (s *Session) logStudySession(now time.Time, kind models.ActivityKind, topic, duration, score string) {
	s.history = append(s.history, models.StudySession{
		ID:        newULID(),
		Type:      kind,
		Topic:     topic,
		Duration:  duration,
		Score:     score,
		Timestamp: now,
	})
}

// LogActivity appends one record to the study history. It is the
// exported form of logStudySession for hosts outside the dialogue
// loop, such as the MCP tool surface.
func (s *Session) LogActivity(now time.Time, kind models.ActivityKind, topic, duration, score string) {
	s.logStudySession(now, kind, topic, duration, score)
}

// History returns the last n study sessions in chronological order.
// n <= 0 returns the full history.
func (s *Session) History(n int) []models.StudySession {
	if n <= 0 || n >= len(s.history) {
		return s.history
	}
	return s.history[len(s.history)-n:]
}

// SearchHistory returns history records whose topic fuzzy-matches query,
// in chronological order.
func (s *Session) SearchHistory(query string) []models.StudySession {
	return lo.Filter(s.history, func(r models.StudySession, _ int) bool {
		return fuzzy.MatchFold(query, r.Topic)
	})
}

// ClearHistory resets the study history to empty.
func (s *Session) ClearHistory() {
	s.history = nil
}

// PomodoroRemaining reports the time left on the running timer, or
// ok=false when no timer is active.
func (s *Session) PomodoroRemaining(now time.Time) (remaining time.Duration, ok bool) {
	if !s.pomodoro.active {
		return 0, false
	}
	total := time.Duration(s.pomodoro.duration) * time.Minute
	elapsed := now.Sub(s.pomodoro.startedAt)
	if elapsed > total {
		return 0, true
	}
	return total - elapsed, true
}

// newULID generates a new ULID string.
func newULID() string {
	entropy := rand.New(rand.NewSource(time.Now().UnixNano()))
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulid.Monotonic(entropy, 0)).String()
}
