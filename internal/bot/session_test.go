package bot

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prashanth-31/EduBot-Your-Smart-Study-Helper/internal/models"
)

func TestHistory_LastN(t *testing.T) {
	s := NewSession()
	for i := 0; i < 5; i++ {
		s.LogActivity(testClock, models.ActivityQuiz, fmt.Sprintf("topic-%d", i), "", "")
	}

	assert.Len(t, s.History(0), 5)
	assert.Len(t, s.History(-1), 5)
	assert.Len(t, s.History(10), 5)

	last2 := s.History(2)
	require.Len(t, last2, 2)
	assert.Equal(t, "topic-3", last2[0].Topic)
	assert.Equal(t, "topic-4", last2[1].Topic)
}

func TestHistory_RecordsGetULIDs(t *testing.T) {
	s := NewSession()
	s.LogActivity(testClock, models.ActivityQuiz, "a", "", "")
	s.LogActivity(testClock, models.ActivityQuiz, "b", "", "")

	history := s.History(0)
	require.Len(t, history, 2)
	assert.Len(t, history[0].ID, 26)
	assert.NotEqual(t, history[0].ID, history[1].ID)
}

func TestSearchHistory_FuzzyTopicMatch(t *testing.T) {
	s := NewSession()
	s.LogActivity(testClock, models.ActivityQuiz, "Linear Algebra", "", "")
	s.LogActivity(testClock, models.ActivityFlashcard, "Organic Chemistry", "", "")
	s.LogActivity(testClock, models.ActivityQuiz, "algebraic geometry", "", "")

	matches := s.SearchHistory("algebra")
	require.Len(t, matches, 2)
	assert.Equal(t, "Linear Algebra", matches[0].Topic)
	assert.Equal(t, "algebraic geometry", matches[1].Topic)

	// Fuzzy: characters in order, not necessarily adjacent.
	matches = s.SearchHistory("ochem")
	require.Len(t, matches, 1)
	assert.Equal(t, "Organic Chemistry", matches[0].Topic)

	assert.Empty(t, s.SearchHistory("zzz"))
}

func TestClearHistory(t *testing.T) {
	s := NewSession()
	s.LogActivity(testClock, models.ActivityQuiz, "a", "", "")
	s.ClearHistory()
	assert.Empty(t, s.History(0))
}

func TestPomodoroRemaining(t *testing.T) {
	s := NewSession()

	_, ok := s.PomodoroRemaining(testClock)
	assert.False(t, ok, "no timer running")

	s.pomodoro = pomodoroTimer{active: true, duration: 25, startedAt: testClock}

	remaining, ok := s.PomodoroRemaining(testClock.Add(10 * time.Minute))
	require.True(t, ok)
	assert.Equal(t, 15*time.Minute, remaining)

	remaining, ok = s.PomodoroRemaining(testClock.Add(time.Hour))
	require.True(t, ok)
	assert.Zero(t, remaining)
}
