package bot

import (
	"fmt"
	"time"

	"github.com/prashanth-31/EduBot-Your-Smart-Study-Helper/internal/models"
)

// startPomodoro activates the timer. Callers have already validated or
// clamped minutes into the 1-60 range.
func (c *Controller) startPomodoro(minutes int) string {
	c.session.pomodoro = pomodoroTimer{
		active:    true,
		duration:  minutes,
		startedAt: c.now(),
	}
	return fmt.Sprintf("I've started a %d-minute Pomodoro timer for you! Focus on your work, and I'll let you know when time is up.", minutes)
}

// checkPomodoro returns the completion notice when the running timer
// has elapsed, or "" otherwise. The timer is cleared before returning,
// so the notice fires exactly once per completion.
func (c *Controller) checkPomodoro() string {
	t := &c.session.pomodoro
	if !t.active {
		return ""
	}

	elapsed := c.now().Sub(t.startedAt)
	if elapsed < time.Duration(t.duration)*time.Minute {
		return ""
	}

	minutes := t.duration
	t.active = false
	t.startedAt = time.Time{}
	c.session.logStudySession(c.now(), models.ActivityPomodoro, "Focus Session", fmt.Sprintf("%d minutes", minutes), "")

	return fmt.Sprintf("⏰ Your %d-minute Pomodoro timer is complete! Time to take a 5-minute break. Would you like to start another timer after your break?", minutes)
}

// StartPomodoro starts a timer on behalf of a host surface, clamping
// minutes into the valid range the same way a direct chat request does.
func (c *Controller) StartPomodoro(minutes int) string {
	return c.startPomodoro(clampDuration(minutes))
}

// CancelPomodoro stops the running timer without logging a session.
// Reports whether a timer was actually running.
func (c *Controller) CancelPomodoro() bool {
	if !c.session.pomodoro.active {
		return false
	}
	c.session.pomodoro = pomodoroTimer{}
	return true
}
