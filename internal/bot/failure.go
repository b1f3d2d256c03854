package bot

import (
	"fmt"

	"github.com/prashanth-31/EduBot-Your-Smart-Study-Helper/internal/models"
)

// FailureKind classifies the ways a turn can go wrong. None of them are
// fatal: every kind maps to a textual response and leaves the session in
// a consistent state.
type FailureKind int

const (
	// FailureGeneration means the generation service was unreachable or
	// rejected the request.
	FailureGeneration FailureKind = iota
	// FailureParse means generation succeeded but yielded zero usable
	// records. Presented to the user identically to FailureGeneration.
	FailureParse
)

// GenerationError is the typed failure produced when content generation
// for an activity does not yield usable output. The activity flow it
// came from has already been rolled back to idle.
type GenerationError struct {
	Kind     FailureKind
	Activity models.ActivityKind
	Topic    string
	Err      error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s generation for %q: %v", e.Activity, e.Topic, e.Err)
	}
	return fmt.Sprintf("%s generation for %q produced no usable content", e.Activity, e.Topic)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// renderFailure turns a generation failure into the user-facing retry
// invitation. The message always names the topic so a retry is easy;
// underlying detail is appended only in diagnostic mode.
func (c *Controller) renderFailure(e *GenerationError) string {
	var msg string
	switch e.Activity {
	case models.ActivityQuiz:
		msg = fmt.Sprintf("I'm sorry, I couldn't generate a quiz about %s at the moment. Could you try another topic or try again later?", e.Topic)
	case models.ActivityFlashcard:
		msg = fmt.Sprintf("I'm sorry, I couldn't generate flashcards about %s at the moment. Could you try another topic or try again later?", e.Topic)
	case models.ActivityStudyPlan:
		msg = fmt.Sprintf("I'm having trouble creating your study plan for %s. Could you try another topic or try again later?", e.Topic)
	default:
		msg = "I'm sorry, I encountered an error processing your message. Could you try rephrasing or asking something else?"
	}
	if c.debug && e.Err != nil {
		msg += fmt.Sprintf("\n\nError details: %v", e.Err)
	}
	return msg
}

// renderDirectFailure is the apology for one-shot generations (summarize,
// math, general) where there is no activity state to roll back.
func (c *Controller) renderDirectFailure(what string, err error) string {
	msg := fmt.Sprintf("I'm sorry, I ran into a problem %s. Could you try again?", what)
	if c.debug && err != nil {
		msg += fmt.Sprintf("\n\nError details: %v", err)
	}
	return msg
}
