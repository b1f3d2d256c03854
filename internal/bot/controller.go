package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/prashanth-31/EduBot-Your-Smart-Study-Helper/internal/intent"
	"github.com/prashanth-31/EduBot-Your-Smart-Study-Helper/internal/llm"
	"github.com/prashanth-31/EduBot-Your-Smart-Study-Helper/internal/models"
)

// Controller drives one conversation: it owns the dispatch order for
// each turn and all mutations of the session state. Turns must be
// processed one at a time; the generation call is the only operation
// that blocks.
type Controller struct {
	session *Session
	gen     llm.Generator
	now     func() time.Time
	debug   bool
}

// NewController creates a controller for one conversation.
func NewController(session *Session, gen llm.Generator) *Controller {
	return &Controller{
		session: session,
		gen:     gen,
		now:     time.Now,
	}
}

// SetDebug toggles diagnostic mode: failure responses carry underlying
// error detail instead of a generic apology only.
func (c *Controller) SetDebug(on bool) { c.debug = on }

// Session exposes the conversation state to the host surface.
func (c *Controller) Session() *Session { return c.session }

// HandleTurn processes one user utterance and returns the response
// text. A pomodoro completion notice, if one is due, is prefixed to
// whatever the turn produces.
func (c *Controller) HandleTurn(ctx context.Context, input string) string {
	c.session.Messages = append(c.session.Messages, models.Message{Role: models.RoleUser, Content: input})

	notice := c.checkPomodoro()
	response := c.dispatch(ctx, input)
	if notice != "" {
		response = notice + "\n\n" + response
	}

	c.session.Messages = append(c.session.Messages, models.Message{Role: models.RoleAssistant, Content: response})
	return response
}

// dispatch routes the utterance. The order is an invariant: in-progress
// flashcards and quizzes claim the turn before any collection flow, and
// collection flows claim it before the classifier ever sees the input,
// so "B" mid-quiz is never reinterpreted as a new request.
func (c *Controller) dispatch(ctx context.Context, input string) string {
	if resp, ok := c.handleFlashcardCommand(input); ok {
		return resp
	}
	if resp, ok := c.handleQuizAnswer(input); ok {
		return resp
	}
	if resp, ok := c.continueCollection(ctx, input); ok {
		return resp
	}
	return c.handleNewIntent(ctx, input)
}

// handleNewIntent classifies a fresh utterance and either opens a
// collection flow, starts a timer, or answers in one round trip.
func (c *Controller) handleNewIntent(ctx context.Context, input string) string {
	kind, params := intent.Classify(input)

	switch kind {
	case intent.Flashcards:
		c.beginCollection(models.ActivityFlashcard, stepCount, params.Topic)
		return fmt.Sprintf("I'd be happy to create flashcards about %s! How many flashcards would you like (1-10)?", params.Topic)

	case intent.FlashcardsPrompt:
		c.beginCollection(models.ActivityFlashcard, stepTopic, "")
		return "I'd be happy to create flashcards for you! What topic would you like the flashcards to be about?"

	case intent.StudyPlan:
		c.beginCollection(models.ActivityStudyPlan, stepCount, params.Topic)
		return fmt.Sprintf("I'd be happy to create a study plan for learning about %s! How many days would you like the plan to cover (1-14)?", params.Topic)

	case intent.StudyPlanPrompt:
		c.beginCollection(models.ActivityStudyPlan, stepTopic, "")
		return "I'd be happy to create a study plan for you! What topic would you like to study?"

	case intent.Pomodoro:
		// Direct-intent durations are clamped to the nearest bound
		// rather than rejected; the collection path re-prompts instead.
		return c.startPomodoro(clampDuration(params.Duration))

	case intent.PomodoroPrompt:
		c.beginCollection(models.ActivityPomodoro, stepCount, "")
		return "I'd be happy to set a Pomodoro timer for you! How many minutes would you like to focus for (1-60)?"

	case intent.Quiz:
		c.beginCollection(models.ActivityQuiz, stepCount, params.Topic)
		return fmt.Sprintf("I'd be happy to create a quiz about %s! How many questions would you like (1-5)?", params.Topic)

	case intent.QuizPrompt:
		c.beginCollection(models.ActivityQuiz, stepTopic, "")
		return "I'd be happy to create a quiz for you! What topic would you like the quiz to be about?"

	case intent.Summarize:
		return c.summarize(ctx, params.Text)

	case intent.SummarizePrompt:
		c.beginCollection(models.ActivitySummarize, stepText, "")
		return "I'd be happy to summarize some text for you! Please share the passage you'd like me to summarize."

	case intent.Math:
		return c.solveMath(ctx, params.Problem)

	default:
		return c.answerGeneral(ctx, params.Question)
	}
}

// beginCollection opens a new parameter-gathering flow, superseding any
// flow already mid-collection.
func (c *Controller) beginCollection(kind models.ActivityKind, step collectStep, topic string) {
	c.session.collecting = &collection{kind: kind, step: step, topic: topic}
}

func clampDuration(minutes int) int {
	if minutes < pomodoroMinMinutes {
		return pomodoroMinMinutes
	}
	if minutes > pomodoroMaxMinutes {
		return pomodoroMaxMinutes
	}
	return minutes
}
