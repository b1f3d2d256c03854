package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/prashanth-31/EduBot-Your-Smart-Study-Helper/internal/llm"
	"github.com/prashanth-31/EduBot-Your-Smart-Study-Helper/internal/models"
	"github.com/prashanth-31/EduBot-Your-Smart-Study-Helper/internal/parse"
)

const (
	pomodoroMinMinutes = 1
	pomodoroMaxMinutes = 60
)

// flowSpec describes the collection behavior of one activity: the valid
// integer range and the exact wording of its prompts and re-prompts.
type flowSpec struct {
	min, max   int
	askCount   string // asked once the topic is known; %s is the topic
	outOfRange string // re-prompt for an in-range violation, state unchanged
	notANumber string // re-prompt for a parse failure, state unchanged
}

var flowSpecs = map[models.ActivityKind]flowSpec{
	models.ActivityFlashcard: {
		min:        1,
		max:        10,
		askCount:   "Great! I'll create flashcards about %s. How many flashcards would you like (1-10)?",
		outOfRange: "Please choose a number between 1 and 10.",
		notANumber: "Sorry, I didn't get that. Please enter a number between 1 and 10.",
	},
	models.ActivityStudyPlan: {
		min:        1,
		max:        14,
		askCount:   "Great! I'll create a study plan for %s. How many days would you like the plan to cover (1-14)?",
		outOfRange: "Please choose a number between 1 and 14 days.",
		notANumber: "Sorry, I didn't get that. Please enter a number between 1 and 14.",
	},
	models.ActivityQuiz: {
		min:        1,
		max:        5,
		askCount:   "Great! I'll create a quiz about %s. How many questions would you like (1-5)?",
		outOfRange: "Please choose a number between 1 and 5.",
		notANumber: "Sorry, I didn't get that. Please enter a number between 1 and 5.",
	},
	models.ActivityPomodoro: {
		min:        pomodoroMinMinutes,
		max:        pomodoroMaxMinutes,
		outOfRange: "Please choose a duration between 1 and 60 minutes.",
		notANumber: "Sorry, I didn't get that. Please enter a duration between 1 and 60 minutes.",
	},
}

// continueCollection advances the in-flight flow with this turn's input.
// Returns ok=false when no flow is mid-collection.
func (c *Controller) continueCollection(ctx context.Context, input string) (string, bool) {
	col := c.session.collecting
	if col == nil {
		return "", false
	}

	switch col.step {
	case stepTopic:
		// The raw utterance is the topic, verbatim.
		col.topic = input
		col.step = stepCount
		return fmt.Sprintf(flowSpecs[col.kind].askCount, col.topic), true

	case stepText:
		c.session.collecting = nil
		return c.summarize(ctx, input), true

	default:
		return c.collectCount(ctx, col, input), true
	}
}

// collectCount parses and validates the count/days/duration answer. Any
// invalid input re-prompts without touching the flow state; a valid
// value consumes the flow and hands off to generation (or the timer).
func (c *Controller) collectCount(ctx context.Context, col *collection, input string) string {
	spec := flowSpecs[col.kind]

	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return spec.notANumber
	}
	if n < spec.min || n > spec.max {
		return spec.outOfRange
	}

	c.session.collecting = nil

	switch col.kind {
	case models.ActivityFlashcard:
		return c.startFlashcards(ctx, col.topic, n)
	case models.ActivityStudyPlan:
		return c.createStudyPlan(ctx, col.topic, n)
	case models.ActivityQuiz:
		return c.startQuiz(ctx, col.topic, n)
	default:
		return c.startPomodoro(n)
	}
}

// startFlashcards generates and parses a card set, then enters the
// flashcard review state on the first card.
func (c *Controller) startFlashcards(ctx context.Context, topic string, count int) string {
	system, user := llm.BuildFlashcardsPrompt(topic, count)
	text, err := c.gen.Generate(ctx, system, user)
	if err != nil {
		return c.renderFailure(&GenerationError{Kind: FailureGeneration, Activity: models.ActivityFlashcard, Topic: topic, Err: err})
	}

	cards := parse.Flashcards(text)
	if len(cards) == 0 {
		return c.renderFailure(&GenerationError{Kind: FailureParse, Activity: models.ActivityFlashcard, Topic: topic})
	}

	// At most one of flashcards/quiz may be in progress.
	c.session.quiz = nil
	c.session.flashcards = &flashcardSession{topic: topic, cards: cards}
	c.session.logStudySession(c.now(), models.ActivityFlashcard, topic, "", "")

	return fmt.Sprintf("Here are your flashcards on %s!\n\n%s", topic,
		formatCard(0, cards[0], false, cardHintFront))
}

// startQuiz generates and parses a question set, then enters the quiz
// state on the first question.
func (c *Controller) startQuiz(ctx context.Context, topic string, count int) string {
	system, user := llm.BuildQuizPrompt(topic, count)
	text, err := c.gen.Generate(ctx, system, user)
	if err != nil {
		return c.renderFailure(&GenerationError{Kind: FailureGeneration, Activity: models.ActivityQuiz, Topic: topic, Err: err})
	}

	questions := parse.Quiz(text)
	if len(questions) == 0 {
		return c.renderFailure(&GenerationError{Kind: FailureParse, Activity: models.ActivityQuiz, Topic: topic})
	}

	c.session.flashcards = nil
	c.session.quiz = &quizSession{
		topic:     topic,
		questions: questions,
		answered:  make([]bool, len(questions)),
	}
	c.session.logStudySession(c.now(), models.ActivityQuiz, topic, "", "")

	return fmt.Sprintf("Here's your quiz on %s!\n\n%s", topic, formatQuestion(0, questions[0]))
}

// createStudyPlan generates a plan and returns it directly; there is no
// in-progress state for study plans.
func (c *Controller) createStudyPlan(ctx context.Context, topic string, days int) string {
	system, user := llm.BuildStudyPlanPrompt(topic, days)
	text, err := c.gen.Generate(ctx, system, user)
	if err != nil {
		return c.renderFailure(&GenerationError{Kind: FailureGeneration, Activity: models.ActivityStudyPlan, Topic: topic, Err: err})
	}

	c.session.logStudySession(c.now(), models.ActivityStudyPlan, topic, "", "")
	return fmt.Sprintf("Here's your %d-day study plan for learning about %s:\n\n%s\n\nIs there anything you'd like me to explain or adjust about this plan?", days, topic, text)
}

func (c *Controller) summarize(ctx context.Context, text string) string {
	system, user := llm.BuildSummarizePrompt(text)
	summary, err := c.gen.Generate(ctx, system, user)
	if err != nil {
		return c.renderDirectFailure("summarizing that text", err)
	}
	return fmt.Sprintf("Here's a summary of what you shared:\n\n%s\n\nIs there anything else you'd like me to explain or summarize?", summary)
}

func (c *Controller) solveMath(ctx context.Context, problem string) string {
	system, user := llm.BuildMathPrompt(problem)
	solution, err := c.gen.Generate(ctx, system, user)
	if err != nil {
		return c.renderDirectFailure("solving that problem", err)
	}
	return fmt.Sprintf("Here's the solution to your math problem:\n\n%s\n\nDo you have any other problems you'd like me to solve?", solution)
}

func (c *Controller) answerGeneral(ctx context.Context, question string) string {
	system, user := llm.BuildGeneralPrompt(question)
	answer, err := c.gen.Generate(ctx, system, user)
	if err != nil {
		return c.renderDirectFailure("answering that question", err)
	}
	return answer
}
