package intent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_FlashcardsWithTopic(t *testing.T) {
	kind, params := Classify("Can you make flashcards about the French Revolution?")
	assert.Equal(t, Flashcards, kind)
	assert.Equal(t, "the french revolution", params.Topic)
}

func TestClassify_FlashcardsWithoutTopic(t *testing.T) {
	kind, params := Classify("I want some flashcards")
	assert.Equal(t, FlashcardsPrompt, kind)
	assert.Empty(t, params.Topic)
}

func TestClassify_TopicStopsAtPunctuation(t *testing.T) {
	kind, params := Classify("quiz me on photosynthesis, please")
	assert.Equal(t, Quiz, kind)
	assert.Equal(t, "photosynthesis", params.Topic)
}

func TestClassify_EmptyTopicFallsBackToPrompt(t *testing.T) {
	// "about" clause present but empty: treat as missing.
	kind, _ := Classify("make flashcards about ?")
	assert.Equal(t, FlashcardsPrompt, kind)
}

func TestClassify_StudyPlan(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      Intent
		wantTopic string
	}{
		{"with for clause", "create a study plan for organic chemistry", StudyPlan, "organic chemistry"},
		{"with studying clause", "I need a study schedule, I'm studying linear algebra.", StudyPlan, "linear algebra"},
		{"without topic", "help me build a study plan", StudyPlanPrompt, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, params := Classify(tt.input)
			assert.Equal(t, tt.want, kind)
			assert.Equal(t, tt.wantTopic, params.Topic)
		})
	}
}

func TestClassify_PomodoroWithDuration(t *testing.T) {
	kind, params := Classify("start a pomodoro for 25 minutes")
	assert.Equal(t, Pomodoro, kind)
	assert.Equal(t, 25, params.Duration)
}

func TestClassify_PomodoroWithoutDuration(t *testing.T) {
	kind, _ := Classify("can you set a focus timer?")
	assert.Equal(t, PomodoroPrompt, kind)
}

func TestClassify_Quiz(t *testing.T) {
	kind, params := Classify("give me a quiz about world war 2")
	assert.Equal(t, Quiz, kind)
	assert.Equal(t, "world war 2", params.Topic)
}

func TestClassify_SummarizeLongText(t *testing.T) {
	long := "summarize this " + strings.Repeat("word ", 40)
	kind, params := Classify(long)
	assert.Equal(t, Summarize, kind)
	assert.Equal(t, long, params.Text)
}

func TestClassify_SummarizeShortText(t *testing.T) {
	kind, params := Classify("summarize this article for me")
	assert.Equal(t, SummarizePrompt, kind)
	assert.Empty(t, params.Text)
}

func TestClassify_SummarizeThreshold(t *testing.T) {
	// Exactly summarizeMinTokens tokens carries its own text.
	input := "summarize " + strings.TrimSpace(strings.Repeat("w ", summarizeMinTokens-1))
	kind, _ := Classify(input)
	assert.Equal(t, Summarize, kind)
}

func TestClassify_MathRequiresDigit(t *testing.T) {
	kind, params := Classify("solve 2x + 3 = 11")
	assert.Equal(t, Math, kind)
	assert.Equal(t, "solve 2x + 3 = 11", params.Problem)

	// Without a digit the math keywords do not fire.
	kind, params = Classify("how do I solve problems like this")
	assert.Equal(t, General, kind)
	assert.Equal(t, "how do I solve problems like this", params.Question)
}

func TestClassify_General(t *testing.T) {
	kind, params := Classify("why is the sky blue")
	assert.Equal(t, General, kind)
	assert.Equal(t, "why is the sky blue", params.Question)
}

func TestClassify_PriorityOrder(t *testing.T) {
	// When multiple categories match, the earlier table row wins.
	tests := []struct {
		name  string
		input string
		want  Intent
	}{
		{"flashcards beat quiz", "make flashcard questions about biology", Flashcards},
		{"study plan beats quiz", "a study plan with test questions for physics", StudyPlan},
		{"pomodoro beats quiz", "start a timer so I can do quiz practice for 10 minutes", Pomodoro},
		{"quiz beats summarize", "quiz me on this summary about rome", Quiz},
		{"summarize beats math", "summarize chapter 12 of the book", SummarizePrompt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, _ := Classify(tt.input)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	kind, params := Classify("MAKE FLASHCARDS ABOUT Spanish Verbs")
	assert.Equal(t, Flashcards, kind)
	assert.Equal(t, "spanish verbs", params.Topic)
}
