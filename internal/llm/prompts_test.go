package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prashanth-31/EduBot-Your-Smart-Study-Helper/internal/parse"
)

func TestBuildQuizPrompt(t *testing.T) {
	system, user := BuildQuizPrompt("photosynthesis", 3)

	// The system prompt is the format contract the parser depends on.
	assert.Contains(t, system, "Q1:")
	assert.Contains(t, system, "A: [Option A]")
	assert.Contains(t, system, "D: [Option D]")
	assert.Contains(t, system, "Answer:")
	assert.Contains(t, system, "Explanation:")
	assert.Contains(t, system, "blank line")

	assert.Equal(t, "Create a quiz about photosynthesis with 3 multiple-choice questions.", user)
}

func TestBuildFlashcardsPrompt(t *testing.T) {
	system, user := BuildFlashcardsPrompt("Spanish verbs", 5)

	assert.Contains(t, system, "Front:")
	assert.Contains(t, system, "Back:")
	assert.Contains(t, system, "blank line")

	assert.Equal(t, "Create 5 flashcards about Spanish verbs.", user)
}

func TestBuildStudyPlanPrompt(t *testing.T) {
	system, user := BuildStudyPlanPrompt("calculus", 7)

	assert.Contains(t, system, "Day 1:")
	assert.Contains(t, system, "Focus:")
	assert.Contains(t, system, "Concepts:")
	assert.Contains(t, system, "Activities:")
	assert.Contains(t, system, "Time:")

	assert.Equal(t, "Create a 7-day study plan for learning about calculus.", user)
}

func TestBuildSummarizePrompt(t *testing.T) {
	system, user := BuildSummarizePrompt("A long passage about the Roman Empire.")

	assert.Contains(t, system, "1-2 concise sentences")
	assert.Contains(t, user, "TEXT TO SUMMARIZE:")
	assert.Contains(t, user, "A long passage about the Roman Empire.")
}

func TestBuildMathPrompt(t *testing.T) {
	system, user := BuildMathPrompt("2x + 3 = 11")

	assert.Contains(t, system, "step by step")
	assert.Contains(t, user, "2x + 3 = 11")
}

func TestBuildGeneralPrompt(t *testing.T) {
	system, user := BuildGeneralPrompt("why is the sky blue")

	assert.Contains(t, system, "EduBot")
	assert.Equal(t, "Question: why is the sky blue", user)
}

// The example layouts embedded in the prompts must themselves parse,
// otherwise a model that follows them exactly would produce output the
// parser rejects.
func TestPromptFormatContractMatchesParser(t *testing.T) {
	quiz := `Q1: Example question?
A: one
B: two
C: three
D: four
Answer: A
Explanation: because`
	require.Len(t, parse.Quiz(quiz), 1)

	cards := "Front: term\nBack: definition"
	require.Len(t, parse.Flashcards(cards), 1)
}
