package llm

import (
	"fmt"
	"strings"
)

// The system prompts double as format contracts: the quiz and flashcard
// outputs are parsed line-by-line (internal/parse), so the labeled
// layouts below must stay in sync with the parsers.

// BuildQuizPrompt constructs the prompts for quiz generation.
func BuildQuizPrompt(topic string, numQuestions int) (system, user string) {
	system = `You create multiple-choice study quizzes. For each question:
1. Provide a clear question related to the requested topic
2. Give 4 possible answers labeled A, B, C, and D
3. Indicate the correct answer
4. Give a brief explanation of why it is correct

Format the output as follows for each question:
Q1: [Question text]
A: [Option A]
B: [Option B]
C: [Option C]
D: [Option D]
Answer: [Correct option letter]
Explanation: [Brief explanation of why this is correct]

Separate each question with a blank line. Return only the formatted questions, no introduction or commentary.`

	user = fmt.Sprintf("Create a quiz about %s with %d multiple-choice questions.", topic, numQuestions)
	return
}

// BuildFlashcardsPrompt constructs the prompts for flashcard generation.
func BuildFlashcardsPrompt(topic string, numCards int) (system, user string) {
	system = `You create study flashcards. For each flashcard:
1. Provide a clear term, concept, or question on the front
2. Provide a concise definition, explanation, or answer on the back

Format the output as follows for each flashcard:
Front: [Term/Concept/Question]
Back: [Definition/Explanation/Answer]

Separate each flashcard with a blank line. Return only the formatted flashcards, no introduction or commentary.`

	user = fmt.Sprintf("Create %d flashcards about %s.", numCards, topic)
	return
}

// BuildStudyPlanPrompt constructs the prompts for study plan generation.
func BuildStudyPlanPrompt(topic string, days int) (system, user string) {
	system = `You create day-by-day study plans. For each day, include:
1. Main focus/objective for the day
2. Key concepts to study
3. Suggested activities or exercises
4. Estimated time needed

Format the output as follows for each day:
Day 1:
Focus: [Main objective]
Concepts: [Key concepts]
Activities: [Suggested activities]
Time: [Estimated time in hours]

Separate each day with a blank line.`

	user = fmt.Sprintf("Create a %d-day study plan for learning about %s.", days, topic)
	return
}

// BuildSummarizePrompt constructs the prompts for text summarization.
func BuildSummarizePrompt(text string) (system, user string) {
	system = `Summarize the text the user shares into 1-2 concise sentences that capture the key points. Make the summary simple, clear, and easy to understand.`

	var sb strings.Builder
	sb.WriteString("TEXT TO SUMMARIZE:\n")
	sb.WriteString(text)
	user = sb.String()
	return
}

// BuildMathPrompt constructs the prompts for step-by-step math solving.
func BuildMathPrompt(problem string) (system, user string) {
	system = `Solve the math problem step by step. Provide a clear, detailed solution showing each step of your work. If it involves calculus, algebra, or other mathematical concepts, explain the key principles involved. Make your explanation understandable to a student learning this topic.`

	user = fmt.Sprintf("Please solve this math problem:\n%s", problem)
	return
}

// BuildGeneralPrompt constructs the prompts for general Q&A.
func BuildGeneralPrompt(question string) (system, user string) {
	system = `You are EduBot, a friendly and helpful educational assistant. Answer questions in a conversational, helpful manner. If a question is outside the educational domain, politely steer the conversation back to education.`

	user = fmt.Sprintf("Question: %s", question)
	return
}
