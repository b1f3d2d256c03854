package models

import "time"

// ActivityKind identifies a type of study activity.
type ActivityKind string

const (
	ActivityQuiz      ActivityKind = "quiz"
	ActivityFlashcard ActivityKind = "flashcards"
	ActivityStudyPlan ActivityKind = "study_plan"
	ActivityPomodoro  ActivityKind = "pomodoro"
	ActivitySummarize ActivityKind = "summarize"
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in the conversation transcript.
type Message struct {
	Role    Role
	Content string
}

// StudySession records one completed study activity in the session log.
// Duration and Score are free-form display strings ("25 minutes", "3/5")
// and may be empty depending on the activity.
type StudySession struct {
	ID        string
	Type      ActivityKind
	Topic     string
	Duration  string
	Score     string
	Timestamp time.Time
}
