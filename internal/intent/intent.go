// Package intent classifies a raw user utterance into a study-activity
// intent using deterministic keyword matching. Detection is an ordered
// table of rules evaluated top to bottom; the first category whose
// keyword set matches wins, so the table order IS the priority policy:
// flashcards > study plan > pomodoro > quiz > summarize > math > general.
package intent

import (
	"regexp"
	"strconv"
	"strings"
)

// Intent is the classified purpose of an utterance. The *Prompt variants
// mean the category matched but a required parameter (topic, duration,
// text) is still missing and must be collected next turn.
type Intent string

const (
	Flashcards       Intent = "flashcards"
	FlashcardsPrompt Intent = "flashcards_prompt"
	StudyPlan        Intent = "study_plan"
	StudyPlanPrompt  Intent = "study_plan_prompt"
	Pomodoro         Intent = "pomodoro"
	PomodoroPrompt   Intent = "pomodoro_prompt"
	Quiz             Intent = "quiz"
	QuizPrompt       Intent = "quiz_prompt"
	Summarize        Intent = "summarize"
	SummarizePrompt  Intent = "summarize_prompt"
	Math             Intent = "math"
	General          Intent = "general"
)

// Params carries the values extracted alongside an intent. Only the
// fields relevant to the intent are set.
type Params struct {
	Topic    string // flashcards, study_plan, quiz
	Duration int    // pomodoro, minutes
	Text     string // summarize
	Problem  string // math
	Question string // general
}

// summarizeMinTokens is the minimum utterance length (whitespace tokens)
// for a summarize keyword match to carry its own text. Shorter matches
// become summarize_prompt and the text is collected next turn.
const summarizeMinTokens = 30

var (
	// Topic trails an "about"/"on" clause and runs until sentence
	// punctuation. Study plans additionally accept "for"/"studying".
	topicRe     = regexp.MustCompile(`(?:about|on) ([^?.,!]*)(\?|$|,|\.)`)
	planTopicRe = regexp.MustCompile(`(?:about|on|for|studying) ([^?.,!]*)(\?|$|,|\.)`)
	durationRe  = regexp.MustCompile(`(\d+) minutes`)
)

// rule is one row of the classification table: a keyword set that
// gates the category and an extractor that produces the final intent.
type rule struct {
	keywords []string
	guard    func(lower, raw string) bool
	extract  func(lower, raw string) (Intent, Params)
}

// rules is evaluated in order; categories below the first match are
// never consulted, even when their keywords are also present.
var rules = []rule{
	{
		keywords: []string{"flashcard", "flash card", "flash cards", "flashcards", "create flashcards"},
		extract:  topicExtractor(topicRe, Flashcards, FlashcardsPrompt),
	},
	{
		keywords: []string{"study plan", "learning plan", "study schedule", "create a plan", "learning schedule"},
		extract:  topicExtractor(planTopicRe, StudyPlan, StudyPlanPrompt),
	},
	{
		keywords: []string{"pomodoro", "timer", "study timer", "focus timer", "start timer"},
		extract:  extractPomodoro,
	},
	{
		keywords: []string{"quiz", "test", "questions", "make a quiz", "create a quiz", "generate a quiz"},
		extract:  topicExtractor(topicRe, Quiz, QuizPrompt),
	},
	{
		keywords: []string{"summarize", "summary", "summarize this", "condense", "shorten"},
		extract:  extractSummarize,
	},
	{
		keywords: []string{"solve", "math", "problem", "equation", "calculate", "find", "=", "+", "-", "*", "/", "algebra", "calculus"},
		guard:    hasDigit,
		extract: func(_, raw string) (Intent, Params) {
			return Math, Params{Problem: raw}
		},
	},
}

// Classify maps an utterance to an intent and its extracted parameters.
// Matching is case-insensitive; anything unmatched is a general question
// carrying the raw utterance.
func Classify(utterance string) (Intent, Params) {
	lower := strings.ToLower(utterance)

	for _, r := range rules {
		if !containsAny(lower, r.keywords) {
			continue
		}
		if r.guard != nil && !r.guard(lower, utterance) {
			continue
		}
		return r.extract(lower, utterance)
	}

	return General, Params{Question: utterance}
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func hasDigit(_, raw string) bool {
	return strings.ContainsAny(raw, "0123456789")
}

// topicExtractor builds the extractor shared by flashcards, study plan,
// and quiz: pull the topic from a trailing clause, or fall back to the
// category's prompt variant when no topic is present.
func topicExtractor(re *regexp.Regexp, with, without Intent) func(string, string) (Intent, Params) {
	return func(lower, _ string) (Intent, Params) {
		if m := re.FindStringSubmatch(lower); m != nil {
			if topic := strings.TrimSpace(m[1]); topic != "" {
				return with, Params{Topic: topic}
			}
		}
		return without, Params{}
	}
}

func extractPomodoro(lower, _ string) (Intent, Params) {
	if m := durationRe.FindStringSubmatch(lower); m != nil {
		minutes, err := strconv.Atoi(m[1])
		if err == nil {
			return Pomodoro, Params{Duration: minutes}
		}
	}
	return PomodoroPrompt, Params{}
}

func extractSummarize(_, raw string) (Intent, Params) {
	if len(strings.Fields(raw)) >= summarizeMinTokens {
		return Summarize, Params{Text: raw}
	}
	return SummarizePrompt, Params{}
}
