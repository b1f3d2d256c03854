// Package parse turns raw generated text into typed study content.
// The generation backend is asked for a specific line-oriented format
// (see internal/llm prompts); these parsers are deliberately forgiving
// about everything except the fields that make a record usable.
package parse

import (
	"regexp"
	"strings"

	"github.com/prashanth-31/EduBot-Your-Smart-Study-Helper/internal/models"
)

// Blocks are separated by one or more blank lines, with optional
// whitespace on the separator lines.
var blockSep = regexp.MustCompile(`\n\s*\n`)

// Flashcards extracts flashcards from generated text. Blocks missing
// either a Front: or Back: line are dropped silently; an empty result
// is the only failure signal.
func Flashcards(text string) []models.Flashcard {
	var cards []models.Flashcard

	for _, block := range blockSep.Split(text, -1) {
		if strings.TrimSpace(block) == "" {
			continue
		}

		var card models.Flashcard
		var haveFront, haveBack bool

		for _, line := range strings.Split(strings.TrimSpace(block), "\n") {
			line = strings.TrimSpace(line)
			switch {
			case strings.HasPrefix(line, "Front:"):
				card.Front = strings.TrimSpace(strings.SplitN(line, ":", 2)[1])
				haveFront = true
			case strings.HasPrefix(line, "Back:"):
				card.Back = strings.TrimSpace(strings.SplitN(line, ":", 2)[1])
				haveBack = true
			}
		}

		if haveFront && haveBack {
			cards = append(cards, card)
		}
	}

	return cards
}

// Quiz extracts multiple-choice questions from generated text. A block
// is kept only if it has a question line (Q1:, Q2:, ...), all four
// options A-D, and an Answer line whose value is one of A-D. Anything
// else is dropped without error.
func Quiz(text string) []models.QuizQuestion {
	var questions []models.QuizQuestion

	for _, block := range blockSep.Split(text, -1) {
		if strings.TrimSpace(block) == "" {
			continue
		}

		q := models.QuizQuestion{Options: map[string]string{}}
		var haveQuestion, haveAnswer bool

		for _, line := range strings.Split(strings.TrimSpace(block), "\n") {
			line = strings.TrimSpace(line)
			switch {
			case strings.HasPrefix(line, "Q") && strings.Contains(line, ":"):
				q.Question = strings.TrimSpace(strings.SplitN(line, ":", 2)[1])
				haveQuestion = true
			case strings.HasPrefix(line, "A:"):
				q.Options["A"] = strings.TrimSpace(line[2:])
			case strings.HasPrefix(line, "B:"):
				q.Options["B"] = strings.TrimSpace(line[2:])
			case strings.HasPrefix(line, "C:"):
				q.Options["C"] = strings.TrimSpace(line[2:])
			case strings.HasPrefix(line, "D:"):
				q.Options["D"] = strings.TrimSpace(line[2:])
			case strings.HasPrefix(line, "Answer:"):
				q.Answer = strings.TrimSpace(strings.SplitN(line, ":", 2)[1])
				haveAnswer = true
			case strings.HasPrefix(line, "Explanation:"):
				q.Explanation = strings.TrimSpace(strings.SplitN(line, ":", 2)[1])
			}
		}

		if haveQuestion && haveAnswer && len(q.Options) == 4 && validAnswer(q.Answer) {
			questions = append(questions, q)
		}
	}

	return questions
}

func validAnswer(s string) bool {
	switch s {
	case "A", "B", "C", "D":
		return true
	}
	return false
}
