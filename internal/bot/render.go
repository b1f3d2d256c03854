package bot

import (
	"fmt"
	"strings"

	"github.com/prashanth-31/EduBot-Your-Smart-Study-Helper/internal/models"
)

const (
	cardHintFront = "Type 'flip' to see the back of the card, 'next' for the next card, or 'exit' to finish studying."
	cardHintFlip  = "Type 'flip' to see the other side, 'next' for the next card, or 'exit' to finish studying."
)

// formatQuestion renders one question with its options in the stable
// A, B, C, D order.
func formatQuestion(index int, q models.QuizQuestion) string {
	options := make([]string, len(models.OptionKeys))
	for i, key := range models.OptionKeys {
		options[i] = fmt.Sprintf("%s: %s", key, q.Options[key])
	}
	return fmt.Sprintf("**Question %d:** %s\n\n%s\n\nReply with just the letter of your answer (A, B, C, or D).",
		index+1, q.Question, strings.Join(options, "\n"))
}

// formatCard renders one side of a flashcard with a navigation hint.
func formatCard(index int, card models.Flashcard, flipped bool, hint string) string {
	side, content := "Front", card.Front
	if flipped {
		side, content = "Back", card.Back
	}
	return fmt.Sprintf("**Card %d (%s):** %s\n\n%s", index+1, side, content, hint)
}
