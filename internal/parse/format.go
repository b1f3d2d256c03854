package parse

import (
	"fmt"
	"strings"

	"github.com/prashanth-31/EduBot-Your-Smart-Study-Helper/internal/models"
)

// FormatFlashcards renders cards in the canonical Front:/Back: text form.
// The output round-trips through Flashcards unchanged.
func FormatFlashcards(cards []models.Flashcard) string {
	blocks := make([]string, len(cards))
	for i, c := range cards {
		blocks[i] = fmt.Sprintf("Front: %s\nBack: %s", c.Front, c.Back)
	}
	return strings.Join(blocks, "\n\n")
}

// FormatQuiz renders questions in the canonical Q<n>:/A:-D:/Answer: text
// form. The output round-trips through Quiz unchanged.
func FormatQuiz(questions []models.QuizQuestion) string {
	blocks := make([]string, len(questions))
	for i, q := range questions {
		var b strings.Builder
		fmt.Fprintf(&b, "Q%d: %s\n", i+1, q.Question)
		for _, key := range models.OptionKeys {
			fmt.Fprintf(&b, "%s: %s\n", key, q.Options[key])
		}
		fmt.Fprintf(&b, "Answer: %s", q.Answer)
		if q.Explanation != "" {
			fmt.Fprintf(&b, "\nExplanation: %s", q.Explanation)
		}
		blocks[i] = b.String()
	}
	return strings.Join(blocks, "\n\n")
}
