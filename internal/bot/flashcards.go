package bot

import "strings"

// handleFlashcardCommand consumes a turn while a flashcard set is being
// reviewed. Commands are exact, case-insensitive matches; anything else
// re-prompts with the valid vocabulary.
func (c *Controller) handleFlashcardCommand(input string) (string, bool) {
	fs := c.session.flashcards
	if fs == nil {
		return "", false
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "flip":
		fs.flipped = !fs.flipped
		return formatCard(fs.index, fs.cards[fs.index], fs.flipped, cardHintFlip), true

	case "next":
		fs.index++
		fs.flipped = false
		if fs.index >= len(fs.cards) {
			c.session.flashcards = nil
			return "You've gone through all the flashcards! Would you like to create another set on a different topic?", true
		}
		return formatCard(fs.index, fs.cards[fs.index], false, cardHintFront), true

	case "exit":
		c.session.flashcards = nil
		return "Flashcard study session ended. What would you like to do next?", true

	default:
		return "Please type 'flip', 'next', or 'exit'.", true
	}
}
