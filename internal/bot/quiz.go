package bot

import (
	"fmt"
	"strings"

	"github.com/prashanth-31/EduBot-Your-Smart-Study-Helper/internal/models"
)

// handleQuizAnswer consumes a turn while a quiz is in progress. Anything
// that is not a single letter A-D re-prompts without advancing.
func (c *Controller) handleQuizAnswer(input string) (string, bool) {
	qs := c.session.quiz
	if qs == nil {
		return "", false
	}

	answer := strings.ToUpper(strings.TrimSpace(input))
	if len(answer) != 1 || !strings.Contains("ABCD", answer) {
		return "Please reply with just the letter of your answer (A, B, C, or D).", true
	}

	current := qs.questions[qs.index]
	var resp string
	if answer == current.Answer {
		qs.score++
		resp = strings.TrimSpace("✅ Correct! " + current.Explanation)
	} else {
		resp = strings.TrimSpace(fmt.Sprintf("❌ Not quite. The correct answer is %s. %s", current.Answer, current.Explanation))
	}

	qs.answered[qs.index] = true
	qs.index++

	if qs.index >= len(qs.questions) {
		total := len(qs.questions)
		percentage := float64(qs.score) / float64(total) * 100
		resp += fmt.Sprintf("\n\n\U0001f389 Quiz complete! Your final score is %d/%d (%.1f%%).", qs.score, total, percentage)
		resp += "\n\n" + scoreTier(percentage)
		resp += "\n\nWould you like to try another quiz on a different topic?"

		c.session.logStudySession(c.now(), models.ActivityQuiz, qs.topic, "", fmt.Sprintf("%d/%d", qs.score, total))
		c.session.quiz = nil
		return resp, true
	}

	resp += "\n\n" + formatQuestion(qs.index, qs.questions[qs.index])
	return resp, true
}

// scoreTier returns the encouragement text for a final percentage.
func scoreTier(percentage float64) string {
	switch {
	case percentage >= 80:
		return "Excellent work! You really know this subject well."
	case percentage >= 60:
		return "Good job! You have a solid understanding of this topic."
	default:
		return "Keep studying! You're making progress, but could use more practice with this topic."
	}
}
