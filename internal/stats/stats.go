// Package stats aggregates the in-memory study history into a summary
// for the /stats command and the MCP study-stats tool.
package stats

import (
	"fmt"

	"github.com/prashanth-31/EduBot-Your-Smart-Study-Helper/internal/models"
)

// Summary is the computed view over a study history.
type Summary struct {
	TotalSessions  int
	SessionsByType map[models.ActivityKind]int
	QuizzesScored  int     // quizzes completed to a final score
	AverageQuiz    float64 // mean final percentage over scored quizzes
	FocusMinutes   int     // total completed pomodoro minutes
}

// Summarize computes a Summary from history records.
func Summarize(history []models.StudySession) *Summary {
	s := &Summary{
		TotalSessions:  len(history),
		SessionsByType: make(map[models.ActivityKind]int),
	}

	var quizTotal float64
	for _, rec := range history {
		s.SessionsByType[rec.Type]++

		if rec.Type == models.ActivityQuiz && rec.Score != "" {
			if pct, ok := scorePercent(rec.Score); ok {
				s.QuizzesScored++
				quizTotal += pct
			}
		}

		if rec.Type == models.ActivityPomodoro && rec.Duration != "" {
			var minutes int
			if _, err := fmt.Sscanf(rec.Duration, "%d minutes", &minutes); err == nil {
				s.FocusMinutes += minutes
			}
		}
	}

	if s.QuizzesScored > 0 {
		s.AverageQuiz = quizTotal / float64(s.QuizzesScored)
	}
	return s
}

// scorePercent converts a "correct/total" score string to a percentage.
func scorePercent(score string) (float64, bool) {
	var correct, total int
	if _, err := fmt.Sscanf(score, "%d/%d", &correct, &total); err != nil || total == 0 {
		return 0, false
	}
	return float64(correct) / float64(total) * 100, true
}
