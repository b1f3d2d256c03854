package models

// Flashcard is a single front/back study card. Immutable once parsed;
// a new set replaces the whole slice.
type Flashcard struct {
	Front string
	Back  string
}

// OptionKeys is the stable presentation order for quiz options.
var OptionKeys = []string{"A", "B", "C", "D"}

// QuizQuestion is a multiple-choice question with exactly four options
// keyed A-D. Answer holds the correct option key. Explanation may be empty.
type QuizQuestion struct {
	Question    string
	Options     map[string]string
	Answer      string
	Explanation string
}
