package scoring

import "github.com/cyberquest/cyberquest/internal/questions"

// NotAnswered is the selected-answer text of a skipped question.
const NotAnswered = "Not answered"

// FeedbackItem explains the result of one question.
type FeedbackItem struct {
	QuestionID     int
	Question       string
	Category       string
	SelectedAnswer string
	CorrectAnswer  string
	Answered       bool
	IsCorrect      bool
	Explanation    string
	PointsEarned   int
	PointsPossible int
}

// GenerateFeedback returns one item per question in input order.
// Answered indexes must be within each question's options; Engine.Evaluate
// checks this before calling.
func GenerateFeedback(qs []questions.Question, sub Submission) []FeedbackItem {
	items := make([]FeedbackItem, 0, len(qs))
	for _, q := range qs {
		item := FeedbackItem{
			QuestionID:     q.ID,
			Question:       q.Text,
			Category:       q.CategoryLabel(),
			SelectedAnswer: NotAnswered,
			CorrectAnswer:  q.CorrectText(),
			Explanation:    q.Explanation,
			PointsPossible: q.PointValue(),
		}
		if idx, ok := sub.Answer(q.ID); ok {
			item.Answered = true
			item.SelectedAnswer = q.Options[idx]
			item.IsCorrect = idx == q.Correct
		}
		if item.IsCorrect {
			item.PointsEarned = item.PointsPossible
		}
		items = append(items, item)
	}
	return items
}
