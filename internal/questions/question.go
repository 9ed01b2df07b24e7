package questions

// AnswerCount is the number of answers every question offers.
const AnswerCount = 3

// Question is a single multiple-choice exam question.
type Question struct {
	ID                 string              `json:"id"`
	Section            string              `json:"section"`
	Text               string              `json:"text"`
	Answers            [AnswerCount]string `json:"answers"`
	CorrectAnswerIndex int                 `json:"correct_answer_index"`
}

// IsCorrect reports whether answer is the index of the correct answer.
func (q Question) IsCorrect(answer int) bool {
	return answer == q.CorrectAnswerIndex
}

// CorrectAnswer returns the text of the correct answer.
func (q Question) CorrectAnswer() string {
	return q.Answers[q.CorrectAnswerIndex]
}

// SectionNumber derives the section from the first digit of the question id.
// Returns 0 if the id does not start with a valid section digit.
func (q Question) SectionNumber() SectionNumber {
	if q.ID == "" {
		return 0
	}
	n := SectionNumber(q.ID[0] - '0')
	if !n.Valid() {
		return 0
	}
	return n
}

// ValidAnswer reports whether i is a selectable answer index.
func ValidAnswer(i int) bool {
	return i >= 0 && i < AnswerCount
}
