package question

import (
	"fmt"
	"strings"

	"anketly/survey-backend/internal"
)

const (
	AnswerYes = "Evet"
	AnswerNo  = "Hayır"
)

type YesNo struct {
	question Question
}

func NewYesNo(q Question) YesNo {
	return YesNo{question: q}
}

func (y YesNo) Question() Question { return y.question }

func (y YesNo) Validate(answer string) error {
	switch strings.TrimSpace(answer) {
	case AnswerYes, AnswerNo:
		return nil
	}
	return fmt.Errorf("question %s: answer %q: %w", y.question.ID, answer, internal.ErrInvalidYesNoValue)
}

func (y YesNo) Normalize(answer string) string {
	return strings.TrimSpace(answer)
}

func (y YesNo) Tabulate(answers []string) Tabulation {
	return Tabulation{Choices: tabulateChoices(answers)}
}
