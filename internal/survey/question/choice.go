package question

import (
	"fmt"
	"slices"
	"strings"

	"anketly/survey-backend/internal"
)

type MultipleChoice struct {
	question Question
	Options  []string
}

func NewMultipleChoice(q Question) (MultipleChoice, error) {
	if len(q.Options) == 0 {
		return MultipleChoice{}, fmt.Errorf("question %s: %w", q.ID, internal.ErrMissingChoiceOptions)
	}

	return MultipleChoice{
		question: q,
		Options:  q.Options,
	}, nil
}

func (c MultipleChoice) Question() Question { return c.question }

func (c MultipleChoice) Validate(answer string) error {
	if !slices.Contains(c.Options, strings.TrimSpace(answer)) {
		return fmt.Errorf("question %s: answer %q: %w", c.question.ID, answer, internal.ErrAnswerNotInOptions)
	}
	return nil
}

func (c MultipleChoice) Normalize(answer string) string {
	return strings.TrimSpace(answer)
}

func (c MultipleChoice) Tabulate(answers []string) Tabulation {
	return Tabulation{Choices: tabulateChoices(answers)}
}
