package question

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var textPolicy = bluemonday.StrictPolicy()

type FreeText struct {
	question Question
}

func NewFreeText(q Question) FreeText {
	return FreeText{question: q}
}

func (t FreeText) Question() Question { return t.question }

func (t FreeText) Validate(answer string) error {
	return nil
}

// Normalize strips any HTML from the free-form answer before storage. The
// value ends up verbatim in result listings and exported spreadsheets.
func (t FreeText) Normalize(answer string) string {
	return strings.TrimSpace(textPolicy.Sanitize(answer))
}

// Tabulate is a no-op for free text; responses are listed verbatim, most
// recent first.
func (t FreeText) Tabulate(answers []string) Tabulation {
	return Tabulation{}
}
