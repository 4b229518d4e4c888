package question

import (
	"math"
	"sort"

	"anketly/survey-backend/internal"
)

// Answerable is the behavior contract a question type carries: how to check an
// incoming answer, how to normalize it before storage, and how to tabulate the
// collected answers for presentation.
type Answerable interface {
	Question() Question

	// Validate checks the answer against the question type's value domain.
	Validate(answer string) error

	// Normalize prepares the raw answer string for storage.
	Normalize(answer string) string

	// Tabulate summarizes the collected answers for this question. The order
	// of answers is the encounter order of the underlying responses.
	Tabulate(answers []string) Tabulation
}

type ChoiceCount struct {
	Value      string `json:"value"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type RatingBucket struct {
	Rating     int `json:"rating"`
	Count      int `json:"count"`
	Percentage int `json:"percentage"`
}

type Tabulation struct {
	Choices []ChoiceCount  `json:"choices,omitempty"`
	Ratings []RatingBucket `json:"ratings,omitempty"`
	Average string         `json:"average,omitempty"`
}

func NewAnswerable(q Question) (Answerable, error) {
	switch q.QuestionType {
	case QuestionTypeMultipleChoice:
		return NewMultipleChoice(q)
	case QuestionTypeFreeText:
		return NewFreeText(q), nil
	case QuestionTypeRating:
		return NewRating(q), nil
	case QuestionTypeYesNo:
		return NewYesNo(q), nil
	}
	return nil, internal.ErrUnknownQuestionType
}

// tabulateChoices counts distinct answer values, sorted by count descending.
// Ties keep the order in which a value was first encountered.
func tabulateChoices(answers []string) []ChoiceCount {
	indexByValue := make(map[string]int, len(answers))
	counts := make([]ChoiceCount, 0)

	for _, answer := range answers {
		idx, seen := indexByValue[answer]
		if !seen {
			indexByValue[answer] = len(counts)
			counts = append(counts, ChoiceCount{Value: answer})
			idx = len(counts) - 1
		}
		counts[idx].Count++
	}

	total := len(answers)
	for i := range counts {
		counts[i].Percentage = percentage(counts[i].Count, total)
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	return counts
}

func percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
