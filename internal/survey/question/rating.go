package question

import (
	"fmt"
	"strconv"
	"strings"

	"anketly/survey-backend/internal"
)

const (
	RatingMin = 1
	RatingMax = 5
)

type Rating struct {
	question Question
}

func NewRating(q Question) Rating {
	return Rating{question: q}
}

func (r Rating) Question() Question { return r.question }

func (r Rating) Validate(answer string) error {
	value, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || value < RatingMin || value > RatingMax {
		return fmt.Errorf("question %s: answer %q: %w", r.question.ID, answer, internal.ErrInvalidRatingValue)
	}
	return nil
}

func (r Rating) Normalize(answer string) string {
	return strings.TrimSpace(answer)
}

// Tabulate buckets answers for ratings 5 down to 1 by exact string match.
// Percentages are relative to the question's total answer count. The average
// covers numeric answers only; legacy non-numeric values are excluded.
func (r Rating) Tabulate(answers []string) Tabulation {
	total := len(answers)
	buckets := make([]RatingBucket, 0, RatingMax)

	for rating := RatingMax; rating >= RatingMin; rating-- {
		count := 0
		for _, answer := range answers {
			if answer == strconv.Itoa(rating) {
				count++
			}
		}
		buckets = append(buckets, RatingBucket{
			Rating:     rating,
			Count:      count,
			Percentage: percentage(count, total),
		})
	}

	sum := 0
	numeric := 0
	for _, answer := range answers {
		value, err := strconv.Atoi(answer)
		if err != nil {
			continue
		}
		sum += value
		numeric++
	}

	average := ""
	if numeric > 0 {
		average = strconv.FormatFloat(float64(sum)/float64(numeric), 'f', 2, 64)
	}

	return Tabulation{
		Ratings: buckets,
		Average: average,
	}
}
