// Package testdata provides random value helpers for builders and tests.
package testdata

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
)

func RandomName() string {
	return gofakeit.Name()
}

func RandomDescription() string {
	return gofakeit.Sentence(8)
}

func RandomCompany() string {
	return gofakeit.Company()
}

func RandomTenantID() string {
	return fmt.Sprintf("tenant-%s", gofakeit.UUID())
}

func RandomPersonID() string {
	return fmt.Sprintf("person-%s", gofakeit.UUID())
}

func RandomQuestionText() string {
	return gofakeit.Question()
}
