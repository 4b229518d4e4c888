package internal

import (
	"github.com/go-playground/validator/v10"
)

func NewValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("question_type", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "multiple_choice", "free_text", "rating", "yes_no":
			return true
		}
		return false
	})

	return v
}

func ValidateStruct(v *validator.Validate, s interface{}) error {
	err := v.Struct(s)
	if err != nil {
		return err
	}
	return nil
}
