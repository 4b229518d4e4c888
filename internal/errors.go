package internal

import (
	"errors"

	"github.com/NYCU-SDC/summer/pkg/problem"
)

var (
	// Identity Errors
	ErrMissingTenantID     = errors.New("tenantId is required")
	ErrMissingPersonID     = errors.New("personId is required")
	ErrNoIdentityInContext = errors.New("no identity found in request context")
	ErrInvalidBearerToken  = errors.New("invalid bearer token")
	ErrTokenTenantMismatch = errors.New("token tenant does not match requested tenant")
	ErrInternalServerError = errors.New("internal server error")

	// Authorization Errors
	ErrNotAdmin = errors.New("user is not an admin")

	// Tenant Errors
	ErrTenantNotFound = errors.New("tenant not found")

	// Question Errors
	ErrQuestionNotFound     = errors.New("question not found or inactive")
	ErrUnknownQuestionType  = errors.New("unknown question type")
	ErrMissingChoiceOptions = errors.New("multiple choice question has no options")

	// Response Errors
	ErrMissingQuestionID  = errors.New("questionId is required")
	ErrMissingAnswerValue = errors.New("answerValue is required")
	ErrEmptyBatch         = errors.New("batch contains no answers")
	ErrAnswerNotInOptions = errors.New("answer is not one of the question options")
	ErrInvalidRatingValue = errors.New("rating answer must be a number between 1 and 5")
	ErrInvalidYesNoValue  = errors.New("yes/no answer must be Evet or Hayır")
	ErrValidationFailed   = errors.New("validation failed")
	ErrInvalidRequestBody = errors.New("invalid request body")
)

func NewProblemWriter() *problem.HttpWriter {
	return problem.NewWithMapping(ErrorHandler)
}

func ErrorHandler(err error) problem.Problem {
	switch {
	// Identity Errors
	case errors.Is(err, ErrMissingTenantID):
		return problem.NewBadRequestProblem("tenantId and personId are required")
	case errors.Is(err, ErrMissingPersonID):
		return problem.NewBadRequestProblem("tenantId and personId are required")
	case errors.Is(err, ErrNoIdentityInContext):
		return problem.NewBadRequestProblem("tenantId and personId are required")
	case errors.Is(err, ErrInvalidBearerToken):
		return problem.NewUnauthorizedProblem("invalid bearer token")
	case errors.Is(err, ErrTokenTenantMismatch):
		return problem.NewForbiddenProblem("token tenant does not match requested tenant")
	case errors.Is(err, ErrInternalServerError):
		return problem.NewInternalServerProblem("internal server error")

	// Authorization Errors
	case errors.Is(err, ErrNotAdmin):
		return problem.NewForbiddenProblem("Unauthorized: User is not an admin")

	// Tenant Errors
	case errors.Is(err, ErrTenantNotFound):
		return problem.NewNotFoundProblem("tenant not found")

	// Question Errors
	case errors.Is(err, ErrQuestionNotFound):
		return problem.NewNotFoundProblem("Question not found or inactive")
	case errors.Is(err, ErrUnknownQuestionType):
		return problem.NewValidateProblem("unknown question type")
	case errors.Is(err, ErrMissingChoiceOptions):
		return problem.NewValidateProblem("multiple choice question has no options")

	// Response Errors
	case errors.Is(err, ErrMissingQuestionID):
		return problem.NewBadRequestProblem("Missing required fields")
	case errors.Is(err, ErrMissingAnswerValue):
		return problem.NewBadRequestProblem("Missing required fields")
	case errors.Is(err, ErrEmptyBatch):
		return problem.NewBadRequestProblem("batch contains no answers")
	case errors.Is(err, ErrAnswerNotInOptions):
		return problem.NewValidateProblem("answer is not one of the question options")
	case errors.Is(err, ErrInvalidRatingValue):
		return problem.NewValidateProblem("rating answer must be a number between 1 and 5")
	case errors.Is(err, ErrInvalidYesNoValue):
		return problem.NewValidateProblem("yes/no answer must be Evet or Hayır")
	case errors.Is(err, ErrValidationFailed):
		return problem.NewValidateProblem("validation failed")
	case errors.Is(err, ErrInvalidRequestBody):
		return problem.NewBadRequestProblem("invalid request body")
	}
	return problem.Problem{}
}
