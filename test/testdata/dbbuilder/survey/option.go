package surveybuilder

import (
	"anketly/survey-backend/internal/survey/question"
)

type Option func(*FactoryParams)

type FactoryParams struct {
	TenantID     string
	TenantName   string
	CategoryName string
	QuestionText string
	QuestionType question.QuestionType
	Options      []string
	IsRequired   bool
	Order        int32
}

func WithTenantID(tenantID string) Option {
	return func(p *FactoryParams) { p.TenantID = tenantID }
}

func WithTenantName(name string) Option {
	return func(p *FactoryParams) { p.TenantName = name }
}

func WithCategoryName(name string) Option {
	return func(p *FactoryParams) { p.CategoryName = name }
}

func WithQuestionText(text string) Option {
	return func(p *FactoryParams) { p.QuestionText = text }
}

func WithQuestionType(questionType question.QuestionType) Option {
	return func(p *FactoryParams) { p.QuestionType = questionType }
}

func WithOptions(options []string) Option {
	return func(p *FactoryParams) { p.Options = options }
}

func WithRequired() Option {
	return func(p *FactoryParams) { p.IsRequired = true }
}

func WithOrder(order int32) Option {
	return func(p *FactoryParams) { p.Order = order }
}
