// Package surveybuilder creates tenants, categories and questions for
// integration tests.
package surveybuilder

import (
	"anketly/survey-backend/internal/admin"
	"anketly/survey-backend/internal/survey/question"
	"anketly/survey-backend/internal/tenant"
	"anketly/survey-backend/test/testdata"
	"anketly/survey-backend/test/testdata/dbbuilder"
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
)

type Builder struct {
	t  *testing.T
	db dbbuilder.DBTX
}

func New(t *testing.T, db dbbuilder.DBTX) *Builder {
	return &Builder{t: t, db: db}
}

func (b Builder) CreateTenant(opts ...Option) tenant.Tenant {
	p := &FactoryParams{
		TenantID:   testdata.RandomTenantID(),
		TenantName: testdata.RandomCompany(),
	}
	for _, opt := range opts {
		opt(p)
	}

	row, err := tenant.New(b.db).Create(context.Background(), tenant.CreateParams{
		ID:   p.TenantID,
		Name: p.TenantName,
	})
	require.NoError(b.t, err)
	return row
}

func (b Builder) CreateAdmin(tenantID, personID string) admin.AdminUser {
	row, err := admin.New(b.db).Create(context.Background(), admin.CreateParams{
		TenantID: tenantID,
		PersonID: personID,
		Name:     pgtype.Text{String: testdata.RandomName(), Valid: true},
	})
	require.NoError(b.t, err)
	return row
}

func (b Builder) CreateCategory(tenantID string, opts ...Option) question.Category {
	p := &FactoryParams{
		CategoryName: testdata.RandomDescription(),
	}
	for _, opt := range opts {
		opt(p)
	}

	row, err := question.New(b.db).CreateCategory(context.Background(), question.CreateCategoryParams{
		TenantID: tenantID,
		Name:     p.CategoryName,
	})
	require.NoError(b.t, err)
	return row
}

func (b Builder) CreateQuestion(tenantID string, category question.Category, opts ...Option) question.Question {
	p := &FactoryParams{
		QuestionText: testdata.RandomQuestionText(),
		QuestionType: question.QuestionTypeFreeText,
		Order:        1,
	}
	for _, opt := range opts {
		opt(p)
	}

	row, err := question.New(b.db).CreateQuestion(context.Background(), question.CreateQuestionParams{
		CategoryID:   category.ID,
		TenantID:     tenantID,
		QuestionText: p.QuestionText,
		QuestionType: p.QuestionType,
		Options:      p.Options,
		IsRequired:   p.IsRequired,
		Order:        p.Order,
	})
	require.NoError(b.t, err)
	return row
}
