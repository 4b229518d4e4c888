// Seed loads the demo tenant with its categories, questions, admin user and a
// handful of responses. Safe to run repeatedly; every write is an upsert.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strconv"

	"anketly/survey-backend/internal/admin"
	"anketly/survey-backend/internal/config"
	"anketly/survey-backend/internal/survey/question"
	"anketly/survey-backend/internal/survey/response"
	"anketly/survey-backend/internal/tenant"

	databaseutil "github.com/NYCU-SDC/summer/pkg/database"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	demoTenantID  = "tenant-test-123"
	demoAdminID   = "person-admin-456"
	demoPersonID  = "person-user-789"
	demoAdminName = "Admin User"
)

type seedQuestion struct {
	Text       string
	Type       question.QuestionType
	Options    []string
	IsRequired bool
}

type seedCategory struct {
	Name        string
	Description string
	Questions   []seedQuestion
}

var categories = []seedCategory{
	{
		Name:        "Mutluluk Anketi",
		Description: "Çalışan memnuniyeti ve mutluluk düzeyini ölçen sorular",
		Questions: []seedQuestion{
			{Text: "Şirketin mevcut durumuyla ilgili ne kadar mutlusunuz?", Type: question.QuestionTypeRating, IsRequired: true},
			{Text: "İş-yaşam dengenizden memnun musunuz?", Type: question.QuestionTypeYesNo},
			{Text: "Şirkette ne tür iyileştirmeler yapılmasını istersiniz?", Type: question.QuestionTypeFreeText},
		},
	},
	{
		Name:        "Ofis Restoran Anketi",
		Description: "Ofis yemek hizmetleri hakkında geri bildirim",
		Questions: []seedQuestion{
			{Text: "Hangi yemeği en çok seversiniz?", Type: question.QuestionTypeMultipleChoice, Options: []string{"Tavuk", "Et", "Balık", "Vejeteryan", "Vegan"}, IsRequired: true},
			{Text: "Yemek kalitesini nasıl değerlendirirsiniz?", Type: question.QuestionTypeRating, IsRequired: true},
			{Text: "Menüde görmek istediğiniz yemekler nelerdir?", Type: question.QuestionTypeFreeText},
		},
	},
	{
		Name:        "İş Ortamı Değerlendirme",
		Description: "Fiziksel çalışma ortamı hakkında sorular",
		Questions: []seedQuestion{
			{Text: "Çalışma alanınız yeterince aydınlatılmış mı?", Type: question.QuestionTypeYesNo},
			{Text: "Ofis sıcaklığı konforunu nasıl değerlendirirsiniz?", Type: question.QuestionTypeRating},
			{Text: "Çalışma ortamında iyileştirilmesi gereken alanlar nelerdir?", Type: question.QuestionTypeFreeText},
		},
	},
	{
		Name:        "Teknoloji ve Ekipman",
		Description: "Donanım ve araç ihtiyaçları",
		Questions: []seedQuestion{
			{Text: "Bilgisayarınızın performansından memnun musunuz?", Type: question.QuestionTypeYesNo},
			{Text: "Hangi teknolojik ekipmana ihtiyacınız var?", Type: question.QuestionTypeMultipleChoice, Options: []string{"İkinci Monitör", "Kablosuz Mouse", "Mekanik Klavye", "Laptop Stand", "Kulaklık"}},
			{Text: "İnternet bağlantı hızını değerlendirin", Type: question.QuestionTypeRating},
		},
	},
	{
		Name:        "Uzaktan Çalışma",
		Description: "Uzaktan çalışma düzeni hakkında geri bildirim",
		Questions: []seedQuestion{
			{Text: "Uzaktan çalışma imkanından faydalanıyor musunuz?", Type: question.QuestionTypeYesNo},
			{Text: "Haftada kaç gün uzaktan çalışmak istersiniz?", Type: question.QuestionTypeMultipleChoice, Options: []string{"0 gün (Tam ofis)", "1-2 gün", "3 gün", "4-5 gün (Çoğunlukla uzaktan)"}},
			{Text: "Uzaktan çalışma araçları yeterli mi?", Type: question.QuestionTypeRating},
		},
	},
}

func main() {
	fakeRespondents := flag.Int("fake-respondents", 0, "number of extra fake respondents to generate")

	cfg, _ := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Failed to validate config: %v, exiting...", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v, exiting...", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx := context.Background()

	if err := databaseutil.MigrationUp(cfg.MigrationSource, cfg.DatabaseURL, logger); err != nil {
		logger.Fatal("Failed to run database migration", zap.Error(err))
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err := seed(ctx, logger, pool, *fakeRespondents); err != nil {
		logger.Fatal("Seed failed", zap.Error(err))
	}

	logger.Info("Seed completed",
		zap.String("tenant_id", demoTenantID),
		zap.String("admin_person_id", demoAdminID),
		zap.String("user_person_id", demoPersonID))
}

func seed(ctx context.Context, logger *zap.Logger, pool *pgxpool.Pool, fakeRespondents int) error {
	tenantQueries := tenant.New(pool)
	adminQueries := admin.New(pool)
	questionQueries := question.New(pool)
	responseQueries := response.New(pool)

	_, err := tenantQueries.Create(ctx, tenant.CreateParams{
		ID:          demoTenantID,
		Name:        "Test Şirketi",
		Description: pgtype.Text{String: "Test amaçlı örnek şirket", Valid: true},
	})
	if err != nil {
		return fmt.Errorf("create tenant: %w", err)
	}
	logger.Info("Tenant created", zap.String("id", demoTenantID))

	_, err = adminQueries.Create(ctx, admin.CreateParams{
		TenantID: demoTenantID,
		PersonID: demoAdminID,
		Name:     pgtype.Text{String: demoAdminName, Valid: true},
	})
	if err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}
	logger.Info("Admin user created", zap.String("person_id", demoAdminID))

	questions := make([]question.Question, 0)
	for _, c := range categories {
		category, err := questionQueries.CreateCategory(ctx, question.CreateCategoryParams{
			TenantID:    demoTenantID,
			Name:        c.Name,
			Description: pgtype.Text{String: c.Description, Valid: c.Description != ""},
		})
		if err != nil {
			return fmt.Errorf("create category %q: %w", c.Name, err)
		}

		for i, q := range c.Questions {
			created, err := questionQueries.CreateQuestion(ctx, question.CreateQuestionParams{
				CategoryID:   category.ID,
				TenantID:     demoTenantID,
				QuestionText: q.Text,
				QuestionType: q.Type,
				Options:      q.Options,
				IsRequired:   q.IsRequired,
				Order:        int32(i + 1),
			})
			if err != nil {
				return fmt.Errorf("create question %q: %w", q.Text, err)
			}
			questions = append(questions, created)
		}
		logger.Info("Category created", zap.String("name", c.Name), zap.Int("questions", len(c.Questions)))
	}

	if err := seedResponses(ctx, responseQueries, questions); err != nil {
		return err
	}
	logger.Info("Sample responses created", zap.String("person_id", demoPersonID))

	if fakeRespondents > 0 {
		if err := seedFakeRespondents(ctx, responseQueries, questions, fakeRespondents); err != nil {
			return err
		}
		logger.Info("Fake respondents created", zap.Int("count", fakeRespondents))
	}

	return nil
}

// seedResponses mirrors the demo user's answers: one rating, one yes/no and
// one choice across the first two categories.
func seedResponses(ctx context.Context, queries *response.Queries, questions []question.Question) error {
	answers := map[question.QuestionType]string{
		question.QuestionTypeRating:         "4",
		question.QuestionTypeYesNo:          "Evet",
		question.QuestionTypeMultipleChoice: "Tavuk",
	}

	seeded := 0
	for _, q := range questions {
		value, ok := answers[q.QuestionType]
		if !ok || seeded >= 3 {
			continue
		}
		if q.QuestionType == question.QuestionTypeMultipleChoice && len(q.Options) > 0 {
			value = q.Options[0]
		}

		_, err := queries.Upsert(ctx, response.UpsertParams{
			QuestionID:  q.ID,
			TenantID:    demoTenantID,
			PersonID:    demoPersonID,
			PersonName:  pgtype.Text{String: "Ahmet Yılmaz", Valid: true},
			AnswerValue: value,
		})
		if err != nil {
			return fmt.Errorf("create sample response: %w", err)
		}
		seeded++
	}

	return nil
}

func seedFakeRespondents(ctx context.Context, queries *response.Queries, questions []question.Question, count int) error {
	faker := gofakeit.New(0)

	for i := 0; i < count; i++ {
		personID := fmt.Sprintf("person-fake-%03d", i+1)
		personName := faker.Name()

		for _, q := range questions {
			value := fakeAnswer(faker, q)
			if value == "" {
				continue
			}

			_, err := queries.Upsert(ctx, response.UpsertParams{
				QuestionID:  q.ID,
				TenantID:    demoTenantID,
				PersonID:    personID,
				PersonName:  pgtype.Text{String: personName, Valid: true},
				AnswerValue: value,
			})
			if err != nil {
				return fmt.Errorf("create fake response: %w", err)
			}
		}
	}

	return nil
}

func fakeAnswer(faker *gofakeit.Faker, q question.Question) string {
	switch q.QuestionType {
	case question.QuestionTypeRating:
		return strconv.Itoa(faker.Number(1, 5))
	case question.QuestionTypeYesNo:
		if faker.Bool() {
			return "Evet"
		}
		return "Hayır"
	case question.QuestionTypeMultipleChoice:
		if len(q.Options) == 0 {
			return ""
		}
		return q.Options[faker.Number(0, len(q.Options)-1)]
	case question.QuestionTypeFreeText:
		return faker.Sentence(8)
	}
	return ""
}
