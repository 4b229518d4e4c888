// Package survey exposes the end-user survey payload: the tenant's active
// categories and questions, the caller's admin flag, and the caller's own
// answers keyed by question id.
package survey

import (
	"context"
	"net/http"

	"anketly/survey-backend/internal/identity"
	"anketly/survey-backend/internal/survey/question"

	handlerutil "github.com/NYCU-SDC/summer/pkg/handler"
	logutil "github.com/NYCU-SDC/summer/pkg/log"
	"github.com/NYCU-SDC/summer/pkg/problem"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type QuestionStore interface {
	ListActiveWithQuestions(ctx context.Context, tenantID string) ([]question.CategoryWithQuestions, error)
}

type AdminStore interface {
	IsAdmin(ctx context.Context, tenantID, personID string) (bool, error)
}

type ResponseStore interface {
	AnswerMap(ctx context.Context, tenantID, personID string) (map[string]string, error)
}

type QuestionJSON struct {
	ID           string   `json:"id"`
	QuestionText string   `json:"questionText"`
	QuestionType string   `json:"questionType"`
	Options      []string `json:"options"`
	IsRequired   bool     `json:"isRequired"`
	Order        int32    `json:"order"`
}

type CategoryJSON struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Questions   []QuestionJSON `json:"questions"`
}

type SurveyResponse struct {
	Categories []CategoryJSON    `json:"categories"`
	IsAdmin    bool              `json:"isAdmin"`
	Responses  map[string]string `json:"responses"`
}

type Handler struct {
	logger        *zap.Logger
	problemWriter *problem.HttpWriter
	questionStore QuestionStore
	adminStore    AdminStore
	responseStore ResponseStore
	tracer        trace.Tracer
}

func NewHandler(
	logger *zap.Logger,
	problemWriter *problem.HttpWriter,
	questionStore QuestionStore,
	adminStore AdminStore,
	responseStore ResponseStore,
) *Handler {
	return &Handler{
		logger:        logger,
		problemWriter: problemWriter,
		questionStore: questionStore,
		adminStore:    adminStore,
		responseStore: responseStore,
		tracer:        otel.Tracer("survey/handler"),
	}
}

// GetHandler returns the full survey payload for the calling person.
func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	traceCtx, span := h.tracer.Start(r.Context(), "GetHandler")
	defer span.End()
	logger := logutil.WithContext(traceCtx, h.logger)

	caller, err := identity.FromRequest(r)
	if err != nil {
		h.problemWriter.WriteError(traceCtx, w, err, logger)
		return
	}

	categories, err := h.questionStore.ListActiveWithQuestions(traceCtx, caller.TenantID)
	if err != nil {
		h.problemWriter.WriteError(traceCtx, w, err, logger)
		return
	}

	isAdmin, err := h.adminStore.IsAdmin(traceCtx, caller.TenantID, caller.PersonID)
	if err != nil {
		h.problemWriter.WriteError(traceCtx, w, err, logger)
		return
	}

	answers, err := h.responseStore.AnswerMap(traceCtx, caller.TenantID, caller.PersonID)
	if err != nil {
		h.problemWriter.WriteError(traceCtx, w, err, logger)
		return
	}

	handlerutil.WriteJSONResponse(w, http.StatusOK, SurveyResponse{
		Categories: toCategoryJSON(categories),
		IsAdmin:    isAdmin,
		Responses:  answers,
	})
}

func toCategoryJSON(categories []question.CategoryWithQuestions) []CategoryJSON {
	out := make([]CategoryJSON, len(categories))
	for i, c := range categories {
		questions := make([]QuestionJSON, len(c.Questions))
		for j, q := range c.Questions {
			options := q.Options
			if options == nil {
				options = []string{}
			}
			questions[j] = QuestionJSON{
				ID:           q.ID.String(),
				QuestionText: q.QuestionText,
				QuestionType: string(q.QuestionType),
				Options:      options,
				IsRequired:   q.IsRequired,
				Order:        q.Order,
			}
		}
		out[i] = CategoryJSON{
			ID:          c.Category.ID.String(),
			Name:        c.Category.Name,
			Description: c.Category.Description.String,
			Questions:   questions,
		}
	}
	return out
}
