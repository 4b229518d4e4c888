package response

import (
	"context"
	"net/http"
	"time"

	"anketly/survey-backend/internal"
	"anketly/survey-backend/internal/identity"

	handlerutil "github.com/NYCU-SDC/summer/pkg/handler"
	logutil "github.com/NYCU-SDC/summer/pkg/log"
	"github.com/NYCU-SDC/summer/pkg/problem"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type UpsertRequest struct {
	QuestionID  string  `json:"questionId" validate:"required,uuid"`
	TenantID    string  `json:"tenantId"`
	PersonID    string  `json:"personId"`
	PersonName  string  `json:"personName"`
	AnswerValue *string `json:"answerValue" validate:"required"`
}

type BatchAnswer struct {
	QuestionID  string  `json:"questionId" validate:"required,uuid"`
	AnswerValue *string `json:"answerValue" validate:"required"`
}

type BatchRequest struct {
	TenantID   string        `json:"tenantId"`
	PersonID   string        `json:"personId"`
	PersonName string        `json:"personName"`
	Answers    []BatchAnswer `json:"answers" validate:"required,min=1,dive"`
}

type ResponseJSON struct {
	ID          string    `json:"id"`
	QuestionID  string    `json:"questionId"`
	TenantID    string    `json:"tenantId"`
	PersonID    string    `json:"personId"`
	PersonName  string    `json:"personName,omitempty"`
	AnswerValue string    `json:"answerValue"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type UpsertResponse struct {
	Success  bool         `json:"success"`
	Response ResponseJSON `json:"response"`
}

type BatchUpsertResponse struct {
	Success   bool           `json:"success"`
	Responses []ResponseJSON `json:"responses"`
}

type PersonResponseJSON struct {
	ID           string    `json:"id"`
	QuestionID   string    `json:"questionId"`
	QuestionText string    `json:"questionText"`
	QuestionType string    `json:"questionType"`
	AnswerValue  string    `json:"answerValue"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ListResponse struct {
	Responses []PersonResponseJSON `json:"responses"`
}

type Store interface {
	Upsert(ctx context.Context, input UpsertInput) (Response, error)
	BatchUpsert(ctx context.Context, tenantID, personID, personName string, answers []AnswerInput) ([]Response, error)
	ListByPerson(ctx context.Context, tenantID, personID string) ([]ListByPersonRow, error)
}

type Handler struct {
	logger        *zap.Logger
	validator     *validator.Validate
	problemWriter *problem.HttpWriter
	store         Store
	tracer        trace.Tracer
}

func NewHandler(logger *zap.Logger, validator *validator.Validate, problemWriter *problem.HttpWriter, store Store) *Handler {
	return &Handler{
		logger:        logger,
		validator:     validator,
		problemWriter: problemWriter,
		store:         store,
		tracer:        otel.Tracer("response/handler"),
	}
}

// UpsertHandler stores or overwrites a single answer for the calling person.
func (h *Handler) UpsertHandler(w http.ResponseWriter, r *http.Request) {
	traceCtx, span := h.tracer.Start(r.Context(), "UpsertHandler")
	defer span.End()
	logger := logutil.WithContext(traceCtx, h.logger)

	var req UpsertRequest
	if err := handlerutil.ParseAndValidateRequestBody(traceCtx, h.validator, r, &req); err != nil {
		h.problemWriter.WriteError(traceCtx, w, err, logger)
		return
	}

	caller, err := resolveIdentity(r, req.TenantID, req.PersonID, req.PersonName)
	if err != nil {
		h.problemWriter.WriteError(traceCtx, w, err, logger)
		return
	}

	questionID, err := handlerutil.ParseUUID(req.QuestionID)
	if err != nil {
		h.problemWriter.WriteError(traceCtx, w, err, logger)
		return
	}

	row, err := h.store.Upsert(traceCtx, UpsertInput{
		QuestionID:  questionID,
		TenantID:    caller.TenantID,
		PersonID:    caller.PersonID,
		PersonName:  caller.PersonName,
		AnswerValue: *req.AnswerValue,
	})
	if err != nil {
		h.problemWriter.WriteError(traceCtx, w, err, logger)
		return
	}

	handlerutil.WriteJSONResponse(w, http.StatusOK, UpsertResponse{
		Success:  true,
		Response: toResponseJSON(row),
	})
}

// BatchUpsertHandler stores a set of answers atomically.
func (h *Handler) BatchUpsertHandler(w http.ResponseWriter, r *http.Request) {
	traceCtx, span := h.tracer.Start(r.Context(), "BatchUpsertHandler")
	defer span.End()
	logger := logutil.WithContext(traceCtx, h.logger)

	var req BatchRequest
	if err := handlerutil.ParseAndValidateRequestBody(traceCtx, h.validator, r, &req); err != nil {
		h.problemWriter.WriteError(traceCtx, w, err, logger)
		return
	}

	caller, err := resolveIdentity(r, req.TenantID, req.PersonID, req.PersonName)
	if err != nil {
		h.problemWriter.WriteError(traceCtx, w, err, logger)
		return
	}

	answers := make([]AnswerInput, len(req.Answers))
	for i, answer := range req.Answers {
		questionID, err := handlerutil.ParseUUID(answer.QuestionID)
		if err != nil {
			h.problemWriter.WriteError(traceCtx, w, err, logger)
			return
		}
		answers[i] = AnswerInput{
			QuestionID:  questionID,
			AnswerValue: *answer.AnswerValue,
		}
	}

	rows, err := h.store.BatchUpsert(traceCtx, caller.TenantID, caller.PersonID, caller.PersonName, answers)
	if err != nil {
		h.problemWriter.WriteError(traceCtx, w, err, logger)
		return
	}

	responses := make([]ResponseJSON, len(rows))
	for i, row := range rows {
		responses[i] = toResponseJSON(row)
	}

	handlerutil.WriteJSONResponse(w, http.StatusOK, BatchUpsertResponse{
		Success:   true,
		Responses: responses,
	})
}

// ListHandler lists the calling person's responses with their questions.
func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	traceCtx, span := h.tracer.Start(r.Context(), "ListHandler")
	defer span.End()
	logger := logutil.WithContext(traceCtx, h.logger)

	caller, err := identity.FromRequest(r)
	if err != nil {
		h.problemWriter.WriteError(traceCtx, w, err, logger)
		return
	}

	rows, err := h.store.ListByPerson(traceCtx, caller.TenantID, caller.PersonID)
	if err != nil {
		h.problemWriter.WriteError(traceCtx, w, err, logger)
		return
	}

	responses := make([]PersonResponseJSON, len(rows))
	for i, row := range rows {
		responses[i] = PersonResponseJSON{
			ID:           row.ID.String(),
			QuestionID:   row.QuestionID.String(),
			QuestionText: row.QuestionText,
			QuestionType: row.QuestionType,
			AnswerValue:  row.AnswerValue,
			CreatedAt:    row.CreatedAt.Time,
			UpdatedAt:    row.UpdatedAt.Time,
		}
	}

	handlerutil.WriteJSONResponse(w, http.StatusOK, ListResponse{Responses: responses})
}

// resolveIdentity merges the token-derived identity with body fields; the
// host-asserted identity wins over client-claimed values.
func resolveIdentity(r *http.Request, tenantID, personID, personName string) (identity.Identity, error) {
	if id, ok := identity.FromContext(r.Context()); ok {
		return id, nil
	}

	if tenantID == "" {
		return identity.Identity{}, internal.ErrMissingTenantID
	}
	if personID == "" {
		return identity.Identity{}, internal.ErrMissingPersonID
	}

	return identity.Identity{
		TenantID:   tenantID,
		PersonID:   personID,
		PersonName: personName,
	}, nil
}

func toResponseJSON(row Response) ResponseJSON {
	return ResponseJSON{
		ID:          row.ID.String(),
		QuestionID:  row.QuestionID.String(),
		TenantID:    row.TenantID,
		PersonID:    row.PersonID,
		PersonName:  row.PersonName.String,
		AnswerValue: row.AnswerValue,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
