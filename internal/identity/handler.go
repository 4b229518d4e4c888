package identity

import (
	"net/http"

	handlerutil "github.com/NYCU-SDC/summer/pkg/handler"
	logutil "github.com/NYCU-SDC/summer/pkg/log"
	"github.com/NYCU-SDC/summer/pkg/problem"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type TokenRequest struct {
	TenantID   string `json:"tenantId" validate:"required"`
	PersonID   string `json:"personId" validate:"required"`
	PersonName string `json:"personName"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// Handler mints embed tokens. Only wired in debug mode; production hosts sign
// their own tokens with the shared secret.
type Handler struct {
	logger        *zap.Logger
	validator     *validator.Validate
	problemWriter *problem.HttpWriter
	tokenService  *TokenService
	tracer        trace.Tracer
}

func NewHandler(logger *zap.Logger, validator *validator.Validate, problemWriter *problem.HttpWriter, tokenService *TokenService) *Handler {
	return &Handler{
		logger:        logger,
		validator:     validator,
		problemWriter: problemWriter,
		tokenService:  tokenService,
		tracer:        otel.Tracer("identity/handler"),
	}
}

func (h *Handler) InternalTokenHandler(w http.ResponseWriter, r *http.Request) {
	traceCtx, span := h.tracer.Start(r.Context(), "InternalTokenHandler")
	defer span.End()
	logger := logutil.WithContext(traceCtx, h.logger)

	var req TokenRequest
	if err := handlerutil.ParseAndValidateRequestBody(traceCtx, h.validator, r, &req); err != nil {
		h.problemWriter.WriteError(traceCtx, w, err, logger)
		return
	}

	token, err := h.tokenService.Generate(traceCtx, Identity{
		TenantID:   req.TenantID,
		PersonID:   req.PersonID,
		PersonName: req.PersonName,
	})
	if err != nil {
		h.problemWriter.WriteError(traceCtx, w, err, logger)
		return
	}

	handlerutil.WriteJSONResponse(w, http.StatusOK, TokenResponse{Token: token})
}
