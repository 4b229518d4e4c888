package identity

import (
	"net/http"
	"strings"

	"anketly/survey-backend/internal"

	logutil "github.com/NYCU-SDC/summer/pkg/log"
	"github.com/NYCU-SDC/summer/pkg/problem"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type Middleware struct {
	logger        *zap.Logger
	problemWriter *problem.HttpWriter
	tokenService  *TokenService
	tracer        trace.Tracer
}

func NewMiddleware(logger *zap.Logger, problemWriter *problem.HttpWriter, tokenService *TokenService) *Middleware {
	return &Middleware{
		logger:        logger,
		problemWriter: problemWriter,
		tokenService:  tokenService,
		tracer:        otel.Tracer("identity/middleware"),
	}
}

// ResolveMiddleware attaches the token-derived identity to the request context
// when a bearer token is present. Requests without a token pass through
// untouched; endpoints then fall back to explicit tenantId/personId parameters.
func (m *Middleware) ResolveMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		traceCtx, span := m.tracer.Start(r.Context(), "ResolveMiddleware")
		defer span.End()
		logger := logutil.WithContext(traceCtx, m.logger)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r.WithContext(traceCtx))
			return
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			m.problemWriter.WriteError(traceCtx, w, internal.ErrInvalidBearerToken, logger)
			return
		}

		id, err := m.tokenService.Parse(traceCtx, tokenString)
		if err != nil {
			m.problemWriter.WriteError(traceCtx, w, err, logger)
			return
		}

		if requested := r.URL.Query().Get("tenantId"); requested != "" && requested != id.TenantID {
			m.problemWriter.WriteError(traceCtx, w, internal.ErrTokenTenantMismatch, logger)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithContext(traceCtx, id)))
	}
}
