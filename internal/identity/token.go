package identity

import (
	"context"
	"fmt"
	"time"

	"anketly/survey-backend/internal"

	logutil "github.com/NYCU-SDC/summer/pkg/log"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// TokenService mints and verifies the embed bearer token the host application
// hands to the survey page during the postMessage handshake.
type TokenService struct {
	logger     *zap.Logger
	secret     string
	expiration time.Duration
	tracer     trace.Tracer
}

type claims struct {
	TenantID   string `json:"tenantId"`
	PersonID   string `json:"personId"`
	PersonName string `json:"personName,omitempty"`
	jwt.RegisteredClaims
}

func NewTokenService(logger *zap.Logger, secret string, expiration time.Duration) *TokenService {
	return &TokenService{
		logger:     logger,
		secret:     secret,
		expiration: expiration,
		tracer:     otel.Tracer("identity/token"),
	}
}

func (s *TokenService) Generate(ctx context.Context, id Identity) (string, error) {
	traceCtx, span := s.tracer.Start(ctx, "Generate")
	defer span.End()
	logger := logutil.WithContext(traceCtx, s.logger)

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		TenantID:   id.TenantID,
		PersonID:   id.PersonID,
		PersonName: id.PersonName,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   id.PersonID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
	})

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		logger.Error("Failed to sign embed token", zap.Error(err))
		span.RecordError(err)
		return "", fmt.Errorf("failed to sign embed token: %w", err)
	}

	return signed, nil
}

func (s *TokenService) Parse(ctx context.Context, tokenString string) (Identity, error) {
	traceCtx, span := s.tracer.Start(ctx, "Parse")
	defer span.End()
	logger := logutil.WithContext(traceCtx, s.logger)

	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		logger.Debug("Failed to parse embed token", zap.Error(err))
		span.RecordError(err)
		return Identity{}, internal.ErrInvalidBearerToken
	}

	if c.TenantID == "" || c.PersonID == "" {
		return Identity{}, internal.ErrInvalidBearerToken
	}

	return Identity{
		TenantID:   c.TenantID,
		PersonID:   c.PersonID,
		PersonName: c.PersonName,
	}, nil
}
