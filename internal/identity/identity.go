// Package identity carries the caller triple asserted by the embedding host
// application. The triple is resolved once per request, either from the embed
// bearer token or from explicit request parameters, and travels through the
// request context instead of any ambient session state.
package identity

import (
	"context"
	"net/http"

	"anketly/survey-backend/internal"
)

type Identity struct {
	TenantID   string
	PersonID   string
	PersonName string
}

type contextKey struct{}

var identityKey contextKey

func WithContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	if !ok || id.TenantID == "" || id.PersonID == "" {
		return Identity{}, false
	}
	return id, true
}

// FromRequest resolves the caller identity for query-parameter endpoints: a
// token-derived identity on the context wins, otherwise tenantId and personId
// are read from the query string. Missing values map to the 400-class errors.
func FromRequest(r *http.Request) (Identity, error) {
	if id, ok := FromContext(r.Context()); ok {
		return id, nil
	}

	tenantID := r.URL.Query().Get("tenantId")
	personID := r.URL.Query().Get("personId")
	if tenantID == "" {
		return Identity{}, internal.ErrMissingTenantID
	}
	if personID == "" {
		return Identity{}, internal.ErrMissingPersonID
	}

	return Identity{
		TenantID:   tenantID,
		PersonID:   personID,
		PersonName: r.URL.Query().Get("personName"),
	}, nil
}
