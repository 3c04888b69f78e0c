package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const viewerKey contextKey = "viewer"

// ErrViewerNotFound is returned when no Viewer exists in the request context.
// Handlers on authenticated routes should return 401 when this error occurs.
var ErrViewerNotFound = errors.New("viewer not found in context")

// Viewer identifies the authenticated caller of a request. It is established
// by the session layer and passed explicitly through the request context;
// request handling never consults ambient global identity state.
type Viewer struct {
	ID       uuid.UUID
	Username string
}

// ViewerFromCtx extracts the authenticated viewer from the request context.
// Returns ErrViewerNotFound for anonymous requests.
func ViewerFromCtx(ctx context.Context) (Viewer, error) {
	v, ok := ctx.Value(viewerKey).(Viewer)
	if !ok || v.ID == uuid.Nil {
		return Viewer{}, ErrViewerNotFound
	}
	return v, nil
}

// WithViewer returns a new context with the given Viewer attached.
// Used by authentication middleware after validating the session.
func WithViewer(ctx context.Context, v Viewer) context.Context {
	return context.WithValue(ctx, viewerKey, v)
}
