package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/shoply/pkg/httpx"
	"github.com/ghuser/shoply/pkg/logger"
)

const sessionName = "shoply_session"
const (
	sessionUserIDKey   = "user_id"
	sessionUsernameKey = "username"
)

// RequireAuth is a chi middleware that enforces authentication via session cookies.
// It reads the session cookie, extracts the viewer identity, and injects it into
// the request context. Returns 401 Unauthorized if the session is missing,
// invalid, or lacks a valid user id.
//
// After this middleware, handlers can safely call auth.ViewerFromCtx(r.Context()).
func RequireAuth(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			v, err := viewerFromSession(store, r)
			if err != nil {
				log.WarnContext(r.Context(), "unauthenticated request rejected", "error", err)
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}
			next.ServeHTTP(w, r.WithContext(WithViewer(r.Context(), v)))
		})
	}
}

// OptionalAuth resolves the viewer from the session when one exists and passes
// the request through anonymously otherwise. It never rejects a request: the
// listing and search endpoints serve both identified and anonymous viewers,
// and only the annotation of results differs.
func OptionalAuth(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			v, err := viewerFromSession(store, r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithViewer(r.Context(), v)))
		})
	}
}

// viewerFromSession loads and validates the viewer identity from the session
// cookie. Returns ErrViewerNotFound (or a wrapped parse error) when the
// request carries no usable identity.
func viewerFromSession(store sessions.Store, r *http.Request) (Viewer, error) {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return Viewer{}, err
	}

	idStr, ok := session.Values[sessionUserIDKey].(string)
	if !ok || idStr == "" {
		return Viewer{}, ErrViewerNotFound
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return Viewer{}, err
	}

	username, _ := session.Values[sessionUsernameKey].(string)
	return Viewer{ID: id, Username: username}, nil
}
