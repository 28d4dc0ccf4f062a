package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"dietlog/internal/core"

	"go.uber.org/zap"
)

// SessionCookie names the cookie that carries the signed session token.
const SessionCookie = "diet_session"

const callerKey contextKey = "caller"

func WithCaller(ctx context.Context, caller core.AuthUser) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

func CallerFromContext(ctx context.Context) (core.AuthUser, bool) {
	caller, ok := ctx.Value(callerKey).(core.AuthUser)
	return caller, ok
}

type SessionMiddleware struct {
	logs     *zap.SugaredLogger
	resolver SessionResolver
}

func NewSessionMiddleware(logger *zap.SugaredLogger, resolver SessionResolver) *SessionMiddleware {
	return &SessionMiddleware{
		logs:     logger,
		resolver: resolver,
	}
}

// Session authenticates the request from its session cookie and puts the
// caller identity into the request context. Requests without a live session
// are rejected with 401.
func (m *SessionMiddleware) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookie)
		if err != nil || cookie.Value == "" {
			m.reject(w, r, "missing session cookie")
			return
		}

		caller, err := m.resolver.ResolveSession(r.Context(), cookie.Value)
		if err != nil {
			m.reject(w, r, err.Error())
			return
		}

		next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
	})
}

func (m *SessionMiddleware) reject(w http.ResponseWriter, r *http.Request, reason string) {
	requestID, _ := r.Context().Value(RequestIDKey).(string)
	m.logs.Infow("unauthenticated request rejected",
		"path", r.URL.Path,
		"reason", reason,
		"request_id", requestID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "authentication required",
	})
}
