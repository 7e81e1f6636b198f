package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"restaurant-pos/pos-svc/internal/domain"
)

const SessionHeader = "X-Session-ID"

type sessionKey struct{}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		writer := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(writer, r)
		log.Printf("[pos-svc] request method=%s path=%s status=%d duration_ms=%d session=%t",
			r.Method, r.URL.Path, writer.status, time.Since(start).Milliseconds(), r.Header.Get(SessionHeader) != "")
	})
}

// SessionMiddleware resolves the X-Session-ID header. Requests without a header
// pass through as guests; an unknown or expired id is rejected.
func (h *Handler) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(SessionHeader)
		if id == "" {
			next.ServeHTTP(w, r)
			return
		}
		session, err := h.Auth.Session(r.Context(), id)
		if errors.Is(err, domain.ErrNotFound) {
			writeUnauthorized(w, "session expired, please sign in again")
			return
		}
		if err != nil {
			writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, session)))
	})
}

func sessionFrom(ctx context.Context) *domain.Session {
	session, _ := ctx.Value(sessionKey{}).(*domain.Session)
	return session
}

type sessionHandler func(w http.ResponseWriter, r *http.Request, session *domain.Session)

// signedIn rejects guests before next runs.
func signedIn(next sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionFrom(r.Context())
		if session == nil {
			writeUnauthorized(w, "sign in required")
			return
		}
		next(w, r, session)
	}
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]any{"success": false, "error": message})
}
