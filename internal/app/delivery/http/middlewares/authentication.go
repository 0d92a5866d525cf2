package middlewares

import (
	"context"
	"net/http"
	"strings"

	"simoly-service/internal/pkg/constvars"
	"simoly-service/internal/pkg/exceptions"
	"simoly-service/internal/pkg/utils"

	"github.com/goccy/go-json"
)

type sessionData struct {
	UserID string `json:"user_id"`
}

// Authentication resolves the Bearer token to a Redis-backed session and puts
// the session's user id on the request context. Requests already authorized
// by the admin API key pass through untouched.
func (m *Middlewares) Authentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isAdmin, ok := r.Context().Value(constvars.CONTEXT_ADMIN_API_KEY_AUTH).(bool); ok && isAdmin {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		rawSession, err := m.RedisRepository.Get(r.Context(), constvars.RedisKeySessionPrefix+sessionID)
		if err != nil || rawSession == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidSession(err))
			return
		}

		var session sessionData
		if err := json.Unmarshal([]byte(rawSession), &session); err != nil || session.UserID == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidSession(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_USER_ID_KEY, session.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
