package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"simoly-service/internal/app/config"
	"simoly-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestAPIKeyAuth(t *testing.T) {
	logger := zap.NewNop()

	testAPIKey := "test-superadmin-api-key-12345"
	internalConfig := &config.InternalConfig{
		App: config.App{
			SuperadminAPIKey: testAPIKey,
		},
	}

	middlewares := &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	markerHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isAdmin, ok := r.Context().Value(constvars.CONTEXT_ADMIN_API_KEY_AUTH).(bool); ok && isAdmin {
			w.Write([]byte("admin"))
			return
		}
		w.Write([]byte("anonymous"))
	})

	t.Run("valid API key marks the request as admin", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/ai-configs", nil)
		req.Header.Set(HeaderAPIKey, testAPIKey)

		rr := httptest.NewRecorder()
		middlewares.APIKeyAuth(markerHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "admin", rr.Body.String())
	})

	t.Run("missing API key passes through unauthenticated", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/ai-configs", nil)

		rr := httptest.NewRecorder()
		middlewares.APIKeyAuth(markerHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "anonymous", rr.Body.String())
	})

	t.Run("invalid API key is rejected", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/ai-configs", nil)
		req.Header.Set(HeaderAPIKey, "invalid-api-key")

		rr := httptest.NewRecorder()
		middlewares.APIKeyAuth(markerHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("empty configured key rejects any presented key", func(t *testing.T) {
		emptyKeyMiddlewares := &Middlewares{
			Log:            logger,
			InternalConfig: &config.InternalConfig{},
		}

		req := httptest.NewRequest("POST", "/api/v1/ai-configs", nil)
		req.Header.Set(HeaderAPIKey, "")

		rr := httptest.NewRecorder()
		emptyKeyMiddlewares.APIKeyAuth(markerHandler).ServeHTTP(rr, req)
		assert.Equal(t, "anonymous", rr.Body.String())

		req = httptest.NewRequest("POST", "/api/v1/ai-configs", nil)
		req.Header.Set(HeaderAPIKey, "anything")

		rr = httptest.NewRecorder()
		emptyKeyMiddlewares.APIKeyAuth(markerHandler).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequireSuperadminAPIKey(t *testing.T) {
	logger := zap.NewNop()
	testAPIKey := "test-superadmin-api-key-12345"

	middlewares := &Middlewares{
		Log: logger,
		InternalConfig: &config.InternalConfig{
			App: config.App{SuperadminAPIKey: testAPIKey},
		},
	}

	protected := middlewares.APIKeyAuth(middlewares.RequireSuperadminAPIKey(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("success"))
		}),
	))

	t.Run("valid API key reaches the handler", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/questionnaires", nil)
		req.Header.Set(HeaderAPIKey, testAPIKey)

		rr := httptest.NewRecorder()
		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "success", rr.Body.String())
	})

	t.Run("missing API key is rejected", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/questionnaires", nil)

		rr := httptest.NewRecorder()
		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
