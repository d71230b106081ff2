package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dotask-bot/internal/middleware"
	pkgLog "dotask-bot/pkg/log"
	pkgTelegram "dotask-bot/pkg/telegram"
)

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

type fakeTelegramHandler struct{ hits int }

func (h *fakeTelegramHandler) HandleWebhook(c *gin.Context) {
	h.hits++
	c.Status(http.StatusOK)
}

func (h *fakeTelegramHandler) HandleUpdate(context.Context, pkgTelegram.Update) {}

func newServer(t *testing.T, cfg Config) *HTTPServer {
	t.Helper()
	cfg.Logger = pkgLog.NewNop()
	cfg.Port = 8080
	cfg.Mode = gin.TestMode
	cfg.Environment = "test"
	srv, err := New(cfg.Logger, cfg)
	require.NoError(t, err)
	return srv
}

func serve(srv *HTTPServer, method, path string, header map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(`{}`))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNewValidation(t *testing.T) {
	_, err := New(nil, Config{Port: 1, Mode: gin.TestMode})
	assert.Error(t, err)

	_, err = New(pkgLog.NewNop(), Config{Port: 1})
	assert.Error(t, err)

	_, err = New(pkgLog.NewNop(), Config{Mode: gin.TestMode})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	srv := newServer(t, Config{DB: fakePinger{}})

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := serve(srv, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), ServiceName, path)
	}
}

func TestReadyFailsWhenDatabaseDown(t *testing.T) {
	srv := newServer(t, Config{DB: fakePinger{err: errors.New("connection refused")}})

	w := serve(srv, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = serve(srv, http.MethodGet, "/live", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWebhookRoute(t *testing.T) {
	h := &fakeTelegramHandler{}
	srv := newServer(t, Config{
		TelegramHandler: h,
		Middleware:      middleware.New(pkgLog.NewNop(), "s3cret", nil),
	})

	w := serve(srv, http.MethodPost, "/webhook/telegram", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, h.hits)

	w = serve(srv, http.MethodPost, "/webhook/telegram", map[string]string{pkgTelegram.SecretHeader: "s3cret"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, h.hits)
}

func TestWebhookRouteAbsentInPollingMode(t *testing.T) {
	srv := newServer(t, Config{})

	w := serve(srv, http.MethodPost, "/webhook/telegram", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
