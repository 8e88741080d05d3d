// Package dashboardtest runs feature handlers against a fake EcoCheck API.
package dashboardtest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xyz-asif/ecocheck-admin/internal/apiclient"
	"github.com/xyz-asif/ecocheck-admin/internal/dashboard"
	"github.com/xyz-asif/ecocheck-admin/internal/middleware"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/audit"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/logger"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/metrics"
	"github.com/xyz-asif/ecocheck-admin/internal/pkg/response"
	"github.com/xyz-asif/ecocheck-admin/internal/session"
)

// Harness wires a dashboard Env to a fake upstream. Register the fake API's
// routes on Upstream and the handlers under test on API.
type Harness struct {
	t        *testing.T
	Upstream *gin.Engine
	Server   *httptest.Server
	Env      *dashboard.Env
	Audit    *audit.Recorder
	Session  *session.Session
	Router   *gin.Engine
	API      *gin.RouterGroup
	Guard    gin.HandlerFunc
}

func New(t *testing.T, role session.Role) *Harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	upstream := gin.New()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	log := logger.NewWithWriter(logger.DEBUG, io.Discard)
	rec := &audit.Recorder{}
	env := &dashboard.Env{
		API:      apiclient.New(srv.URL, 2*time.Second, apiclient.WithLogger(log)),
		Registry: dashboard.NewRegistry(metrics.New()),
		Store:    session.NewMemoryStore(),
		Audit:    rec,
		Log:      log,
	}

	s := session.New("test-token", session.Claims{Role: role, Location: "Quezon City"}, "admin@ecocheck.ph", time.Hour)
	require.NoError(t, env.Store.Save(context.Background(), s))

	router := gin.New()
	return &Harness{
		t:        t,
		Upstream: upstream,
		Server:   srv,
		Env:      env,
		Audit:    rec,
		Session:  s,
		Router:   router,
		API:      router.Group("/api/v1"),
		Guard: middleware.Session(middleware.SessionConfig{
			Store: env.Store,
			OnEnd: env.Registry.Drop,
		}),
	}
}

// Workspace is the workspace of the harness session.
func (h *Harness) Workspace() *dashboard.Workspace {
	return h.Env.Registry.Workspace(h.Session.ID)
}

// Do sends a request to Router carrying the session cookie.
func (h *Harness) Do(method, path string, body interface{}) *httptest.ResponseRecorder {
	h.t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(h.t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: h.Session.ID})

	w := httptest.NewRecorder()
	h.Router.ServeHTTP(w, req)
	return w
}

// Bearer returns the Authorization header the fake API received.
func Bearer(c *gin.Context) string {
	return c.GetHeader("Authorization")
}

// Decode unmarshals the response envelope, decoding data into out when non-nil.
func Decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) response.APIResponse {
	t.Helper()
	var env struct {
		response.APIResponse
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if out != nil {
		require.NoError(t, json.Unmarshal(env.Data, out), string(env.Data))
	}
	return env.APIResponse
}
