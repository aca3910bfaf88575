package infra

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/fleetcases/internal/config"
	"github.com/umalmyha/fleetcases/internal/push"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func testConfig() *config.Config {
	return &config.Config{
		HTTPCfg:  config.HTTPCfg{CorsOrigins: []string{"*"}},
		MongoCfg: config.MongoCfg{Database: "hedef-filo-router-test"},
		PushCfg:  config.PushCfg{Enabled: true, Prefix: "/socket"},
	}
}

func TestRouter(t *testing.T) {
	// client is never connected, routes below do not touch mongodb
	client, err := mongo.NewClient(options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)

	e, err := Router(testConfig(), Deps{Mongo: client, Hub: push.NewHub()})
	require.NoError(t, err)

	t.Log("every endpoint is registered")
	{
		registered := make(map[string]bool)
		for _, r := range e.Routes() {
			registered[r.Method+" "+r.Path] = true
		}

		for _, route := range []string{
			"GET /",
			"GET /health",
			"GET /api/cases",
			"POST /api/cases",
			"GET /api/cases/:id",
			"DELETE /api/cases/:id",
			"PUT /api/cases/:id/status",
			"PUT /api/cases/:id/supplier",
			"POST /api/cases/:id/survey",
			"GET /api/lookups/case-types",
			"GET /api/lookups/status-codes",
			"POST /api/lookups/seed",
			"GET /api/notifications",
			"PUT /api/notifications/mark-all-read",
			"PUT /api/notifications/:id/read",
			"GET /api/surveys",
			"GET /api/surveys/stats",
		} {
			require.True(t, registered[route], "route %s must be registered", route)
		}
	}

	t.Log("root responds with request id")
	{
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"ok": true}`, rec.Body.String())
		require.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	}

	t.Log("unknown route is rendered as json error")
	{
		req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), `"error"`)
	}

	t.Log("malformed transition policy is rejected")
	{
		cfg := testConfig()
		cfg.CaseCfg.Transitions = "1-2"
		_, err := Router(cfg, Deps{Mongo: client})
		require.Error(t, err)
	}
}
