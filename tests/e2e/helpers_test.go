//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/langportal-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/langportal-backend/internal/app"
	"github.com/heartmarshall/langportal-backend/internal/config"
	"github.com/heartmarshall/langportal-backend/internal/transport/middleware"
	"github.com/heartmarshall/langportal-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application stack backed by a real
// PostgreSQL container (shared via testhelper). Model providers fall back to
// the offline templates because no API keys are configured.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,DELETE,OPTIONS",
			AllowedHeaders: "Content-Type,X-Request-Id",
			MaxAge:         86400,
		},
		Practice: config.PracticeConfig{
			MaxQuizQuestions: 20,
			WritingMinWords:  50,
			WritingMaxWords:  200,
			SessionIdleTTL:   time.Hour,
			JanitorInterval:  time.Minute,
		},
		Writing: config.WritingConfig{DefaultLevel: "intermediate", PromptCount: 10},
	}

	providers, err := app.NewProviders(context.Background(), cfg.LLM, logger)
	require.NoError(t, err)
	catalogSvc, practiceSvc := app.NewServices(logger, pool, providers, cfg)

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	handler := rest.NewRouter(rest.RouterDeps{
		Logger:      logger,
		Health:      rest.NewHealthHandler(pool, practiceSvc, "test-version"),
		Sessions:    rest.NewSessionHandler(practiceSvc, logger),
		Catalog:     rest.NewCatalogHandler(catalogSvc, logger),
		CORS:        cfg.CORS,
		RateLimiter: limiter,
		RateLimit:   cfg.RateLimit,
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// call sends a JSON request to the API and decodes the response into out
// when out is non-nil. It returns the status code.
func (ts *testServer) call(t *testing.T, method, path string, body, out any) int {
	t.Helper()

	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, rd)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if out != nil && len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
	}
	return resp.StatusCode
}

// ---------------------------------------------------------------------------
// Wire shapes
// ---------------------------------------------------------------------------

type item struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Answer  string   `json:"answer"`
	Options []string `json:"options"`
	Level   string   `json:"level"`
}

type session struct {
	ID       string `json:"id"`
	Modality string `json:"modality"`
	Status   string `json:"status"`
	Cursor   int    `json:"cursor"`
	Total    int    `json:"total"`
	Pending  int    `json:"pending"`
	Current  *item  `json:"current"`
}

type evaluation struct {
	Score               int      `json:"score"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areasForImprovement"`
}

type advance struct {
	Session  session `json:"session"`
	Response struct {
		ItemID      string      `json:"itemId"`
		IsCorrect   *bool       `json:"isCorrect"`
		Explanation string      `json:"explanation"`
		Feedback    *evaluation `json:"feedback"`
	} `json:"response"`
	Warnings []struct {
		Code string `json:"code"`
	} `json:"warnings"`
}

type summary struct {
	SessionID       string `json:"sessionId"`
	Modality        string `json:"modality"`
	TotalItems      int    `json:"totalItems"`
	CorrectCount    int    `json:"correctCount"`
	AccuracyPercent int    `json:"accuracyPercent"`
	Score           *int   `json:"score"`
	PerItem         []struct {
		Prompt   string `json:"prompt"`
		Answered bool   `json:"answered"`
	} `json:"perItem"`
}

type apiError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
