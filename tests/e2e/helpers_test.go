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

	"github.com/heartmarshall/glossary-backend/internal/adapter/postgres/changelog"
	"github.com/heartmarshall/glossary-backend/internal/adapter/postgres/entity"
	"github.com/heartmarshall/glossary-backend/internal/adapter/postgres/privilege"
	"github.com/heartmarshall/glossary-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/glossary-backend/internal/app"
	"github.com/heartmarshall/glossary-backend/internal/config"
	"github.com/heartmarshall/glossary-backend/internal/domain"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL        string
	Client     *http.Client
	Pool       *pgxpool.Pool
	components *app.Components
	privileges *privilege.Repo
	entities   *entity.Repo
	changes    *changelog.Repo
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(bytes.TrimRight(p, "\n")))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "e2e-test-secret-that-is-long-enough-32",
			JWTIssuer:      "glossary",
			AccessTokenTTL: 15 * time.Minute,
		},
		Glossary: config.GlossaryConfig{
			WorkerLimit:            4,
			PreferredOwnershipType: string(domain.OwnershipTypeTechnicalOwner),
			RequestTimeout:         10 * time.Second,
		},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		},
	}
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelDebug}))

	components := app.Build(testConfig(), pool, logger)
	srv := httptest.NewServer(components.Handler())
	t.Cleanup(func() {
		srv.Close()
		components.Close()
	})

	return &testServer{
		URL:        srv.URL,
		Client:     srv.Client(),
		Pool:       pool,
		components: components,
		privileges: privilege.New(pool),
		entities:   entity.New(pool),
		changes:    changelog.New(pool),
	}
}

// newUser returns a fresh username and a valid access token for it.
func (ts *testServer) newUser(t *testing.T) (string, string) {
	t.Helper()
	username := testhelper.SeedActor(t).ID
	token, err := ts.components.JWT().GenerateAccessToken(username)
	require.NoError(t, err)
	return username, token
}

// newAdmin returns a user holding the platform-wide glossary privilege.
func (ts *testServer) newAdmin(t *testing.T) (string, string) {
	t.Helper()
	username, token := ts.newUser(t)
	require.NoError(t, ts.privileges.GrantPlatform(context.Background(), domain.CorpUserUrn(username), domain.PrivilegeManageGlossaries))
	return username, token
}

// createTerm posts a creation request and returns status + decoded body.
func (ts *testServer) createTerm(t *testing.T, body map[string]any, token string) (int, map[string]any) {
	t.Helper()

	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/glossary/terms", bytes.NewReader(jsonBody))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

func (ts *testServer) get(t *testing.T, path string) (int, string) {
	t.Helper()

	resp, err := ts.Client.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func (ts *testServer) termInfo(t *testing.T, urn domain.Urn) domain.GlossaryTermInfo {
	t.Helper()
	raw, err := ts.entities.GetAspect(context.Background(), urn, domain.AspectGlossaryTermInfo)
	require.NoError(t, err)

	var info domain.GlossaryTermInfo
	require.NoError(t, json.Unmarshal(raw, &info))
	return info
}

func (ts *testServer) ownership(t *testing.T, urn domain.Urn) domain.Ownership {
	t.Helper()
	raw, err := ts.entities.GetAspect(context.Background(), urn, domain.AspectOwnership)
	require.NoError(t, err)

	var o domain.Ownership
	require.NoError(t, json.Unmarshal(raw, &o))
	return o
}

func parseUrn(t *testing.T, s any) domain.Urn {
	t.Helper()
	str, ok := s.(string)
	require.True(t, ok, "expected urn string, got %v", s)
	urn, err := domain.ParseTypedUrn(str, domain.EntityTypeGlossaryTerm)
	require.NoError(t, err)
	return urn
}
