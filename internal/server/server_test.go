package server_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/nulzo/modeldocs/internal/config"
	"github.com/nulzo/modeldocs/internal/docs"
	"github.com/nulzo/modeldocs/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubService struct {
	outputPath  string
	rows        []docs.Row
	count       int
	generateErr error
	catalogErr  error
}

func (s *stubService) Generate(ctx context.Context) (int, error) {
	if s.generateErr != nil {
		return 0, s.generateErr
	}
	if err := os.WriteFile(s.outputPath, []byte("# generated"), 0o644); err != nil {
		return 0, err
	}
	return s.count, nil
}

func (s *stubService) Catalog(ctx context.Context) ([]docs.Row, error) {
	return s.rows, s.catalogErr
}

func (s *stubService) OutputPath() string {
	return s.outputPath
}

func newTestServer(t *testing.T, svc server.DocService) *server.Server {
	t.Helper()
	cfg := &config.Config{
		Server:    config.ServerConfig{Port: "0", Env: "test"},
		RateLimit: config.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000},
	}
	return server.New(cfg, zap.NewNop(), svc)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, &stubService{outputPath: filepath.Join(t.TempDir(), "doc.mdx")})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestDocument_NotGeneratedYet(t *testing.T) {
	s := newTestServer(t, &stubService{outputPath: filepath.Join(t.TempDir(), "doc.mdx")})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/docs/models", nil)
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not Found")
}

func TestRefreshThenDocument(t *testing.T) {
	svc := &stubService{
		outputPath: filepath.Join(t.TempDir(), "doc.mdx"),
		count:      3,
	}
	s := newTestServer(t, svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/docs/refresh", nil)
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"models":3}`, rec.Body.String())

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/docs/models", nil)
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "# generated", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/markdown")
}

func TestRefresh_UpstreamFailure(t *testing.T) {
	svc := &stubService{
		outputPath:  filepath.Join(t.TempDir(), "doc.mdx"),
		generateErr: errors.New("gateway unreachable"),
	}
	s := newTestServer(t, svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/docs/refresh", nil)
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Upstream Gateway Error")
}

func TestCatalog(t *testing.T) {
	svc := &stubService{
		outputPath: filepath.Join(t.TempDir(), "doc.mdx"),
		rows: []docs.Row{
			{ModelID: "gpt-4o", Provider: "OpenAI", Category: "Chat", Input: "$2.00", Output: "$4.00"},
		},
	}
	s := newTestServer(t, svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/docs/catalog", nil)
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"object": "list",
		"data": [
			{"model_id": "gpt-4o", "provider": "OpenAI", "category": "Chat", "input": "$2.00", "output": "$4.00"}
		]
	}`, rec.Body.String())
}
