package test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nulzo/modeldocs/internal/config"
	"github.com/nulzo/modeldocs/internal/docs"
	"github.com/nulzo/modeldocs/internal/gateway"
	"github.com/nulzo/modeldocs/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const modelsBody = `{
	"data": [
		{"id": "whisper-1", "owned_by": "system", "object": ["audio-transcription"]},
		{"id": "gpt-4o", "owned_by": "openai", "object": ["openai"]},
		{"id": "gemini-2.0-flash", "owned_by": "vertex-ai", "object": ["openai", "gemini"]},
		{"id": "deepseek-ai/DeepSeek-V3", "owned_by": "deepseek", "object": ["openai"]},
		{"id": "black-forest-labs/FLUX.1-dev", "owned_by": "bfl", "object": ["image-generation"]}
	]
}`

const pricingBody = `{
	"data": [
		{"model_name": "gpt-4o", "quota_type": 0, "model_ratio": 1.25, "completion_ratio": 4, "model_price": 0},
		{"model_name": "gemini-2.0-flash", "quota_type": 0, "model_ratio": 0.05, "completion_ratio": 4, "model_price": 0},
		{"model_name": "black-forest-labs/FLUX.1-dev", "quota_type": 1, "model_ratio": 0, "completion_ratio": 0, "model_price": 0.025}
	]
}`

func startMockGateway(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/models", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(modelsBody))
	})
	mux.HandleFunc("/api/pricing", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(pricingBody))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newPipeline(t *testing.T, gatewayURL string) (*config.Config, *docs.Generator) {
	t.Helper()
	cfg := &config.Config{
		Gateway: config.GatewayConfig{
			Name:           "IoTeX AI Gateway",
			BaseURL:        gatewayURL,
			TimeoutSeconds: 5,
		},
		Docs: config.DocsConfig{
			OutputPath: filepath.Join(t.TempDir(), "supported-ai-models.mdx"),
		},
		Server:    config.ServerConfig{Port: "0", Env: "test"},
		RateLimit: config.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000},
	}

	client := gateway.NewClient(cfg.Gateway.BaseURL, 5*time.Second, zap.NewNop())
	return cfg, docs.NewGenerator(client, cfg, zap.NewNop())
}

func TestPipeline_FetchJoinRenderWrite(t *testing.T) {
	mock := startMockGateway(t)
	cfg, generator := newPipeline(t, mock.URL)

	count, err := generator.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	content, err := os.ReadFile(cfg.Docs.OutputPath)
	require.NoError(t, err)
	doc := string(content)

	assert.True(t, strings.HasPrefix(doc, "---\n"), "document starts with front matter")
	assert.Contains(t, doc, "## Available Models (5 models)")

	// Derived rows, grouped by provider.
	assert.Contains(t, doc, "| `black-forest-labs/FLUX.1-dev` | Black Forest Labs | $0.025/req | - |")
	assert.Contains(t, doc, "| `deepseek-ai/DeepSeek-V3` | DeepSeek | Free | Free |")
	assert.Contains(t, doc, "| `gemini-2.0-flash` | Google | $0.10 | $0.40 |")
	assert.Contains(t, doc, "| `gpt-4o` | OpenAI | $2.50 | $10.00 |")
	assert.Contains(t, doc, "| `whisper-1` | OpenAI | Free | Free |")

	// Table rows keep provider groups in lexical order.
	bflIdx := strings.Index(doc, "| `black-forest-labs/FLUX.1-dev`")
	geminiIdx := strings.Index(doc, "| `gemini-2.0-flash`")
	gptIdx := strings.Index(doc, "| `gpt-4o`")
	require.True(t, bflIdx >= 0 && geminiIdx >= 0 && gptIdx >= 0)
	assert.Less(t, bflIdx, geminiIdx)
	assert.Less(t, geminiIdx, gptIdx)
}

func TestPipeline_ServedThroughPreviewServer(t *testing.T) {
	mock := startMockGateway(t)
	cfg, generator := newPipeline(t, mock.URL)

	s := server.New(cfg, zap.NewNop(), generator)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/docs/refresh", nil)
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"models":5}`, rec.Body.String())

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/docs/models", nil)
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "## Available Models (5 models)")

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/docs/catalog", nil)
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"provider":"Google"`)
	assert.Contains(t, rec.Body.String(), `"category":"Chat"`)
}

func TestPipeline_GatewayDown(t *testing.T) {
	mock := startMockGateway(t)
	gatewayURL := mock.URL
	mock.Close()

	cfg, generator := newPipeline(t, gatewayURL)

	_, err := generator.Generate(context.Background())
	require.Error(t, err)

	_, statErr := os.Stat(cfg.Docs.OutputPath)
	assert.True(t, os.IsNotExist(statErr), "no output written on failure")
}
