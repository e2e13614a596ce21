package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/fadilmartias/bizsim/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const geminiReply = `{"candidates":[{"content":{"role":"model","parts":[{"text":"Hold the price."}]}}]}`

// geminiBackend answers with status for the first failures requests, then
// with a valid reply.
type geminiBackend struct {
	failures int32
	status   int
	hits     atomic.Int32
}

func (b *geminiBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	n := b.hits.Add(1)
	w.Header().Set("Content-Type", "application/json")
	if n <= b.failures {
		w.WriteHeader(b.status)
		w.Write([]byte(`{"error":{"code":` + strconv.Itoa(b.status) + `,"message":"failed","status":"FAILED"}}`))
		return
	}
	w.Write([]byte(geminiReply))
}

func newTestGeminiProvider(t *testing.T, backend *geminiBackend) *GeminiProvider {
	t.Helper()
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	p, err := NewGeminiProvider(context.Background(), &config.GeminiConfig{
		APIKey:  "gemini-key",
		Model:   "gemini-test",
		BaseURL: server.URL,
	}, 5*time.Second)
	require.NoError(t, err)
	return p
}

func geminiRequest() Request {
	return Request{Prompt: "Should the kiosk raise prices?"}
}

func TestGeminiProviderGenerate(t *testing.T) {
	p := newTestGeminiProvider(t, &geminiBackend{})

	resp, err := p.Generate(context.Background(), geminiRequest())
	require.NoError(t, err)
	assert.Equal(t, "Hold the price.", resp.Content)
	assert.Equal(t, "gemini-test", resp.Model)
}

func TestGeminiCircuitIgnoresClientErrors(t *testing.T) {
	backend := &geminiBackend{failures: 5, status: http.StatusBadRequest}
	p := newTestGeminiProvider(t, backend)

	for range 5 {
		_, err := p.Generate(context.Background(), geminiRequest())
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrCircuitOpen)
	}

	resp, err := p.Generate(context.Background(), geminiRequest())
	require.NoError(t, err)
	assert.Equal(t, "Hold the price.", resp.Content)
	assert.Equal(t, int32(6), backend.hits.Load())

	n, open := p.CircuitBreakerStatus()
	assert.Zero(t, n)
	assert.False(t, open)
}

func TestGeminiCircuitIgnoresCancellation(t *testing.T) {
	backend := &geminiBackend{}
	p := newTestGeminiProvider(t, backend)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for range 6 {
		_, err := p.Generate(ctx, geminiRequest())
		require.Error(t, err)
	}

	_, open := p.CircuitBreakerStatus()
	assert.False(t, open)
	_, err := p.Generate(context.Background(), geminiRequest())
	assert.NoError(t, err)
}

func TestGeminiCircuitHalfOpensAfterCooldown(t *testing.T) {
	backend := &geminiBackend{failures: 5, status: http.StatusServiceUnavailable}
	p := newTestGeminiProvider(t, backend)
	p.CircuitCooldown = 50 * time.Millisecond

	for range 5 {
		_, err := p.Generate(context.Background(), geminiRequest())
		require.Error(t, err)
		assert.True(t, IsTransient(err))
	}
	n, open := p.CircuitBreakerStatus()
	assert.Equal(t, 5, n)
	assert.True(t, open)

	_, err := p.Generate(context.Background(), geminiRequest())
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, int32(5), backend.hits.Load())

	time.Sleep(60 * time.Millisecond)
	resp, err := p.Generate(context.Background(), geminiRequest())
	require.NoError(t, err)
	assert.Equal(t, "Hold the price.", resp.Content)

	_, open = p.CircuitBreakerStatus()
	assert.False(t, open)
}

func TestGeminiCircuitFailedTrialReopens(t *testing.T) {
	backend := &geminiBackend{failures: 6, status: http.StatusInternalServerError}
	p := newTestGeminiProvider(t, backend)
	p.CircuitCooldown = 50 * time.Millisecond

	for range 5 {
		_, _ = p.Generate(context.Background(), geminiRequest())
	}
	time.Sleep(60 * time.Millisecond)

	_, err := p.Generate(context.Background(), geminiRequest())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, int32(6), backend.hits.Load())

	_, err = p.Generate(context.Background(), geminiRequest())
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, int32(6), backend.hits.Load())
}

func TestGeminiEmbedTruncatesByRune(t *testing.T) {
	var body string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := new(strings.Builder)
		_, _ = io.Copy(buf, r.Body)
		body = buf.String()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"embeddings":[{"values":[0.1,0.2,0.3]}]}`))
	}))
	t.Cleanup(server.Close)

	p, err := NewGeminiProvider(context.Background(), &config.GeminiConfig{
		APIKey:         "gemini-key",
		EmbeddingModel: "embed-test",
		BaseURL:        server.URL,
	}, 5*time.Second)
	require.NoError(t, err)

	vec, err := p.Embed(context.Background(), strings.Repeat("é", maxEmbeddingChars+10))
	require.NoError(t, err)
	assert.Len(t, vec, 3)
	assert.True(t, utf8.ValidString(body))
	assert.Contains(t, body, strings.Repeat("é", maxEmbeddingChars))
	assert.NotContains(t, body, strings.Repeat("é", maxEmbeddingChars+1))
}
