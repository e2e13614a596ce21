package service

import (
	"context"
	"time"

	"github.com/fadilmartias/bizsim/internal/logger"
	"github.com/fadilmartias/bizsim/internal/metrics"
	"go.uber.org/zap"
)

type MeteredProvider struct {
	inner   Provider
	name    string
	metrics *metrics.Metrics
}

// WithMetrics records request counts, latency and token usage under name.
func WithMetrics(p Provider, name string) Provider {
	return &MeteredProvider{inner: p, name: name, metrics: metrics.Get()}
}

func (m *MeteredProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := m.inner.Generate(ctx, req)
	elapsed := time.Since(start)

	model := m.inner.ModelID()
	m.metrics.RecordProvider(m.name, model, err == nil, elapsed.Seconds())
	if err != nil {
		logger.Log.Warn("model call failed",
			zap.String("provider", m.name),
			zap.String("model", model),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		return nil, err
	}

	m.metrics.RecordTokens(m.name, model, resp.Usage.InputTokens, resp.Usage.OutputTokens)
	logger.Log.Debug("model call",
		zap.String("provider", m.name),
		zap.String("model", resp.Model),
		zap.Int("input_tokens", resp.Usage.InputTokens),
		zap.Int("output_tokens", resp.Usage.OutputTokens),
		zap.Duration("elapsed", elapsed))
	return resp, nil
}

func (m *MeteredProvider) ModelID() string {
	return m.inner.ModelID()
}
