package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-dev-server/internal/logger"
)

// HealthPath is the preview server's readiness endpoint.
const HealthPath = "/__devserver/health"

const (
	defaultRetryInterval = 100 * time.Millisecond
	defaultReadyTimeout  = 10 * time.Second
)

// ProberConfig tunes the readiness probe.
type ProberConfig struct {
	// RetryInterval is the pause between attempts.
	RetryInterval time.Duration
	// Timeout bounds the whole probe, retries included.
	Timeout time.Duration
}

type httpProber struct {
	client *resty.Client
	cfg    ProberConfig

	logger *logger.Logger
}

// NewHTTPProber constructs a resty implementation of [Prober]. Zero config
// fields fall back to a 100ms retry interval and a 10s timeout.
func NewHTTPProber(cfg ProberConfig, logger *logger.Logger) Prober {
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = defaultRetryInterval
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultReadyTimeout
	}

	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(int(cfg.Timeout / cfg.RetryInterval)).
		SetRetryWaitTime(cfg.RetryInterval).
		SetRetryMaxWaitTime(cfg.RetryInterval).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || resp.StatusCode() >= http.StatusInternalServerError
		})

	return &httpProber{client: client, cfg: cfg, logger: logger}
}

// WaitReady implements [Prober]. It GETs HealthPath below baseURL, retrying
// on transport errors and 5xx answers.
func (p *httpProber) WaitReady(ctx context.Context, baseURL string) error {
	base, err := normalizeBaseURL(baseURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	start := time.Now()
	resp, err := p.client.R().
		SetContext(ctx).
		Get(base + HealthPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotReady, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%w: %w", ErrNotReady, err)
	}

	p.logger.Debug().
		Str("url", base).
		Int("attempts", resp.Request.Attempt).
		Dur("duration", time.Since(start)).
		Msg("server is ready")
	return nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
