package eragen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/dmitrymomot/eradate/core/logger"
)

// maxPageSize bounds the downloaded page.
const maxPageSize = 32 << 20

// Fetcher downloads the era list page with retries on transient failures.
type Fetcher struct {
	client    *http.Client
	userAgent string
	retries   uint64
	backoff   time.Duration
	log       *slog.Logger
}

// NewFetcher creates a Fetcher from the build configuration.
func NewFetcher(cfg Config, log *slog.Logger) *Fetcher {
	if log == nil {
		log = slog.Default()
	}
	return &Fetcher{
		client:    &http.Client{Timeout: cfg.Timeout},
		userAgent: cfg.UserAgent,
		retries:   cfg.Retries,
		backoff:   500 * time.Millisecond,
		log:       log,
	}
}

// Fetch returns the body of url. Network errors, 429 and 5xx responses are retried
// with exponential backoff; other statuses fail immediately.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	var (
		body    []byte
		attempt int
	)

	b := retry.WithMaxRetries(f.retries, retry.NewExponential(f.backoff))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		attempt++
		data, err := f.get(ctx, url)
		if err == nil {
			body = data
			return nil
		}

		var re *retryableError
		if errors.As(err, &re) {
			f.log.WarnContext(ctx, "fetch attempt failed",
				logger.Component("eragen"),
				logger.Event("fetch_retry"),
				logger.URL(url),
				logger.RetryCount(attempt),
				logger.Error(err),
			)
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	return body, nil
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &retryableError{err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return nil, &retryableError{err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return nil, &retryableError{err: err}
	}
	return data, nil
}

type retryableError struct {
	err error
}

func (e *retryableError) Error() string { return e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }
