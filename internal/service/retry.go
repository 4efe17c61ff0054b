package service

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryConfig bounds the retry loop around score upstream calls. The wait
// before attempt n+1 is BaseDelay * 2^n; MaxAttempts counts the first
// attempt plus retries.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// generateWithRetry issues generateContent with bounded exponential backoff.
// Transport failures and upstream 5xx or 429 responses are retried; any other
// 4xx response is terminal and returned immediately. The attempt budget is
// exactly MaxAttempts; the last classified error propagates.
func (s *GeminiService) generateWithRetry(ctx context.Context, req geminiRequest) ([]byte, error) {
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = s.retry.BaseDelay
	expo.Multiplier = 2
	// No jitter: keeps the schedule deterministic for callers and tests.
	expo.RandomizationFactor = 0
	expo.MaxInterval = time.Minute
	expo.MaxElapsedTime = 0

	policy := backoff.WithContext(backoff.WithMaxRetries(expo, uint64(s.retry.MaxAttempts-1)), ctx)

	var body []byte
	operation := func() error {
		b, err := s.generateContent(ctx, req)
		if err != nil {
			if isPermanent(err) {
				return backoff.Permanent(err)
			}
			log.Printf("gemini request failed, will retry: %v", err)
			return err
		}
		body = b
		return nil
	}

	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return body, nil
}

// isPermanent reports whether an upstream failure must not be resubmitted.
// Client errors other than 429 are terminal; transport failures and server
// errors are not.
func isPermanent(err error) bool {
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		return false
	}
	if upstream.StatusCode == http.StatusTooManyRequests {
		return false
	}
	return upstream.StatusCode >= 400 && upstream.StatusCode < 500
}
