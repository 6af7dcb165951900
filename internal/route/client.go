package route

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker/v2"
)

// HTTPDoer is satisfied by *http.Client and by the resilient client below.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ResilientClient wraps an HTTP client with exponential-backoff retries and
// a circuit breaker. Routing providers are free demo services that fail
// often; the breaker keeps a dead provider from adding latency to every
// request while the fallback chain takes over.
type ResilientClient struct {
	name       string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*http.Response]

	maxRetries      uint64
	initialInterval time.Duration
	maxInterval     time.Duration
}

func NewResilientClient(name string, timeout time.Duration) *ResilientClient {
	breaker := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &ResilientClient{
		name:            name,
		httpClient:      &http.Client{Timeout: timeout},
		breaker:         breaker,
		maxRetries:      2,
		initialInterval: 200 * time.Millisecond,
		maxInterval:     2 * time.Second,
	}
}

// Do executes the request, retrying transient failures (network errors,
// 5xx) with exponential backoff. Client errors and an open breaker abort
// immediately. The caller owns the response body on success.
func (c *ResilientClient) Do(req *http.Request) (*http.Response, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.initialInterval
	bo.MaxInterval = c.maxInterval
	bo.MaxElapsedTime = 0

	policy := backoff.WithContext(backoff.WithMaxRetries(bo, c.maxRetries), req.Context())

	return backoff.RetryWithData(func() (*http.Response, error) {
		resp, err := c.breaker.Execute(func() (*http.Response, error) {
			resp, err := c.httpClient.Do(req)
			if err != nil {
				return nil, err
			}
			if resp.StatusCode >= 500 {
				resp.Body.Close()
				return nil, fmt.Errorf("%s: server error %d", c.name, resp.StatusCode)
			}
			return resp, nil
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				return nil, backoff.Permanent(ErrCircuitOpen)
			}
			return nil, err
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return nil, backoff.Permanent(fmt.Errorf("%s: client error %d", c.name, resp.StatusCode))
		}
		return resp, nil
	}, policy)
}
