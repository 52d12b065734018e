package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/logging"
	"github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/metrics"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var ErrUpstream = errors.New("upstream request failed")
var ErrUnexpectedStatus = errors.New("unexpected response status")

func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   timeout,
	}
}

func getJSON(ctx context.Context, httpClient *http.Client, api, url string, result any) (err error) {
	log := logging.GetLoggerFromContext(ctx)

	start := time.Now()
	defer func() {
		outcome := "success"
		if err != nil {
			outcome = "failure"
		}
		metrics.ExternalRequests.WithLabelValues(api, outcome).Inc()
		metrics.ExternalRequestDuration.WithLabelValues(api).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create http request: %w", ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to reach %s: %w", ErrUpstream, api, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error().Str("api", api).Msgf("request failed with status code %d", resp.StatusCode)
		io.Copy(io.Discard, resp.Body) // nolint: errcheck
		return fmt.Errorf("%w: %w: %s responded with %d", ErrUpstream, ErrUnexpectedStatus, api, resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %w", ErrUpstream, err)
	}

	err = json.Unmarshal(respBody, result)
	if err != nil {
		return fmt.Errorf("%w: failed to unmarshal %s response: %w", ErrUpstream, api, err)
	}

	return nil
}
