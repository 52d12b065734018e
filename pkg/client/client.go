package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/logging"
	"github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/tracing"
	"github.com/meli-challenge/ip-trace/pkg/types"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

var ErrBadRequest = errors.New("bad request")
var ErrNotFound = errors.New("not found")
var ErrRequestFailed = errors.New("request failed")

type IPTraceClient interface {
	Trace(ctx context.Context, ip string) (types.TraceResponse, error)
	Statistics(ctx context.Context) (types.StatisticsResponse, error)
	Close(ctx context.Context)
}

type ipTraceClient struct {
	url        string
	httpClient *http.Client
}

var tracer = otel.Tracer("ip-trace-client")

// New creates a client for the ip-trace service at url. Requests are
// authorized with client credentials when oauthTokenURL is not empty.
func New(ctx context.Context, url, oauthTokenURL, oauthClientID, oauthClientSecret string) (IPTraceClient, error) {
	transport := otelhttp.NewTransport(http.DefaultTransport)

	c := &ipTraceClient{
		url:        strings.TrimRight(url, "/"),
		httpClient: &http.Client{Transport: transport},
	}

	if oauthTokenURL == "" {
		return c, nil
	}

	oauthConfig := &clientcredentials.Config{
		ClientID:     oauthClientID,
		ClientSecret: oauthClientSecret,
		TokenURL:     oauthTokenURL,
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Transport: transport})
	tokenSource := oauthConfig.TokenSource(ctx)

	if _, err := tokenSource.Token(); err != nil {
		return nil, fmt.Errorf("failed to get client credentials from %s: %w", oauthTokenURL, err)
	}

	c.httpClient = &http.Client{
		Transport: &oauth2.Transport{
			Source: tokenSource,
			Base:   transport,
		},
	}

	return c, nil
}

func (c *ipTraceClient) Trace(ctx context.Context, ip string) (types.TraceResponse, error) {
	var err error
	ctx, span := tracer.Start(ctx, "trace-ip")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetLoggerFromContext(ctx)
	log.Debug().Msgf("tracing ip %s", ip)

	body, err := json.Marshal(types.TraceRequest{IP: ip})
	if err != nil {
		return types.TraceResponse{}, err
	}

	result := types.TraceResponse{}
	err = c.do(ctx, http.MethodPost, "/trace", body, &result)
	if err != nil {
		return types.TraceResponse{}, err
	}

	return result, nil
}

func (c *ipTraceClient) Statistics(ctx context.Context) (types.StatisticsResponse, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-statistics")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	result := types.StatisticsResponse{}
	err = c.do(ctx, http.MethodGet, "/stats", nil, &result)
	if err != nil {
		return types.StatisticsResponse{}, err
	}

	return result, nil
}

func (c *ipTraceClient) Close(ctx context.Context) {
	c.httpClient.CloseIdleConnections()
}

func (c *ipTraceClient) do(ctx context.Context, method, path string, body []byte, result any) error {
	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return statusError(resp.StatusCode, respBody)
	}

	err = json.Unmarshal(respBody, result)
	if err != nil {
		return fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return nil
}

func statusError(code int, body []byte) error {
	message := ""
	e := types.ErrorResponse{}
	if json.Unmarshal(body, &e) == nil {
		message = e.Message
	}

	switch code {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	default:
		return fmt.Errorf("%w: status code %d: %s", ErrRequestFailed, code, message)
	}
}
