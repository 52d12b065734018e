package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/logging"
	"github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/tracing"
)

//go:generate moq -rm -out exchangerates_mock.go . ExchangeRateClient

const BaseCurrency string = "EUR"

type ExchangeRateClient interface {
	Rates(ctx context.Context, symbols ...string) (ExchangeRates, error)
}

type exchangeRateClient struct {
	url        string
	accessKey  string
	httpClient *http.Client
}

// NewExchangeRateClient queries a fixer style API for rates against EUR.
func NewExchangeRateClient(url, accessKey string, httpClient *http.Client) ExchangeRateClient {
	return &exchangeRateClient{
		url:        url,
		accessKey:  accessKey,
		httpClient: httpClient,
	}
}

func (c *exchangeRateClient) Rates(ctx context.Context, symbols ...string) (ExchangeRates, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-exchange-rates")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetLoggerFromContext(ctx)
	log.Debug().Msgf("fetching exchange rates for %s", strings.Join(symbols, ","))

	params := url.Values{}
	if c.accessKey != "" {
		params.Set("access_key", c.accessKey)
	}
	params.Set("base", BaseCurrency)
	params.Set("symbols", strings.Join(symbols, ","))

	rates := ExchangeRates{}
	err = getJSON(ctx, c.httpClient, "exchangerates", c.url+"?"+params.Encode(), &rates)
	if err != nil {
		return ExchangeRates{}, err
	}

	if !rates.Success {
		if rates.Error != nil {
			err = fmt.Errorf("%w: exchange rates unavailable: %w", ErrUpstream, *rates.Error)
		} else {
			err = fmt.Errorf("%w: exchange rates unavailable", ErrUpstream)
		}
		return ExchangeRates{}, err
	}

	return rates, nil
}
