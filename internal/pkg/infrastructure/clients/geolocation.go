package clients

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/logging"
	"github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/tracing"
	"go.opentelemetry.io/otel"
)

//go:generate moq -rm -out geolocation_mock.go . GeolocationClient

var ErrCountryNotResolved = fmt.Errorf("ip address could not be resolved to a country")

type GeolocationClient interface {
	Locate(ctx context.Context, ip string) (Country, error)
}

type geolocationClient struct {
	url        string
	httpClient *http.Client
}

var tracer = otel.Tracer("ip-trace/clients")

// NewGeolocationClient queries an ip2country style API, i.e. GET {url}?{ip}.
func NewGeolocationClient(url string, httpClient *http.Client) GeolocationClient {
	return &geolocationClient{
		url:        strings.TrimRight(url, "?"),
		httpClient: httpClient,
	}
}

func (c *geolocationClient) Locate(ctx context.Context, ip string) (Country, error) {
	var err error
	ctx, span := tracer.Start(ctx, "locate-ip")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetLoggerFromContext(ctx)
	log.Debug().Msgf("looking up country for ip %s", ip)

	country := Country{}
	err = getJSON(ctx, c.httpClient, "geolocation", c.url+"?"+ip, &country)
	if err != nil {
		return Country{}, err
	}

	if country.CountryCode3 == "" {
		err = fmt.Errorf("%w: %s", ErrCountryNotResolved, ip)
		return Country{}, err
	}

	return country, nil
}
