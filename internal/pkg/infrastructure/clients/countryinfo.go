package clients

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/logging"
	"github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/tracing"
)

//go:generate moq -rm -out countryinfo_mock.go . CountryInfoClient

const countryInfoFields = "name,alpha3Code,latlng,timezones,languages,currencies"

type CountryInfoClient interface {
	CountryInfo(ctx context.Context, alpha3Code string) (CountryInfo, error)
}

type countryInfoClient struct {
	url        string
	httpClient *http.Client
}

// NewCountryInfoClient queries a restcountries style API, i.e. GET {url}/{alpha3Code}.
func NewCountryInfoClient(url string, httpClient *http.Client) CountryInfoClient {
	return &countryInfoClient{
		url:        strings.TrimRight(url, "/"),
		httpClient: httpClient,
	}
}

func (c *countryInfoClient) CountryInfo(ctx context.Context, alpha3Code string) (CountryInfo, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-country-info")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetLoggerFromContext(ctx)
	log.Debug().Msgf("fetching country information for %s", alpha3Code)

	u := c.url + "/" + url.PathEscape(alpha3Code) + "?fields=" + countryInfoFields

	info := CountryInfo{}
	err = getJSON(ctx, c.httpClient, "countryinfo", u, &info)
	if err != nil {
		return CountryInfo{}, err
	}

	return info, nil
}
