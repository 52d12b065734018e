package clients

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestLocate(t *testing.T) {
	is := is.New(t)

	var rawQuery string
	s := newMockServer(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.Write([]byte(geolocationResponse))
	})
	defer s.Close()

	c := NewGeolocationClient(s.URL+"/ip", NewHTTPClient(time.Second))
	country, err := c.Locate(context.Background(), "5.6.7.8")
	is.NoErr(err)

	is.Equal(rawQuery, "5.6.7.8")
	is.Equal(country.CountryCode3, "DEU")
	is.Equal(country.CountryName, "Germany")
}

func TestLocateUnresolvedAddress(t *testing.T) {
	is := is.New(t)

	s := newMockServer(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"countryCode":"","countryCode3":"","countryName":"","countryEmoji":""}`))
	})
	defer s.Close()

	c := NewGeolocationClient(s.URL, NewHTTPClient(time.Second))
	_, err := c.Locate(context.Background(), "10.0.0.1")

	is.True(errors.Is(err, ErrCountryNotResolved))
}

func TestUnexpectedStatusIsAnUpstreamError(t *testing.T) {
	is := is.New(t)

	s := newMockServer(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	defer s.Close()

	c := NewGeolocationClient(s.URL, NewHTTPClient(time.Second))
	_, err := c.Locate(context.Background(), "5.6.7.8")

	is.True(errors.Is(err, ErrUpstream))
	is.True(errors.Is(err, ErrUnexpectedStatus))
}

func TestMalformedBodyIsAnUpstreamError(t *testing.T) {
	is := is.New(t)

	s := newMockServer(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"countryCode3":`))
	})
	defer s.Close()

	c := NewCountryInfoClient(s.URL, NewHTTPClient(time.Second))
	_, err := c.CountryInfo(context.Background(), "DEU")

	is.True(errors.Is(err, ErrUpstream))
	is.True(!errors.Is(err, ErrUnexpectedStatus))
}

func TestCountryInfo(t *testing.T) {
	is := is.New(t)

	var path, fields string
	s := newMockServer(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		fields = r.URL.Query().Get("fields")
		w.Write([]byte(countryInfoResponse))
	})
	defer s.Close()

	c := NewCountryInfoClient(s.URL+"/v2/alpha/", NewHTTPClient(time.Second))
	info, err := c.CountryInfo(context.Background(), "DEU")
	is.NoErr(err)

	is.Equal(path, "/v2/alpha/DEU")
	is.Equal(fields, countryInfoFields)
	is.Equal(info.Name, "Germany")
	is.Equal(info.LatLng, []float64{51.0, 9.0})
	is.Equal(info.Timezones, []string{"UTC+01:00"})
	is.Equal(info.Languages[0].NativeName, "Deutsch")
	is.Equal(info.Currencies[0].Symbol, "€")
}

func TestRates(t *testing.T) {
	is := is.New(t)

	var query map[string][]string
	s := newMockServer(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(ratesResponse))
	})
	defer s.Close()

	c := NewExchangeRateClient(s.URL, "secret", NewHTTPClient(time.Second))
	rates, err := c.Rates(context.Background(), "ARS", "USD")
	is.NoErr(err)

	is.Equal(query["access_key"], []string{"secret"})
	is.Equal(query["base"], []string{"EUR"})
	is.Equal(query["symbols"], []string{"ARS,USD"})
	is.Equal(rates.Rates["ARS"], 120.5)
	is.Equal(rates.Base, "EUR")
}

func TestRatesUnsuccessfulResponse(t *testing.T) {
	is := is.New(t)

	s := newMockServer(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":{"code":101,"type":"invalid_access_key","info":"no key"}}`))
	})
	defer s.Close()

	c := NewExchangeRateClient(s.URL, "", NewHTTPClient(time.Second))
	_, err := c.Rates(context.Background(), "ARS")

	is.True(errors.Is(err, ErrUpstream))

	var ratesErr RatesError
	is.True(errors.As(err, &ratesErr))
	is.Equal(ratesErr.Code, 101)
}

func TestCachingGeolocationClient(t *testing.T) {
	is := is.New(t)

	m := &GeolocationClientMock{
		LocateFunc: func(ctx context.Context, ip string) (Country, error) {
			return Country{CountryCode3: "DEU"}, nil
		},
	}

	c, err := NewCachingGeolocationClient(m, 10, time.Minute)
	is.NoErr(err)

	_, err = c.Locate(context.Background(), "5.6.7.8")
	is.NoErr(err)
	c.(cachingGeolocationClient).cache.wait()

	country, err := c.Locate(context.Background(), "5.6.7.8")
	is.NoErr(err)

	is.Equal(country.CountryCode3, "DEU")
	is.Equal(len(m.LocateCalls()), 1)
}

func TestCachingDoesNotStoreFailures(t *testing.T) {
	is := is.New(t)

	m := &CountryInfoClientMock{
		CountryInfoFunc: func(ctx context.Context, alpha3Code string) (CountryInfo, error) {
			return CountryInfo{}, ErrUpstream
		},
	}

	c, err := NewCachingCountryInfoClient(m, 10, time.Minute)
	is.NoErr(err)

	_, err = c.CountryInfo(context.Background(), "DEU")
	is.True(err != nil)
	c.(cachingCountryInfoClient).cache.wait()

	_, err = c.CountryInfo(context.Background(), "DEU")
	is.True(err != nil)

	is.Equal(len(m.CountryInfoCalls()), 2)
}

func TestCachedRatesIgnoreSymbolOrder(t *testing.T) {
	is := is.New(t)

	m := &ExchangeRateClientMock{
		RatesFunc: func(ctx context.Context, symbols ...string) (ExchangeRates, error) {
			return ExchangeRates{Success: true, Rates: map[string]float64{"ARS": 120.5, "USD": 1.1}}, nil
		},
	}

	c, err := NewCachingExchangeRateClient(m, 10, time.Minute)
	is.NoErr(err)

	_, err = c.Rates(context.Background(), "USD", "ARS")
	is.NoErr(err)
	c.(cachingExchangeRateClient).cache.wait()

	rates, err := c.Rates(context.Background(), "ARS", "USD")
	is.NoErr(err)

	is.Equal(rates.Rates["USD"], 1.1)
	is.Equal(len(m.RatesCalls()), 1)
}

func TestCachingDisabledReturnsClientUnchanged(t *testing.T) {
	is := is.New(t)

	m := &GeolocationClientMock{}
	c, err := NewCachingGeolocationClient(m, 0, time.Minute)
	is.NoErr(err)

	is.Equal(c, GeolocationClient(m))
}

func newMockServer(handler http.HandlerFunc) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Type", "application/json")
		handler(w, r)
	}))
}

const geolocationResponse string = `{"countryCode":"DE","countryCode3":"DEU","countryName":"Germany","countryEmoji":"🇩🇪"}`

const countryInfoResponse string = `{
	"name": "Germany",
	"alpha3Code": "DEU",
	"latlng": [51.0, 9.0],
	"timezones": ["UTC+01:00"],
	"languages": [{"iso639_1": "de", "iso639_2": "deu", "name": "German", "nativeName": "Deutsch"}],
	"currencies": [{"code": "EUR", "name": "Euro", "symbol": "€"}]
}`

const ratesResponse string = `{"success":true,"timestamp":1519296206,"base":"EUR","date":"2021-03-17","rates":{"ARS":120.5,"USD":1.1}}`
