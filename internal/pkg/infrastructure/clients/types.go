package clients

import "fmt"

// Country is the answer of the IP geolocation API.
type Country struct {
	CountryCode  string `json:"countryCode"`
	CountryCode3 string `json:"countryCode3"`
	CountryName  string `json:"countryName"`
	CountryEmoji string `json:"countryEmoji"`
}

type Language struct {
	Iso639_1   string `json:"iso639_1"`
	Iso639_2   string `json:"iso639_2"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
}

type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// CountryInfo is the answer of the country information API.
type CountryInfo struct {
	Name       string     `json:"name"`
	Alpha3Code string     `json:"alpha3Code"`
	LatLng     []float64  `json:"latlng"`
	Timezones  []string   `json:"timezones"`
	Languages  []Language `json:"languages"`
	Currencies []Currency `json:"currencies"`
}

// ExchangeRates is the answer of the exchange rate API. Rates are expressed
// as units of each symbol per one unit of Base.
type ExchangeRates struct {
	Success   bool               `json:"success"`
	Timestamp int64              `json:"timestamp"`
	Base      string             `json:"base"`
	Date      string             `json:"date"`
	Rates     map[string]float64 `json:"rates"`
	Error     *RatesError        `json:"error,omitempty"`
}

type RatesError struct {
	Code int    `json:"code"`
	Type string `json:"type"`
	Info string `json:"info"`
}

func (e RatesError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Code, e.Type, e.Info)
}
