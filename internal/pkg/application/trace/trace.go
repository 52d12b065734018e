package trace

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"strconv"
	"strings"
	"time"

	"github.com/meli-challenge/ip-trace/internal/pkg/application/distance"
	"github.com/meli-challenge/ip-trace/internal/pkg/application/events"
	"github.com/meli-challenge/ip-trace/internal/pkg/application/invocations"
	"github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/clients"
	"github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/logging"
	"github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/tracing"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate moq -rm -out trace_mock.go . TraceService

var ErrInvalidIP = errors.New("invalid ipv4 address")
var ErrIncompleteCountryInfo = fmt.Errorf("%w: incomplete country information", clients.ErrUpstream)

var tracer = otel.Tracer("ip-trace/trace")

type Result struct {
	IP                string
	Country           string
	CountryISOCode    string
	CountryCode3      string
	Languages         []string
	Times             []string
	Distance          float64
	EstimatedDistance string
	Currency          string
	NumberRequests    float64
}

type TraceService interface {
	Trace(ctx context.Context, ip string) (Result, error)
}

type traceService struct {
	geolocation clients.GeolocationClient
	countries   clients.CountryInfoClient
	rates       clients.ExchangeRateClient
	invocations invocations.InvocationService
	calculator  distance.Calculator
	events      events.EventSender
	now         func() time.Time
}

func New(geolocation clients.GeolocationClient, countries clients.CountryInfoClient, rates clients.ExchangeRateClient, invocationSvc invocations.InvocationService, calculator distance.Calculator, sender events.EventSender) TraceService {
	return &traceService{
		geolocation: geolocation,
		countries:   countries,
		rates:       rates,
		invocations: invocationSvc,
		calculator:  calculator,
		events:      sender,
		now:         time.Now,
	}
}

func (s *traceService) Trace(ctx context.Context, ip string) (Result, error) {
	var err error
	ctx, span := tracer.Start(ctx, "trace-ip")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	addr, err := ParseIPv4(ip)
	if err != nil {
		return Result{}, err
	}
	ip = addr.String()

	logger := logging.GetLoggerFromContext(ctx).With().Str("ip", ip).Logger()
	ctx = logging.NewContextWithLogger(ctx, logger)

	country, err := s.geolocation.Locate(ctx, ip)
	if err != nil {
		return Result{}, err
	}
	span.SetAttributes(attribute.String("country", country.CountryCode3))

	info, err := s.countries.CountryInfo(ctx, country.CountryCode3)
	if err != nil {
		return Result{}, err
	}

	if len(info.LatLng) < 2 {
		err = fmt.Errorf("%w: no coordinates for %s", ErrIncompleteCountryInfo, country.CountryCode3)
		return Result{}, err
	}

	times, err := CurrentTimes(s.now(), info.Timezones)
	if err != nil {
		return Result{}, err
	}

	km := distance.Round(s.calculator.DistanceKm(distance.NewGeoPoint(info.LatLng[0], info.LatLng[1])))

	currency, err := s.currency(ctx, info.Currencies)
	if err != nil {
		return Result{}, err
	}

	invocation, err := s.invocations.RecordInvocation(ctx, country.CountryName, km)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		IP:                ip,
		Country:           country.CountryName,
		CountryISOCode:    country.CountryCode,
		CountryCode3:      country.CountryCode3,
		Languages:         NativeLanguages(info.Languages),
		Times:             times,
		Distance:          km,
		EstimatedDistance: distance.FormatKm(km) + " Km",
		Currency:          currency,
		NumberRequests:    invocation.NumberRequests,
	}

	s.publish(ctx, result)

	logger.Info().Str("country", result.Country).Msg("ip traced")

	return result, nil
}

func (s *traceService) currency(ctx context.Context, currencies []clients.Currency) (string, error) {
	codes := lo.Uniq(lo.FilterMap(currencies, func(c clients.Currency, _ int) (string, bool) {
		return c.Code, c.Code != ""
	}))

	if len(codes) == 0 {
		return "", nil
	}

	rates, err := s.rates.Rates(ctx, codes...)
	if err != nil {
		return "", err
	}

	return CurrencyLine(currencies, rates), nil
}

func (s *traceService) publish(ctx context.Context, result Result) {
	if s.events == nil {
		return
	}

	err := s.events.Send(ctx, events.InvocationMessage{
		IP:             result.IP,
		Country:        result.Country,
		CountryCode:    result.CountryCode3,
		Distance:       result.Distance,
		NumberRequests: result.NumberRequests,
		Timestamp:      s.now().UTC(),
	})
	if err != nil {
		logger := logging.GetLoggerFromContext(ctx)
		logger.Warn().Err(err).Msg("failed to publish invocation event")
	}
}

// ParseIPv4 accepts dotted decimal IPv4 addresses only. Surrounding
// whitespace and IPv4-mapped IPv6 addresses are rejected.
func ParseIPv4(ip string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(ip)
	if err != nil || !addr.Is4() {
		return netip.Addr{}, fmt.Errorf("%w: %q", ErrInvalidIP, ip)
	}
	return addr, nil
}

func NativeLanguages(languages []clients.Language) []string {
	return lo.Map(languages, func(l clients.Language, _ int) string {
		return l.NativeName
	})
}

// CurrentTimes formats now as "15:04 <label>" for every timezone label, e.g.
// "UTC-03:00". A bare "UTC" is reported as "UTC+00:00".
func CurrentTimes(now time.Time, timezones []string) ([]string, error) {
	times := make([]string, 0, len(timezones))

	for _, tz := range timezones {
		if tz == "UTC" {
			tz = "UTC+00:00"
		}

		offset, err := parseOffset(strings.TrimPrefix(tz, "UTC"))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid timezone %q", ErrIncompleteCountryInfo, tz)
		}

		local := now.In(time.FixedZone(tz, offset))
		times = append(times, local.Format("15:04")+" "+tz)
	}

	return times, nil
}

// parseOffset understands ±h, ±hh, ±hhmm and ±hh:mm and returns seconds east of UTC.
func parseOffset(s string) (int, error) {
	if len(s) < 2 || (s[0] != '+' && s[0] != '-') {
		return 0, fmt.Errorf("offset %q has no sign", s)
	}

	sign := 1
	if s[0] == '-' {
		sign = -1
	}

	digits := strings.ReplaceAll(s[1:], ":", "")

	var hh, mm string
	switch len(digits) {
	case 1, 2:
		hh = digits
	case 4:
		hh, mm = digits[:2], digits[2:]
	default:
		return 0, fmt.Errorf("offset %q is malformed", s)
	}

	hours, err := strconv.Atoi(hh)
	if err != nil || hours > 18 {
		return 0, fmt.Errorf("offset %q has invalid hours", s)
	}

	minutes := 0
	if mm != "" {
		minutes, err = strconv.Atoi(mm)
		if err != nil || minutes > 59 {
			return 0, fmt.Errorf("offset %q has invalid minutes", s)
		}
	}

	return sign * (hours*3600 + minutes*60), nil
}

// CurrencyLine describes the first of currencies that has a rate, e.g.
// "ARS (1 EUR = 120.5 $)". It is empty when no currency has a rate.
func CurrencyLine(currencies []clients.Currency, rates clients.ExchangeRates) string {
	for _, c := range currencies {
		rate, ok := rates.Rates[c.Code]
		if !ok {
			continue
		}

		return fmt.Sprintf("%s (1 %s = %s %s)", c.Code, clients.BaseCurrency, strconv.FormatFloat(rate, 'f', -1, 64), c.Symbol)
	}

	return ""
}
