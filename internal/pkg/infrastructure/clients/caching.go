package clients

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/metrics"
)

type cache struct {
	api   string
	store *ristretto.Cache
	ttl   time.Duration
}

func newCache(api string, itemsCount int64, ttl time.Duration) (*cache, error) {
	store, err := ristretto.NewCache(&ristretto.Config{
		MaxCost:            itemsCount,
		NumCounters:        10 * itemsCount,
		Metrics:            false,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s cache: %w", api, err)
	}

	return &cache{api: api, store: store, ttl: ttl}, nil
}

func (c *cache) get(key string) (any, bool) {
	value, ok := c.store.Get(key)
	if ok {
		metrics.CacheHits.WithLabelValues(c.api).Inc()
	} else {
		metrics.CacheMisses.WithLabelValues(c.api).Inc()
	}
	return value, ok
}

// Every entry costs 1, so MaxCost is the number of cached responses.
func (c *cache) set(key string, value any) {
	c.store.SetWithTTL(key, value, 1, c.ttl)
}

// wait blocks until buffered writes are visible to get.
func (c *cache) wait() {
	c.store.Wait()
}

type cachingGeolocationClient struct {
	GeolocationClient
	cache *cache
}

func (c cachingGeolocationClient) Locate(ctx context.Context, ip string) (Country, error) {
	if value, ok := c.cache.get(ip); ok {
		return value.(Country), nil
	}

	country, err := c.GeolocationClient.Locate(ctx, ip)
	if err != nil {
		return Country{}, err
	}

	c.cache.set(ip, country)

	return country, nil
}

// NewCachingGeolocationClient returns client unchanged when itemsCount is 0.
func NewCachingGeolocationClient(client GeolocationClient, itemsCount int64, ttl time.Duration) (GeolocationClient, error) {
	if itemsCount <= 0 {
		return client, nil
	}

	c, err := newCache("geolocation", itemsCount, ttl)
	if err != nil {
		return nil, err
	}

	return cachingGeolocationClient{GeolocationClient: client, cache: c}, nil
}

type cachingCountryInfoClient struct {
	CountryInfoClient
	cache *cache
}

func (c cachingCountryInfoClient) CountryInfo(ctx context.Context, alpha3Code string) (CountryInfo, error) {
	key := strings.ToUpper(alpha3Code)

	if value, ok := c.cache.get(key); ok {
		return value.(CountryInfo), nil
	}

	info, err := c.CountryInfoClient.CountryInfo(ctx, alpha3Code)
	if err != nil {
		return CountryInfo{}, err
	}

	c.cache.set(key, info)

	return info, nil
}

func NewCachingCountryInfoClient(client CountryInfoClient, itemsCount int64, ttl time.Duration) (CountryInfoClient, error) {
	if itemsCount <= 0 {
		return client, nil
	}

	c, err := newCache("countryinfo", itemsCount, ttl)
	if err != nil {
		return nil, err
	}

	return cachingCountryInfoClient{CountryInfoClient: client, cache: c}, nil
}

type cachingExchangeRateClient struct {
	ExchangeRateClient
	cache *cache
}

func (c cachingExchangeRateClient) Rates(ctx context.Context, symbols ...string) (ExchangeRates, error) {
	sorted := append([]string{}, symbols...)
	sort.Strings(sorted)
	key := strings.Join(sorted, ",")

	if value, ok := c.cache.get(key); ok {
		return value.(ExchangeRates), nil
	}

	rates, err := c.ExchangeRateClient.Rates(ctx, symbols...)
	if err != nil {
		return ExchangeRates{}, err
	}

	c.cache.set(key, rates)

	return rates, nil
}

func NewCachingExchangeRateClient(client ExchangeRateClient, itemsCount int64, ttl time.Duration) (ExchangeRateClient, error) {
	if itemsCount <= 0 {
		return client, nil
	}

	c, err := newCache("exchangerates", itemsCount, ttl)
	if err != nil {
		return nil, err
	}

	return cachingExchangeRateClient{ExchangeRateClient: client, cache: c}, nil
}
