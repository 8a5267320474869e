package quotes

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sandrolex/rsu/pkg/models/domain"
	"github.com/sandrolex/rsu/pkg/models/store"
)

type mockPriceProvider struct {
	mock.Mock
}

func (m *mockPriceProvider) ClosePrice(ctx context.Context, ticker string, day time.Time) (domain.Quote, error) {
	args := m.Called(ctx, ticker, day)
	return args.Get(0).(domain.Quote), args.Error(1)
}

type mockRateProvider struct {
	mock.Mock
}

func (m *mockRateProvider) USDToEUR(ctx context.Context) (domain.ExchangeRate, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ExchangeRate), args.Error(1)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) GetQuote(
	ctx context.Context,
	ticker string,
	day time.Time,
	ttl time.Duration,
) (store.QuoteRecord, bool, error) {
	args := m.Called(ctx, ticker, day, ttl)
	return args.Get(0).(store.QuoteRecord), args.Bool(1), args.Error(2)
}

func (m *mockCache) PutQuote(ctx context.Context, rec store.QuoteRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *mockCache) GetRate(
	ctx context.Context,
	base, target string,
	ttl time.Duration,
) (store.RateRecord, bool, error) {
	args := m.Called(ctx, base, target, ttl)
	return args.Get(0).(store.RateRecord), args.Bool(1), args.Error(2)
}

func (m *mockCache) PutRate(ctx context.Context, rec store.RateRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func TestClosePrice(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	quote := domain.Quote{Ticker: "AAPL", Day: day, Close: 214.3}

	t.Run("cache hit skips the provider", func(t *testing.T) {
		prices := new(mockPriceProvider)
		cache := new(mockCache)
		cache.On("GetQuote", ctx, "AAPL", day, DefaultPriceTTL).
			Return(store.QuoteRecord{Ticker: "AAPL", Day: day, Close: 214.3}, true, nil)

		svc := NewService(prices, new(mockRateProvider), cache)
		got, err := svc.ClosePrice(ctx, "AAPL", day)

		require.NoError(t, err)
		assert.Equal(t, quote, got)
		prices.AssertNotCalled(t, "ClosePrice", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cache miss fetches and stores", func(t *testing.T) {
		prices := new(mockPriceProvider)
		prices.On("ClosePrice", ctx, "AAPL", day).Return(quote, nil)

		cache := new(mockCache)
		cache.On("GetQuote", ctx, "AAPL", day, DefaultPriceTTL).
			Return(store.QuoteRecord{}, false, nil)
		cache.On("PutQuote", ctx, mock.MatchedBy(func(rec store.QuoteRecord) bool {
			return rec.Ticker == "AAPL" && rec.Close == 214.3
		})).Return(nil)

		svc := NewService(prices, new(mockRateProvider), cache)
		got, err := svc.ClosePrice(ctx, "AAPL", day)

		require.NoError(t, err)
		assert.Equal(t, quote, got)
		cache.AssertExpectations(t)
	})

	t.Run("cache errors fall through to the provider", func(t *testing.T) {
		prices := new(mockPriceProvider)
		prices.On("ClosePrice", ctx, "AAPL", day).Return(quote, nil)

		cache := new(mockCache)
		cache.On("GetQuote", ctx, "AAPL", day, DefaultPriceTTL).
			Return(store.QuoteRecord{}, false, fmt.Errorf("disk error"))
		cache.On("PutQuote", ctx, mock.Anything).Return(nil)

		svc := NewService(prices, new(mockRateProvider), cache)
		got, err := svc.ClosePrice(ctx, "AAPL", day)

		require.NoError(t, err)
		assert.Equal(t, quote, got)
	})

	t.Run("provider error propagates", func(t *testing.T) {
		prices := new(mockPriceProvider)
		prices.On("ClosePrice", ctx, "AAPL", day).
			Return(domain.Quote{}, fmt.Errorf("upstream down"))

		svc := NewService(prices, new(mockRateProvider), nil)
		_, err := svc.ClosePrice(ctx, "AAPL", day)

		assert.ErrorContains(t, err, "upstream down")
	})
}

func TestUSDToEUR(t *testing.T) {
	ctx := context.Background()
	fetched := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	rate := domain.ExchangeRate{Base: "USD", Target: "EUR", Rate: 0.92, FetchedAt: fetched}

	t.Run("cache hit", func(t *testing.T) {
		rates := new(mockRateProvider)
		cache := new(mockCache)
		cache.On("GetRate", ctx, "USD", "EUR", DefaultRateTTL).
			Return(store.RateRecord{Base: "USD", Target: "EUR", Rate: 0.92, FetchedAt: fetched}, true, nil)

		svc := NewService(new(mockPriceProvider), rates, cache)
		got, err := svc.USDToEUR(ctx)

		require.NoError(t, err)
		assert.Equal(t, rate, got)
		rates.AssertNotCalled(t, "USDToEUR", mock.Anything)
	})

	t.Run("cache miss fetches and stores", func(t *testing.T) {
		rates := new(mockRateProvider)
		rates.On("USDToEUR", ctx).Return(rate, nil)

		cache := new(mockCache)
		cache.On("GetRate", ctx, "USD", "EUR", DefaultRateTTL).
			Return(store.RateRecord{}, false, nil)
		cache.On("PutRate", ctx, store.RateRecord{
			Base: "USD", Target: "EUR", Rate: 0.92, FetchedAt: fetched,
		}).Return(nil)

		svc := NewService(new(mockPriceProvider), rates, cache)
		got, err := svc.USDToEUR(ctx)

		require.NoError(t, err)
		assert.Equal(t, rate, got)
		cache.AssertExpectations(t)
	})
}

func TestRefreshRate(t *testing.T) {
	ctx := context.Background()
	rate := domain.ExchangeRate{Base: "USD", Target: "EUR", Rate: 0.93}

	// RefreshRate must hit the provider even with a warm cache.
	rates := new(mockRateProvider)
	rates.On("USDToEUR", ctx).Return(rate, nil)

	cache := new(mockCache)
	cache.On("PutRate", ctx, mock.Anything).Return(nil)

	svc := NewService(new(mockPriceProvider), rates, cache)
	got, err := svc.RefreshRate(ctx)

	require.NoError(t, err)
	assert.Equal(t, rate, got)
	cache.AssertNotCalled(t, "GetRate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
