// Package quotes fronts the market data and FX providers with the TTL
// cache, mirroring how callers are expected to resolve inputs before a
// calculation: fresh or cached-but-valid values only.
package quotes

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/sandrolex/rsu/pkg/models/domain"
	"github.com/sandrolex/rsu/pkg/models/store"
	"github.com/sandrolex/rsu/pkg/services/fx"
	"github.com/sandrolex/rsu/pkg/services/marketdata"
	"github.com/sandrolex/rsu/pkg/store/quotecache"
)

const (
	// DefaultPriceTTL and DefaultRateTTL match the cache windows of the
	// upstream endpoints: prices move intraday, the FX rate is refreshed
	// hourly.
	DefaultPriceTTL = 5 * time.Minute
	DefaultRateTTL  = time.Hour
)

type Service struct {
	prices   marketdata.Provider
	rates    fx.Provider
	cache    quotecache.Store
	priceTTL time.Duration
	rateTTL  time.Duration
}

// NewService wires providers to the cache. A nil cache disables caching and
// every call hits the remote endpoint.
func NewService(prices marketdata.Provider, rates fx.Provider, cache quotecache.Store) *Service {
	return &Service{
		prices:   prices,
		rates:    rates,
		cache:    cache,
		priceTTL: DefaultPriceTTL,
		rateTTL:  DefaultRateTTL,
	}
}

func (s *Service) ClosePrice(ctx context.Context, ticker string, day time.Time) (domain.Quote, error) {
	logger := zerolog.Ctx(ctx)

	if s.cache != nil {
		rec, ok, err := s.cache.GetQuote(ctx, ticker, day, s.priceTTL)
		if err != nil {
			logger.Warn().Err(err).Str("ticker", ticker).Msg("quote cache read failed")
		} else if ok {
			return domain.Quote{Ticker: rec.Ticker, Day: rec.Day, Close: rec.Close}, nil
		}
	}

	quote, err := s.prices.ClosePrice(ctx, ticker, day)
	if err != nil {
		return domain.Quote{}, err
	}

	if s.cache != nil {
		err := s.cache.PutQuote(ctx, store.QuoteRecord{
			Ticker:    quote.Ticker,
			Day:       day,
			Close:     quote.Close,
			FetchedAt: time.Now().UTC(),
		})
		if err != nil {
			logger.Warn().Err(err).Str("ticker", ticker).Msg("quote cache write failed")
		}
	}
	return quote, nil
}

func (s *Service) USDToEUR(ctx context.Context) (domain.ExchangeRate, error) {
	logger := zerolog.Ctx(ctx)

	if s.cache != nil {
		rec, ok, err := s.cache.GetRate(ctx, "USD", "EUR", s.rateTTL)
		if err != nil {
			logger.Warn().Err(err).Msg("rate cache read failed")
		} else if ok {
			return domain.ExchangeRate{
				Base: rec.Base, Target: rec.Target, Rate: rec.Rate, FetchedAt: rec.FetchedAt,
			}, nil
		}
	}
	return s.RefreshRate(ctx)
}

// RefreshRate bypasses the cache, fetches the current rate and stores it.
// The web server runs this on a schedule so interactive requests mostly hit
// the cache.
func (s *Service) RefreshRate(ctx context.Context) (domain.ExchangeRate, error) {
	rate, err := s.rates.USDToEUR(ctx)
	if err != nil {
		return domain.ExchangeRate{}, err
	}

	if s.cache != nil {
		err := s.cache.PutRate(ctx, store.RateRecord{
			Base:      rate.Base,
			Target:    rate.Target,
			Rate:      rate.Rate,
			FetchedAt: rate.FetchedAt,
		})
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("rate cache write failed")
		}
	}
	return rate, nil
}
