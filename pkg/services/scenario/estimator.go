// Package scenario turns partially specified sell scenarios into calculated
// tax results: it resolves missing prices and FX rates through the quote
// providers, then hands a fully resolved input to the tax calculator.
package scenario

import (
	"context"
	"fmt"
	"time"

	"github.com/sandrolex/rsu/pkg/models/domain"
	"github.com/sandrolex/rsu/pkg/services/tax"
)

// PriceResolver yields a close price for a ticker on (or just before) a day.
type PriceResolver interface {
	ClosePrice(ctx context.Context, ticker string, day time.Time) (domain.Quote, error)
}

// RateResolver yields the current USD/EUR conversion rate.
type RateResolver interface {
	USDToEUR(ctx context.Context) (domain.ExchangeRate, error)
}

// Request is a scenario that may still have unresolved market inputs. Zero
// prices are looked up by ticker and date; a zero FX rate is looked up from
// the rate provider.
type Request struct {
	Ticker string
	Input  domain.ScenarioInput
}

type Estimator struct {
	prices PriceResolver
	rates  RateResolver
}

func NewEstimator(prices PriceResolver, rates RateResolver) *Estimator {
	return &Estimator{prices: prices, rates: rates}
}

// Resolve fills the market-dependent fields of a request. Explicitly
// supplied values are never overwritten.
func (e *Estimator) Resolve(ctx context.Context, req Request) (domain.ScenarioInput, error) {
	in := req.Input

	if in.VestingPriceUSD == 0 && req.Ticker != "" {
		quote, err := e.prices.ClosePrice(ctx, req.Ticker, in.VestingDate)
		if err != nil {
			return domain.ScenarioInput{}, fmt.Errorf("failed to resolve vesting price: %w", err)
		}
		in.VestingPriceUSD = quote.Close
	}
	if in.SellPriceUSD == 0 && req.Ticker != "" {
		quote, err := e.prices.ClosePrice(ctx, req.Ticker, in.SellDate)
		if err != nil {
			return domain.ScenarioInput{}, fmt.Errorf("failed to resolve sell price: %w", err)
		}
		in.SellPriceUSD = quote.Close
	}
	if in.USDToEUR == 0 {
		rate, err := e.rates.USDToEUR(ctx)
		if err != nil {
			return domain.ScenarioInput{}, fmt.Errorf("failed to resolve USD/EUR rate: %w", err)
		}
		in.USDToEUR = rate.Rate
	}
	return in, nil
}

// Estimate resolves a request and runs the tax calculation.
func (e *Estimator) Estimate(ctx context.Context, req Request) (*domain.TaxResult, error) {
	in, err := e.Resolve(ctx, req)
	if err != nil {
		return nil, err
	}
	return tax.Calculate(in)
}

// Compare estimates two scenarios and reports their differences, B relative
// to A.
func (e *Estimator) Compare(ctx context.Context, a, b Request) (*domain.ScenarioComparison, error) {
	resultA, err := e.Estimate(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("scenario A: %w", err)
	}
	resultB, err := e.Estimate(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("scenario B: %w", err)
	}
	return CompareResults(resultA, resultB), nil
}

// CompareResults builds a comparison from two already calculated results.
func CompareResults(a, b *domain.TaxResult) *domain.ScenarioComparison {
	better := "tie"
	switch {
	case b.NetProceeds > a.NetProceeds:
		better = "b"
	case a.NetProceeds > b.NetProceeds:
		better = "a"
	}
	return &domain.ScenarioComparison{
		A:             a,
		B:             b,
		NetDifference: b.NetProceeds - a.NetProceeds,
		TaxDifference: b.TotalTaxes - a.TotalTaxes,
		Better:        better,
	}
}
