package store

import "time"

// QuoteRecord is a cached close price row.
type QuoteRecord struct {
	Ticker    string
	Day       time.Time
	Close     float64
	FetchedAt time.Time
}

// RateRecord is a cached exchange rate row.
type RateRecord struct {
	Base      string
	Target    string
	Rate      float64
	FetchedAt time.Time
}
