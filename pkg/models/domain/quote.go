package domain

import "time"

// Quote is a resolved close price for a ticker on a trading day. Day may be
// earlier than requested when the market was closed on the requested date.
type Quote struct {
	Ticker string
	Day    time.Time
	Close  float64
}

// ExchangeRate is a resolved currency conversion rate.
type ExchangeRate struct {
	Base      string
	Target    string
	Rate      float64
	FetchedAt time.Time
}
