package marketdata

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sandrolex/rsu/pkg/models/domain"
)

const (
	defaultStooqBaseURL = "https://stooq.com"
	// lookbackDays widens the query window so a weekend or holiday on the
	// requested date still yields a prior close.
	lookbackDays = 10
)

// StooqClient fetches daily close prices from the Stooq CSV endpoint.
type StooqClient struct {
	client  *http.Client
	baseURL string
	log     zerolog.Logger
}

// NewStooqClient creates a Stooq market data client. An empty baseURL uses
// the public endpoint.
func NewStooqClient(log zerolog.Logger, baseURL string) *StooqClient {
	if baseURL == "" {
		baseURL = defaultStooqBaseURL
	}
	return &StooqClient{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: baseURL,
		log:     log.With().Str("client", "stooq").Logger(),
	}
}

// StooqSymbol converts a plain US ticker into Stooq's symbol convention
// (lower case with a .us suffix). Symbols already carrying an exchange
// suffix are passed through.
func StooqSymbol(ticker string) string {
	s := strings.ToLower(strings.TrimSpace(ticker))
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".us"
}

func (c *StooqClient) ClosePrice(ctx context.Context, ticker string, day time.Time) (domain.Quote, error) {
	from := day.AddDate(0, 0, -lookbackDays)

	q := url.Values{}
	q.Set("s", StooqSymbol(ticker))
	q.Set("d1", from.Format("20060102"))
	q.Set("d2", day.Format("20060102"))
	q.Set("i", "d")

	endpoint := fmt.Sprintf("%s/q/d/l/?%s", c.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("failed to build quote request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("failed to fetch quote for %s: %w", ticker, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Quote{}, fmt.Errorf("quote endpoint returned status %d for %s", resp.StatusCode, ticker)
	}

	rows, err := csv.NewReader(resp.Body).ReadAll()
	if err != nil {
		return domain.Quote{}, fmt.Errorf("failed to parse quote CSV for %s: %w", ticker, err)
	}

	quote, ok := latestCloseOnOrBefore(rows, ticker, day)
	if !ok {
		return domain.Quote{}, fmt.Errorf("no price data for %s on or before %s", ticker, day.Format("2006-01-02"))
	}

	c.log.Debug().
		Str("ticker", ticker).
		Str("day", quote.Day.Format("2006-01-02")).
		Float64("close", quote.Close).
		Msg("resolved close price")

	return quote, nil
}

// latestCloseOnOrBefore scans CSV rows (Date,Open,High,Low,Close,Volume,
// header included) and returns the most recent close at or before day.
func latestCloseOnOrBefore(rows [][]string, ticker string, day time.Time) (domain.Quote, bool) {
	var best domain.Quote
	found := false
	for _, row := range rows {
		if len(row) < 5 {
			continue
		}
		rowDay, err := time.Parse("2006-01-02", row[0])
		if err != nil {
			continue // header or malformed row
		}
		if rowDay.After(day) {
			continue
		}
		closePrice, err := strconv.ParseFloat(row[4], 64)
		if err != nil {
			continue
		}
		if !found || rowDay.After(best.Day) {
			best = domain.Quote{Ticker: ticker, Day: rowDay, Close: closePrice}
			found = true
		}
	}
	return best, found
}
