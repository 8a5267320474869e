// Package fx resolves currency conversion rates from an external
// exchange-rate API. The calculator itself never talks to it; callers
// resolve a rate first and pass the plain number in.
package fx

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/sandrolex/rsu/pkg/models/domain"
)

const defaultBaseURL = "https://api.exchangerate-api.com"

// Provider resolves the current USD to EUR conversion rate.
type Provider interface {
	USDToEUR(ctx context.Context) (domain.ExchangeRate, error)
}

// Client fetches rates from an exchangerate-api compatible endpoint.
type Client struct {
	client  *http.Client
	baseURL string
	log     zerolog.Logger
}

func NewClient(log zerolog.Logger, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		client:  &http.Client{Timeout: 5 * time.Second},
		baseURL: baseURL,
		log:     log.With().Str("client", "fx").Logger(),
	}
}

type latestRatesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

func (c *Client) USDToEUR(ctx context.Context) (domain.ExchangeRate, error) {
	endpoint := c.baseURL + "/v4/latest/USD"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.ExchangeRate{}, fmt.Errorf("failed to build rate request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.ExchangeRate{}, fmt.Errorf("failed to fetch USD/EUR rate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.ExchangeRate{}, fmt.Errorf("rate endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.ExchangeRate{}, fmt.Errorf("failed to read rate response: %w", err)
	}

	var parsed latestRatesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return domain.ExchangeRate{}, fmt.Errorf("failed to parse rate response: %w", err)
	}

	rate, ok := parsed.Rates["EUR"]
	if !ok || rate <= 0 {
		return domain.ExchangeRate{}, fmt.Errorf("rate response has no usable EUR rate")
	}

	c.log.Debug().Float64("rate", rate).Msg("resolved USD/EUR rate")

	return domain.ExchangeRate{
		Base:      "USD",
		Target:    "EUR",
		Rate:      rate,
		FetchedAt: time.Now().UTC(),
	}, nil
}
