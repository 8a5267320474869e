package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sandrolex/rsu/pkg/models/api"
	"github.com/sandrolex/rsu/pkg/models/domain"
	"github.com/sandrolex/rsu/pkg/services/scenario"
)

type mockEstimator struct {
	mock.Mock
}

func (m *mockEstimator) Estimate(ctx context.Context, req scenario.Request) (*domain.TaxResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxResult), args.Error(1)
}

func (m *mockEstimator) Compare(ctx context.Context, a, b scenario.Request) (*domain.ScenarioComparison, error) {
	args := m.Called(ctx, a, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScenarioComparison), args.Error(1)
}

type mockQuotes struct {
	mock.Mock
}

func (m *mockQuotes) ClosePrice(ctx context.Context, ticker string, day time.Time) (domain.Quote, error) {
	args := m.Called(ctx, ticker, day)
	return args.Get(0).(domain.Quote), args.Error(1)
}

func (m *mockQuotes) USDToEUR(ctx context.Context) (domain.ExchangeRate, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ExchangeRate), args.Error(1)
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(nil))

	mockEst := new(mockEstimator)
	mockQts := new(mockQuotes)

	config := Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Estimator: mockEst,
			Quotes:    mockQts,
			Logger:    logger,
		},
	}
	router := ConfigureRouter(config)
	testServer := httptest.NewServer(router)
	defer testServer.Close()

	estimateBody := `{
		"regime": "macron_iii",
		"shares": 100,
		"vesting_price_usd": 50,
		"sell_price_usd": 80,
		"usd_to_eur": 0.9,
		"vesting_date": "2024-01-15",
		"sell_date": "2025-01-15"
	}`

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		setupMocks     func()
		expectedStatus int
		check          func(t *testing.T, body []byte)
	}{
		{
			name:   "EstimateScenario",
			method: http.MethodPost,
			path:   "/api/v1/scenarios/estimate",
			body:   estimateBody,
			setupMocks: func() {
				mockEst.On("Estimate", mock.Anything, mock.MatchedBy(func(req scenario.Request) bool {
					return req.Input.Regime == domain.RegimeMacronIII && req.Input.Shares == 100
				})).Return(&domain.TaxResult{
					Regime:        domain.RegimeMacronIII,
					GrossProceeds: 7200,
					TotalTaxes:    2336.4,
					NetProceeds:   4863.6,
				}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var result api.ScenarioResult
				require.NoError(t, json.Unmarshal(body, &result))
				assert.Equal(t, "macron_iii", result.Regime)
				assert.Equal(t, 4863.6, result.NetProceeds)
				assert.NotEmpty(t, result.ID)
			},
		},
		{
			name:   "EstimateScenario_UnknownRegime",
			method: http.MethodPost,
			path:   "/api/v1/scenarios/estimate",
			body:   `{"regime":"macron_ii","shares":1,"vesting_date":"2024-01-15","sell_date":"2025-01-15"}`,
			setupMocks: func() {
			},
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "regime")
			},
		},
		{
			name:   "CompareScenarios",
			method: http.MethodPost,
			path:   "/api/v1/scenarios/compare",
			body:   `{"a":` + estimateBody + `,"b":` + strings.Replace(estimateBody, "macron_iii", "unrestricted", 1) + `}`,
			setupMocks: func() {
				mockEst.On("Compare", mock.Anything, mock.Anything, mock.Anything).
					Return(&domain.ScenarioComparison{
						A:             &domain.TaxResult{Regime: domain.RegimeMacronIII, NetProceeds: 4863.6},
						B:             &domain.TaxResult{Regime: domain.RegimeUnrestricted, NetProceeds: 4341.6},
						NetDifference: -522.0,
						TaxDifference: 522.0,
						Better:        "a",
					}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var result api.ComparisonResult
				require.NoError(t, json.Unmarshal(body, &result))
				assert.Equal(t, "a", result.Better)
				assert.Equal(t, -522.0, result.NetDifference)
			},
		},
		{
			name:   "GetQuote",
			method: http.MethodGet,
			path:   "/api/v1/quotes/AAPL?date=2025-03-14",
			setupMocks: func() {
				day, _ := time.Parse("2006-01-02", "2025-03-14")
				mockQts.On("ClosePrice", mock.Anything, "AAPL", day).
					Return(domain.Quote{Ticker: "AAPL", Day: day, Close: 214.3}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var quote api.Quote
				require.NoError(t, json.Unmarshal(body, &quote))
				assert.Equal(t, api.Quote{Ticker: "AAPL", Date: "2025-03-14", Close: 214.3}, quote)
			},
		},
		{
			name:   "GetQuote_InvalidDate",
			method: http.MethodGet,
			path:   "/api/v1/quotes/AAPL?date=invalid-date",
			setupMocks: func() {
			},
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				assert.Equal(t, "invalid 'date' format. Expected format: YYYY-MM-DD\n", string(body))
			},
		},
		{
			name:   "GetUSDEURRate",
			method: http.MethodGet,
			path:   "/api/v1/fx/usdeur",
			setupMocks: func() {
				mockQts.On("USDToEUR", mock.Anything).
					Return(domain.ExchangeRate{Base: "USD", Target: "EUR", Rate: 0.92}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var rate api.ExchangeRate
				require.NoError(t, json.Unmarshal(body, &rate))
				assert.Equal(t, 0.92, rate.Rate)
			},
		},
		{
			name:   "ListRegimes",
			method: http.MethodGet,
			path:   "/api/v1/regimes",
			setupMocks: func() {
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var regimes []api.Regime
				require.NoError(t, json.Unmarshal(body, &regimes))
				assert.Len(t, regimes, 3)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			var resp *http.Response
			var err error
			if tc.method == http.MethodPost {
				resp, err = http.Post(testServer.URL+tc.path, "application/json", strings.NewReader(tc.body))
			} else {
				resp, err = http.Get(testServer.URL + tc.path)
			}
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")

			tc.check(t, body)
		})
	}

	mockEst.AssertExpectations(t)
	mockQts.AssertExpectations(t)
}
