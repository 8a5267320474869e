package scenario

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sandrolex/rsu/pkg/models/api"
	"github.com/sandrolex/rsu/pkg/models/domain"
	"github.com/sandrolex/rsu/pkg/services/config"
	"github.com/sandrolex/rsu/pkg/services/scenario"
	"github.com/sandrolex/rsu/pkg/services/tax"
)

const dateFormat = "2006-01-02"

// Estimator runs scenario calculations.
type Estimator interface {
	Estimate(ctx context.Context, req scenario.Request) (*domain.TaxResult, error)
	Compare(ctx context.Context, a, b scenario.Request) (*domain.ScenarioComparison, error)
}

// QuoteService resolves market inputs for the quote endpoints.
type QuoteService interface {
	ClosePrice(ctx context.Context, ticker string, day time.Time) (domain.Quote, error)
	USDToEUR(ctx context.Context) (domain.ExchangeRate, error)
}

type Handler struct {
	estimator Estimator
	quotes    QuoteService
	rates     *config.Rates
}

func NewHandler(estimator Estimator, quotes QuoteService, rates *config.Rates) *Handler {
	if rates == nil {
		rates = &config.Rates{IncomeTaxRate: tax.DefaultIncomeTaxRate}
	}
	return &Handler{
		estimator: estimator,
		quotes:    quotes,
		rates:     rates,
	}
}

func (h *Handler) EstimateScenario(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.ScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	scenarioReq, err := h.toScenarioRequest(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.estimator.Estimate(ctx, scenarioReq)
	if err != nil {
		h.writeCalcError(w, logger, err)
		return
	}

	h.writeJSON(w, logger, toAPIResult(result))
}

func (h *Handler) CompareScenarios(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.ComparisonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	reqA, err := h.toScenarioRequest(req.A)
	if err != nil {
		http.Error(w, fmt.Sprintf("scenario a: %v", err), http.StatusBadRequest)
		return
	}
	reqB, err := h.toScenarioRequest(req.B)
	if err != nil {
		http.Error(w, fmt.Sprintf("scenario b: %v", err), http.StatusBadRequest)
		return
	}

	cmp, err := h.estimator.Compare(ctx, reqA, reqB)
	if err != nil {
		h.writeCalcError(w, logger, err)
		return
	}

	h.writeJSON(w, logger, api.ComparisonResult{
		A:             toAPIResult(cmp.A),
		B:             toAPIResult(cmp.B),
		NetDifference: cmp.NetDifference,
		TaxDifference: cmp.TaxDifference,
		Better:        cmp.Better,
	})
}

func (h *Handler) GetQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	ticker := chi.URLParam(r, "ticker")

	day, err := parseDateParam(r, "date", time.Now().UTC())
	if err != nil {
		http.Error(w, "invalid 'date' format. Expected format: YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	quote, err := h.quotes.ClosePrice(ctx, ticker, day)
	if err != nil {
		logger.Error().Err(err).Str("ticker", ticker).Msg("failed to resolve quote")
		http.Error(w, "failed to resolve quote", http.StatusBadGateway)
		return
	}

	h.writeJSON(w, logger, api.Quote{
		Ticker: quote.Ticker,
		Date:   quote.Day.Format(dateFormat),
		Close:  quote.Close,
	})
}

func (h *Handler) GetUSDEURRate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	rate, err := h.quotes.USDToEUR(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to resolve USD/EUR rate")
		http.Error(w, "failed to resolve USD/EUR rate", http.StatusBadGateway)
		return
	}

	h.writeJSON(w, logger, api.ExchangeRate{
		Base:      rate.Base,
		Target:    rate.Target,
		Rate:      rate.Rate,
		FetchedAt: rate.FetchedAt.Format(time.RFC3339),
	})
}

func (h *Handler) ListRegimes(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	regimes := []api.Regime{
		{
			ID:                  string(domain.RegimeMacronI),
			Name:                domain.RegimeMacronI.Description(),
			ReliefTiers:         []float64{0, tax.MacronIPartialRelief, tax.MacronIFullRelief},
			SocialSecurityRates: []float64{tax.PatrimonySocialRate},
		},
		{
			ID:                  string(domain.RegimeMacronIII),
			Name:                domain.RegimeMacronIII.Description(),
			ReliefTiers:         []float64{0, tax.MacronIIIRelief},
			SocialSecurityRates: []float64{tax.PatrimonySocialRate, tax.ActivitySocialRate},
			ThresholdEUR:        tax.MacronIIIThreshold,
			SalarialeRate:       tax.SalarialeRate,
		},
		{
			ID:                  string(domain.RegimeUnrestricted),
			Name:                domain.RegimeUnrestricted.Description(),
			ReliefTiers:         []float64{0},
			SocialSecurityRates: []float64{tax.ActivitySocialRate},
		},
	}

	h.writeJSON(w, logger, regimes)
}

func (h *Handler) toScenarioRequest(req api.ScenarioRequest) (scenario.Request, error) {
	regime, err := domain.ParseRegime(req.Regime)
	if err != nil {
		return scenario.Request{}, err
	}

	vestingDate, err := time.Parse(dateFormat, req.VestingDate)
	if err != nil {
		return scenario.Request{}, fmt.Errorf("invalid vesting_date, expected YYYY-MM-DD")
	}
	sellDate, err := time.Parse(dateFormat, req.SellDate)
	if err != nil {
		return scenario.Request{}, fmt.Errorf("invalid sell_date, expected YYYY-MM-DD")
	}

	incomeTaxRate := h.rates.IncomeTaxRate
	if req.IncomeTaxRate != nil {
		incomeTaxRate = *req.IncomeTaxRate
	}
	ssOverride := h.rates.SocialSecurityRate
	if req.SocialSecurityRate != nil {
		ssOverride = req.SocialSecurityRate
	}

	return scenario.Request{
		Ticker: req.Ticker,
		Input: domain.ScenarioInput{
			Regime:             regime,
			Shares:             req.Shares,
			VestingPriceUSD:    req.VestingPriceUSD,
			SellPriceUSD:       req.SellPriceUSD,
			USDToEUR:           req.USDToEUR,
			VestingDate:        vestingDate,
			SellDate:           sellDate,
			IncomeTaxRate:      incomeTaxRate,
			SocialSecurityRate: ssOverride,
			UseProgressiveTax:  req.UseProgressiveTax,
			AnnualIncome:       req.AnnualIncome,
		},
	}, nil
}

func (h *Handler) writeCalcError(w http.ResponseWriter, logger *zerolog.Logger, err error) {
	var verr *tax.ValidationError
	if errors.As(err, &verr) {
		http.Error(w, verr.Error(), http.StatusBadRequest)
		return
	}
	logger.Error().Err(err).Msg("scenario calculation failed")
	http.Error(w, "failed to calculate scenario", http.StatusBadGateway)
}

func (h *Handler) writeJSON(w http.ResponseWriter, logger *zerolog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

func toAPIResult(r *domain.TaxResult) api.ScenarioResult {
	return api.ScenarioResult{
		ID:     uuid.NewString(),
		Regime: string(r.Regime),

		YearsHeld:       r.YearsHeld,
		HasTaperRelief:  r.HasTaperRelief,
		TaperReliefRate: r.TaperReliefRate,
		RegimeNote:      r.RegimeNote,

		VestingPriceEUR: r.VestingPriceEUR,
		SellPriceEUR:    r.SellPriceEUR,
		GrossProceeds:   r.GrossProceeds,

		AcquisitionGain:            r.AcquisitionGain,
		AcquisitionGainAfterRelief: r.AcquisitionGainAfterRelief,
		CapitalGain:                r.CapitalGain,
		TributableGain:             r.TributableGain,

		SocialSecurityRate:    r.SocialSecurityRate,
		SocialSecurityTax:     r.SocialSecurityTax,
		AcquisitionTax:        r.AcquisitionTax,
		CapitalGainTax:        r.CapitalGainTax,
		SalarialeContribution: r.SalarialeContribution,
		TotalTaxes:            r.TotalTaxes,

		NetProceeds:      r.NetProceeds,
		EffectiveTaxRate: r.EffectiveTaxRate,
	}
}

func parseDateParam(r *http.Request, name string, defaultDate time.Time) (time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return defaultDate, nil
	}
	return time.Parse(dateFormat, value)
}
