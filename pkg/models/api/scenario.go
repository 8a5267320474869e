package api

// ScenarioRequest is one sell scenario as posted by a client. Prices and the
// FX rate may be omitted when a ticker is given; the server resolves them.
// Dates use the YYYY-MM-DD format.
type ScenarioRequest struct {
	Ticker             string   `json:"ticker,omitempty"`
	Regime             string   `json:"regime"`
	Shares             float64  `json:"shares"`
	VestingPriceUSD    float64  `json:"vesting_price_usd,omitempty"`
	SellPriceUSD       float64  `json:"sell_price_usd,omitempty"`
	USDToEUR           float64  `json:"usd_to_eur,omitempty"`
	VestingDate        string   `json:"vesting_date"`
	SellDate           string   `json:"sell_date"`
	IncomeTaxRate      *float64 `json:"income_tax_rate,omitempty"`
	SocialSecurityRate *float64 `json:"social_security_rate,omitempty"`
	UseProgressiveTax  bool     `json:"use_progressive_tax,omitempty"`
	AnnualIncome       float64  `json:"annual_income,omitempty"`
}

// ScenarioResult is the full calculation breakdown returned to clients.
// Monetary amounts are EUR.
type ScenarioResult struct {
	ID     string `json:"id"`
	Regime string `json:"regime"`

	YearsHeld       float64 `json:"years_held"`
	HasTaperRelief  bool    `json:"has_taper_relief"`
	TaperReliefRate float64 `json:"taper_relief_rate"`
	RegimeNote      string  `json:"regime_note"`

	VestingPriceEUR float64 `json:"vesting_price_eur"`
	SellPriceEUR    float64 `json:"sell_price_eur"`
	GrossProceeds   float64 `json:"gross_proceeds"`

	AcquisitionGain            float64 `json:"acquisition_gain"`
	AcquisitionGainAfterRelief float64 `json:"acquisition_gain_after_relief"`
	CapitalGain                float64 `json:"capital_gain"`
	TributableGain             float64 `json:"tributable_gain"`

	SocialSecurityRate    float64 `json:"social_security_rate"`
	SocialSecurityTax     float64 `json:"social_security_tax"`
	AcquisitionTax        float64 `json:"acquisition_tax"`
	CapitalGainTax        float64 `json:"capital_gain_tax"`
	SalarialeContribution float64 `json:"salariale_contribution"`
	TotalTaxes            float64 `json:"total_taxes"`

	NetProceeds      float64 `json:"net_proceeds"`
	EffectiveTaxRate float64 `json:"effective_tax_rate"`
}

// ComparisonRequest asks for two scenarios side by side.
type ComparisonRequest struct {
	A ScenarioRequest `json:"a"`
	B ScenarioRequest `json:"b"`
}

// ComparisonResult reports both calculations and their differences, B
// relative to A.
type ComparisonResult struct {
	A             ScenarioResult `json:"a"`
	B             ScenarioResult `json:"b"`
	NetDifference float64        `json:"net_difference"`
	TaxDifference float64        `json:"tax_difference"`
	Better        string         `json:"better"`
}

// Quote is a resolved close price.
type Quote struct {
	Ticker string  `json:"ticker"`
	Date   string  `json:"date"`
	Close  float64 `json:"close"`
}

// ExchangeRate is a resolved conversion rate.
type ExchangeRate struct {
	Base      string  `json:"base"`
	Target    string  `json:"target"`
	Rate      float64 `json:"rate"`
	FetchedAt string  `json:"fetched_at"`
}

// Regime describes one regime of the catalog endpoint, including the fixed
// structural rules clients may want to display.
type Regime struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	ReliefTiers         []float64 `json:"relief_tiers"`
	SocialSecurityRates []float64 `json:"social_security_rates"`
	ThresholdEUR        float64   `json:"threshold_eur,omitempty"`
	SalarialeRate       float64   `json:"salariale_rate,omitempty"`
}
