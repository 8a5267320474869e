package scenario

import (
	"fmt"

	"github.com/sandrolex/rsu/pkg/models/domain"
)

// BuildReport turns a calculated result into the renderable report consumed
// by the terminal reporter. Each line carries the formula behind the number.
func BuildReport(in domain.ScenarioInput, r *domain.TaxResult) *domain.Report {
	return &domain.Report{
		Title: fmt.Sprintf("RSU sell scenario - %s", r.Regime.Description()),
		Period: domain.HoldingPeriod{
			VestingDate: in.VestingDate,
			SellDate:    in.SellDate,
			Years:       r.YearsHeld,
		},
		NetProceeds: r.NetProceeds,
		Currency:    "EUR",
		Sections: []domain.ReportSection{
			{
				Title: "Gains",
				Details: []domain.ReportDetail{
					{Name: "Vesting price", Value: r.VestingPriceEUR, Unit: "EUR",
						Description: fmt.Sprintf("%.2f USD x %.4f", in.VestingPriceUSD, in.USDToEUR)},
					{Name: "Sell price", Value: r.SellPriceEUR, Unit: "EUR",
						Description: fmt.Sprintf("%.2f USD x %.4f", in.SellPriceUSD, in.USDToEUR)},
					{Name: "Gross proceeds", Value: r.GrossProceeds, Unit: "EUR",
						Description: fmt.Sprintf("%.2f shares x sell price", in.Shares)},
					{Name: "Acquisition gain", Value: r.AcquisitionGain, Unit: "EUR",
						Description: fmt.Sprintf("%.2f shares x vesting price", in.Shares)},
					{Name: "Capital gain", Value: r.CapitalGain, Unit: "EUR",
						Description: "gross proceeds - acquisition gain"},
				},
			},
			{
				Title: "Relief",
				Details: []domain.ReportDetail{
					{Name: "Taper relief rate", Value: r.TaperReliefRate * 100, Unit: "%",
						Description: r.RegimeNote},
					{Name: "Acquisition gain after relief", Value: r.AcquisitionGainAfterRelief, Unit: "EUR",
						Description: fmt.Sprintf("acquisition gain x (1 - %.2f)", r.TaperReliefRate)},
					{Name: "Tributable gain", Value: r.TributableGain, Unit: "EUR",
						Description: "relieved acquisition gain + capital gain"},
				},
			},
			{
				Title: "Taxes",
				Details: []domain.ReportDetail{
					{Name: "Social security", Value: r.SocialSecurityTax, Unit: "EUR",
						Description: fmt.Sprintf("tributable gain x %.1f%%", r.SocialSecurityRate*100)},
					{Name: "Acquisition income tax", Value: r.AcquisitionTax, Unit: "EUR",
						Description: "relieved acquisition gain taxed as income"},
					{Name: "Capital gain tax", Value: r.CapitalGainTax, Unit: "EUR",
						Description: "positive capital gain x flat rate"},
					{Name: "Salariale contribution", Value: r.SalarialeContribution, Unit: "EUR",
						Description: "10% of pre-relief gain over €300k (Macron III)"},
					{Name: "Total taxes", Value: r.TotalTaxes, Unit: "EUR",
						Description: "sum of the tax lines above"},
				},
			},
			{
				Title: "Result",
				Details: []domain.ReportDetail{
					{Name: "Net in pocket", Value: r.NetProceeds, Unit: "EUR",
						Description: "gross proceeds - total taxes"},
					{Name: "Effective tax rate", Value: r.EffectiveTaxRate * 100, Unit: "%",
						Description: "total taxes / gross proceeds"},
				},
			},
		},
	}
}
