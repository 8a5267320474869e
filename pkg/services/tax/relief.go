package tax

import (
	"fmt"

	"github.com/sandrolex/rsu/pkg/models/domain"
)

// taperRelief is the abatement applied to the acquisition gain before income
// tax. Rate is always one of the regime's discrete tiers.
type taperRelief struct {
	Applies bool
	Rate    float64
	Note    string
}

func reliefFor(regime domain.TaxRegime, yearsHeld, acquisitionGain float64) taperRelief {
	switch regime {
	case domain.RegimeMacronI:
		// Boundaries are date thresholds: exactly 2.0 years qualifies for
		// 50%, exactly 8.0 for 65%.
		switch {
		case yearsHeld >= MacronIFullYears:
			return taperRelief{true, MacronIFullRelief, "Macron I: 65% abatement (held 8+ years)"}
		case yearsHeld >= MacronIMinYears:
			return taperRelief{true, MacronIPartialRelief, "Macron I: 50% abatement (held 2-8 years)"}
		default:
			return taperRelief{false, 0,
				fmt.Sprintf("Macron I: no abatement (held < 2 years, need %.1f more)", MacronIMinYears-yearsHeld)}
		}
	case domain.RegimeMacronIII:
		// The threshold compares the pre-relief acquisition gain, inclusive
		// at exactly 300,000.
		if acquisitionGain <= MacronIIIThreshold {
			return taperRelief{true, MacronIIIRelief, "Macron III: 50% automatic abatement (gain under €300k)"}
		}
		return taperRelief{false, 0, "Macron III: over €300k threshold, treated as salary + 10% contribution"}
	default:
		return taperRelief{false, 0, "Unrestricted: no abatement, fully taxed as salary"}
	}
}

func socialSecurityRate(in domain.ScenarioInput, acquisitionGain float64) float64 {
	if in.SocialSecurityRate != nil {
		return *in.SocialSecurityRate
	}
	switch in.Regime {
	case domain.RegimeMacronI:
		return PatrimonySocialRate
	case domain.RegimeMacronIII:
		if acquisitionGain > MacronIIIThreshold {
			return ActivitySocialRate
		}
		return PatrimonySocialRate
	default:
		return ActivitySocialRate
	}
}
