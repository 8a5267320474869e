package config

import (
	"fmt"

	"github.com/sandrolex/rsu/pkg/models/domain"
	"github.com/sandrolex/rsu/pkg/services/tax"
	"gopkg.in/ini.v1"
)

// Profile is a named set of scenario defaults from the user's ~/.rsucfg
// file. Flags given on the command line win over profile values.
type Profile struct {
	Name           string
	Ticker         string
	Regime         domain.TaxRegime
	IncomeTaxRate  float64
	AnnualIncome   float64
	UseProgressive bool
}

// Registry exposes the profiles of an INI config file.
type Registry interface {
	GetProfiles() ([]string, error)
	GetProfile(name string) (*Profile, error)
}

type iniRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles() ([]string, error) {
	var profiles []string
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (r *iniRegistry) GetProfile(name string) (*Profile, error) {
	section, err := r.cfg.GetSection(name)
	if err != nil {
		return nil, fmt.Errorf("profile %s not found", name)
	}

	regime := domain.TaxRegime(section.Key("regime").MustString(string(domain.RegimeMacronIII)))
	if !regime.Valid() {
		return nil, fmt.Errorf("profile %s has unknown regime %q", name, regime)
	}

	return &Profile{
		Name:           name,
		Ticker:         section.Key("ticker").String(),
		Regime:         regime,
		IncomeTaxRate:  section.Key("income_tax_rate").MustFloat64(tax.DefaultIncomeTaxRate),
		AnnualIncome:   section.Key("annual_income").MustFloat64(0),
		UseProgressive: section.Key("progressive").MustBool(false),
	}, nil
}
