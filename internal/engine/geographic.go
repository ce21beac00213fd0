package engine

import (
	"fmt"

	"github.com/perspicuus/lcbft-cli/internal/model"
	"github.com/perspicuus/lcbft-cli/internal/registry"
)

// scoreGeographic applies the geographic rules in fixed order:
// residence country, account country, cross-border account, distance.
// Residence and account are assessed independently, so a client living
// and banking in the same listed country counts it twice.
func (e *Engine) scoreGeographic(geo model.GeographicProfile) model.RiskScore {
	var rs model.RiskScore

	if pts, why := e.scoreCountry(geo.Residence, "Client résident en"); pts > 0 {
		rs.Score += pts
		rs.Justifications = append(rs.Justifications, why)
	}
	if pts, why := e.scoreCountry(geo.AccountCountry, "Compte bancaire en"); pts > 0 {
		rs.Score += pts
		rs.Justifications = append(rs.Justifications, why)
	}

	if !e.reg.SameCountry(geo.AccountCountry, geo.Residence) &&
		!e.reg.SameCountry(geo.AccountCountry, e.reg.HomeCountry()) {
		rs.Score += 2
		rs.Justifications = append(rs.Justifications,
			"Compte bancaire dans un pays différent de la résidence")
	}

	if geo.DistanceKM > e.reg.CatchmentKM() {
		rs.Score += 1
		rs.Justifications = append(rs.Justifications,
			fmt.Sprintf("Client situé hors zone de chalandise habituelle (>%.0fkm)", e.reg.CatchmentKM()))
	}

	return rs
}

// scoreCountry weighs one country: +4 for the very-high tier (+5 when
// also on the aggravated FATF/EU list), +3 for the high tier (+4 when
// aggravated), 0 otherwise.
func (e *Engine) scoreCountry(name, prefix string) (int, string) {
	tier, ok := e.reg.CountryTier(name)
	if !ok {
		return 0, ""
	}
	aggravated := e.reg.Aggravated(name)

	switch tier {
	case registry.TierVeryHigh:
		if aggravated {
			return 5, fmt.Sprintf("%s %s (liste noire GAFI + UE)", prefix, name)
		}
		return 4, fmt.Sprintf("%s %s (liste noire GAFI)", prefix, name)
	case registry.TierHigh:
		if aggravated {
			return 4, fmt.Sprintf("%s %s (pays à haut risque GAFI + UE)", prefix, name)
		}
		return 3, fmt.Sprintf("%s %s (pays à haut risque GAFI)", prefix, name)
	}
	return 0, ""
}
