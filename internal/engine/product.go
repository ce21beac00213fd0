package engine

import (
	"fmt"

	"github.com/perspicuus/lcbft-cli/internal/model"
	"github.com/perspicuus/lcbft-cli/internal/registry"
)

// scoreProduct applies the product/service rules in fixed order:
// sector, amount, payment method, structuring complexity.
func (e *Engine) scoreProduct(client model.ClientProfile, tx model.TransactionProfile) model.RiskScore {
	var rs model.RiskScore

	if tier, label, ok := e.reg.SectorTier(client.SectorCode); ok {
		switch tier {
		case registry.TierVeryHigh:
			rs.Score += 4
			rs.Justifications = append(rs.Justifications,
				fmt.Sprintf("Secteur à très haut risque: %s", label))
		case registry.TierHigh:
			rs.Score += 3
			rs.Justifications = append(rs.Justifications,
				fmt.Sprintf("Secteur à haut risque: %s", label))
		case registry.TierModerate:
			rs.Score += 2
			rs.Justifications = append(rs.Justifications,
				fmt.Sprintf("Secteur à risque modéré: %s", label))
		}
	}

	// Higher threshold takes priority; the two never cumulate.
	if tx.Amount > 100000 {
		rs.Score += 2
		rs.Justifications = append(rs.Justifications,
			"Montant de transaction élevé (>100K€)")
	} else if tx.Amount > 50000 {
		rs.Score += 1
		rs.Justifications = append(rs.Justifications,
			"Montant de transaction significatif (>50K€)")
	}

	switch tx.Method {
	case model.PaymentCash:
		rs.Score += 3
		rs.Justifications = append(rs.Justifications,
			"Paiement en espèces (risque de blanchiment)")
	case model.PaymentStructured:
		rs.Score += 3
		rs.Justifications = append(rs.Justifications,
			"Paiement fractionné (tentative de contournement)")
	case model.PaymentCrypto:
		rs.Score += 2
		rs.Justifications = append(rs.Justifications,
			"Transaction en cryptomonnaies (risque réglementaire et volatilité)")
	case model.PaymentIntlWire:
		rs.Score += 2
		rs.Justifications = append(rs.Justifications,
			"Virement international")
	}

	if tx.ComplexStructure {
		rs.Score += 3
		rs.Justifications = append(rs.Justifications,
			"Montage juridique complexe (difficile d'identifier le bénéficiaire effectif)")
	}

	return rs
}
