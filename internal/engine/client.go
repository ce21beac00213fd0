package engine

import (
	"github.com/perspicuus/lcbft-cli/internal/model"
)

// hoursPerYear approximates entity age the way the historical engine
// did: elapsed time divided by 365-day years, no calendar precision.
const hoursPerYear = 24 * 365

// scoreClient applies the client rules in fixed order: status flags,
// age or entity age, then relationship duration. The established
// relationship rule is the only one allowed to subtract.
func (e *Engine) scoreClient(client model.ClientProfile) model.RiskScore {
	var rs model.RiskScore

	if client.PEP {
		rs.Score += 4
		rs.Justifications = append(rs.Justifications,
			"Personne politiquement exposée (PEP)")
	}
	if client.Sanctioned {
		rs.Score += 4
		rs.Justifications = append(rs.Justifications,
			"Personne sous sanctions internationales")
	}
	if client.AdverseMedia {
		rs.Score += 5
		rs.Justifications = append(rs.Justifications,
			"Notoriété défavorable du client en sources ouvertes (médias)")
	}
	if client.IDReluctance {
		rs.Score += 4
		rs.Justifications = append(rs.Justifications,
			"Réticence ou refus de dévoiler l'identité du représenté")
	}

	if client.Type == model.ClientNatural && client.BirthYear != nil {
		age := e.now().Year() - *client.BirthYear
		if age < 18 {
			rs.Score += 3
			rs.Justifications = append(rs.Justifications,
				"Client mineur (risque de tutelle/curatelle)")
		} else if age >= 70 {
			rs.Score += 2
			rs.Justifications = append(rs.Justifications,
				"Client âgé (risque d'abus de faiblesse)")
		}
	}

	if client.Type == model.ClientLegal && client.Incorporated != nil {
		years := e.now().Sub(client.Incorporated.Time).Hours() / hoursPerYear
		if years < 1 {
			rs.Score += 3
			rs.Justifications = append(rs.Justifications,
				"Société récemment créée (<1 an)")
		} else if years < 2 {
			rs.Score += 2
			rs.Justifications = append(rs.Justifications,
				"Société nouvellement créée (<2 ans)")
		}
	}

	if client.RelationYears < 1 {
		rs.Score += 1
		rs.Justifications = append(rs.Justifications,
			"Nouvelle relation commerciale")
	} else if client.RelationYears > 5 {
		rs.Score -= 1
		rs.Justifications = append(rs.Justifications,
			"Relation commerciale établie (>5 ans)")
	}

	return rs
}
