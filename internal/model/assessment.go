package model

// Application is the product identifier stamped into export metadata.
// Imports only recognize full envelopes carrying this exact value.
const Application = "Perspicuus LCBFT"

// ExportVersion is the schema version written into export metadata.
const ExportVersion = "1.0.0"

// RiskLevel is the four-tier classification of an assessment total.
type RiskLevel string

const (
	RiskFaible    RiskLevel = "FAIBLE"
	RiskModere    RiskLevel = "MODERE"
	RiskEleve     RiskLevel = "ELEVE"
	RiskTresEleve RiskLevel = "TRES_ELEVE"
)

// Valid reports whether the level is one of the four known tiers.
func (l RiskLevel) Valid() bool {
	switch l {
	case RiskFaible, RiskModere, RiskEleve, RiskTresEleve:
		return true
	}
	return false
}

// LabelFR returns the human-readable French label for the level.
func (l RiskLevel) LabelFR() string {
	switch l {
	case RiskFaible:
		return "Faible"
	case RiskModere:
		return "Modéré"
	case RiskEleve:
		return "Élevé"
	case RiskTresEleve:
		return "Très élevé"
	}
	return string(l)
}

// ClientType distinguishes natural from legal persons. Wire values match
// the historical exports.
type ClientType string

const (
	ClientNatural ClientType = "Personne physique"
	ClientLegal   ClientType = "Personne morale"
)

// Valid reports whether the client type is known.
func (t ClientType) Valid() bool {
	return t == ClientNatural || t == ClientLegal
}

// PaymentMethod enumerates the supported settlement methods.
type PaymentMethod string

const (
	PaymentWire       PaymentMethod = "Virement bancaire"
	PaymentCheck      PaymentMethod = "Chèque"
	PaymentCard       PaymentMethod = "Carte bancaire"
	PaymentCash       PaymentMethod = "Espèces"
	PaymentStructured PaymentMethod = "Paiement fractionné"
	PaymentIntlWire   PaymentMethod = "Virement international"
	PaymentCrypto     PaymentMethod = "Cryptomonnaies"
)

// Valid reports whether the payment method is known.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentWire, PaymentCheck, PaymentCard, PaymentCash,
		PaymentStructured, PaymentIntlWire, PaymentCrypto:
		return true
	}
	return false
}

// ClientProfile describes the client side of an assessment request.
// Immutable once scored.
type ClientProfile struct {
	Type          ClientType `json:"type_client"`
	Category      string     `json:"category,omitempty"`
	SectorCode    string     `json:"code_naf,omitempty"`
	Incorporated  *Date      `json:"date_creation,omitempty"`
	BirthYear     *int       `json:"annee_naissance,omitempty"`
	PEP           bool       `json:"pep"`
	Sanctioned    bool       `json:"sanctions"`
	RelationYears int        `json:"relation_etablie"`
	AdverseMedia  bool       `json:"notoriete_defavorable"`
	IDReluctance  bool       `json:"reticence_identification"`
}

// GeographicProfile describes where the client lives and banks.
type GeographicProfile struct {
	Residence      string  `json:"pays_residence"`
	AccountCountry string  `json:"pays_compte"`
	DistanceKM     float64 `json:"distance_etablissement"`
}

// TransactionProfile describes the transaction pattern under review.
type TransactionProfile struct {
	Amount           float64       `json:"montant"`
	Method           PaymentMethod `json:"mode_paiement"`
	ComplexStructure bool          `json:"complexite_montage"`
	Channel          string        `json:"canal_distribution,omitempty"`
}

// EvaluationRequest is the full input of one assessment. The four
// specialized sections are carried opaquely so that a re-imported
// request re-exports without loss.
type EvaluationRequest struct {
	Client      ClientProfile      `json:"client"`
	Geographic  GeographicProfile  `json:"geographic"`
	Transaction TransactionProfile `json:"transaction"`

	WealthManagement map[string]any `json:"wealthManagementInfo,omitempty"`
	NPO              map[string]any `json:"npoInfo,omitempty"`
	TravelRule       map[string]any `json:"travelRuleInfo,omitempty"`
	PPE              map[string]any `json:"ppeInfo,omitempty"`
}

// RiskScore is one evaluator's contribution: an integer score plus the
// ordered evidence trail that produced it.
type RiskScore struct {
	Score          int      `json:"score"`
	Justifications []string `json:"justifications"`
}

// AssessmentResult is the read-only outcome of an evaluation.
// Total is always the sum of the three sub-scores.
type AssessmentResult struct {
	Geographic      RiskScore `json:"score_geo"`
	Product         RiskScore `json:"score_produit"`
	Client          RiskScore `json:"score_client"`
	Total           int       `json:"score_total"`
	Level           RiskLevel `json:"niveau_risque"`
	Recommendations []string  `json:"recommandations"`
}
