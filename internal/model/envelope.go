package model

// EnvelopeMetadata identifies the producing application of an export.
type EnvelopeMetadata struct {
	Application  string `json:"application"`
	Version      string `json:"version"`
	AssessmentID string `json:"assessment_id,omitempty"`
	GeneratedAt  string `json:"generated_at"`
	Disclaimer   string `json:"disclaimer,omitempty"`
}

// OverallResult is the summary block of an exported assessment.
type OverallResult struct {
	RiskLevel        RiskLevel `json:"risk_level"`
	RiskLevelFR      string    `json:"risk_level_fr"`
	TotalScore       int       `json:"total_score"`
	MaxPossibleScore int       `json:"max_possible_score,omitempty"`
	ScoringSystem    string    `json:"scoring_system,omitempty"`
}

// ResultsBlock carries the scored outcome inside a full envelope.
type ResultsBlock struct {
	Overall         OverallResult `json:"overall"`
	Geographic      RiskScore     `json:"geographic_risk"`
	Product         RiskScore     `json:"product_service_risk"`
	Client          RiskScore     `json:"client_risk"`
	Recommendations []string      `json:"recommendations"`
}

// ImportEnvelope is the "full" export shape: versioned metadata plus an
// optional originating request and an optional result.
type ImportEnvelope struct {
	Metadata *EnvelopeMetadata  `json:"metadata"`
	Request  *EvaluationRequest `json:"evaluation_request,omitempty"`
	Results  *ResultsBlock      `json:"risk_assessment_results,omitempty"`
}

// CompactScores holds the three flat sub-scores of a compact export.
type CompactScores struct {
	Geographic     int `json:"geographic"`
	ProductService int `json:"product_service"`
	Client         int `json:"client"`
}

// CompactExport is the flat export shape: scores plus a free-text list
// of risk factors with no per-category structure.
type CompactExport struct {
	Timestamp  string        `json:"timestamp,omitempty"`
	RiskLevel  RiskLevel     `json:"risk_level"`
	TotalScore int           `json:"total_score"`
	Scores     CompactScores `json:"scores"`
	KeyFactors []string      `json:"key_factors"`
}

// Result converts the block back into an AssessmentResult.
func (rb *ResultsBlock) Result() *AssessmentResult {
	return &AssessmentResult{
		Geographic:      rb.Geographic,
		Product:         rb.Product,
		Client:          rb.Client,
		Total:           rb.Overall.TotalScore,
		Level:           rb.Overall.RiskLevel,
		Recommendations: rb.Recommendations,
	}
}
