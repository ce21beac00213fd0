package exporter

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perspicuus/lcbft-cli/internal/model"
)

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "Surveillance normale", "Surveillance normale"},
		{"bold tags removed", "<b>⚠ ATTENTION</b> : texte", "⚠ ATTENTION : texte"},
		{"nbsp entity", "avant&nbsp;après", "avant après"},
		{"surrounding whitespace trimmed", "  <i>texte</i>  ", "texte"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripMarkup(tt.in))
		})
	}
}

func sampleResult() *model.AssessmentResult {
	return &model.AssessmentResult{
		Geographic: model.RiskScore{Score: 4, Justifications: []string{"Client résident en Iran (liste noire GAFI)"}},
		Product:    model.RiskScore{Score: 3, Justifications: []string{"Paiement en espèces (risque de blanchiment)"}},
		Client:     model.RiskScore{Score: 4, Justifications: []string{"Personne politiquement exposée (PEP)"}},
		Total:      11,
		Level:      model.RiskTresEleve,
		Recommendations: []string{
			"<b>⚠ ATTENTION - Relation d'affaires fortement déconseillée</b> : texte complet.",
			"Approbation direction générale obligatoire.",
		},
	}
}

func TestFullEnvelope(t *testing.T) {
	req := &model.EvaluationRequest{
		Client:      model.ClientProfile{Type: model.ClientNatural, RelationYears: 1},
		Geographic:  model.GeographicProfile{Residence: "Iran", AccountCountry: "France"},
		Transaction: model.TransactionProfile{Amount: 5000, Method: model.PaymentCash},
	}
	res := sampleResult()

	env := FullEnvelope(req, res)

	require.NotNil(t, env.Metadata)
	assert.Equal(t, model.Application, env.Metadata.Application)
	assert.Equal(t, model.ExportVersion, env.Metadata.Version)
	assert.NotEmpty(t, env.Metadata.Disclaimer)

	_, err := uuid.Parse(env.Metadata.AssessmentID)
	assert.NoError(t, err, "assessment_id should be a UUID")
	_, err = time.Parse(time.RFC3339, env.Metadata.GeneratedAt)
	assert.NoError(t, err, "generated_at should be RFC 3339")

	assert.Same(t, req, env.Request)

	require.NotNil(t, env.Results)
	assert.Equal(t, model.RiskTresEleve, env.Results.Overall.RiskLevel)
	assert.Equal(t, "Très élevé", env.Results.Overall.RiskLevelFR)
	assert.Equal(t, 11, env.Results.Overall.TotalScore)
	assert.Equal(t, 20, env.Results.Overall.MaxPossibleScore)
	assert.Equal(t, "additive", env.Results.Overall.ScoringSystem)
	assert.Equal(t, res.Geographic, env.Results.Geographic)
	assert.Equal(t, res.Product, env.Results.Product)
	assert.Equal(t, res.Client, env.Results.Client)

	// Exported recommendations carry no markup.
	require.Len(t, env.Results.Recommendations, 2)
	assert.Equal(t, "⚠ ATTENTION - Relation d'affaires fortement déconseillée : texte complet.",
		env.Results.Recommendations[0])
	// The in-memory result keeps its markup.
	assert.Contains(t, res.Recommendations[0], "<b>")
}

func TestFullEnvelopeWithoutRequest(t *testing.T) {
	env := FullEnvelope(nil, sampleResult())
	assert.Nil(t, env.Request)
	require.NotNil(t, env.Results)
}

func TestCompact(t *testing.T) {
	res := sampleResult()
	c := Compact(res)

	assert.Equal(t, model.RiskTresEleve, c.RiskLevel)
	assert.Equal(t, 11, c.TotalScore)
	assert.Equal(t, 4, c.Scores.Geographic)
	assert.Equal(t, 3, c.Scores.ProductService)
	assert.Equal(t, 4, c.Scores.Client)

	_, err := time.Parse(time.RFC3339, c.Timestamp)
	assert.NoError(t, err)

	// All justifications flow into key_factors, category order preserved.
	assert.Equal(t, []string{
		"Client résident en Iran (liste noire GAFI)",
		"Paiement en espèces (risque de blanchiment)",
		"Personne politiquement exposée (PEP)",
	}, c.KeyFactors)
}
