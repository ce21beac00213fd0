// Package exporter builds the two export shapes of an assessment: the
// full versioned envelope and the compact flat form. Exports are plain
// data; callers decide where the bytes go.
package exporter

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/perspicuus/lcbft-cli/internal/model"
)

const disclaimer = "Outil d'aide à la décision - Ne constitue pas un engagement de conformité réglementaire"

// maxPossibleScore is the historical envelope field; informational only.
const maxPossibleScore = 20

var markupTags = regexp.MustCompile(`<[^>]*>`)

// StripMarkup removes emphasis tags and non-breaking-space entities
// from a recommendation string for non-rich renderers.
func StripMarkup(s string) string {
	s = markupTags.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	return strings.TrimSpace(s)
}

// FullEnvelope assembles the full export envelope for a result and its
// originating request (nil when exporting a result alone).
// Recommendations are exported with markup stripped.
func FullEnvelope(req *model.EvaluationRequest, res *model.AssessmentResult) *model.ImportEnvelope {
	recs := make([]string, len(res.Recommendations))
	for i, r := range res.Recommendations {
		recs[i] = StripMarkup(r)
	}

	return &model.ImportEnvelope{
		Metadata: &model.EnvelopeMetadata{
			Application:  model.Application,
			Version:      model.ExportVersion,
			AssessmentID: uuid.NewString(),
			GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
			Disclaimer:   disclaimer,
		},
		Request: req,
		Results: &model.ResultsBlock{
			Overall: model.OverallResult{
				RiskLevel:        res.Level,
				RiskLevelFR:      res.Level.LabelFR(),
				TotalScore:       res.Total,
				MaxPossibleScore: maxPossibleScore,
				ScoringSystem:    "additive",
			},
			Geographic:      res.Geographic,
			Product:         res.Product,
			Client:          res.Client,
			Recommendations: recs,
		},
	}
}

// Compact assembles the flat export: the three sub-scores plus every
// justification merged into one key-factor list.
func Compact(res *model.AssessmentResult) *model.CompactExport {
	factors := make([]string, 0,
		len(res.Geographic.Justifications)+len(res.Product.Justifications)+len(res.Client.Justifications))
	factors = append(factors, res.Geographic.Justifications...)
	factors = append(factors, res.Product.Justifications...)
	factors = append(factors, res.Client.Justifications...)

	return &model.CompactExport{
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		RiskLevel:  res.Level,
		TotalScore: res.Total,
		Scores: model.CompactScores{
			Geographic:     res.Geographic.Score,
			ProductService: res.Product.Score,
			Client:         res.Client.Score,
		},
		KeyFactors: factors,
	}
}
