// Package engine implements the rule-based AML/CTF risk scoring engine.
// Every rule is named, additive, and deterministic: the same request and
// registry always produce the same scores and evidence trail.
package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/perspicuus/lcbft-cli/internal/model"
	"github.com/perspicuus/lcbft-cli/internal/registry"
)

// Engine scores assessment requests against an immutable registry.
// Engines are safe for concurrent use.
type Engine struct {
	reg *registry.Registry
	now func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock fixes the engine's notion of "now" (age and entity-age
// rules). Used by tests; defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an Engine over the given registry.
func New(reg *registry.Registry, opts ...Option) *Engine {
	e := &Engine{reg: reg, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate runs the three evaluators, aggregates, classifies, and
// attaches tier recommendations. It is total: every well-typed request
// yields a result.
func (e *Engine) Evaluate(req *model.EvaluationRequest) *model.AssessmentResult {
	geo := e.scoreGeographic(req.Geographic)
	product := e.scoreProduct(req.Client, req.Transaction)
	client := e.scoreClient(req.Client)

	total := geo.Score + product.Score + client.Score
	level := Classify(total)

	zap.L().Debug("engine: evaluation complete",
		zap.Int("score_geo", geo.Score),
		zap.Int("score_produit", product.Score),
		zap.Int("score_client", client.Score),
		zap.Int("score_total", total),
		zap.String("niveau", string(level)),
	)

	return &model.AssessmentResult{
		Geographic:      geo,
		Product:         product,
		Client:          client,
		Total:           total,
		Level:           level,
		Recommendations: Recommendations(level),
	}
}

// Classify maps a total score to its risk level. Thresholds are
// inclusive upper bounds; no clamping is applied, so a negative total
// (long-established clean client) still classifies FAIBLE.
func Classify(total int) model.RiskLevel {
	switch {
	case total <= 3:
		return model.RiskFaible
	case total <= 6:
		return model.RiskModere
	case total <= 10:
		return model.RiskEleve
	default:
		return model.RiskTresEleve
	}
}
