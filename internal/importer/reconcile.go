package importer

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/perspicuus/lcbft-cli/internal/model"
)

// OutcomeKind tags what an import produced.
type OutcomeKind string

const (
	// OutcomeRequestOnly: a bare request to re-open in the editor.
	OutcomeRequestOnly OutcomeKind = "request_only"
	// OutcomeFullResult: a full envelope with a result and, when
	// present, its originating request.
	OutcomeFullResult OutcomeKind = "full_result"
	// OutcomeReconstructed: a result lossily rebuilt from the compact
	// format; recommendations are unavailable.
	OutcomeReconstructed OutcomeKind = "reconstructed_result"
)

// WarningReconstructed flags compact-format reconstructions to callers.
const WarningReconstructed = "recommendations unavailable, reconstructed from compact format"

// ImportOutcome is the normalized product of a successful import.
type ImportOutcome struct {
	Kind    OutcomeKind
	Request *model.EvaluationRequest
	Result  *model.AssessmentResult
	Warning string
}

// Importer parses and reconciles raw export payloads. Stateless aside
// from its limits; safe for concurrent use.
type Importer struct {
	maxBytes int64
	now      func() time.Time
}

// Option configures an Importer.
type Option func(*Importer)

// WithMaxBytes overrides the payload size ceiling.
func WithMaxBytes(n int64) Option {
	return func(i *Importer) {
		if n > 0 {
			i.maxBytes = n
		}
	}
}

// WithClock fixes the importer's notion of "now" (birth year upper
// bound). Used by tests; defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(i *Importer) { i.now = now }
}

// New creates an Importer with the default 10 MiB ceiling.
func New(opts ...Option) *Importer {
	imp := &Importer{maxBytes: MaxPayloadBytes, now: time.Now}
	for _, opt := range opts {
		opt(imp)
	}
	return imp
}

// ParseRequest decodes and validates a bare evaluation request. Used by
// the forward pipeline, where the payload must be a request and nothing
// else.
func (imp *Importer) ParseRequest(data []byte) (*model.EvaluationRequest, error) {
	tree, err := safeDecode(data, imp.maxBytes)
	if err != nil {
		return nil, err
	}

	root, ok := tree.(map[string]any)
	if !ok || !hasKeys(root, "client", "geographic", "transaction") {
		return nil, eris.Wrap(ErrSchemaViolation, "expected an object with client, geographic and transaction sections")
	}

	var req model.EvaluationRequest
	if err := decodeInto(root, &req); err != nil {
		return nil, err
	}
	if err := validateRequest(&req, imp.now()); err != nil {
		return nil, err
	}
	return &req, nil
}

// Import reconciles a payload of unknown shape. Shapes are tried in
// priority order — full envelope, bare request, compact result — and
// the first that validates wins. Read-only: the payload never reaches
// anything executable and no global state is touched.
func (imp *Importer) Import(data []byte) (*ImportOutcome, error) {
	tree, err := safeDecode(data, imp.maxBytes)
	if err != nil {
		return nil, err
	}

	root, ok := tree.(map[string]any)
	if !ok {
		return nil, eris.Wrap(ErrUnrecognizedFormat, "top-level value is not an object")
	}

	var lastErr error

	if hasKeys(root, "metadata", "risk_assessment_results") {
		outcome, err := imp.importEnvelope(root)
		if err == nil {
			return outcome, nil
		}
		lastErr = err
	}

	if hasKeys(root, "client", "geographic", "transaction") {
		outcome, err := imp.importBareRequest(root)
		if err == nil {
			return outcome, nil
		}
		lastErr = err
	}

	if hasKeys(root, "risk_level", "total_score", "scores") {
		outcome, err := imp.importCompact(root)
		if err == nil {
			return outcome, nil
		}
		lastErr = err
	}

	if lastErr != nil {
		return nil, eris.Wrap(ErrUnrecognizedFormat, lastErr.Error())
	}
	return nil, eris.Wrap(ErrUnrecognizedFormat, "payload matches no known export shape")
}

func (imp *Importer) importEnvelope(root map[string]any) (*ImportOutcome, error) {
	var env model.ImportEnvelope
	if err := decodeInto(root, &env); err != nil {
		return nil, err
	}
	if err := validateEnvelope(&env, imp.now()); err != nil {
		return nil, err
	}
	if env.Metadata.Application != model.Application {
		return nil, eris.Wrapf(ErrSchemaViolation, "metadata.application: %q does not identify this application", env.Metadata.Application)
	}

	zap.L().Info("importer: full envelope accepted",
		zap.String("version", env.Metadata.Version),
		zap.Bool("has_request", env.Request != nil),
	)
	return &ImportOutcome{
		Kind:    OutcomeFullResult,
		Request: env.Request,
		Result:  env.Results.Result(),
	}, nil
}

func (imp *Importer) importBareRequest(root map[string]any) (*ImportOutcome, error) {
	var req model.EvaluationRequest
	if err := decodeInto(root, &req); err != nil {
		return nil, err
	}
	if err := validateRequest(&req, imp.now()); err != nil {
		return nil, err
	}

	zap.L().Info("importer: bare request accepted")
	return &ImportOutcome{Kind: OutcomeRequestOnly, Request: &req}, nil
}

func (imp *Importer) importCompact(root map[string]any) (*ImportOutcome, error) {
	var c model.CompactExport
	if err := decodeInto(root, &c); err != nil {
		return nil, err
	}
	if err := validateCompact(&c); err != nil {
		return nil, err
	}

	geo, product, client := partitionFactors(c.KeyFactors)
	result := &model.AssessmentResult{
		Geographic: model.RiskScore{Score: c.Scores.Geographic, Justifications: geo},
		Product:    model.RiskScore{Score: c.Scores.ProductService, Justifications: product},
		Client:     model.RiskScore{Score: c.Scores.Client, Justifications: client},
		Total:      c.TotalScore,
		Level:      c.RiskLevel,
	}

	zap.L().Warn("importer: compact format reconstructed",
		zap.Int("key_factors", len(c.KeyFactors)),
	)
	return &ImportOutcome{
		Kind:    OutcomeReconstructed,
		Result:  result,
		Warning: WarningReconstructed,
	}, nil
}

// Category vocabularies for compact-format factor partitioning. The
// terms mirror the justification texts the engine emits; matching is a
// lowercase substring check. This reconstruction is best-effort only.
var (
	geoVocab = []string{
		"résident", "résidence", "compte bancaire", "zone de chalandise",
		"pays à haut risque", "liste noire",
	}
	productVocab = []string{
		"montant", "paiement", "espèces", "fractionné", "cryptomonnaies",
		"virement", "secteur", "montage",
	}
)

// partitionFactors splits free-text risk factors into the three
// categories. Factors matching no vocabulary land in the client
// category, where most free-text findings belong.
func partitionFactors(factors []string) (geo, product, client []string) {
	for _, f := range factors {
		lower := strings.ToLower(f)
		switch {
		case matchesAny(lower, geoVocab):
			geo = append(geo, f)
		case matchesAny(lower, productVocab):
			product = append(product, f)
		default:
			client = append(client, f)
		}
	}
	return geo, product, client
}

func matchesAny(s string, vocab []string) bool {
	for _, term := range vocab {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

func hasKeys(m map[string]any, keys ...string) bool {
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			return false
		}
	}
	return true
}
