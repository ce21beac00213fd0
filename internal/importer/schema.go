package importer

import (
	"time"

	"github.com/rotisserie/eris"

	"github.com/perspicuus/lcbft-cli/internal/model"
)

// minBirthYear is the lower bound accepted for annee_naissance.
const minBirthYear = 1900

// validateRequest checks an evaluation request structurally and by
// value: enum membership, non-negative numerics, birth year range.
func validateRequest(req *model.EvaluationRequest, now time.Time) error {
	if !req.Client.Type.Valid() {
		return eris.Wrapf(ErrSchemaViolation, "client.type_client: unknown client type %q", req.Client.Type)
	}
	if req.Client.RelationYears < 0 {
		return eris.Wrap(ErrSchemaViolation, "client.relation_etablie: must be >= 0")
	}
	if by := req.Client.BirthYear; by != nil {
		if *by < minBirthYear || *by > now.Year() {
			return eris.Wrapf(ErrSchemaViolation, "client.annee_naissance: %d outside [%d, %d]", *by, minBirthYear, now.Year())
		}
	}

	if req.Geographic.Residence == "" {
		return eris.Wrap(ErrSchemaViolation, "geographic.pays_residence: required")
	}
	if req.Geographic.AccountCountry == "" {
		return eris.Wrap(ErrSchemaViolation, "geographic.pays_compte: required")
	}
	if req.Geographic.DistanceKM < 0 {
		return eris.Wrap(ErrSchemaViolation, "geographic.distance_etablissement: must be >= 0")
	}

	if req.Transaction.Amount < 0 {
		return eris.Wrap(ErrSchemaViolation, "transaction.montant: must be >= 0")
	}
	if !req.Transaction.Method.Valid() {
		return eris.Wrapf(ErrSchemaViolation, "transaction.mode_paiement: unknown payment method %q", req.Transaction.Method)
	}

	return nil
}

// validateEnvelope checks a full export envelope. The embedded request,
// when present, is validated in full; the results block must carry a
// known risk level and the three sub-blocks.
func validateEnvelope(env *model.ImportEnvelope, now time.Time) error {
	if env.Metadata == nil {
		return eris.Wrap(ErrSchemaViolation, "metadata: required")
	}
	if env.Metadata.Application == "" {
		return eris.Wrap(ErrSchemaViolation, "metadata.application: required")
	}
	if env.Metadata.Version == "" {
		return eris.Wrap(ErrSchemaViolation, "metadata.version: required")
	}
	if env.Metadata.GeneratedAt == "" {
		return eris.Wrap(ErrSchemaViolation, "metadata.generated_at: required")
	}

	if env.Results == nil {
		return eris.Wrap(ErrSchemaViolation, "risk_assessment_results: required")
	}
	if !env.Results.Overall.RiskLevel.Valid() {
		return eris.Wrapf(ErrSchemaViolation, "risk_assessment_results.overall.risk_level: unknown level %q", env.Results.Overall.RiskLevel)
	}

	if env.Request != nil {
		if err := validateRequest(env.Request, now); err != nil {
			return eris.Wrap(err, "evaluation_request")
		}
	}

	return nil
}

// validateCompact checks a compact export: known risk level and a
// factor list (possibly empty, never null in well-formed exports).
func validateCompact(c *model.CompactExport) error {
	if !c.RiskLevel.Valid() {
		return eris.Wrapf(ErrSchemaViolation, "risk_level: unknown level %q", c.RiskLevel)
	}
	return nil
}
