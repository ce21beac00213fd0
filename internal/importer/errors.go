package importer

import (
	"github.com/rotisserie/eris"
)

// Terminal error kinds of the import pipeline. Callers classify with
// eris.Is; every failure is all-or-nothing and no partial value is ever
// returned alongside one of these.
var (
	// ErrPayloadTooLarge: the raw payload exceeds the size ceiling.
	// Raised before the decoder ever sees the bytes.
	ErrPayloadTooLarge = eris.New("payload exceeds size limit")

	// ErrMalformedInput: the payload is not syntactically valid JSON.
	ErrMalformedInput = eris.New("malformed JSON input")

	// ErrSchemaViolation: valid JSON with the wrong shape, types, enum
	// values, or out-of-range numbers for the target schema.
	ErrSchemaViolation = eris.New("schema violation")

	// ErrUnrecognizedFormat: valid JSON matching none of the known
	// export shapes.
	ErrUnrecognizedFormat = eris.New("unrecognized import format")

	// ErrInvalidFileMetadata: wrong extension/MIME type or a suspicious
	// filename, rejected before any content is read.
	ErrInvalidFileMetadata = eris.New("invalid file metadata")
)
