// Package importer safely parses and reconciles externally supplied
// assessment exports. Parsing is size-bounded and injection-safe;
// reconciliation tries the known export shapes in priority order and
// never executes or keeps anything outside the declared schemas.
package importer

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"
)

// MaxPayloadBytes is the default size ceiling for imported payloads.
const MaxPayloadBytes = 10 << 20 // 10 MiB

// blockedKeys are object keys dropped during decoding at any nesting
// depth. They target prototype/global-object pollution in consumers of
// the decoded tree; the deny-list is applied here explicitly so the
// guarantee does not depend on any particular language runtime.
var blockedKeys = map[string]struct{}{
	"__proto__":   {},
	"constructor": {},
	"prototype":   {},
}

// safeDecode decodes a payload into a generic tree, enforcing the size
// ceiling before touching the decoder and silently dropping blocked
// keys. Numbers are kept as json.Number so integer scores survive a
// re-marshal unchanged.
func safeDecode(data []byte, maxBytes int64) (any, error) {
	if int64(len(data)) > maxBytes {
		return nil, eris.Wrapf(ErrPayloadTooLarge, "%d bytes (limit %d)", len(data), maxBytes)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tree, err := decodeValue(dec)
	if err != nil {
		return nil, eris.Wrap(ErrMalformedInput, err.Error())
	}

	// A single top-level value only.
	if _, err := dec.Token(); err != io.EOF {
		return nil, eris.Wrap(ErrMalformedInput, "trailing content after JSON value")
	}

	return tree, nil
}

// decodeValue consumes one JSON value from the decoder.
func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		// string, json.Number, bool, nil
		return tok, nil
	}

	switch delim {
	case '{':
		obj := make(map[string]any)
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, _ := keyTok.(string)
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			if _, blocked := blockedKeys[key]; blocked {
				continue
			}
			obj[key] = val
		}
		if _, err := dec.Token(); err != nil { // consume '}'
			return nil, err
		}
		return obj, nil
	case '[':
		var arr []any
		for dec.More() {
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		if _, err := dec.Token(); err != nil { // consume ']'
			return nil, err
		}
		return arr, nil
	}
	return nil, eris.Errorf("importer: unexpected delimiter %q", delim)
}

// decodeInto maps a sanitized tree onto a typed target. Type mismatches
// surface as schema violations, never as partially populated values.
func decodeInto(tree, target any) error {
	b, err := json.Marshal(tree)
	if err != nil {
		return eris.Wrap(ErrSchemaViolation, err.Error())
	}
	if err := json.Unmarshal(b, target); err != nil {
		return eris.Wrap(ErrSchemaViolation, err.Error())
	}
	return nil
}
