package importer

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeDecodeSizeLimit(t *testing.T) {
	// Not even valid JSON: the ceiling must trip before decoding starts.
	data := bytes.Repeat([]byte{'x'}, int(MaxPayloadBytes)+1)

	_, err := safeDecode(data, MaxPayloadBytes)
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrPayloadTooLarge))
	assert.False(t, eris.Is(err, ErrMalformedInput))
}

func TestSafeDecodeAtLimit(t *testing.T) {
	// Exactly at the ceiling passes the size check.
	pad := bytes.Repeat([]byte{' '}, int(MaxPayloadBytes)-2)
	data := append([]byte("{}"), pad...)

	tree, err := safeDecode(data, MaxPayloadBytes)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, tree)
}

func TestSafeDecodeDropsBlockedKeys(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"proto at top level", `{"__proto__": {"polluted": true}, "a": 1}`},
		{"constructor nested", `{"a": {"constructor": {"prototype": {}}, "b": 2}, "c": 3}`},
		{"prototype in array element", `[{"prototype": 1, "keep": true}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := safeDecode([]byte(tt.raw), MaxPayloadBytes)
			require.NoError(t, err)

			raw, err := json.Marshal(tree)
			require.NoError(t, err)
			assert.NotContains(t, string(raw), "__proto__")
			assert.NotContains(t, string(raw), "constructor")
			assert.NotContains(t, string(raw), "prototype")
		})
	}
}

func TestSafeDecodeKeepsSiblings(t *testing.T) {
	tree, err := safeDecode([]byte(`{"__proto__": 1, "score": 7}`), MaxPayloadBytes)
	require.NoError(t, err)

	obj, ok := tree.(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, obj, "__proto__")
	assert.Equal(t, json.Number("7"), obj["score"])
}

func TestSafeDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"truncated object", `{"a":`},
		{"bare garbage", `not json`},
		{"trailing content", `{} []`},
		{"two values", `1 2`},
		{"empty", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := safeDecode([]byte(tt.raw), MaxPayloadBytes)
			require.Error(t, err)
			assert.True(t, eris.Is(err, ErrMalformedInput), "got %v", err)
		})
	}
}

func TestSafeDecodePreservesNumbers(t *testing.T) {
	tree, err := safeDecode([]byte(`{"total_score": 12, "montant": 99999.5}`), MaxPayloadBytes)
	require.NoError(t, err)

	obj := tree.(map[string]any)
	assert.Equal(t, json.Number("12"), obj["total_score"])
	assert.Equal(t, json.Number("99999.5"), obj["montant"])
}

func TestDecodeIntoTypeMismatch(t *testing.T) {
	tree := map[string]any{"score": "not-a-number"}

	var target struct {
		Score int `json:"score"`
	}
	err := decodeInto(tree, &target)
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrSchemaViolation))
}
