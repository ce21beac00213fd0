package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perspicuus/lcbft-cli/internal/model"
)

func TestBatchCmd_WritesOneOutputPerInput(t *testing.T) {
	cfg = testConfig()
	inDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")

	writeRequestFile(t, inDir, "a.json")
	writeRequestFile(t, inDir, "b.json")

	batchCmd.SetContext(context.Background())
	defer batchCmd.SetContext(context.TODO())

	oldIn, oldOut, oldCompact := batchInputDir, batchOutputDir, batchCompact
	batchInputDir, batchOutputDir, batchCompact = inDir, outDir, false
	defer func() { batchInputDir, batchOutputDir, batchCompact = oldIn, oldOut, oldCompact }()

	require.NoError(t, batchCmd.RunE(batchCmd, nil))

	for _, name := range []string{"a.json", "b.json"} {
		raw, err := os.ReadFile(filepath.Join(outDir, name))
		require.NoError(t, err, name)

		var env model.ImportEnvelope
		require.NoError(t, json.Unmarshal(raw, &env))
		require.NotNil(t, env.Results)
		assert.Equal(t, model.RiskFaible, env.Results.Overall.RiskLevel)
	}
}

func TestBatchCmd_EmptyDir(t *testing.T) {
	cfg = testConfig()

	batchCmd.SetContext(context.Background())
	defer batchCmd.SetContext(context.TODO())

	oldIn, oldOut := batchInputDir, batchOutputDir
	batchInputDir, batchOutputDir = t.TempDir(), t.TempDir()
	defer func() { batchInputDir, batchOutputDir = oldIn, oldOut }()

	err := batchCmd.RunE(batchCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no .json files")
}
