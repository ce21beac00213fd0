package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perspicuus/lcbft-cli/internal/config"
	"github.com/perspicuus/lcbft-cli/internal/importer"
	"github.com/perspicuus/lcbft-cli/internal/model"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.Import.MaxBytes = importer.MaxPayloadBytes
	c.Batch.MaxConcurrent = 2
	return c
}

func writeRequestFile(t *testing.T, dir, name string) string {
	t.Helper()
	req := model.EvaluationRequest{
		Client: model.ClientProfile{
			Type:          model.ClientNatural,
			RelationYears: 2,
		},
		Geographic: model.GeographicProfile{
			Residence:      "France",
			AccountCountry: "Belgique",
		},
		Transaction: model.TransactionProfile{
			Amount: 20000,
			Method: model.PaymentWire,
		},
	}
	raw, err := json.Marshal(req)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, raw, 0644))
	return path
}

func TestEvaluateCmd_Metadata(t *testing.T) {
	assert.Equal(t, "evaluate", evaluateCmd.Use)
	assert.NotEmpty(t, evaluateCmd.Short)

	require.NotNil(t, evaluateCmd.Flags().Lookup("input"))
	require.NotNil(t, evaluateCmd.Flags().Lookup("output"))
	require.NotNil(t, evaluateCmd.Flags().Lookup("compact"))
}

func TestEvaluateFile_FullEnvelope(t *testing.T) {
	cfg = testConfig()
	dir := t.TempDir()
	path := writeRequestFile(t, dir, "req.json")

	imp := importer.New(importer.WithMaxBytes(cfg.Import.MaxBytes))
	export, err := evaluateFile(imp, path, false)
	require.NoError(t, err)

	env, ok := export.(*model.ImportEnvelope)
	require.True(t, ok)
	assert.Equal(t, model.Application, env.Metadata.Application)
	require.NotNil(t, env.Results)
	// Foreign account only: cross-border +2, FAIBLE.
	assert.Equal(t, 2, env.Results.Overall.TotalScore)
	assert.Equal(t, model.RiskFaible, env.Results.Overall.RiskLevel)
}

func TestEvaluateFile_Compact(t *testing.T) {
	cfg = testConfig()
	dir := t.TempDir()
	path := writeRequestFile(t, dir, "req.json")

	imp := importer.New(importer.WithMaxBytes(cfg.Import.MaxBytes))
	export, err := evaluateFile(imp, path, true)
	require.NoError(t, err)

	c, ok := export.(*model.CompactExport)
	require.True(t, ok)
	assert.Equal(t, 2, c.TotalScore)
	assert.Equal(t, model.RiskFaible, c.RiskLevel)
}

func TestEvaluateFile_RejectsNonJSONName(t *testing.T) {
	cfg = testConfig()
	dir := t.TempDir()
	path := filepath.Join(dir, "req.txt")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

	imp := importer.New(importer.WithMaxBytes(cfg.Import.MaxBytes))
	_, err := evaluateFile(imp, path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON")
}

func TestEvaluateFile_MissingFile(t *testing.T) {
	cfg = testConfig()

	imp := importer.New(importer.WithMaxBytes(cfg.Import.MaxBytes))
	_, err := evaluateFile(imp, filepath.Join(t.TempDir(), "nope.json"), false)
	require.Error(t, err)
}

func TestImportCmd_Metadata(t *testing.T) {
	assert.Equal(t, "import", importCmd.Use)
	assert.NotEmpty(t, importCmd.Short)

	require.NotNil(t, importCmd.Flags().Lookup("file"))
	require.NotNil(t, importCmd.Flags().Lookup("reexport"))
}

func TestBatchCmd_Metadata(t *testing.T) {
	assert.Equal(t, "batch", batchCmd.Use)
	require.NotNil(t, batchCmd.Flags().Lookup("input-dir"))
	require.NotNil(t, batchCmd.Flags().Lookup("output-dir"))
	require.NotNil(t, batchCmd.Flags().Lookup("compact"))
}

func TestRegistryCmd_Metadata(t *testing.T) {
	assert.Equal(t, "registry", registryCmd.Use)
	require.NotNil(t, registryCmd.Flags().Lookup("format"))
}

func TestLoadRegistry_Default(t *testing.T) {
	cfg = testConfig()

	reg, err := loadRegistry()
	require.NoError(t, err)
	assert.Equal(t, "France", reg.HomeCountry())
}

func TestLoadRegistry_MissingOverride(t *testing.T) {
	cfg = testConfig()
	cfg.Registry.Path = filepath.Join(t.TempDir(), "nope.yaml")

	_, err := loadRegistry()
	require.Error(t, err)
}
