package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/perspicuus/lcbft-cli/internal/engine"
	"github.com/perspicuus/lcbft-cli/internal/exporter"
	"github.com/perspicuus/lcbft-cli/internal/importer"
)

var (
	evaluateInput   string
	evaluateOutput  string
	evaluateCompact bool
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score a request file and export the assessment",
	RunE: func(cmd *cobra.Command, _ []string) error {
		imp := importer.New(importer.WithMaxBytes(cfg.Import.MaxBytes))

		envelope, err := evaluateFile(imp, evaluateInput, evaluateCompact)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(envelope, "", "  ")
		if err != nil {
			return eris.Wrap(err, "marshal export")
		}
		out = append(out, '\n')

		if evaluateOutput == "" {
			_, err = cmd.OutOrStdout().Write(out)
			return err
		}
		if err := os.WriteFile(evaluateOutput, out, 0o644); err != nil {
			return eris.Wrapf(err, "write %s", evaluateOutput)
		}

		zap.L().Info("evaluation exported",
			zap.String("input", evaluateInput),
			zap.String("output", evaluateOutput),
			zap.Bool("compact", evaluateCompact),
		)
		return nil
	},
}

// evaluateFile runs the full forward pipeline for one file: metadata
// vetting, secure parse, scoring, export assembly.
func evaluateFile(imp *importer.Importer, path string, compact bool) (any, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, eris.Wrapf(err, "stat %s", path)
	}
	meta := importer.FileMetadata{Name: info.Name(), Size: info.Size()}
	if err := imp.CheckFileMetadata(meta); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read %s", path)
	}

	req, err := imp.ParseRequest(data)
	if err != nil {
		return nil, eris.Wrapf(err, "parse %s", path)
	}

	reg, err := loadRegistry()
	if err != nil {
		return nil, err
	}

	res := engine.New(reg).Evaluate(req)

	if compact {
		return exporter.Compact(res), nil
	}
	return exporter.FullEnvelope(req, res), nil
}

func init() {
	evaluateCmd.Flags().StringVar(&evaluateInput, "input", "", "path to request JSON file (required)")
	evaluateCmd.Flags().StringVar(&evaluateOutput, "output", "", "output path (default stdout)")
	evaluateCmd.Flags().BoolVar(&evaluateCompact, "compact", false, "emit the compact export instead of the full envelope")
	_ = evaluateCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(evaluateCmd)
}
