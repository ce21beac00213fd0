package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/perspicuus/lcbft-cli/internal/engine"
	"github.com/perspicuus/lcbft-cli/internal/exporter"
	"github.com/perspicuus/lcbft-cli/internal/importer"
)

var (
	batchInputDir  string
	batchOutputDir string
	batchCompact   bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score every request file in a directory",
	RunE: func(cmd *cobra.Command, _ []string) error {
		paths, err := filepath.Glob(filepath.Join(batchInputDir, "*.json"))
		if err != nil {
			return eris.Wrapf(err, "glob %s", batchInputDir)
		}
		if len(paths) == 0 {
			return eris.Errorf("no .json files in %s", batchInputDir)
		}

		if err := os.MkdirAll(batchOutputDir, 0o755); err != nil {
			return eris.Wrapf(err, "create %s", batchOutputDir)
		}

		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		eng := engine.New(reg)
		imp := importer.New(importer.WithMaxBytes(cfg.Import.MaxBytes))

		g, _ := errgroup.WithContext(cmd.Context())
		g.SetLimit(cfg.Batch.MaxConcurrent)

		for _, path := range paths {
			path := path
			g.Go(func() error {
				data, err := os.ReadFile(path)
				if err != nil {
					return eris.Wrapf(err, "read %s", path)
				}

				req, err := imp.ParseRequest(data)
				if err != nil {
					return eris.Wrapf(err, "parse %s", path)
				}

				res := eng.Evaluate(req)

				var export any = exporter.FullEnvelope(req, res)
				if batchCompact {
					export = exporter.Compact(res)
				}
				raw, err := json.MarshalIndent(export, "", "  ")
				if err != nil {
					return eris.Wrapf(err, "marshal %s", path)
				}

				outPath := filepath.Join(batchOutputDir, filepath.Base(path))
				if err := os.WriteFile(outPath, append(raw, '\n'), 0o644); err != nil {
					return eris.Wrapf(err, "write %s", outPath)
				}

				zap.L().Info("batch: file scored",
					zap.String("input", path),
					zap.String("output", outPath),
					zap.String("niveau", string(res.Level)),
				)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		zap.L().Info("batch complete",
			zap.Int("files", len(paths)),
			zap.String("output_dir", batchOutputDir),
		)
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchInputDir, "input-dir", "", "directory of request JSON files (required)")
	batchCmd.Flags().StringVar(&batchOutputDir, "output-dir", "", "directory for exported assessments (required)")
	batchCmd.Flags().BoolVar(&batchCompact, "compact", false, "emit compact exports instead of full envelopes")
	_ = batchCmd.MarkFlagRequired("input-dir")
	_ = batchCmd.MarkFlagRequired("output-dir")
	rootCmd.AddCommand(batchCmd)
}
