package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/perspicuus/lcbft-cli/internal/exporter"
	"github.com/perspicuus/lcbft-cli/internal/importer"
)

var (
	importFilePath string
	importReexport string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import an exported assessment of any supported shape",
	RunE: func(cmd *cobra.Command, _ []string) error {
		imp := importer.New(importer.WithMaxBytes(cfg.Import.MaxBytes))

		info, err := os.Stat(importFilePath)
		if err != nil {
			return eris.Wrapf(err, "stat %s", importFilePath)
		}
		meta := importer.FileMetadata{Name: info.Name(), Size: info.Size()}
		if err := imp.CheckFileMetadata(meta); err != nil {
			return err
		}

		data, err := os.ReadFile(importFilePath)
		if err != nil {
			return eris.Wrapf(err, "read %s", importFilePath)
		}

		outcome, err := imp.Import(data)
		if err != nil {
			return eris.Wrapf(err, "import %s", importFilePath)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "outcome: %s\n", outcome.Kind)
		if outcome.Result != nil {
			fmt.Fprintf(out, "risk level: %s (%s)\n", outcome.Result.Level, outcome.Result.Level.LabelFR())
			fmt.Fprintf(out, "total score: %d\n", outcome.Result.Total)
		}
		if outcome.Warning != "" {
			fmt.Fprintf(out, "warning: %s\n", outcome.Warning)
		}

		if importReexport != "" {
			if outcome.Result == nil {
				return eris.New("cannot re-export: payload carried no result")
			}
			env := exporter.FullEnvelope(outcome.Request, outcome.Result)
			raw, err := json.MarshalIndent(env, "", "  ")
			if err != nil {
				return eris.Wrap(err, "marshal re-export")
			}
			if err := os.WriteFile(importReexport, append(raw, '\n'), 0o644); err != nil {
				return eris.Wrapf(err, "write %s", importReexport)
			}
			zap.L().Info("import re-exported",
				zap.String("file", importFilePath),
				zap.String("output", importReexport),
			)
		}
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importFilePath, "file", "", "path to exported JSON file (required)")
	importCmd.Flags().StringVar(&importReexport, "reexport", "", "re-export the imported result as a full envelope to this path")
	_ = importCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(importCmd)
}
