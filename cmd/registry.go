package main

import (
	"encoding/json"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var registryFormat string

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Dump the effective country/sector registry",
	RunE: func(cmd *cobra.Command, _ []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}
		snapshot := reg.Snapshot()

		var out []byte
		switch registryFormat {
		case "yaml":
			out, err = yaml.Marshal(snapshot)
		case "json":
			out, err = json.MarshalIndent(snapshot, "", "  ")
			out = append(out, '\n')
		default:
			return eris.Errorf("unknown format %q (want yaml or json)", registryFormat)
		}
		if err != nil {
			return eris.Wrap(err, "marshal registry")
		}

		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	registryCmd.Flags().StringVar(&registryFormat, "format", "yaml", "output format: yaml or json")
	rootCmd.AddCommand(registryCmd)
}
