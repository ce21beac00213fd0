package registry

import (
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Load reads a registry YAML file and indexes it. Fields absent from the
// file fall back to the built-in defaults section by section, so a file
// may override just the country lists while keeping the default sectors.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "registry: read file")
	}

	f := defaultFile()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrap(err, "registry: parse yaml")
	}

	r := New(f)
	zap.L().Info("registry: loaded",
		zap.String("path", path),
		zap.Int("countries_very_high", len(f.Countries.VeryHigh)),
		zap.Int("countries_high", len(f.Countries.High)),
		zap.Int("countries_aggravated", len(f.Countries.Aggravated)),
	)
	return r, nil
}
