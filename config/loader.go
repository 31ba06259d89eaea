package config

import (
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/YuminosukeSato/modelgrid/pkg/errors"
)

// EnvPrefix is the prefix for environment-variable overrides.
// MODELGRID_SHARED_METRIC=Accuracy overrides shared.metric.
const EnvPrefix = "MODELGRID_"

// Load reads a grid declaration, layering sources lowest to highest priority:
//
//  1. defaults, the supplied map (may be nil)
//  2. the YAML file at path (skipped when path is empty)
//  3. environment variables with the MODELGRID_ prefix, underscores mapping
//     to key separators (MODELGRID_SHARED_METRIC -> shared.metric)
//
// Later layers override earlier ones key-wise, mirroring the grid's own
// two-level settings merge.
func Load(path string, defaults map[string]any) (*Declaration, error) {
	k := koanf.New(".")

	if defaults != nil {
		if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
			return nil, errors.Wrap(err, "modelgrid: loading defaults")
		}
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "modelgrid: reading declaration file %s", path)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, "modelgrid: loading environment overrides")
	}

	var decl Declaration
	if err := k.Unmarshal("", &decl); err != nil {
		return nil, errors.Wrap(err, "modelgrid: decoding declaration")
	}
	if err := decl.Validate(); err != nil {
		return nil, err
	}
	return &decl, nil
}

// LoadMap builds a Declaration from an in-process map, useful for tests and
// for callers that assemble configuration programmatically but still want the
// declaration-level validation.
func LoadMap(values map[string]any) (*Declaration, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
		return nil, errors.Wrap(err, "modelgrid: loading declaration map")
	}

	var decl Declaration
	if err := k.Unmarshal("", &decl); err != nil {
		return nil, errors.Wrap(err, "modelgrid: decoding declaration")
	}
	if err := decl.Validate(); err != nil {
		return nil, err
	}
	return &decl, nil
}
