package model

import (
	"github.com/go-viper/mapstructure/v2"

	"github.com/YuminosukeSato/modelgrid/pkg/errors"
)

// DecodeOptions decodes an effective settings map into a trainer's typed
// option struct. Keys are matched against the `grid` struct tag (falling back
// to the field name), and weakly-typed input is accepted so values read from
// YAML or environment variables ("5", "0.9") decode into ints and floats.
//
// Unknown keys are ignored: a shared settings map routinely carries options
// for several trainers at once.
//
//	type glmOptions struct {
//	    Metric string  `grid:"metric"`
//	    Folds  int     `grid:"folds"`
//	    Lambda float64 `grid:"lambda"`
//	}
//	var opts glmOptions
//	if err := model.DecodeOptions(effective, &opts); err != nil { ... }
func DecodeOptions(opts map[string]any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "grid",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return errors.Wrap(err, "modelgrid: building options decoder")
	}
	if err := decoder.Decode(opts); err != nil {
		return errors.Wrap(err, "modelgrid: decoding options")
	}
	return nil
}
