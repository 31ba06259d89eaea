package grid

// Settings is a mapping from option name to value. The grid never interprets
// the keys beyond merging; "the Trainer understands these keys" is the whole
// schema. See model.DecodeOptions for mapping a Settings onto a typed option
// struct inside a Trainer.
type Settings map[string]any

// Merge applies the two-level configuration law: base is the shared layer,
// override the experiment layer, and override wins key-for-key. Merging is
// strictly one level deep: nested values (recipes, hyperparameter structs)
// are opaque and replaced wholesale, never merged. Neither input is mutated.
func Merge(base, override Settings) Settings {
	merged := make(Settings, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}

// Clone returns a shallow copy. Values are shared; the map structure is not.
func (s Settings) Clone() Settings {
	if s == nil {
		return Settings{}
	}
	out := make(Settings, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
