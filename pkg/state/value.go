// Package state models decoded recording payloads: keyed updates with
// tombstones, fully materialized snapshots, and the fold that turns a
// stream of the former into a stream of the latter.
package state

// Value is one decoded payload value, either a Scalar leaf or a nested
// Mapping. Which concrete values appear is up to the payload codec;
// this package only distinguishes the two shapes.
type Value interface {
	value()
}

// Scalar is a leaf value. Data holds whatever the payload codec
// produced for it: nil, bool, float64, string, or a list.
type Scalar struct {
	Data any
}

func (Scalar) value() {}

// Mapping is a nested key-to-value structure
type Mapping map[string]Value

func (Mapping) value() {}

// Interface converts a Value to plain Go data: Scalar payloads as-is,
// Mappings as map[string]any, recursively. A nil Value becomes nil.
func Interface(v Value) any {
	switch v := v.(type) {
	case Scalar:
		return v.Data
	case Mapping:
		out := make(map[string]any, len(v))
		for key, nested := range v {
			out[key] = Interface(nested)
		}
		return out
	default:
		return nil
	}
}
