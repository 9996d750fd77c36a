package config

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// Params is a nested string-keyed parameter tree, as decoded from a
// JSON object. Nested objects remain reachable through Sub; leaves are
// read with the typed getters, which fall back to a caller default when
// the key is absent or holds another type.
type Params map[string]any

// ParseParams decodes a JSON object into a Params tree.
func ParseParams(data []byte) (Params, error) {
	var p Params
	if err := sonic.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("config: parse params: %w", err)
	}

	return p, nil
}

// Sub returns the nested parameter tree under key, or nil when the key
// is absent or not an object. A nil Params reads safely as empty.
func (p Params) Sub(key string) Params {
	switch v := p[key].(type) {
	case map[string]any:
		return Params(v)
	case Params:
		return v
	default:
		return nil
	}
}

// String returns the string at key, or def.
func (p Params) String(key, def string) string {
	if v, ok := p[key].(string); ok {
		return v
	}

	return def
}

// Int returns the integer at key, or def. JSON numbers decode as
// float64 and are accepted when they carry an integral value.
func (p Params) Int(key string, def int) int {
	switch v := p[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		if v == float64(int(v)) {
			return int(v)
		}
	}

	return def
}

// Float returns the number at key, or def.
func (p Params) Float(key string, def float64) float64 {
	switch v := p[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}

	return def
}

// Bool returns the boolean at key, or def.
func (p Params) Bool(key string, def bool) bool {
	if v, ok := p[key].(bool); ok {
		return v
	}

	return def
}

// Has reports whether key exists at this level of the tree.
func (p Params) Has(key string) bool {
	_, ok := p[key]

	return ok
}

// AsMap returns a deep copy of the tree as plain maps and slices, safe
// to mutate without touching the original.
func (p Params) AsMap() map[string]any {
	out := make(map[string]any, len(p))
	for k, v := range p {
		out[k] = deepCopyValue(v)
	}

	return out
}

func deepCopyValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return Params(x).AsMap()
	case Params:
		return x.AsMap()
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = deepCopyValue(e)
		}

		return out
	default:
		return v
	}
}
