package entity

import (
	"encoding/json"
	"sort"
)

// Customizations is the category-specific option mapping attached to a
// cart line: toggles (bool), single-choice values (string) and add-on
// sets ([]string). The store keeps whatever mapping it is given; the
// pricing policy decides which keys cost anything.
type Customizations map[string]any

// normalized returns a copy with string sets sorted, so two semantically
// equal selections always encode to the same key.
func (c Customizations) normalized() Customizations {
	out := make(Customizations, len(c))
	for k, v := range c {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch vv := v.(type) {
	case []string:
		s := append([]string(nil), vv...)
		sort.Strings(s)
		return s
	case []any:
		s := make([]string, 0, len(vv))
		for _, e := range vv {
			str, ok := e.(string)
			if !ok {
				return vv
			}
			s = append(s, str)
		}
		sort.Strings(s)
		return s
	default:
		return v
	}
}

// LineKey is the composite identity of a cart line: the base item id plus
// a canonical encoding of the customization set. encoding/json emits map
// keys sorted, so insertion order never changes the key; nil and empty
// maps encode identically.
func LineKey(id string, c Customizations) string {
	if len(c) == 0 {
		return id + "_{}"
	}
	b, err := json.Marshal(c.normalized())
	if err != nil {
		return id + "_{}"
	}
	return id + "_" + string(b)
}
