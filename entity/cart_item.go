package entity

// CartItem is one cart line: a catalog item plus quantity and the
// customization set that distinguishes it from other lines of the same
// item. CustomizationPrice is the per-unit delta priced by the store.
type CartItem struct {
	MenuItem
	Quantity           int            `json:"quantity"`
	Customizations     Customizations `json:"customizations,omitempty"`
	CustomizationPrice int64          `json:"customizationPrice,omitempty"`
}

// Key identifies the line this item occupies.
func (ci CartItem) Key() string {
	return LineKey(ci.ID, ci.Customizations)
}

// LineTotal is (unit price + customization delta) × quantity.
func (ci CartItem) LineTotal() int64 {
	return (ci.Price + ci.CustomizationPrice) * int64(ci.Quantity)
}

// Clone deep-copies the line so order snapshots never alias live cart
// state.
func (ci CartItem) Clone() CartItem {
	out := ci
	if ci.Customizations != nil {
		cc := make(Customizations, len(ci.Customizations))
		for k, v := range ci.Customizations {
			cc[k] = cloneValue(v)
		}
		out.Customizations = cc
	}
	return out
}

func cloneValue(v any) any {
	switch vv := v.(type) {
	case []string:
		return append([]string(nil), vv...)
	case []any:
		return append([]any(nil), vv...)
	default:
		return v
	}
}
