package services

import "canteen/entity"

// The store is the only place that prices a selection; callers submit
// choices, never money. Deltas are rupees per unit.
type pricingPolicy struct {
	toggles map[string]int64            // bool options: key → delta when true
	choices map[string]map[string]int64 // single-choice options: key → value → delta
	perPick map[string]int64            // set options: key → delta per selected entry
}

var categoryPricing = map[string]pricingPolicy{
	entity.CategorySnacks: {
		toggles: map[string]int64{"addCheese": 10, "extraChilli": 5},
		choices: map[string]map[string]int64{"portionSize": {"Large": 15}},
		perPick: map[string]int64{"sauces": 3},
	},
	entity.CategoryMainCourse: {
		toggles: map[string]int64{"addExtraGravy": 15},
		choices: map[string]map[string]int64{"portionSize": {"Half": -20}},
		perPick: map[string]int64{"addOns": 8, "addRaitaPapad": 12},
	},
	entity.CategoryBeverages: {
		toggles: map[string]int64{"addLemon": 5},
		choices: map[string]map[string]int64{"cupSize": {"Small": -5, "Large": 10}},
		perPick: map[string]int64{"toppings": 5, "addMintGinger": 3},
	},
}

// CustomizationPrice returns the per-unit price delta for the chosen
// options. Unknown keys and zero-delta options (spice level, ice, sugar,
// exclusions) cost nothing but still distinguish lines.
func CustomizationPrice(category string, c entity.Customizations) int64 {
	p, ok := categoryPricing[category]
	if !ok {
		return 0
	}
	var delta int64
	for key, v := range c {
		switch vv := v.(type) {
		case bool:
			if vv {
				delta += p.toggles[key]
			}
		case string:
			if m, ok := p.choices[key]; ok {
				delta += m[vv]
			}
		case []string:
			delta += p.perPick[key] * int64(len(vv))
		case []any:
			delta += p.perPick[key] * int64(len(vv))
		}
	}
	return delta
}
