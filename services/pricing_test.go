package services

import (
	"testing"

	"canteen/entity"
)

func TestCustomizationPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		category string
		c        entity.Customizations
		expected int64
	}{
		{
			name:     "nil_customizations",
			category: entity.CategorySnacks,
			c:        nil,
			expected: 0,
		},
		{
			name:     "snacks_full_selection",
			category: entity.CategorySnacks,
			c: entity.Customizations{
				"addCheese":   true,
				"extraChilli": true,
				"portionSize": "Large",
				"sauces":      []string{"Mayo", "Mint Chutney"},
			},
			expected: 10 + 5 + 15 + 2*3,
		},
		{
			name:     "snacks_toggle_off_costs_nothing",
			category: entity.CategorySnacks,
			c:        entity.Customizations{"addCheese": false, "noOnion": true},
			expected: 0,
		},
		{
			name:     "snacks_regular_portion_free",
			category: entity.CategorySnacks,
			c:        entity.Customizations{"portionSize": "Regular"},
			expected: 0,
		},
		{
			name:     "main_course_with_half_portion_discount",
			category: entity.CategoryMainCourse,
			c: entity.Customizations{
				"addExtraGravy": true,
				"addOns":        []string{"Paneer", "Egg"},
				"addRaitaPapad": []string{"Raita"},
				"portionSize":   "Half",
			},
			expected: 15 + 2*8 + 12 - 20,
		},
		{
			name:     "beverages_small_cup_discount",
			category: entity.CategoryBeverages,
			c:        entity.Customizations{"cupSize": "Small"},
			expected: -5,
		},
		{
			name:     "beverages_large_with_extras",
			category: entity.CategoryBeverages,
			c: entity.Customizations{
				"cupSize":       "Large",
				"toppings":      []string{"Basil Seeds", "Honey Drizzle"},
				"addMintGinger": []string{"Mint"},
				"addLemon":      true,
			},
			expected: 10 + 2*5 + 3 + 5,
		},
		{
			name:     "free_options_only",
			category: entity.CategoryBeverages,
			c:        entity.Customizations{"iceLevel": "No Ice", "sugarLevel": "Less"},
			expected: 0,
		},
		{
			name:     "set_values_from_json_decode",
			category: entity.CategorySnacks,
			c:        entity.Customizations{"sauces": []any{"Mayo", "Tandoori Sauce", "Tomato Ketchup"}},
			expected: 3 * 3,
		},
		{
			name:     "unknown_category",
			category: "desserts",
			c:        entity.Customizations{"addCheese": true},
			expected: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := CustomizationPrice(tt.category, tt.c); got != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}
