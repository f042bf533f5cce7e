package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineKeyEmptyAndNilAreEqual(t *testing.T) {
	assert.Equal(t, LineKey("1", nil), LineKey("1", Customizations{}))
}

func TestLineKeyDistinguishesItems(t *testing.T) {
	assert.NotEqual(t, LineKey("1", nil), LineKey("2", nil))
}

func TestLineKeyDistinguishesCustomizations(t *testing.T) {
	a := LineKey("1", Customizations{"spiceLevel": "High"})
	b := LineKey("1", Customizations{"spiceLevel": "Low"})
	c := LineKey("1", nil)
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestLineKeyIgnoresSetOrdering(t *testing.T) {
	a := LineKey("1", Customizations{"sauces": []string{"Mayo", "Tandoori Sauce"}})
	b := LineKey("1", Customizations{"sauces": []string{"Tandoori Sauce", "Mayo"}})
	assert.Equal(t, a, b)
}

func TestLineKeyTreatsDecodedAndTypedSetsAlike(t *testing.T) {
	a := LineKey("1", Customizations{"sauces": []string{"Mayo", "Mint Chutney"}})
	b := LineKey("1", Customizations{"sauces": []any{"Mint Chutney", "Mayo"}})
	assert.Equal(t, a, b)
}

func TestLineKeySurvivesJSONRoundTrip(t *testing.T) {
	orig := Customizations{
		"addCheese":   true,
		"portionSize": "Large",
		"sauces":      []string{"Tomato Ketchup", "Mayo"},
	}
	raw, err := json.Marshal(orig)
	require.NoError(t, err)

	var decoded Customizations
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, LineKey("1", orig), LineKey("1", decoded))
}

func TestCartItemCloneIsDeep(t *testing.T) {
	item := CartItem{
		MenuItem: MenuItem{ID: "1", Price: 25},
		Quantity: 2,
		Customizations: Customizations{
			"sauces": []string{"Mayo"},
		},
	}
	cl := item.Clone()
	cl.Customizations["sauces"].([]string)[0] = "Tandoori Sauce"
	cl.Customizations["addCheese"] = true

	assert.Equal(t, "Mayo", item.Customizations["sauces"].([]string)[0])
	assert.NotContains(t, item.Customizations, "addCheese")
}

func TestLineTotal(t *testing.T) {
	item := CartItem{
		MenuItem:           MenuItem{ID: "1", Price: 80},
		Quantity:           2,
		CustomizationPrice: 10,
	}
	assert.Equal(t, int64(180), item.LineTotal())
}
