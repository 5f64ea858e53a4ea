// Package catalog defines the customization add-ons a cart line may carry and
// their price deltas. The catalog is fixed at build time; changing an entry
// means a new deployment.
package catalog

import (
	"github.com/shopspring/decimal"
)

const (
	AddOnExtraCheese  = "extra_cheese"
	AddOnExtraMeat    = "extra_meat"
	AddOnExtraVeggies = "extra_veggies"
	AddOnNoOnions     = "no_onions"
	AddOnNoGarlic     = "no_garlic"
	AddOnGlutenFree   = "gluten_free"
)

type AddOn struct {
	ID    string
	Label string
	Delta decimal.Decimal
}

// Preference toggles (no onions, no garlic, gluten free) are free; only the
// extra toppings carry a delta.
var addOns = map[string]AddOn{
	AddOnExtraCheese:  {ID: AddOnExtraCheese, Label: "Extra Cheese", Delta: decimal.NewFromInt(35)},
	AddOnExtraMeat:    {ID: AddOnExtraMeat, Label: "Extra Meat", Delta: decimal.NewFromInt(50)},
	AddOnExtraVeggies: {ID: AddOnExtraVeggies, Label: "Extra Veggies", Delta: decimal.NewFromInt(25)},
	AddOnNoOnions:     {ID: AddOnNoOnions, Label: "No Onions", Delta: decimal.Zero},
	AddOnNoGarlic:     {ID: AddOnNoGarlic, Label: "No Garlic", Delta: decimal.Zero},
	AddOnGlutenFree:   {ID: AddOnGlutenFree, Label: "Gluten Free", Delta: decimal.Zero},
}

const DefaultSpiceLevel = "Medium"

var spiceLevels = []string{"Mild", "Medium", "Spicy", "Extra Spicy"}

// Delta returns the price delta for an add-on id, zero for unknown ids.
func Delta(id string) decimal.Decimal {
	if a, ok := addOns[id]; ok {
		return a.Delta
	}
	return decimal.Zero
}

func Lookup(id string) (AddOn, bool) {
	a, ok := addOns[id]
	return a, ok
}

// SpiceLevels returns the allowed spice levels in display order.
func SpiceLevels() []string {
	out := make([]string, len(spiceLevels))
	copy(out, spiceLevels)
	return out
}

func ValidSpiceLevel(level string) bool {
	for _, l := range spiceLevels {
		if l == level {
			return true
		}
	}
	return false
}
