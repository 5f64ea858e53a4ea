package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDelta(t *testing.T) {
	tests := []struct {
		id   string
		want int64
	}{
		{AddOnExtraCheese, 35},
		{AddOnExtraMeat, 50},
		{AddOnExtraVeggies, 25},
		{AddOnNoOnions, 0},
		{AddOnNoGarlic, 0},
		{AddOnGlutenFree, 0},
		{"unknown", 0},
	}

	for _, tt := range tests {
		if got := Delta(tt.id); !got.Equal(decimal.NewFromInt(tt.want)) {
			t.Errorf("Delta(%q) = %v, want %d", tt.id, got, tt.want)
		}
	}
}

func TestLookup(t *testing.T) {
	a, ok := Lookup(AddOnExtraMeat)
	if !ok {
		t.Fatal("Lookup() should find extra_meat")
	}
	if a.Label != "Extra Meat" {
		t.Errorf("label = %q, want Extra Meat", a.Label)
	}

	if _, ok := Lookup("bacon"); ok {
		t.Error("Lookup() should not find unknown add-ons")
	}
}

func TestValidSpiceLevel(t *testing.T) {
	for _, level := range SpiceLevels() {
		if !ValidSpiceLevel(level) {
			t.Errorf("ValidSpiceLevel(%q) = false", level)
		}
	}
	if ValidSpiceLevel("nuclear") {
		t.Error("ValidSpiceLevel should reject unknown levels")
	}
	if !ValidSpiceLevel(DefaultSpiceLevel) {
		t.Error("default spice level must be valid")
	}
}
