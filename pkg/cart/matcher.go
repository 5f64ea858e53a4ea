package cart

import (
	"KhajaGhar-Backend/entities"
	"fmt"
	"sort"
	"strings"
)

// findMatchingLine returns the existing line an add request should merge into,
// or nil when the configuration is new. Called only inside the repository's
// write transaction so the decision is made against locked rows.
func findMatchingLine(existing []*entities.CartLine, candidate *entities.CartLine) *entities.CartLine {
	for _, line := range existing {
		if line.MenuItemID == candidate.MenuItemID && sameSelection(line, candidate) {
			return line
		}
	}
	return nil
}

// sameSelection is the single merge-equality rule: every boolean flag, the
// spice level, and the special instructions must match exactly (two empty
// instruction strings match), and the grouped extras must match by their
// canonical key. Any difference keeps the lines separate so a merge can never
// silently change a line's customization or price.
func sameSelection(a, b *entities.CartLine) bool {
	if a.ExtraCheese != b.ExtraCheese ||
		a.ExtraMeat != b.ExtraMeat ||
		a.ExtraVeggies != b.ExtraVeggies ||
		a.NoOnions != b.NoOnions ||
		a.NoGarlic != b.NoGarlic ||
		a.GlutenFree != b.GlutenFree {
		return false
	}
	if a.SpiceLevel != b.SpiceLevel {
		return false
	}
	if a.SpecialInstructions != b.SpecialInstructions {
		return false
	}
	return extrasKey(a.Extras) == extrasKey(b.Extras)
}

// extrasKey serializes grouped extras into an order-independent key of
// group, label and quantity. Display formatting never participates here.
func extrasKey(extras []entities.CartLineExtra) string {
	if len(extras) == 0 {
		return ""
	}
	parts := make([]string, 0, len(extras))
	for _, e := range extras {
		parts = append(parts, fmt.Sprintf("%s|%s|%d", e.Group, e.Label, e.Quantity))
	}
	sort.Strings(parts)
	return strings.Join(parts, ";")
}
