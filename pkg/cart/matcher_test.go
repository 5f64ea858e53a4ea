package cart

import (
	"KhajaGhar-Backend/entities"
	"github.com/google/uuid"
	"testing"
)

func baseLine(menuItemID uuid.UUID) *entities.CartLine {
	return &entities.CartLine{
		ID:         uuid.New(),
		MenuItemID: menuItemID,
		Quantity:   1,
		SpiceLevel: "Medium",
	}
}

func TestFindMatchingLine(t *testing.T) {
	itemA := uuid.New()
	itemB := uuid.New()

	tests := []struct {
		name      string
		existing  func() *entities.CartLine
		candidate func() *entities.CartLine
		wantMatch bool
	}{
		{
			name:      "identical plain lines merge",
			existing:  func() *entities.CartLine { return baseLine(itemA) },
			candidate: func() *entities.CartLine { return baseLine(itemA) },
			wantMatch: true,
		},
		{
			name:     "different menu item does not merge",
			existing: func() *entities.CartLine { return baseLine(itemA) },
			candidate: func() *entities.CartLine {
				return baseLine(itemB)
			},
			wantMatch: false,
		},
		{
			name: "different flag does not merge",
			existing: func() *entities.CartLine {
				l := baseLine(itemA)
				l.ExtraCheese = true
				return l
			},
			candidate: func() *entities.CartLine { return baseLine(itemA) },
			wantMatch: false,
		},
		{
			name:     "different spice level does not merge",
			existing: func() *entities.CartLine { return baseLine(itemA) },
			candidate: func() *entities.CartLine {
				l := baseLine(itemA)
				l.SpiceLevel = "Spicy"
				return l
			},
			wantMatch: false,
		},
		{
			name: "different special instructions do not merge",
			existing: func() *entities.CartLine {
				l := baseLine(itemA)
				l.SpecialInstructions = "extra crispy"
				return l
			},
			candidate: func() *entities.CartLine {
				l := baseLine(itemA)
				l.SpecialInstructions = "well done"
				return l
			},
			wantMatch: false,
		},
		{
			name: "empty instructions on both sides merge",
			existing: func() *entities.CartLine {
				l := baseLine(itemA)
				l.SpecialInstructions = ""
				return l
			},
			candidate: func() *entities.CartLine {
				l := baseLine(itemA)
				l.SpecialInstructions = ""
				return l
			},
			wantMatch: true,
		},
		{
			name: "same extras in different order merge",
			existing: func() *entities.CartLine {
				l := baseLine(itemA)
				l.Extras = []entities.CartLineExtra{
					{Group: "sides", Label: "Fries", UnitPrice: 80, Quantity: 1},
					{Group: "dip_sauce", Label: "Ketchup", UnitPrice: 20, Quantity: 2},
				}
				return l
			},
			candidate: func() *entities.CartLine {
				l := baseLine(itemA)
				l.Extras = []entities.CartLineExtra{
					{Group: "dip_sauce", Label: "Ketchup", UnitPrice: 20, Quantity: 2},
					{Group: "sides", Label: "Fries", UnitPrice: 80, Quantity: 1},
				}
				return l
			},
			wantMatch: true,
		},
		{
			name: "different extra quantity does not merge",
			existing: func() *entities.CartLine {
				l := baseLine(itemA)
				l.Extras = []entities.CartLineExtra{
					{Group: "sides", Label: "Fries", UnitPrice: 80, Quantity: 1},
				}
				return l
			},
			candidate: func() *entities.CartLine {
				l := baseLine(itemA)
				l.Extras = []entities.CartLineExtra{
					{Group: "sides", Label: "Fries", UnitPrice: 80, Quantity: 2},
				}
				return l
			},
			wantMatch: false,
		},
		{
			name: "different side combination does not merge",
			existing: func() *entities.CartLine {
				l := baseLine(itemA)
				l.Extras = []entities.CartLineExtra{
					{Group: "sides", Label: "Fries", UnitPrice: 80, Quantity: 1},
				}
				return l
			},
			candidate: func() *entities.CartLine {
				l := baseLine(itemA)
				l.Extras = []entities.CartLineExtra{
					{Group: "sides", Label: "Salad", UnitPrice: 80, Quantity: 1},
				}
				return l
			},
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := tt.existing()
			match := findMatchingLine([]*entities.CartLine{existing}, tt.candidate())
			if tt.wantMatch && match == nil {
				t.Fatal("findMatchingLine() = nil, want match")
			}
			if !tt.wantMatch && match != nil {
				t.Fatal("findMatchingLine() found a match, want nil")
			}
			if tt.wantMatch && match != existing {
				t.Fatal("findMatchingLine() returned a different line than the existing one")
			}
		})
	}
}

func TestFindMatchingLineReturnsFirstOnly(t *testing.T) {
	itemA := uuid.New()
	a := baseLine(itemA)
	b := baseLine(itemA)

	match := findMatchingLine([]*entities.CartLine{a, b}, baseLine(itemA))
	if match != a {
		t.Fatal("findMatchingLine() should return the first matching line")
	}
}
