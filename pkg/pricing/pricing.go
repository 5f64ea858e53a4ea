// Package pricing computes cart line prices. All arithmetic stays in decimal
// and is rounded to 2 fractional digits only at the total, so intermediate
// steps never accumulate rounding error.
package pricing

import (
	"KhajaGhar-Backend/domain"
	"KhajaGhar-Backend/entities"
	"KhajaGhar-Backend/pkg/catalog"
	"github.com/shopspring/decimal"
)

// UnitPrice is the menu item base price plus the deltas of every active add-on
// plus the grouped extras (unit price times quantity each). Unrounded.
func UnitPrice(item *entities.MenuItem, line *entities.CartLine) (decimal.Decimal, error) {
	if item.Price < 0 {
		return decimal.Zero, domain.ErrInvalidPrice
	}

	unit := decimal.NewFromFloat(item.Price)
	flags := map[string]bool{
		catalog.AddOnExtraCheese:  line.ExtraCheese,
		catalog.AddOnExtraMeat:    line.ExtraMeat,
		catalog.AddOnExtraVeggies: line.ExtraVeggies,
		catalog.AddOnNoOnions:     line.NoOnions,
		catalog.AddOnNoGarlic:     line.NoGarlic,
		catalog.AddOnGlutenFree:   line.GlutenFree,
	}
	for id, active := range flags {
		if active {
			unit = unit.Add(catalog.Delta(id))
		}
	}
	for _, extra := range line.Extras {
		price := decimal.NewFromFloat(extra.UnitPrice)
		unit = unit.Add(price.Mul(decimal.NewFromInt(int64(extra.Quantity))))
	}
	return unit, nil
}

// LineTotal is UnitPrice times the line quantity, rounded to 2 digits.
func LineTotal(item *entities.MenuItem, line *entities.CartLine) (decimal.Decimal, error) {
	if line.Quantity < 1 {
		return decimal.Zero, domain.ErrInvalidQuantity
	}

	unit, err := UnitPrice(item, line)
	if err != nil {
		return decimal.Zero, err
	}
	return unit.Mul(decimal.NewFromInt(int64(line.Quantity))).Round(2), nil
}
