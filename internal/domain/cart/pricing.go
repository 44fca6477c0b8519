// internal/domain/cart/pricing.go
package cart

import "github.com/shopspring/decimal"

// AddOnSubtotal prices an add-on line under a parent with the given
// quantity. The add-on's cost scales with both its own quantity and the
// parent's: unitPrice x addOnQuantity x parentQuantity.
func AddOnSubtotal(a CartAddOn, parentQuantity int) decimal.Decimal {
	return a.UnitPrice.
		Mul(decimal.NewFromInt(int64(a.Quantity))).
		Mul(decimal.NewFromInt(int64(parentQuantity)))
}

// ItemSubtotal prices one line entry including its add-ons
func ItemSubtotal(i CartItem) decimal.Decimal {
	subtotal := i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
	for _, a := range i.AddOns {
		subtotal = subtotal.Add(AddOnSubtotal(a, i.Quantity))
	}
	return subtotal
}

// Total prices the whole cart, skipping voided lines. No rounding is
// applied; formatting for display is the caller's concern.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c {
		if item.Voided {
			continue
		}
		total = total.Add(ItemSubtotal(item))
	}
	return total
}

// TotalQuantity sums the quantities of non-voided lines
func (c Cart) TotalQuantity() int {
	quantity := 0
	for _, item := range c {
		if item.Voided {
			continue
		}
		quantity += item.Quantity
	}
	return quantity
}
