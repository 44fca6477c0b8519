// internal/domain/cart/mutate.go
package cart

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/your-org/pos-backend/internal/domain/catalog"
)

// ErrParentNotFound is returned when an add-on mutation names a cart item
// that is not present.
var ErrParentNotFound = fmt.Errorf("parent cart item not found")

// The mutation engine is a set of pure functions: each takes a cart, returns
// a new cart, and never writes through the input. Mutations referencing an
// id that is no longer present are silent no-ops so stale button events
// arriving after a removal do not fail.

// AddItem adds a product in deduplicating (menu grid) mode: if an entry for
// the product already exists its quantity is incremented, otherwise a fresh
// quantity-1 entry is appended.
func AddItem(c Cart, p *catalog.Product) Cart {
	if idx := c.indexOfProduct(p.ID); idx >= 0 {
		return IncrementItem(c, c[idx].ID)
	}
	out := c.Clone()
	return append(out, NewCartItem(p))
}

// AddEntry adds a product in non-deduplicating mode: a fresh quantity-1
// entry is always appended, even when the product is already in the cart.
func AddEntry(c Cart, p *catalog.Product) Cart {
	out := c.Clone()
	return append(out, NewCartItem(p))
}

// IncrementItem raises the quantity of the named entry by one. Unknown ids
// are a no-op; AddItem is the only creation path.
func IncrementItem(c Cart, itemID string) Cart {
	idx := c.IndexOf(itemID)
	if idx < 0 {
		return c
	}
	out := c.Clone()
	out[idx].Quantity++
	return out
}

// DecrementItem lowers the quantity of the named entry by one, removing the
// entry entirely when it reaches zero. Quantity never goes negative.
func DecrementItem(c Cart, itemID string) Cart {
	idx := c.IndexOf(itemID)
	if idx < 0 {
		return c
	}
	out := c.Clone()
	if out[idx].Quantity <= 1 {
		return append(out[:idx], out[idx+1:]...)
	}
	out[idx].Quantity--
	return out
}

// RemoveItem unconditionally deletes the named entry. Confirmation is the
// caller's responsibility.
func RemoveItem(c Cart, itemID string) Cart {
	idx := c.IndexOf(itemID)
	if idx < 0 {
		return c
	}
	out := c.Clone()
	return append(out[:idx], out[idx+1:]...)
}

// VoidItem flags the named entry as voided. Voided lines stay in the cart
// for the record but are excluded from monetary totals.
func VoidItem(c Cart, itemID string) Cart {
	idx := c.IndexOf(itemID)
	if idx < 0 {
		return c
	}
	out := c.Clone()
	out[idx].Voided = true
	return out
}

// SetItemNotes replaces the free-text notes on the named entry
func SetItemNotes(c Cart, itemID, notes string) Cart {
	idx := c.IndexOf(itemID)
	if idx < 0 {
		return c
	}
	out := c.Clone()
	out[idx].Notes = notes
	return out
}

// AddOrIncrementAddOn attaches an add-on product to the named parent entry.
// An existing add-on line for the same product is incremented; otherwise a
// quantity-1 add-on line is appended. The parent must exist.
func AddOrIncrementAddOn(c Cart, itemID string, p *catalog.Product) (Cart, error) {
	idx := c.IndexOf(itemID)
	if idx < 0 {
		return c, ErrParentNotFound
	}
	out := c.Clone()
	item := &out[idx]
	for i := range item.AddOns {
		if item.AddOns[i].ProductID == p.ID {
			item.AddOns[i].Quantity++
			return out, nil
		}
	}
	item.AddOns = append(item.AddOns, NewCartAddOn(p))
	return out, nil
}

// DecrementAddOn lowers the named parent's add-on line for the given
// product by one, removing the add-on line at zero. Unknown parent or
// add-on ids are a no-op.
func DecrementAddOn(c Cart, itemID string, addOnProductID uint) Cart {
	idx := c.IndexOf(itemID)
	if idx < 0 {
		return c
	}
	out := c.Clone()
	item := &out[idx]
	for i := range item.AddOns {
		if item.AddOns[i].ProductID == addOnProductID {
			if item.AddOns[i].Quantity <= 1 {
				item.AddOns = append(item.AddOns[:i], item.AddOns[i+1:]...)
			} else {
				item.AddOns[i].Quantity--
			}
			return out
		}
	}
	return out
}

// ExpandStagedEntries appends each staged entry to the cart as N discrete
// quantity-1 entries, where N is the staged quantity. Every expanded entry
// gets a fresh id so the units stay separately trackable. The caller clears
// the staging list afterwards.
func ExpandStagedEntries(staged []CartItem, c Cart) Cart {
	out := c.Clone()
	for _, entry := range staged {
		for n := 0; n < entry.Quantity; n++ {
			unit := entry.clone()
			unit.ID = uuid.New().String()
			unit.Quantity = 1
			out = append(out, unit)
		}
	}
	return out
}
