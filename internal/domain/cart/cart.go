// internal/domain/cart/cart.go
package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/your-org/pos-backend/internal/domain/catalog"
)

// CartAddOn is an add-on line nested under a cart item. Quantity means
// "units of this add-on per one unit of the parent item"; the parent's
// quantity multiplies into the add-on's subtotal, not its stored quantity.
type CartAddOn struct {
	ID            string          `json:"id"`
	ProductID     uint            `json:"productId"`
	ProductCode   string          `json:"productCode"`
	ProductName   string          `json:"productName"`
	ProductAbbrev string          `json:"productAbbrev"`
	UnitPrice     decimal.Decimal `json:"price"`
	Quantity      int             `json:"quantity"`
	Voided        bool            `json:"voided"`
}

// CartItem is one line entry in a cart. Its ID is generated fresh at
// creation and is distinct from ProductID, so two entries for the same
// product stay independently addressable. JSON field names are the exact
// shape persisted into an order's cartItems snapshot.
type CartItem struct {
	ID            string          `json:"id"`
	ProductID     uint            `json:"productId"`
	ProductCode   string          `json:"productCode"`
	ProductName   string          `json:"productName"`
	ProductAbbrev string          `json:"productAbbrev"`
	UnitPrice     decimal.Decimal `json:"price"`
	Quantity      int             `json:"quantity"`
	Notes         string          `json:"notes"`
	AddOns        []CartAddOn     `json:"addOns"`
	Voided        bool            `json:"voided"`
}

// Cart is an ordered list of line entries; insertion order is display
// order. Duplicate product ids are allowed.
type Cart []CartItem

// NewCartItem builds a quantity-1 line entry from a catalog product
func NewCartItem(p *catalog.Product) CartItem {
	return CartItem{
		ID:            uuid.New().String(),
		ProductID:     p.ID,
		ProductCode:   p.Code,
		ProductName:   p.Name,
		ProductAbbrev: p.Abbrev,
		UnitPrice:     p.UnitPrice,
		Quantity:      1,
		Notes:         "",
		AddOns:        []CartAddOn{},
	}
}

// NewCartAddOn builds a quantity-1 add-on line from a catalog product
func NewCartAddOn(p *catalog.Product) CartAddOn {
	return CartAddOn{
		ID:            uuid.New().String(),
		ProductID:     p.ID,
		ProductCode:   p.Code,
		ProductName:   p.Name,
		ProductAbbrev: p.Abbrev,
		UnitPrice:     p.UnitPrice,
		Quantity:      1,
	}
}

// Clone returns a structural copy of the cart. Mutation functions operate
// on clones so a caller still holding the previous cart value never sees
// it change underneath them.
func (c Cart) Clone() Cart {
	if c == nil {
		return Cart{}
	}
	out := make(Cart, len(c))
	for i, item := range c {
		out[i] = item.clone()
	}
	return out
}

func (i CartItem) clone() CartItem {
	copied := i
	copied.AddOns = make([]CartAddOn, len(i.AddOns))
	copy(copied.AddOns, i.AddOns)
	return copied
}

// IndexOf returns the position of the item with the given id, or -1
func (c Cart) IndexOf(itemID string) int {
	for i := range c {
		if c[i].ID == itemID {
			return i
		}
	}
	return -1
}

// indexOfProduct returns the first entry referencing the product, or -1
func (c Cart) indexOfProduct(productID uint) int {
	for i := range c {
		if c[i].ProductID == productID {
			return i
		}
	}
	return -1
}
