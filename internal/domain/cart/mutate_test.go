package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/your-org/pos-backend/internal/domain/catalog"
)

func testProduct(id uint, code, name, abbrev string, price int64) *catalog.Product {
	return &catalog.Product{
		ID:        id,
		Code:      code,
		Name:      name,
		Abbrev:    abbrev,
		UnitPrice: decimal.NewFromInt(price),
	}
}

var (
	latte = testProduct(1, "BEV-001", "Café Latte", "LATTE", 120)
	coke  = testProduct(2, "BEV-002", "Coca-Cola", "COKE", 50)
	shot  = testProduct(3, "XTR-001", "Extra Espresso Shot", "XSHOT", 20)
)

func TestAddItem_Deduplicates(t *testing.T) {
	c := AddItem(Cart{}, latte)
	c = AddItem(c, latte)

	if len(c) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(c))
	}
	if c[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", c[0].Quantity)
	}
	if c[0].ID == "" {
		t.Error("expected a generated item id")
	}
	if c[0].ID == "1" {
		t.Error("item id must be distinct from product id")
	}
}

func TestAddEntry_AllowsDuplicateProducts(t *testing.T) {
	c := AddEntry(Cart{}, latte)
	c = AddEntry(c, latte)

	if len(c) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(c))
	}
	if c[0].ID == c[1].ID {
		t.Error("duplicate entries must have distinct ids")
	}
}

func TestIncrementItem_UnknownIDIsNoOp(t *testing.T) {
	c := AddItem(Cart{}, latte)
	out := IncrementItem(c, "missing")

	if len(out) != 1 || out[0].Quantity != 1 {
		t.Errorf("expected unchanged cart, got %+v", out)
	}
}

func TestDecrementItem_RemovesAtZero(t *testing.T) {
	c := AddItem(Cart{}, latte)
	c = AddItem(c, coke)
	c = IncrementItem(c, c[0].ID)
	c = IncrementItem(c, c[0].ID)

	itemID := c[0].ID
	keptID := c[1].ID
	for n := 0; n < 3; n++ {
		c = DecrementItem(c, itemID)
	}

	if len(c) != 1 {
		t.Fatalf("expected item removed after decrementing to zero, got %d entries", len(c))
	}
	if c[0].ID != keptID {
		t.Errorf("expected remaining item %s, got %s", keptID, c[0].ID)
	}
	for _, item := range c {
		if item.Quantity < 1 {
			t.Errorf("no item may remain with quantity below 1, got %d", item.Quantity)
		}
	}
}

func TestDecrementItem_UnknownIDIsNoOp(t *testing.T) {
	c := AddItem(Cart{}, latte)
	out := DecrementItem(c, "missing")

	if len(out) != 1 || out[0].Quantity != 1 {
		t.Errorf("expected unchanged cart, got %+v", out)
	}
}

func TestRemoveItem_DeletesUnconditionally(t *testing.T) {
	c := AddItem(Cart{}, latte)
	c = IncrementItem(c, c[0].ID)
	c = IncrementItem(c, c[0].ID)

	out := RemoveItem(c, c[0].ID)
	if len(out) != 0 {
		t.Errorf("expected empty cart, got %d entries", len(out))
	}
}

func TestVoidItem_FlagsLine(t *testing.T) {
	c := AddItem(Cart{}, latte)
	out := VoidItem(c, c[0].ID)

	if !out[0].Voided {
		t.Error("expected item to be voided")
	}
	if c[0].Voided {
		t.Error("input cart must not be mutated")
	}
}

func TestMutations_DoNotAliasInput(t *testing.T) {
	c := AddItem(Cart{}, latte)
	c, err := AddOrIncrementAddOn(c, c[0].ID, shot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	before := c
	beforeQty := before[0].Quantity
	beforeAddOnQty := before[0].AddOns[0].Quantity

	mutated := IncrementItem(c, c[0].ID)
	mutated, err = AddOrIncrementAddOn(mutated, mutated[0].ID, shot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mutated = DecrementItem(mutated, mutated[0].ID)

	if before[0].Quantity != beforeQty {
		t.Errorf("prior cart quantity changed: %d", before[0].Quantity)
	}
	if before[0].AddOns[0].Quantity != beforeAddOnQty {
		t.Errorf("prior cart add-on quantity changed: %d", before[0].AddOns[0].Quantity)
	}
	if mutated[0].AddOns[0].Quantity != 2 {
		t.Errorf("expected mutated add-on quantity 2, got %d", mutated[0].AddOns[0].Quantity)
	}
}

func TestAddOrIncrementAddOn(t *testing.T) {
	c := AddItem(Cart{}, latte)

	c, err := AddOrIncrementAddOn(c, c[0].ID, shot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, err = AddOrIncrementAddOn(c, c[0].ID, shot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(c[0].AddOns) != 1 {
		t.Fatalf("expected 1 add-on line, got %d", len(c[0].AddOns))
	}
	if c[0].AddOns[0].Quantity != 2 {
		t.Errorf("expected add-on quantity 2, got %d", c[0].AddOns[0].Quantity)
	}
	if c[0].AddOns[0].ID == c[0].ID {
		t.Error("add-on id must be distinct from parent id")
	}
}

func TestAddOrIncrementAddOn_MissingParent(t *testing.T) {
	c := AddItem(Cart{}, latte)

	out, err := AddOrIncrementAddOn(c, "missing", shot)
	if err != ErrParentNotFound {
		t.Errorf("expected ErrParentNotFound, got %v", err)
	}
	if len(out) != 1 || len(out[0].AddOns) != 0 {
		t.Errorf("cart must be unchanged on parent-not-found")
	}
}

func TestDecrementAddOn_RemovesAtZero(t *testing.T) {
	c := AddItem(Cart{}, latte)
	c, _ = AddOrIncrementAddOn(c, c[0].ID, shot)
	c, _ = AddOrIncrementAddOn(c, c[0].ID, shot)

	c = DecrementAddOn(c, c[0].ID, shot.ID)
	if c[0].AddOns[0].Quantity != 1 {
		t.Errorf("expected add-on quantity 1, got %d", c[0].AddOns[0].Quantity)
	}

	c = DecrementAddOn(c, c[0].ID, shot.ID)
	if len(c[0].AddOns) != 0 {
		t.Errorf("expected add-on removed at zero, got %d lines", len(c[0].AddOns))
	}

	// Unknown add-on and unknown parent are no-ops
	c = DecrementAddOn(c, c[0].ID, 999)
	c = DecrementAddOn(c, "missing", shot.ID)
	if len(c) != 1 {
		t.Errorf("expected cart unchanged, got %d entries", len(c))
	}
}

func TestExpandStagedEntries(t *testing.T) {
	staged := NewCartItem(coke)
	staged.Quantity = 3

	c := ExpandStagedEntries([]CartItem{staged}, Cart{})

	if len(c) != 3 {
		t.Fatalf("expected 3 discrete entries, got %d", len(c))
	}
	seen := map[string]bool{}
	for _, item := range c {
		if item.Quantity != 1 {
			t.Errorf("expected quantity 1, got %d", item.Quantity)
		}
		if seen[item.ID] {
			t.Errorf("duplicate id %s in expanded entries", item.ID)
		}
		seen[item.ID] = true
		if item.ProductAbbrev != "COKE" {
			t.Errorf("expected abbrev COKE, got %s", item.ProductAbbrev)
		}
	}
}

func TestExpandStagedEntries_AppendsToExistingCart(t *testing.T) {
	c := AddItem(Cart{}, latte)
	staged := NewCartItem(coke)
	staged.Quantity = 2

	out := ExpandStagedEntries([]CartItem{staged}, c)

	if len(out) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(out))
	}
	if out[0].ProductAbbrev != "LATTE" {
		t.Errorf("existing entries must keep insertion order, got %s first", out[0].ProductAbbrev)
	}
	if len(c) != 1 {
		t.Errorf("input cart must be unchanged, got %d entries", len(c))
	}
}
