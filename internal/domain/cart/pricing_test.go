package cart

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestItemSubtotal_CompoundsAddOnsWithParentQuantity(t *testing.T) {
	c := AddItem(Cart{}, latte)
	c = IncrementItem(c, c[0].ID)
	c, err := AddOrIncrementAddOn(c, c[0].ID, shot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 120*2 + 20*1*2
	got := ItemSubtotal(c[0])
	want := decimal.NewFromInt(280)
	if !got.Equal(want) {
		t.Errorf("expected subtotal %s, got %s", want, got)
	}
}

func TestAddOnSubtotal(t *testing.T) {
	a := NewCartAddOn(shot)
	a.Quantity = 3

	got := AddOnSubtotal(a, 2)
	want := decimal.NewFromInt(120) // 20*3*2
	if !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestTotal_SkipsVoidedItems(t *testing.T) {
	c := AddItem(Cart{}, latte)
	c = AddItem(c, coke)
	c = VoidItem(c, c[1].ID)

	got := c.Total()
	want := decimal.NewFromInt(120)
	if !got.Equal(want) {
		t.Errorf("expected total %s, got %s", want, got)
	}
}

func TestTotal_SumsItemSubtotals(t *testing.T) {
	c := AddItem(Cart{}, latte)
	c = AddItem(c, coke)
	c = IncrementItem(c, c[1].ID)
	c, err := AddOrIncrementAddOn(c, c[0].ID, shot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// latte 120 + shot 20, coke 50*2
	got := c.Total()
	want := decimal.NewFromInt(240)
	if !got.Equal(want) {
		t.Errorf("expected total %s, got %s", want, got)
	}
}

func TestTotal_EmptyCartIsZero(t *testing.T) {
	if !(Cart{}).Total().IsZero() {
		t.Error("expected zero total for empty cart")
	}
}

func TestTotalQuantity_SkipsVoided(t *testing.T) {
	c := AddItem(Cart{}, latte)
	c = IncrementItem(c, c[0].ID)
	c = AddItem(c, coke)
	c = VoidItem(c, c[1].ID)

	if got := c.TotalQuantity(); got != 2 {
		t.Errorf("expected total quantity 2, got %d", got)
	}
}

func TestCart_JSONRoundTrip(t *testing.T) {
	c := AddItem(Cart{}, latte)
	c = IncrementItem(c, c[0].ID)
	c = IncrementItem(c, c[0].ID)
	c, err := AddOrIncrementAddOn(c, c[0].ID, shot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded Cart
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if len(decoded) != 1 {
		t.Fatalf("expected 1 item, got %d", len(decoded))
	}
	if decoded[0].Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", decoded[0].Quantity)
	}
	if decoded[0].ProductAbbrev != "LATTE" {
		t.Errorf("expected abbrev LATTE, got %s", decoded[0].ProductAbbrev)
	}
	if !decoded[0].UnitPrice.Equal(decimal.NewFromInt(120)) {
		t.Errorf("expected price 120, got %s", decoded[0].UnitPrice)
	}
	if len(decoded[0].AddOns) != 1 || !decoded[0].AddOns[0].UnitPrice.Equal(decimal.NewFromInt(20)) {
		t.Errorf("add-ons did not survive round trip: %+v", decoded[0].AddOns)
	}
	if !decoded.Total().Equal(c.Total()) {
		t.Errorf("total changed across round trip: %s vs %s", decoded.Total(), c.Total())
	}
}

func TestCartItem_JSONFieldNames(t *testing.T) {
	c := AddItem(Cart{}, latte)
	c, err := AddOrIncrementAddOn(c, c[0].ID, shot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := json.Marshal(c[0])
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	for _, key := range []string{
		"id", "productId", "productCode", "productName", "productAbbrev",
		"price", "quantity", "notes", "addOns", "voided",
	} {
		if _, ok := fields[key]; !ok {
			t.Errorf("missing json field %q", key)
		}
	}
}
