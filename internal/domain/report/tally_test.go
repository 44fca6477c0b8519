package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/your-org/pos-backend/internal/domain/cart"
	"github.com/your-org/pos-backend/internal/domain/expense"
	"github.com/your-org/pos-backend/internal/domain/order"
)

func item(abbrev string, price int64, quantity int) cart.CartItem {
	return cart.CartItem{
		ID:            abbrev + "-id",
		ProductAbbrev: abbrev,
		UnitPrice:     decimal.NewFromInt(price),
		Quantity:      quantity,
	}
}

func orderWith(items ...cart.CartItem) order.Order {
	c := cart.Cart(items)
	return order.Order{
		CartItems:   c,
		TotalAmount: c.Total(),
		Status:      order.OrderStatusCompleted,
	}
}

func findRow(t *testing.T, rows []TallyRow, abbrev string, price int64) TallyRow {
	t.Helper()
	want := decimal.NewFromInt(price)
	for _, row := range rows {
		if row.ProductAbbrev == abbrev && row.UnitPrice.Equal(want) {
			return row
		}
	}
	t.Fatalf("no row for %s@%d in %+v", abbrev, price, rows)
	return TallyRow{}
}

func TestTallyProducts_GroupsAcrossOrders(t *testing.T) {
	orders := []order.Order{
		orderWith(item("COKE", 50, 1)),
		orderWith(item("COKE", 50, 1)),
	}

	rows := TallyProducts(orders)

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", rows[0].Quantity)
	}
	if !rows[0].Revenue.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected revenue 100, got %s", rows[0].Revenue)
	}
}

func TestTallyProducts_SplitsByUnitPrice(t *testing.T) {
	orders := []order.Order{
		orderWith(item("COKE", 50, 1), item("COKE", 60, 1)),
	}

	rows := TallyProducts(orders)

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows for same abbrev at different prices, got %d", len(rows))
	}
	findRow(t, rows, "COKE", 50)
	findRow(t, rows, "COKE", 60)
}

func TestTallyProducts_SkipsVoidedLines(t *testing.T) {
	voided := item("LATTE", 120, 1)
	voided.Voided = true

	rows := TallyProducts([]order.Order{orderWith(item("COKE", 50, 1), voided)})

	if len(rows) != 1 || rows[0].ProductAbbrev != "COKE" {
		t.Errorf("voided lines must not appear in the tally: %+v", rows)
	}
}

func TestTallyProducts_CountsAddOnsScaledByParent(t *testing.T) {
	parent := item("LATTE", 120, 2)
	parent.AddOns = []cart.CartAddOn{{
		ID:            "addon-id",
		ProductAbbrev: "XSHOT",
		UnitPrice:     decimal.NewFromInt(20),
		Quantity:      1,
	}}

	rows := TallyProducts([]order.Order{orderWith(parent)})

	shot := findRow(t, rows, "XSHOT", 20)
	if shot.Quantity != 2 {
		t.Errorf("expected 2 add-on units, got %d", shot.Quantity)
	}
	if !shot.Revenue.Equal(decimal.NewFromInt(40)) {
		t.Errorf("expected add-on revenue 40, got %s", shot.Revenue)
	}
}

func TestTallyProducts_SortedByQuantityDescending(t *testing.T) {
	orders := []order.Order{
		orderWith(item("COKE", 50, 1), item("LATTE", 120, 3), item("TEA", 40, 2)),
	}

	rows := TallyProducts(orders)

	for i := 1; i < len(rows); i++ {
		if rows[i].Quantity > rows[i-1].Quantity {
			t.Errorf("rows out of order at %d: %+v", i, rows)
		}
	}
	if rows[0].ProductAbbrev != "LATTE" {
		t.Errorf("expected LATTE first, got %s", rows[0].ProductAbbrev)
	}
}

func TestBuildSalesReport(t *testing.T) {
	orders := []order.Order{
		orderWith(item("COKE", 50, 2)),
		orderWith(item("LATTE", 120, 1)),
	}
	expenses := []expense.ExpenseRecord{
		{Particulars: "Beans", Quantity: 4, UnitPrice: decimal.NewFromInt(30)},
	}

	got := BuildSalesReport(orders, expenses)

	if !got.GrossSales.Equal(decimal.NewFromInt(220)) {
		t.Errorf("expected gross 220, got %s", got.GrossSales)
	}
	if !got.Expenses.Equal(decimal.NewFromInt(120)) {
		t.Errorf("expected expenses 120, got %s", got.Expenses)
	}
	if !got.NetSales.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected net 100, got %s", got.NetSales)
	}
	if len(got.Rows) != 2 {
		t.Errorf("expected 2 tally rows, got %d", len(got.Rows))
	}
}

func TestBuildSalesReport_EmptyScope(t *testing.T) {
	got := BuildSalesReport(nil, nil)

	if !got.GrossSales.IsZero() || !got.NetSales.IsZero() {
		t.Errorf("expected zero totals, got %+v", got)
	}
	if len(got.Rows) != 0 {
		t.Errorf("expected no rows, got %d", len(got.Rows))
	}
}
