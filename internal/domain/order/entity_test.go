package order

import (
	"strings"
	"testing"
)

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusConfirmed, OrderStatusPreparing, true},
		{OrderStatusConfirmed, OrderStatusDeclined, true},
		{OrderStatusConfirmed, OrderStatusCancelled, true},
		{OrderStatusConfirmed, OrderStatusServed, false},
		{OrderStatusConfirmed, OrderStatusCompleted, false},
		{OrderStatusPreparing, OrderStatusServed, true},
		{OrderStatusPreparing, OrderStatusCancelled, true},
		{OrderStatusPreparing, OrderStatusDeclined, false},
		{OrderStatusServed, OrderStatusCompleted, true},
		{OrderStatusServed, OrderStatusCancelled, false},
		{OrderStatusCompleted, OrderStatusPreparing, false},
		{OrderStatusDeclined, OrderStatusConfirmed, false},
		{OrderStatusCancelled, OrderStatusConfirmed, false},
	}

	for _, tc := range cases {
		o := Order{Status: tc.from}
		if got := o.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	terminal := []OrderStatus{OrderStatusCompleted, OrderStatusDeclined, OrderStatusCancelled}
	for _, status := range terminal {
		o := Order{Status: status}
		if !o.IsTerminal() {
			t.Errorf("expected %s to be terminal", status)
		}
	}

	active := []OrderStatus{OrderStatusConfirmed, OrderStatusPreparing, OrderStatusServed}
	for _, status := range active {
		o := Order{Status: status}
		if o.IsTerminal() {
			t.Errorf("expected %s to be active", status)
		}
	}
}

func TestAddHistory(t *testing.T) {
	o := Order{ID: 7}
	o.AddHistory("confirmed", "cashier@example.com")
	o.AddHistory("preparing", "kitchen@example.com")

	if len(o.History) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(o.History))
	}
	if o.History[0].Action != "confirmed" || o.History[0].Actor != "cashier@example.com" {
		t.Errorf("unexpected first entry: %+v", o.History[0])
	}
	if o.History[1].OrderID != 7 {
		t.Errorf("expected order id 7, got %d", o.History[1].OrderID)
	}
	if o.History[0].CreatedAt.IsZero() {
		t.Error("expected timestamp on history entry")
	}
}

func TestGenerateOrderNumber(t *testing.T) {
	o := Order{ID: 42}
	number := o.GenerateOrderNumber()

	if !strings.HasPrefix(number, "ORD-") {
		t.Errorf("expected ORD- prefix, got %s", number)
	}
	if !strings.HasSuffix(number, "-00042") {
		t.Errorf("expected zero-padded id suffix, got %s", number)
	}
}
