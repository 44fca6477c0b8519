package expense

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAmount(t *testing.T) {
	e := ExpenseRecord{Quantity: 3, UnitPrice: decimal.NewFromFloat(12.50)}

	if got := e.Amount(); !got.Equal(decimal.NewFromFloat(37.50)) {
		t.Errorf("expected 37.50, got %s", got)
	}
}

func TestValidateCategory(t *testing.T) {
	categoryID := uint(1)

	cases := []struct {
		name    string
		record  ExpenseRecord
		wantErr bool
	}{
		{"category only", ExpenseRecord{CategoryID: &categoryID}, false},
		{"other only", ExpenseRecord{OtherCategory: "Repairs"}, false},
		{"both set", ExpenseRecord{CategoryID: &categoryID, OtherCategory: "Repairs"}, true},
		{"neither set", ExpenseRecord{}, true},
	}

	for _, tc := range cases {
		err := tc.record.ValidateCategory()
		if tc.wantErr && err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
	}
}
