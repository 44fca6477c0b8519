// internal/domain/report/tally.go
package report

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/your-org/pos-backend/internal/domain/expense"
	"github.com/your-org/pos-backend/internal/domain/order"
)

// TallyRow is one product line of the sales report. Rows are grouped by the
// (abbrev, unit price) pair, so the same product sold at two prices shows
// as two rows.
type TallyRow struct {
	ProductAbbrev string          `json:"product_abbrev"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Quantity      int             `json:"quantity"`
	Revenue       decimal.Decimal `json:"revenue"`
}

// SalesReport aggregates a scope of orders and expenses
type SalesReport struct {
	Rows       []TallyRow      `json:"rows"`
	GrossSales decimal.Decimal `json:"gross_sales"`
	Expenses   decimal.Decimal `json:"expenses"`
	NetSales   decimal.Decimal `json:"net_sales"`
}

type tallyKey struct {
	abbrev string
	price  string
}

// TallyProducts sums quantities per (abbrev, unit price) pair across every
// order in the set, counting a product both where it appears as a cart line
// and where it is nested as an add-on. Add-on units scale with the parent
// line's quantity, matching how they are priced. Voided lines are skipped.
// Rows come back sorted by descending quantity, stable on input order.
func TallyProducts(orders []order.Order) []TallyRow {
	rows := []TallyRow{}
	index := map[tallyKey]int{}

	record := func(abbrev string, price decimal.Decimal, quantity int, revenue decimal.Decimal) {
		key := tallyKey{abbrev: abbrev, price: price.String()}
		if i, ok := index[key]; ok {
			rows[i].Quantity += quantity
			rows[i].Revenue = rows[i].Revenue.Add(revenue)
			return
		}
		index[key] = len(rows)
		rows = append(rows, TallyRow{
			ProductAbbrev: abbrev,
			UnitPrice:     price,
			Quantity:      quantity,
			Revenue:       revenue,
		})
	}

	for _, o := range orders {
		for _, item := range o.CartItems {
			if item.Voided {
				continue
			}
			record(item.ProductAbbrev, item.UnitPrice, item.Quantity,
				item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))

			for _, addOn := range item.AddOns {
				if addOn.Voided {
					continue
				}
				units := addOn.Quantity * item.Quantity
				record(addOn.ProductAbbrev, addOn.UnitPrice, units,
					addOn.UnitPrice.Mul(decimal.NewFromInt(int64(units))))
			}
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Quantity > rows[j].Quantity
	})
	return rows
}

// GrossSales sums the cart totals of every order in the set, using the same
// add-on compounding rule the terminal prices with.
func GrossSales(orders []order.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.CartItems.Total())
	}
	return total
}

// TotalExpenses sums quantity x unit price over the expense records
func TotalExpenses(records []expense.ExpenseRecord) decimal.Decimal {
	total := decimal.Zero
	for _, record := range records {
		total = total.Add(record.Amount())
	}
	return total
}

// BuildSalesReport reduces already-scoped order and expense lists into a
// report. Filtering by store and date range happens upstream.
func BuildSalesReport(orders []order.Order, expenses []expense.ExpenseRecord) SalesReport {
	gross := GrossSales(orders)
	spent := TotalExpenses(expenses)
	return SalesReport{
		Rows:       TallyProducts(orders),
		GrossSales: gross,
		Expenses:   spent,
		NetSales:   gross.Sub(spent),
	}
}
