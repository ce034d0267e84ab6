package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryTotal is the summed amount for one (kind, category) pair over a
// reporting period.
type CategoryTotal struct {
	Kind     EntryKind
	Category string
	Total    decimal.Decimal
}

// MonthTotal is the income and expense sum for one calendar month.
type MonthTotal struct {
	Year    int
	Month   time.Month
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Net returns income minus expense for the month.
func (m MonthTotal) Net() decimal.Decimal {
	return m.Income.Sub(m.Expense)
}
