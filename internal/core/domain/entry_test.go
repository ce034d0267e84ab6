package domain_test

import (
	"testing"

	"github.com/mpalomar/budgeteer/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEntryIsGenerated(t *testing.T) {
	tests := []struct {
		name  string
		entry domain.Entry
		want  bool
	}{
		{
			name: "planner installment",
			entry: domain.Entry{
				Kind:     domain.Expense,
				Category: domain.DebtPaymentCategory,
				LineItem: "Card A",
				Note:     domain.PlanSentinel,
			},
			want: true,
		},
		{
			name: "manual debt payment without note",
			entry: domain.Entry{
				Kind:     domain.Expense,
				Category: domain.DebtPaymentCategory,
				LineItem: "Card A",
			},
			want: false,
		},
		{
			name: "manual debt payment with user note",
			entry: domain.Entry{
				Kind:     domain.Expense,
				Category: domain.DebtPaymentCategory,
				LineItem: "Card A",
				Note:     "paid extra this month",
			},
			want: false,
		},
		{
			name: "income with sentinel note",
			entry: domain.Entry{
				Kind:     domain.Income,
				Category: domain.DebtPaymentCategory,
				LineItem: "Card A",
				Note:     domain.PlanSentinel,
			},
			want: false,
		},
		{
			name: "other category with sentinel note",
			entry: domain.Entry{
				Kind:     domain.Expense,
				Category: "Groceries",
				LineItem: "Card A",
				Note:     domain.PlanSentinel,
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.entry.Amount = decimal.RequireFromString("10.00")
			assert.Equal(t, tt.want, tt.entry.IsGenerated())
		})
	}
}
