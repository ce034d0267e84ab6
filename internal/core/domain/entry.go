package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind indicates whether a ledger entry is money coming in or going out.
type EntryKind string

const (
	Income  EntryKind = "INCOME"
	Expense EntryKind = "EXPENSE"
)

// Category and note values that mark ledger entries produced by the payoff
// planner. PlanSentinel is the sole mechanism for telling generated
// installments apart from manually entered "Debt Payment" rows, so bulk
// deletes during plan regeneration never touch user data.
const (
	DebtPaymentCategory = "Debt Payment"
	PlanSentinel        = "auto-generated payoff installment"
)

// Entry represents a single dated money movement in the ledger.
// Amount is always non-negative; EntryKind carries the sign.
type Entry struct {
	EntryID  string          `json:"entryID"`  // Primary Key (UUID)
	Date     time.Time       `json:"date"`     // Day granularity, stored at midnight UTC
	Kind     EntryKind       `json:"kind"`     // INCOME or EXPENSE
	Amount   decimal.Decimal `json:"amount"`   // Non-negative, 2 decimal places
	Category string          `json:"category"` // Grouping label
	LineItem string          `json:"lineItem"` // Specific budget line within the category
	Note     string          `json:"note"`     // Optional free text; PlanSentinel for generated rows
	AuditFields
}

// IsGenerated reports whether this entry was produced by the payoff planner.
func (e Entry) IsGenerated() bool {
	return e.Kind == Expense && e.Category == DebtPaymentCategory && e.Note == PlanSentinel
}
