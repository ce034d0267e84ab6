package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debt represents an outstanding balance the user is paying down.
//
// PayoffPlanDate is a denormalized marker: when set, a generated payoff
// schedule is expected to exist in the ledger for this debt's name. The
// authoritative state is the presence of sentinel-marked entries; the marker
// is not re-validated after manual balance edits.
type Debt struct {
	DebtID         string           `json:"debtID"` // Primary Key (UUID)
	Name           string           `json:"name"`   // Join key against Entry.LineItem for generated rows
	CurrentBalance decimal.Decimal  `json:"currentBalance"`
	DueDayHint     string           `json:"dueDayHint"`               // Free text, e.g. "15th"; may be empty
	MinimumPayment *decimal.Decimal `json:"minimumPayment,omitempty"` // Nullable
	PayoffPlanDate *time.Time       `json:"payoffPlanDate,omitempty"` // Target payoff date of the active plan, if any
	AuditFields
}

// HasPlan reports whether an active payoff plan marker is set.
func (d Debt) HasPlan() bool {
	return d.PayoffPlanDate != nil
}
