package dto

import (
	"time"

	"github.com/mpalomar/budgeteer/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for day-granularity dates.
const DateLayout = "2006-01-02"

// CreateEntryRequest defines the data needed to create a new ledger entry.
type CreateEntryRequest struct {
	Date     string           `json:"date" binding:"required,datetime=2006-01-02"`
	Kind     domain.EntryKind `json:"kind" binding:"required,entrykind"`
	Amount   decimal.Decimal  `json:"amount" binding:"required"`
	Category string           `json:"category" binding:"required"`
	LineItem string           `json:"lineItem" binding:"required"`
	Note     string           `json:"note"` // Optional
}

// UpdateEntryRequest defines the fields a manual edit may change.
// Kind, category and line item are immutable after creation.
type UpdateEntryRequest struct {
	Date   *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Amount *decimal.Decimal `json:"amount"`
	Note   *string          `json:"note"`
}

// ListEntriesParams defines query parameters for listing entries.
// A month filter is only meaningful within a year, so month requires year.
type ListEntriesParams struct {
	Year     int    `form:"year" binding:"required_with=Month,omitempty,min=1970,max=9999"`
	Month    int    `form:"month" binding:"omitempty,min=1,max=12"`
	Kind     string `form:"kind" binding:"omitempty,entrykind"`
	Category string `form:"category"`
	LineItem string `form:"lineItem"`
}

// EntryResponse defines the data returned for a ledger entry.
type EntryResponse struct {
	EntryID       string           `json:"entryID"`
	Date          string           `json:"date"` // YYYY-MM-DD
	Kind          domain.EntryKind `json:"kind"`
	Amount        decimal.Decimal  `json:"amount"`
	Category      string           `json:"category"`
	LineItem      string           `json:"lineItem"`
	Note          string           `json:"note"`
	Generated     bool             `json:"generated"` // True for payoff planner rows
	CreatedAt     time.Time        `json:"createdAt"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}

// ToEntryResponse converts a domain.Entry to an EntryResponse DTO.
func ToEntryResponse(e *domain.Entry) EntryResponse {
	return EntryResponse{
		EntryID:       e.EntryID,
		Date:          e.Date.Format(DateLayout),
		Kind:          e.Kind,
		Amount:        e.Amount,
		Category:      e.Category,
		LineItem:      e.LineItem,
		Note:          e.Note,
		Generated:     e.IsGenerated(),
		CreatedAt:     e.CreatedAt,
		LastUpdatedAt: e.LastUpdatedAt,
	}
}

// ToListEntryResponse converts a slice of domain.Entry to response DTOs.
func ToListEntryResponse(entries []domain.Entry) []EntryResponse {
	res := make([]EntryResponse, len(entries))
	for i := range entries {
		res[i] = ToEntryResponse(&entries[i])
	}
	return res
}
