package domain

import "time"

// EntryFilter narrows ledger queries. Nil fields are ignored. From and To
// are inclusive day bounds.
type EntryFilter struct {
	From     *time.Time
	To       *time.Time
	Kind     *EntryKind
	Category *string
	LineItem *string
}
