package pgsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The bulk delete used by plan regeneration must discriminate on every
// sentinel field. A predicate that matched on line item alone would also
// delete manually entered "Debt Payment" rows for the same debt.
func TestPlanEntriesPredicateBindsAllSentinelColumns(t *testing.T) {
	assert.Contains(t, planEntriesPredicate, "kind = $1")
	assert.Contains(t, planEntriesPredicate, "category = $2")
	assert.Contains(t, planEntriesPredicate, "line_item = $3")
	assert.Contains(t, planEntriesPredicate, "note = $4")
}
