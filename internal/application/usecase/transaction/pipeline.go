// Package transaction contains transaction-related use cases.
package transaction

import (
	"sort"
	"strings"
	"time"

	"github.com/moneyboard/backend/internal/domain/entity"
)

// FilterAll is the filter value that matches every category or type.
const FilterAll = "all"

// Filter holds the criteria of the transaction list view. Zero values and
// FilterAll are both treated as "no constraint".
type Filter struct {
	Search   string
	Category string
	Type     string
	From     *time.Time
	To       *time.Time
}

// SortKey selects the field the transaction list is ordered by.
type SortKey string

const (
	SortByDate        SortKey = "date"
	SortByAmount      SortKey = "amount"
	SortByDescription SortKey = "description"
)

// SortDirection selects ascending or descending order.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ApplyFilter keeps entries whose description or category contains the
// search text case-insensitively, whose category and type match their
// filters (or the filters are "all"), and whose date falls inside the
// inclusive [from, to] bounds when set. Input order is preserved.
func ApplyFilter(txns []*entity.Transaction, f Filter) []*entity.Transaction {
	search := strings.ToLower(f.Search)

	out := make([]*entity.Transaction, 0, len(txns))
	for _, t := range txns {
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Description), search) &&
			!strings.Contains(strings.ToLower(t.Category.String()), search) {
			continue
		}
		if f.Category != "" && f.Category != FilterAll && t.Category.String() != f.Category {
			continue
		}
		if f.Type != "" && f.Type != FilterAll && string(t.Type) != f.Type {
			continue
		}
		if f.From != nil && t.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && t.Date.After(*f.To) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SortTransactions orders the slice in place by the chosen key and
// direction. The sort is stable so that entries comparing equal keep the
// order the filter step produced.
func SortTransactions(txns []*entity.Transaction, key SortKey, dir SortDirection) {
	less := func(a, b *entity.Transaction) int {
		switch key {
		case SortByAmount:
			return a.Amount.Cmp(b.Amount)
		case SortByDescription:
			return strings.Compare(strings.ToLower(a.Description), strings.ToLower(b.Description))
		default: // SortByDate
			return a.Date.Compare(b.Date)
		}
	}

	sort.SliceStable(txns, func(i, j int) bool {
		c := less(txns[i], txns[j])
		if dir == SortDesc {
			return c > 0
		}
		return c < 0
	})
}
