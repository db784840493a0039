package models

import (
	"sort"

	"github.com/budgetplanner/backend/internal/types"
	"github.com/shopspring/decimal"
)

// ItemKey is the composite key identifying an entry within a month.
type ItemKey struct {
	Category    string `json:"category" example:"Fixkosten"`
	Subcategory string `json:"subcategory" example:"Wohnen"`
	Item        string `json:"item" example:"Miete"`
}

// Entry is the (amount, note) pair stored against one item for one
// month. The zero value is the implicit entry of every item that has
// not been edited.
type Entry struct {
	Amount decimal.Decimal `json:"amount" example:"14.03"`
	Note   string          `json:"note" example:"Lunch" default:""`
}

// IsZero reports whether the entry carries no data.
func (e Entry) IsZero() bool {
	return e.Amount.IsZero() && e.Note == ""
}

// Ledger holds all entries of a single month. Entries are stored
// sparsely: items without an explicit entry read as the zero Entry.
type Ledger struct {
	Month   types.Month
	entries map[ItemKey]Entry
}

// NewLedger returns an empty ledger for a month.
func NewLedger(month types.Month) *Ledger {
	return &Ledger{
		Month:   month,
		entries: map[ItemKey]Entry{},
	}
}

// Get returns the entry for a key. Absent keys return the zero Entry,
// never an error.
func (l *Ledger) Get(key ItemKey) Entry {
	return l.entries[key]
}

// Set stores an entry. Setting a zero entry removes the key so that
// the ledger stays sparse.
func (l *Ledger) Set(key ItemKey, entry Entry) {
	if entry.IsZero() {
		delete(l.entries, key)
		return
	}

	l.entries[key] = entry
}

// Delete removes an entry.
func (l *Ledger) Delete(key ItemKey) {
	delete(l.entries, key)
}

// Len returns the number of explicit entries.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// All returns all explicit entries keyed by item. The map is a copy,
// mutating it does not change the ledger.
func (l *Ledger) All() map[ItemKey]Entry {
	entries := make(map[ItemKey]Entry, len(l.entries))
	for key, entry := range l.entries {
		entries[key] = entry
	}

	return entries
}

// Keys returns the keys of all explicit entries in lexical order.
func (l *Ledger) Keys() []ItemKey {
	keys := make([]ItemKey, 0, len(l.entries))
	for key := range l.entries {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Category != keys[j].Category {
			return keys[i].Category < keys[j].Category
		}
		if keys[i].Subcategory != keys[j].Subcategory {
			return keys[i].Subcategory < keys[j].Subcategory
		}
		return keys[i].Item < keys[j].Item
	})

	return keys
}
