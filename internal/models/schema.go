// Package models implements the domain models for the Budget Planner backend.
package models

import (
	"sort"

	"golang.org/x/exp/slices"
)

// Schema is the category structure of a budget: a mapping from main
// category to a mapping from subcategory to the list of items.
//
// It is persisted as-is in the "structure" key of month files and of
// the settings file. Ledger entries referencing paths that are no
// longer part of the schema are tolerated everywhere, lookups for
// missing paths return zero values instead of errors.
type Schema map[string]map[string][]string

// DefaultSchema returns the category structure that is used when no
// settings file exists yet.
func DefaultSchema() Schema {
	return Schema{
		"Einnahmen": {
			"Gehalt":    {"Gehalt Hauptjob", "Nebentätigkeit"},
			"Sonstiges": {"Geschenke", "Verkauf"},
		},
		"Fixkosten": {
			"Wohnen":         {"Miete", "Strom", "Wasser"},
			"Versicherungen": {"Krankenversicherung", "Hausrat"},
		},
		"Variable Kosten": {
			"Essen":    {"Supermarkt", "Restaurant"},
			"Freizeit": {"Abos", "Urlaub", "Kino"},
		},
		"Sparen": {
			"Ziele": {"Notgroschen", "Urlaub", "Rente"},
		},
	}
}

// Clone returns a deep copy of the schema.
func (s Schema) Clone() Schema {
	clone := make(Schema, len(s))
	for category, subcategories := range s {
		clone[category] = make(map[string][]string, len(subcategories))
		for subcategory, items := range subcategories {
			clone[category][subcategory] = slices.Clone(items)
		}
	}

	return clone
}

// MainCategories returns the main category names in lexical order.
func (s Schema) MainCategories() []string {
	categories := make([]string, 0, len(s))
	for category := range s {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	return categories
}

// Subcategories returns the subcategory names of a main category in
// lexical order. An unknown main category yields an empty list.
func (s Schema) Subcategories(category string) []string {
	subcategories := make([]string, 0, len(s[category]))
	for subcategory := range s[category] {
		subcategories = append(subcategories, subcategory)
	}
	sort.Strings(subcategories)

	return subcategories
}

// Items returns the items of a subcategory in their configured order.
// An unknown path yields an empty list.
func (s Schema) Items(category, subcategory string) []string {
	return slices.Clone(s[category][subcategory])
}

// Contains reports whether the (category, subcategory, item) path is
// part of the schema.
func (s Schema) Contains(category, subcategory, item string) bool {
	return slices.Contains(s[category][subcategory], item)
}

// AddCategory adds a main category. Adding an existing category is a no-op.
func (s Schema) AddCategory(category string) {
	if _, ok := s[category]; !ok {
		s[category] = map[string][]string{}
	}
}

// AddSubcategory adds a subcategory, creating the main category if needed.
func (s Schema) AddSubcategory(category, subcategory string) {
	s.AddCategory(category)
	if _, ok := s[category][subcategory]; !ok {
		s[category][subcategory] = []string{}
	}
}

// AddItem adds an item, creating the category and subcategory if
// needed. Adding an existing item is a no-op.
func (s Schema) AddItem(category, subcategory, item string) {
	s.AddSubcategory(category, subcategory)
	if !slices.Contains(s[category][subcategory], item) {
		s[category][subcategory] = append(s[category][subcategory], item)
	}
}

// RemoveItem removes an item from the schema. Subcategories and main
// categories that become empty are pruned. Removing an unknown item is
// a no-op.
func (s Schema) RemoveItem(category, subcategory, item string) {
	items, ok := s[category][subcategory]
	if !ok {
		return
	}

	if i := slices.Index(items, item); i >= 0 {
		s[category][subcategory] = slices.Delete(items, i, i+1)
	}

	if len(s[category][subcategory]) == 0 {
		delete(s[category], subcategory)
	}

	if len(s[category]) == 0 {
		delete(s, category)
	}
}
