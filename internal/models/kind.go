package models

import (
	"fmt"
	"strings"
)

// CategoryKind is the explicit classification of a main category. It
// decides how the aggregator treats the amounts of the category.
//
// Kinds are configured per main category in the settings. For legacy
// data that predates explicit kinds, KindFromName derives the kind
// from the category name.
type CategoryKind string

const (
	KindIncome   CategoryKind = "income"
	KindFixed    CategoryKind = "fixed"
	KindVariable CategoryKind = "variable"
	KindSaving   CategoryKind = "saving"
)

var ErrCategoryKindInvalid = fmt.Errorf("the category kind must be one of %q, %q, %q, %q", KindIncome, KindFixed, KindVariable, KindSaving)

// ParseCategoryKind parses the textual representation of a kind.
func ParseCategoryKind(s string) (CategoryKind, error) {
	switch kind := CategoryKind(strings.ToLower(strings.TrimSpace(s))); kind {
	case KindIncome, KindFixed, KindVariable, KindSaving:
		return kind, nil
	default:
		return "", fmt.Errorf("%w, got %q", ErrCategoryKindInvalid, s)
	}
}

// IsExpense reports whether amounts of this kind count towards the
// total expenses. Everything that is not income is an expense, saving
// included.
func (k CategoryKind) IsExpense() bool {
	return k != KindIncome
}

// KindFromName derives the kind of a main category from its name.
//
// This is the migration heuristic for data saved before kinds were
// configured explicitly. Unrecognized names classify as variable
// spending, which matches how their amounts have always been summed.
func KindFromName(name string) CategoryKind {
	lower := strings.ToLower(name)

	switch {
	case strings.Contains(name, "Einnahmen") || strings.HasPrefix(lower, "ein"):
		return KindIncome
	case strings.Contains(name, "Fix") || strings.HasPrefix(lower, "fix"):
		return KindFixed
	case strings.Contains(name, "Variable") || strings.HasPrefix(lower, "var"):
		return KindVariable
	case name == "Sparen":
		return KindSaving
	default:
		return KindVariable
	}
}

// Kinds maps main category names to their configured kind.
type Kinds map[string]CategoryKind

// Of returns the kind of a main category. Categories without an
// explicit configuration fall back to the name heuristic, so the
// classification is total.
func (k Kinds) Of(name string) CategoryKind {
	if kind, ok := k[name]; ok {
		return kind
	}

	return KindFromName(name)
}

// ForSchema returns the kinds for every main category of the schema,
// resolving unconfigured categories through the name heuristic.
func (k Kinds) ForSchema(schema Schema) Kinds {
	resolved := make(Kinds, len(schema))
	for category := range schema {
		resolved[category] = k.Of(category)
	}

	return resolved
}
