// Package v1 implements the handlers for the v1 API.
package v1

import (
	"github.com/budgetplanner/backend/internal/storage"
)

var store *storage.Store

// Connect sets the store all handlers operate on. It must be called
// before any route is served.
func Connect(s *storage.Store) {
	store = s
}
