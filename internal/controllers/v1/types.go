package v1

import (
	"github.com/budgetplanner/backend/internal/types"
)

type URIMonth struct {
	Month types.Month `uri:"month" example:"2025-03"` // Year and month in YYYY-MM format
}
