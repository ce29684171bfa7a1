package queries

import (
	"errors"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/core/domain/model/order"
	"packaging/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves the order list view, optionally filtered by
// status. Backs the packaging board the operators work from.
type GetOrdersQuery struct {
	status    string
	hasFilter bool

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for all orders.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetOrdersQueryWithStatus creates a query for orders in one status.
func NewGetOrdersQueryWithStatus(status string) (GetOrdersQuery, error) {
	parsed, err := order.StatusFromString(status)
	if err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		status:    parsed.String(),
		hasFilter: true,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the status filter. Meaningful only when HasStatusFilter
// reports true.
func (q GetOrdersQuery) Status() string {
	return q.status
}

// HasStatusFilter reports whether the query filters by status.
func (q GetOrdersQuery) HasStatusFilter() bool {
	return q.hasFilter
}

// GetOrdersQueryResponse is one row of the order list view.
type GetOrdersQueryResponse struct {
	ID          kernel.UUID
	Number      string
	Responsible string
	Status      string

	TotalItems     int
	PackedItems    int
	DefectiveItems int
	Progress       float64

	LabelCount int
}
