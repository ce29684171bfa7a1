package queries

import (
	"errors"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/pkg/guard"
)

var ErrGetOrderByNumberQueryIsNotConstructed = errors.New(
	"GetOrderByNumberQuery must be created via NewGetOrderByNumberQuery constructor",
)

// GetOrderByNumberQuery looks an order up by its business number. Backs the
// quick-jump action on the scanner form.
type GetOrderByNumberQuery struct { //nolint:recvcheck //using for validation
	number kernel.OrderNumber

	guard guard.ConstructorGuard
}

// NewGetOrderByNumberQuery creates a query for the given order number.
func NewGetOrderByNumberQuery(number kernel.OrderNumber) (GetOrderByNumberQuery, error) {
	if err := number.Validate(); err != nil {
		return GetOrderByNumberQuery{}, err
	}

	return GetOrderByNumberQuery{
		number: number,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByNumberQueryIsNotConstructed)
}

// Number returns the queried order number.
func (q GetOrderByNumberQuery) Number() kernel.OrderNumber {
	return q.number
}
