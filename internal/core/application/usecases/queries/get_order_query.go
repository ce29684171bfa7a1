package queries

import (
	"errors"
	"time"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full form view of one order: header fields,
// derived counters, items and button visibility flags.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	q := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the queried order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderItemResponse is one item line of the order view.
type GetOrderItemResponse struct {
	ID              kernel.UUID
	ItemCode        string
	ProductName     string
	Dimensions      string
	IsPacked        bool
	PackDate        *time.Time
	IsDefective     bool
	DefectiveReason string
	DefectiveBy     string
}

// GetOrderQueryResponse is the order form view: header fields, derived
// counters and the visibility flags of the form buttons.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	Number          string
	Responsible     string
	Status          string
	DefectiveReason string
	DefectiveAt     *time.Time
	DefectiveBy     string

	TotalItems     int
	PackedItems    int
	DefectiveItems int
	Progress       float64

	AutoPrintLabels bool
	LabelCount      int

	ShowMarkCompleted bool
	ShowResetDraft    bool
	ShowCancelOrder   bool
	ShowMarkDefective bool
	ShowResetPacking  bool

	Items []GetOrderItemResponse
}
