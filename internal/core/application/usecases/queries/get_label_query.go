package queries

import (
	"errors"
	"time"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/pkg/guard"
)

var ErrGetLabelQueryIsNotConstructed = errors.New(
	"GetLabelQuery must be created via NewGetLabelQuery constructor",
)

// GetLabelQuery retrieves one label with its stored document. Backs the
// label download and view actions.
type GetLabelQuery struct { //nolint:recvcheck //using for validation
	labelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLabelQuery creates a query for the given label.
func NewGetLabelQuery(labelID kernel.UUID) (GetLabelQuery, error) {
	if err := labelID.Validate(); err != nil {
		return GetLabelQuery{}, err
	}

	return GetLabelQuery{
		labelID: labelID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLabelQuery) Validate() error {
	return q.guard.Validate(ErrGetLabelQueryIsNotConstructed)
}

// LabelID returns the identifier of the queried label.
func (q GetLabelQuery) LabelID() kernel.UUID {
	return q.labelID
}

// GetLabelQueryResponse is the label view with the stored PDF document.
type GetLabelQueryResponse struct {
	ID        kernel.UUID
	Number    string
	FileName  string
	CreatedAt time.Time
	Document  []byte
	IsPrinted bool
}
