// Package labelrepo persists shipping labels, including their rendered PDF
// documents, so reprints never regenerate a label.
package labelrepo

import (
	"time"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/core/domain/model/label"

	"github.com/google/uuid"
)

// LabelDTO represents the database structure for persisting labels.
// The document column holds the rendered PDF bytes.
type LabelDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number    string    `gorm:"type:varchar(32);uniqueIndex"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
	Document  []byte `gorm:"type:bytea"`
	IsPrinted bool
	PrintedAt *time.Time
}

// TableName overrides GORM's default naming convention to use "labels".
func (LabelDTO) TableName() string {
	return "labels"
}

func fromDomain(l *label.Label) LabelDTO {
	return LabelDTO{
		ID:        l.ID().Bytes(),
		Number:    l.Number().String(),
		OrderID:   l.OrderID().Bytes(),
		CreatedAt: l.CreatedAt(),
		Document:  l.Document(),
		IsPrinted: l.IsPrinted(),
		PrintedAt: l.PrintedAt(),
	}
}

func toDomain(dto LabelDTO) (*label.Label, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := kernel.NewLabelNumber(dto.Number)
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return label.RestoreLabel(
		id,
		number,
		orderID,
		dto.CreatedAt,
		dto.Document,
		dto.IsPrinted,
		dto.PrintedAt,
	)
}
