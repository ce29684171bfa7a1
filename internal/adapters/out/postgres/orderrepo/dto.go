// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the packaging
// order aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The status is stored by name so the report queries can filter
// on it without mapping through the enum.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number          string    `gorm:"type:varchar(32);uniqueIndex"`
	Responsible     string
	Status          string `gorm:"type:varchar(16);index"`
	DefectiveReason string
	DefectiveAt     *time.Time `gorm:"index"`
	DefectiveBy     string
	AutoPrintLabels bool
	LastLabelID     *uuid.UUID `gorm:"type:uuid"`
	LabelCount      int

	Items []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one item row. Items belong to exactly one order and
// are removed with it through the foreign key constraint.
type ItemDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;index"`
	ItemCode        string    `gorm:"index"`
	ProductName     string
	Dimensions      string
	IsPacked        bool
	PackDate        *time.Time
	IsDefective     bool
	DefectiveReason string
	DefectiveAt     *time.Time
	DefectiveBy     string
}

// TableName overrides GORM's default naming convention to use "items".
func (ItemDTO) TableName() string {
	return "items"
}

// fromDomain converts an order aggregate with its items to database rows.
func fromDomain(aggregate *order.Order) OrderDTO {
	var lastLabelID *uuid.UUID
	if id := aggregate.LastLabelID(); id != nil {
		raw := id.Bytes()
		lastLabelID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:              item.ID().Bytes(),
			OrderID:         aggregate.ID().Bytes(),
			ItemCode:        item.ItemCode(),
			ProductName:     item.ProductName(),
			Dimensions:      item.Dimensions(),
			IsPacked:        item.IsPacked(),
			PackDate:        item.PackDate(),
			IsDefective:     item.IsDefective(),
			DefectiveReason: item.DefectiveReason(),
			DefectiveAt:     item.DefectiveAt(),
			DefectiveBy:     item.DefectiveBy(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		Number:          aggregate.Number().String(),
		Responsible:     aggregate.Responsible(),
		Status:          aggregate.Status().String(),
		DefectiveReason: aggregate.DefectiveReason(),
		DefectiveAt:     aggregate.DefectiveAt(),
		DefectiveBy:     aggregate.DefectiveBy(),
		AutoPrintLabels: aggregate.AutoPrintLabels(),
		LastLabelID:     lastLabelID,
		LabelCount:      aggregate.LabelCount(),
		Items:           items,
	}
}

// toDomain reconstructs the order aggregate from database rows using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := kernel.NewOrderNumber(dto.Number)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var lastLabelID *kernel.UUID
	if dto.LastLabelID != nil {
		labelID, labelErr := kernel.UUIDFromBytes((*dto.LastLabelID)[:])
		if labelErr != nil {
			return nil, labelErr
		}
		lastLabelID = &labelID
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := toDomainItem(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		number,
		dto.Responsible,
		status,
		dto.DefectiveReason,
		dto.DefectiveAt,
		dto.DefectiveBy,
		items,
		dto.AutoPrintLabels,
		lastLabelID,
		dto.LabelCount,
	)
}

func toDomainItem(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(
		id,
		dto.ItemCode,
		dto.ProductName,
		dto.Dimensions,
		dto.IsPacked,
		dto.PackDate,
		dto.IsDefective,
		dto.DefectiveReason,
		dto.DefectiveAt,
		dto.DefectiveBy,
	)
}
