package order

import (
	"errors"
	"time"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/pkg/errs"
	"packaging/internal/pkg/guard"
)

// DefaultItemDefectiveReason is recorded when an operator flags an item
// defective without supplying a reason.
const DefaultItemDefectiveReason = "Marked as defective by operator"

var (
	// ErrItemCodeIsRequired is returned when creating an item without a code.
	ErrItemCodeIsRequired = errs.NewValueIsRequiredError("item code")
	// ErrProductNameIsRequired is returned when creating an item without a product name.
	ErrProductNameIsRequired = errs.NewValueIsRequiredError("product name")
	// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is one physical unit within a packaging order. It belongs to exactly
// one Order, which owns it exclusively; items never outlive their order.
//
// The item code is free text and only meaningful for lookup within its
// order; it is not unique across the system. Packed and defective flags are
// independent of each other, and both feed the owning order's derived
// counters and state.
//
// All mutations happen through the owning Order so the aggregate can
// recompute its state synchronously.
type Item struct {
	// id uniquely identifies the item
	id kernel.UUID
	// itemCode is the operator-facing code used for quick lookup
	itemCode string
	// productName describes the packed product
	productName string
	// dimensions is an optional free-text size description
	dimensions string

	// isPacked and packDate track the packing status
	isPacked bool
	packDate *time.Time

	// defect tracking, aggregated into the order's derived state
	isDefective     bool
	defectiveReason string
	defectiveAt     *time.Time
	defectiveBy     string

	guard guard.ConstructorGuard
}

// NewItem creates a new unpacked, non-defective Item.
// The item code and product name are required; dimensions may be empty.
func NewItem(id kernel.UUID, itemCode, productName, dimensions string) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setItemCode(itemCode),
		item.setProductName(productName),
	); err != nil {
		return nil, err
	}

	item.dimensions = dimensions
	return item, nil
}

// RestoreItem reconstructs an Item from persistent storage, including its
// packing and defect state.
func RestoreItem(
	id kernel.UUID,
	itemCode, productName, dimensions string,
	isPacked bool,
	packDate *time.Time,
	isDefective bool,
	defectiveReason string,
	defectiveAt *time.Time,
	defectiveBy string,
) (*Item, error) {
	item, err := NewItem(id, itemCode, productName, dimensions)
	if err != nil {
		return nil, err
	}

	item.isPacked = isPacked
	item.packDate = packDate
	item.isDefective = isDefective
	item.defectiveReason = defectiveReason
	item.defectiveAt = defectiveAt
	item.defectiveBy = defectiveBy
	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ItemCode returns the operator-facing item code.
func (i *Item) ItemCode() string {
	return i.itemCode
}

// ProductName returns the product description.
func (i *Item) ProductName() string {
	return i.productName
}

// Dimensions returns the free-text dimensions, possibly empty.
func (i *Item) Dimensions() string {
	return i.dimensions
}

// IsPacked reports whether the item has been packed.
func (i *Item) IsPacked() bool {
	return i.isPacked
}

// PackDate returns the time the item was packed, nil when unpacked.
func (i *Item) PackDate() *time.Time {
	return i.packDate
}

// IsDefective reports whether the item has been flagged defective.
func (i *Item) IsDefective() bool {
	return i.isDefective
}

// DefectiveReason returns the recorded defect reason, empty when not defective.
func (i *Item) DefectiveReason() string {
	return i.defectiveReason
}

// DefectiveAt returns the time the defect was reported, nil when not defective.
func (i *Item) DefectiveAt() *time.Time {
	return i.defectiveAt
}

// DefectiveBy returns the operator who reported the defect.
func (i *Item) DefectiveBy() string {
	return i.defectiveBy
}

// markPacked sets the packed flag and pack date.
// Called by the owning Order, which recomputes afterwards.
func (i *Item) markPacked(now time.Time) {
	i.isPacked = true
	i.packDate = &now
}

// markUnpacked clears the packed flag and pack date.
func (i *Item) markUnpacked() {
	i.isPacked = false
	i.packDate = nil
}

// markDefective flags the item defective, recording reason, operator and
// timestamp. An empty reason falls back to DefaultItemDefectiveReason.
func (i *Item) markDefective(reason, operator string, now time.Time) {
	if reason == "" {
		reason = DefaultItemDefectiveReason
	}
	i.isDefective = true
	i.defectiveReason = reason
	i.defectiveAt = &now
	i.defectiveBy = operator
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setItemCode(itemCode string) error {
	if itemCode == "" {
		return ErrItemCodeIsRequired
	}
	i.itemCode = itemCode
	return nil
}

func (i *Item) setProductName(productName string) error {
	if productName == "" {
		return ErrProductNameIsRequired
	}
	i.productName = productName
	return nil
}
