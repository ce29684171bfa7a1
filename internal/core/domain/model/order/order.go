package order

import (
	"errors"
	"fmt"
	"math"
	"time"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/pkg/errs"
	"packaging/internal/pkg/guard"
)

var (
	// ErrResponsibleIsRequired is returned when creating an order without a
	// responsible operator.
	ErrResponsibleIsRequired = errs.NewValueIsRequiredError("responsible")
	// ErrOrderIsNotConstructed is returned when using an improperly
	// initialized Order.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrItemNotFound is returned when an item lookup within the order fails.
	ErrItemNotFound = errors.New("item not found in this order")
)

// Order is the aggregate root of the packaging workflow. It owns the items
// being packed, derives its counters (total/packed/defective, progress) from
// them, and advances its state automatically as items are packed or flagged
// defective.
//
// Invariants:
//   - the order number consists only of digits (kernel.OrderNumber)
//   - total/packed/defective counters always reflect the current item set;
//     they are derived on access and never independently writable
//   - progress is within [0,100] and 0 for an empty order
//   - automatic state transitions never leave the sticky states
//     (canceled, defective); only the explicit reset actions do
//
// All item mutations go through the aggregate and recompute the state
// synchronously before returning, so a caller always observes a consistent
// order after any operation.
type Order struct {
	id          kernel.UUID
	number      kernel.OrderNumber
	responsible string
	status      Status

	// defect metadata, set when the order enters the defective state
	defectiveReason string
	defectiveAt     *time.Time
	defectiveBy     string

	// items owned by the order; deleted with it
	items []*Item

	// label bookkeeping
	autoPrintLabels bool
	lastLabelID     *kernel.UUID
	labelCount      int

	// completionPending is set when recomputation advances the order to
	// Completed; the application layer consumes it to trigger label
	// auto-creation exactly once per completion event.
	completionPending bool

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Draft state with no items.
// Auto-printing of labels is enabled by default.
func NewOrder(id kernel.UUID, number kernel.OrderNumber, responsible string) (*Order, error) {
	order := &Order{
		status:          Draft,
		autoPrintLabels: true,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setNumber(number),
		order.setResponsible(responsible),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// including its items and label bookkeeping.
func RestoreOrder(
	id kernel.UUID,
	number kernel.OrderNumber,
	responsible string,
	status Status,
	defectiveReason string,
	defectiveAt *time.Time,
	defectiveBy string,
	items []*Item,
	autoPrintLabels bool,
	lastLabelID *kernel.UUID,
	labelCount int,
) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setNumber(number),
		order.setResponsible(responsible),
		order.setStatus(status),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	order.defectiveReason = defectiveReason
	order.defectiveAt = defectiveAt
	order.defectiveBy = defectiveBy
	order.autoPrintLabels = autoPrintLabels
	order.lastLabelID = lastLabelID
	order.labelCount = labelCount
	return order, nil
}

// Validate ensures the Order instance was created through NewOrder or
// RestoreOrder and that its number still matches the digits-only format.
// Repositories call this before every save.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	if err := o.guard.Validate(ErrOrderIsNotConstructed); err != nil {
		return err
	}
	return o.number.Validate()
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the order's sequence-assigned business number.
func (o *Order) Number() kernel.OrderNumber {
	return o.number
}

// Responsible returns the operator responsible for the order.
func (o *Order) Responsible() string {
	return o.responsible
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// DefectiveReason returns the recorded order-level defect reason.
func (o *Order) DefectiveReason() string {
	return o.defectiveReason
}

// DefectiveAt returns the time the order became defective, nil otherwise.
func (o *Order) DefectiveAt() *time.Time {
	return o.defectiveAt
}

// DefectiveBy returns the operator recorded on the defective transition.
func (o *Order) DefectiveBy() string {
	return o.defectiveBy
}

// Items returns the items owned by the order.
func (o *Order) Items() []*Item {
	return o.items
}

// AutoPrintLabels reports whether a shipping label is generated
// automatically when the order completes.
func (o *Order) AutoPrintLabels() bool {
	return o.autoPrintLabels
}

// SetAutoPrintLabels toggles automatic label generation on completion.
func (o *Order) SetAutoPrintLabels(enabled bool) {
	o.autoPrintLabels = enabled
}

// LastLabelID returns the identifier of the most recently created label,
// nil when no label has been created yet.
func (o *Order) LastLabelID() *kernel.UUID {
	return o.lastLabelID
}

// LabelCount returns the number of labels created for this order.
func (o *Order) LabelCount() int {
	return o.labelCount
}

// TotalItems returns the current item count. Derived, never stored.
func (o *Order) TotalItems() int {
	return len(o.items)
}

// PackedItems returns the number of items currently flagged packed.
func (o *Order) PackedItems() int {
	count := 0
	for _, item := range o.items {
		if item.IsPacked() {
			count++
		}
	}
	return count
}

// DefectiveItems returns the number of items currently flagged defective.
func (o *Order) DefectiveItems() int {
	count := 0
	for _, item := range o.items {
		if item.IsDefective() {
			count++
		}
	}
	return count
}

// Progress returns the packing progress percentage in [0,100].
// An order with no items has zero progress.
func (o *Order) Progress() float64 {
	total := o.TotalItems()
	if total == 0 {
		return 0
	}
	return float64(o.PackedItems()) / float64(total) * 100
}

// ProgressRounded returns the progress rounded to two decimal places,
// suitable for display and report projections.
func (o *Order) ProgressRounded() float64 {
	return math.Round(o.Progress()*100) / 100
}

// AddItem adds an item to the order and recomputes the derived state.
func (o *Order) AddItem(item *Item, operator string, now time.Time) error {
	if err := item.Validate(); err != nil {
		return err
	}

	o.items = append(o.items, item)
	o.recompute(operator, now)
	return nil
}

// ItemByID returns the owned item with the given identifier.
// Returns ErrItemNotFound when no such item exists in this order.
func (o *Order) ItemByID(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, ErrItemNotFound
}

// ItemByCode returns the first owned item with the given code.
// Item codes are only meaningful for lookup within one order.
func (o *Order) ItemByCode(itemCode string) (*Item, error) {
	for _, item := range o.items {
		if item.ItemCode() == itemCode {
			return item, nil
		}
	}
	return nil, ErrItemNotFound
}

// PackItem marks the identified item as packed and recomputes the order
// state. Packing the last unpacked item completes the order.
func (o *Order) PackItem(itemID kernel.UUID, operator string, now time.Time) error {
	item, err := o.ItemByID(itemID)
	if err != nil {
		return err
	}

	item.markPacked(now)
	o.recompute(operator, now)
	return nil
}

// PackItemByCode is the quick-pack action: it looks an item up by code and
// marks it packed. Fails when the code is unknown in this order or the item
// is already packed.
func (o *Order) PackItemByCode(itemCode, operator string, now time.Time) error {
	item, err := o.ItemByCode(itemCode)
	if err != nil {
		return errs.NewObjectNotFoundErrorWithCause("item code", itemCode, err)
	}
	if item.IsPacked() {
		return errs.NewValueIsInvalidErrorWithCause("item code",
			fmt.Errorf("item %s is already packed", itemCode))
	}

	item.markPacked(now)
	o.recompute(operator, now)
	return nil
}

// UnpackItem clears the packed flag of the identified item and recomputes
// the order state.
func (o *Order) UnpackItem(itemID kernel.UUID, operator string, now time.Time) error {
	item, err := o.ItemByID(itemID)
	if err != nil {
		return err
	}

	item.markUnpacked()
	o.recompute(operator, now)
	return nil
}

// MarkItemDefective flags the identified item defective and recomputes the
// order state, which moves the order to Defective on the first defect.
// An empty reason falls back to DefaultItemDefectiveReason.
func (o *Order) MarkItemDefective(itemID kernel.UUID, reason, operator string, now time.Time) error {
	item, err := o.ItemByID(itemID)
	if err != nil {
		return err
	}

	item.markDefective(reason, operator, now)
	o.recompute(operator, now)
	return nil
}

// MarkCompleted completes the order through an explicit operator action.
// Allowed from Draft and InProgress only. Unlike the automatic completion
// driven by packing, the manual action does not trigger label auto-creation.
func (o *Order) MarkCompleted() error {
	newStatus, err := o.status.MarkCompleted()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ResetToDraft returns a completed or canceled order to Draft.
func (o *Order) ResetToDraft() error {
	newStatus, err := o.status.ResetToDraft()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel cancels the order. Allowed from Draft and InProgress only.
// Canceled is sticky: recomputation never leaves it.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkDefective marks the whole order defective through an explicit
// operator action, recording the reason, timestamp and operator.
// Allowed from Draft and InProgress only.
func (o *Order) MarkDefective(reason, operator string, now time.Time) error {
	newStatus, err := o.status.MarkDefective()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.defectiveReason = reason
	o.defectiveAt = &now
	o.defectiveBy = operator
	return nil
}

// ResetPacking clears the packed flag and pack date of every item and
// returns the order to Draft. Allowed from InProgress, Completed and
// Defective. Item defect flags are left untouched; if defective items
// remain, the next recomputation will flag the order defective again.
func (o *Order) ResetPacking() error {
	newStatus, err := o.status.ResetPacking()
	if err != nil {
		return err
	}

	for _, item := range o.items {
		item.markUnpacked()
	}
	o.status = newStatus
	return nil
}

// RegisterLabel records a newly created label on the order, updating the
// last-label pointer and the label count used by the auto-creation guard.
func (o *Order) RegisterLabel(labelID kernel.UUID) error {
	if err := labelID.Validate(); err != nil {
		return err
	}

	o.labelCount++
	o.lastLabelID = &labelID
	return nil
}

// TakeCompletionEvent reports whether the last recomputation advanced the
// order to Completed, and clears the flag. The application layer consumes
// it to trigger label auto-creation once per completion event.
func (o *Order) TakeCompletionEvent() bool {
	fired := o.completionPending
	o.completionPending = false
	return fired
}

// Button visibility projections for the order form, delegated to the
// status rules.

// ShowMarkCompleted reports whether the manual complete action applies.
func (o *Order) ShowMarkCompleted() bool {
	return o.status.ShowMarkCompleted()
}

// ShowResetDraft reports whether the reset-to-draft action applies.
func (o *Order) ShowResetDraft() bool {
	return o.status.ShowResetDraft()
}

// ShowCancelOrder reports whether the cancel action applies.
func (o *Order) ShowCancelOrder() bool {
	return o.status.ShowCancel()
}

// ShowMarkDefective reports whether the mark-defective action applies.
func (o *Order) ShowMarkDefective() bool {
	return o.status.ShowMarkDefective()
}

// ShowResetPacking reports whether the reset-packing action applies.
func (o *Order) ShowResetPacking() bool {
	return o.status.ShowResetPacking()
}

// recompute re-derives the order state from the item counters. It runs
// after every item mutation and implements the automatic transition rules:
//
//  1. any defective item moves the order to Defective with an automatic
//     reason (fires only on the first defect, the sticky guard prevents
//     re-firing afterwards)
//  2. all items packed (and at least one item) completes the order and
//     raises the completion event
//  3. at least one packed item moves the order to InProgress
//  4. otherwise the order returns to Draft
//
// Sticky states are never overridden.
func (o *Order) recompute(operator string, now time.Time) {
	if o.status.IsSticky() {
		return
	}

	total := o.TotalItems()
	packed := o.PackedItems()
	defective := o.DefectiveItems()

	switch {
	case defective > 0:
		o.status = Defective
		o.defectiveReason = fmt.Sprintf("Automatic: %d defective item(s)", defective)
		o.defectiveAt = &now
		o.defectiveBy = operator
	case packed == total && total > 0:
		if o.status != Completed {
			o.status = Completed
			o.completionPending = true
		}
	case packed > 0:
		if o.status != InProgress {
			o.status = InProgress
		}
	default:
		if o.status != Draft {
			o.status = Draft
		}
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setResponsible(responsible string) error {
	if responsible == "" {
		return ErrResponsibleIsRequired
	}
	o.responsible = responsible
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []*Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}
