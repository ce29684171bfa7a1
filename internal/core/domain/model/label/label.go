package label

import (
	"errors"
	"time"

	"packaging/internal/core/domain/model/kernel"
	"packaging/internal/pkg/errs"
	"packaging/internal/pkg/guard"
)

var (
	// ErrLabelIsNotConstructed is returned when using an improperly
	// initialized Label.
	ErrLabelIsNotConstructed = errors.New("Label must be created via NewLabel constructor")
	// ErrDocumentIsRequired is returned when attaching an empty document.
	ErrDocumentIsRequired = errs.NewValueIsRequiredError("document")
)

// Label is a shipping label produced for a packaging order. Several labels
// may exist per order; the order tracks the most recent one. The label
// carries the rendered PDF document so reprints do not regenerate it.
type Label struct {
	id        kernel.UUID
	number    kernel.LabelNumber
	orderID   kernel.UUID
	createdAt time.Time

	document  []byte
	isPrinted bool
	printedAt *time.Time

	guard guard.ConstructorGuard
}

// NewLabel creates a new unprinted Label for the given order.
// The document is attached separately once rendered.
func NewLabel(id kernel.UUID, number kernel.LabelNumber, orderID kernel.UUID, now time.Time) (*Label, error) {
	l := &Label{
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setNumber(number),
		l.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLabel reconstructs a Label from persistent storage.
func RestoreLabel(
	id kernel.UUID,
	number kernel.LabelNumber,
	orderID kernel.UUID,
	createdAt time.Time,
	document []byte,
	isPrinted bool,
	printedAt *time.Time,
) (*Label, error) {
	l, err := NewLabel(id, number, orderID, createdAt)
	if err != nil {
		return nil, err
	}

	l.document = document
	l.isPrinted = isPrinted
	l.printedAt = printedAt
	return l, nil
}

// Validate ensures the Label was created through NewLabel or RestoreLabel
// and that its number still matches the label format.
func (l *Label) Validate() error {
	if l == nil {
		return ErrLabelIsNotConstructed
	}
	if err := l.guard.Validate(ErrLabelIsNotConstructed); err != nil {
		return err
	}
	return l.number.Validate()
}

// IsEqual compares two labels by their unique identifiers.
func (l *Label) IsEqual(other *Label) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the label's unique identifier.
func (l *Label) ID() kernel.UUID {
	return l.id
}

// Number returns the label's sequence-assigned business number.
func (l *Label) Number() kernel.LabelNumber {
	return l.number
}

// OrderID returns the identifier of the order the label belongs to.
func (l *Label) OrderID() kernel.UUID {
	return l.orderID
}

// CreatedAt returns the label creation time.
func (l *Label) CreatedAt() time.Time {
	return l.createdAt
}

// Document returns the rendered PDF document, nil when not yet attached.
func (l *Label) Document() []byte {
	return l.document
}

// HasDocument reports whether a rendered document is attached.
func (l *Label) HasDocument() bool {
	return len(l.document) > 0
}

// FileName returns the download file name for the label document.
func (l *Label) FileName() string {
	return "shipping_label_" + l.number.String() + ".pdf"
}

// IsPrinted reports whether the label has been printed.
func (l *Label) IsPrinted() bool {
	return l.isPrinted
}

// PrintedAt returns the time of the first print, nil when never printed.
func (l *Label) PrintedAt() *time.Time {
	return l.printedAt
}

// AttachDocument stores the rendered PDF document on the label.
func (l *Label) AttachDocument(document []byte) error {
	if len(document) == 0 {
		return ErrDocumentIsRequired
	}
	l.document = document
	return nil
}

// MarkPrinted records that the label was sent to print. The first print
// time is kept on reprints.
func (l *Label) MarkPrinted(now time.Time) {
	l.isPrinted = true
	if l.printedAt == nil {
		l.printedAt = &now
	}
}

func (l *Label) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Label) setNumber(number kernel.LabelNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	l.number = number
	return nil
}

func (l *Label) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	l.orderID = orderID
	return nil
}
