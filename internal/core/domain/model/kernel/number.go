package kernel

import (
	"fmt"
	"regexp"

	"packaging/internal/pkg/errs"
)

const (
	// orderNumberPadding is the zero-padding width of sequence-assigned order numbers.
	orderNumberPadding = 5
	// labelNumberPadding is the zero-padding width of sequence-assigned label numbers.
	labelNumberPadding = 6
)

var (
	orderNumberPattern = regexp.MustCompile(`^\d+$`)
	labelNumberPattern = regexp.MustCompile(`^L\d+$`)

	// ErrOrderNumberIsNotConstructed indicates a zero-value OrderNumber.
	ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
		"OrderNumber must be created via NewOrderNumber or NextOrderNumber")
	// ErrLabelNumberIsNotConstructed indicates a zero-value LabelNumber.
	ErrLabelNumberIsNotConstructed = errs.NewValueIsRequiredError(
		"LabelNumber must be created via NewLabelNumber or NextLabelNumber")
)

// OrderNumber is the business identity of a packaging order.
// It must consist only of digits. Numbers are normally produced from a
// per-type sequence via NextOrderNumber, but the pattern is validated on
// every construction regardless of source.
type OrderNumber struct {
	value string
}

// NewOrderNumber creates an OrderNumber from its textual representation.
// Returns a validation error when the value is empty or contains
// non-digit characters.
func NewOrderNumber(value string) (OrderNumber, error) {
	if value == "" {
		return OrderNumber{}, errs.NewValueIsRequiredError("order number")
	}
	if !orderNumberPattern.MatchString(value) {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("%q must contain only digits", value))
	}
	return OrderNumber{value: value}, nil
}

// NextOrderNumber formats a sequence value into a zero-padded order number.
func NextOrderNumber(seq int64) (OrderNumber, error) {
	if seq <= 0 {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("sequence value %d is not positive", seq))
	}
	return NewOrderNumber(fmt.Sprintf("%0*d", orderNumberPadding, seq))
}

// String returns the textual representation of the order number.
func (n OrderNumber) String() string {
	return n.value
}

// IsEqual compares two order numbers for equality.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// Validate returns an error for a zero-value OrderNumber.
func (n OrderNumber) Validate() error {
	if n.value == "" {
		return ErrOrderNumberIsNotConstructed
	}
	return nil
}

// LabelNumber is the business identity of a shipping label.
// It must match the pattern "L" followed by digits (e.g. L000001).
// Pattern conformance is the authoritative invariant: even numbers produced
// by the sequence generator are re-validated after formatting.
type LabelNumber struct {
	value string
}

// NewLabelNumber creates a LabelNumber from its textual representation.
// Returns a validation error when the value does not match the
// "L" + digits pattern.
func NewLabelNumber(value string) (LabelNumber, error) {
	if value == "" {
		return LabelNumber{}, errs.NewValueIsRequiredError("label number")
	}
	if !labelNumberPattern.MatchString(value) {
		return LabelNumber{}, errs.NewValueIsInvalidErrorWithCause("label number",
			fmt.Errorf("%q must be in format L000001", value))
	}
	return LabelNumber{value: value}, nil
}

// NextLabelNumber formats a sequence value into a zero-padded label number.
// The formatted value goes through the same pattern validation as any
// externally supplied number.
func NextLabelNumber(seq int64) (LabelNumber, error) {
	if seq <= 0 {
		return LabelNumber{}, errs.NewValueIsInvalidErrorWithCause("label number",
			fmt.Errorf("sequence value %d is not positive", seq))
	}
	return NewLabelNumber(fmt.Sprintf("L%0*d", labelNumberPadding, seq))
}

// String returns the textual representation of the label number.
func (n LabelNumber) String() string {
	return n.value
}

// IsEqual compares two label numbers for equality.
func (n LabelNumber) IsEqual(other LabelNumber) bool {
	return n.value == other.value
}

// Validate returns an error for a zero-value LabelNumber.
func (n LabelNumber) Validate() error {
	if n.value == "" {
		return ErrLabelNumberIsNotConstructed
	}
	return nil
}
