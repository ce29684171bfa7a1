package order

import (
	"fmt"

	"packaging/internal/pkg/errs"
)

// Status represents the lifecycle state of a packaging order.
// It is a value object that validates state transitions for the manual
// order actions; automatic transitions driven by item counters are applied
// by the aggregate's recomputation and respect the sticky states.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status: no item has been packed yet.
	Draft

	// InProgress indicates that at least one item has been packed.
	InProgress

	// Completed indicates that every item in the order has been packed.
	Completed

	// Canceled indicates the order was explicitly canceled.
	// Sticky: recomputation never overrides it.
	Canceled

	// Defective indicates the order cannot be completed because at least
	// one item was flagged defective, or an operator marked the whole
	// order defective. Sticky: recomputation never overrides it.
	Defective
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Draft:      "draft",
		InProgress: "in_progress",
		Completed:  "completed",
		Canceled:   "canceled",
		Defective:  "defective",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:      "draft",
		InProgress: "in_progress",
		Completed:  "completed",
		Canceled:   "canceled",
		Defective:  "defective",
	}
}

// StatusFromString maps a persistence/display name back to a Status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined order states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persistence/display name of the status.
// Implements fmt.Stringer and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsSticky reports whether automatic recomputation must leave this status
// untouched. Only an explicit reset action leaves a sticky status.
func (s Status) IsSticky() bool {
	return s == Canceled || s == Defective
}

// Form button visibility rules. Derived from the status alone so both the
// aggregate and read-side projections share them.

// ShowMarkCompleted reports whether the manual complete action is offered.
func (s Status) ShowMarkCompleted() bool {
	return s == Draft || s == InProgress
}

// ShowResetDraft reports whether the reset-to-draft action is offered.
func (s Status) ShowResetDraft() bool {
	return s == Completed || s == Canceled
}

// ShowCancel reports whether the cancel action is offered.
func (s Status) ShowCancel() bool {
	return s == Draft || s == InProgress
}

// ShowMarkDefective reports whether the mark-defective action is offered.
func (s Status) ShowMarkDefective() bool {
	return s == Draft || s == InProgress
}

// ShowResetPacking reports whether the reset-packing action is offered.
// The transition itself is additionally valid from Completed; the form
// hides it there in favor of reset-to-draft.
func (s Status) ShowResetPacking() bool {
	return s == InProgress || s == Defective
}

// MarkCompleted transitions the status to Completed.
// Allowed from Draft and InProgress only.
func (s Status) MarkCompleted() (Status, error) {
	if s != Draft && s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("cannot mark as completed from current state: %s", s))
	}
	return Completed, nil
}

// ResetToDraft transitions the status back to Draft.
// Allowed from Completed and Canceled only.
func (s Status) ResetToDraft() (Status, error) {
	if s != Completed && s != Canceled {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("cannot reset to draft from current state: %s", s))
	}
	return Draft, nil
}

// Cancel transitions the status to Canceled.
// Allowed from Draft and InProgress only.
func (s Status) Cancel() (Status, error) {
	if s != Draft && s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("cannot cancel from current state: %s", s))
	}
	return Canceled, nil
}

// MarkDefective transitions the status to Defective through an explicit
// operator action. Allowed from Draft and InProgress only.
func (s Status) MarkDefective() (Status, error) {
	if s != Draft && s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("cannot mark as defective from current state: %s", s))
	}
	return Defective, nil
}

// ResetPacking validates that packing can be reset from this status.
// Allowed from InProgress, Completed and Defective; the resulting status
// is always Draft.
func (s Status) ResetPacking() (Status, error) {
	if s != InProgress && s != Completed && s != Defective {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("cannot reset packing from current state: %s", s))
	}
	return Draft, nil
}
