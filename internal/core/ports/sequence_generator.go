package ports

import "context"

// Sequence codes used by the packaging module. Each code owns an
// independent monotonically increasing counter.
const (
	// OrderSequence backs the digits-only order numbers.
	OrderSequence = "packaging.order"
	// LabelSequence backs the L-prefixed label numbers.
	LabelSequence = "packaging.label"
)

// SequenceGenerator hands out gapless-enough monotonic counters for
// business numbers. Next must be called inside the same transaction that
// persists the numbered aggregate, so a rolled back command does not burn
// a visible number without its aggregate.
type SequenceGenerator interface {
	// Next returns the next value of the named sequence, starting at 1.
	Next(ctx context.Context, code string) (int64, error)
}
