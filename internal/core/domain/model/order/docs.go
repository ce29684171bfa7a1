// Package order contains the packaging order aggregate.
//
// Order is the aggregate root: it owns the items being packed and derives
// its lifecycle state from their packed/defective flags. Every item mutation
// goes through the aggregate and triggers a synchronous recomputation of the
// derived counters and, where the transition rules allow, of the order state.
//
// The state machine:
//
//	draft ──> in_progress ──> completed
//	  │            │              │
//	  │            ├──> canceled  │   (canceled/completed can be reset to draft)
//	  │            │              │
//	  └────────────┴──> defective └─> (reset packing returns to draft)
//
// canceled and defective are sticky: automatic recomputation never leaves
// them; only the explicit reset actions do.
package order
