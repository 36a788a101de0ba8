package core

// OpaqueMove wraps a caller-supplied apply/undo pair without exposing any
// concrete type for delta evaluators to switch on.
//
// The rest of the core (subset moves in particular) is a closed, known
// sum of move kinds that delta evaluators may type-switch on directly.
// OpaqueMove is the escape hatch for user-defined move kinds the core
// has never seen; an Objective or Constraint whose delta method does not
// recognise the move it is handed — including every OpaqueMove — must
// report an incompatible-delta error rather than silently falling back
// to a full recomputation.
type OpaqueMove[S any] struct {
	ApplyFunc func(S)
	UndoFunc  func(S)
}

// NewOpaqueMove builds an OpaqueMove from a matched apply/undo pair.
func NewOpaqueMove[S any](apply, undo func(S)) *OpaqueMove[S] {
	return &OpaqueMove[S]{ApplyFunc: apply, UndoFunc: undo}
}

// Apply invokes the wrapped apply function.
func (m *OpaqueMove[S]) Apply(s S) { m.ApplyFunc(s) }

// Undo invokes the wrapped undo function.
func (m *OpaqueMove[S]) Undo(s S) { m.UndoFunc(s) }
