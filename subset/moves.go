package subset

// AdditionMove selects ID. Applicable only when ID is currently
// unselected; it is its own undo record (Undo deselects ID again).
type AdditionMove struct {
	ID int
}

// Apply selects m.ID.
func (m AdditionMove) Apply(s *SubsetSolution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectUnchecked(m.ID)
}

// Undo deselects m.ID, reversing Apply.
func (m AdditionMove) Undo(s *SubsetSolution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deselectUnchecked(m.ID)
}

// DeletionMove deselects ID. Applicable only when ID is currently
// selected.
type DeletionMove struct {
	ID int
}

// Apply deselects m.ID.
func (m DeletionMove) Apply(s *SubsetSolution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deselectUnchecked(m.ID)
}

// Undo selects m.ID, reversing Apply.
func (m DeletionMove) Undo(s *SubsetSolution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectUnchecked(m.ID)
}

// SwapMove selects Add and deselects Del in one step, leaving the
// selected-set size unchanged. Applicable only when Add is unselected
// and Del is selected.
type SwapMove struct {
	Add int
	Del int
}

// Apply selects m.Add and deselects m.Del.
func (m SwapMove) Apply(s *SubsetSolution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectUnchecked(m.Add)
	s.deselectUnchecked(m.Del)
}

// Undo deselects m.Add and selects m.Del, reversing Apply.
func (m SwapMove) Undo(s *SubsetSolution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deselectUnchecked(m.Add)
	s.selectUnchecked(m.Del)
}

// GeneralSubsetMove aggregates several additions and deletions into one
// step, used by the Multi* neighbourhoods. AddIDs and DelIDs must be
// disjoint and each must respectively be unselected/selected at the time
// Apply is called.
type GeneralSubsetMove struct {
	AddIDs []int
	DelIDs []int
}

// Apply selects every ID in m.AddIDs and deselects every ID in m.DelIDs.
func (m GeneralSubsetMove) Apply(s *SubsetSolution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range m.AddIDs {
		s.selectUnchecked(id)
	}
	for _, id := range m.DelIDs {
		s.deselectUnchecked(id)
	}
}

// Undo reverses Apply: deselects every ID in m.AddIDs and selects every
// ID in m.DelIDs.
func (m GeneralSubsetMove) Undo(s *SubsetSolution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range m.AddIDs {
		s.deselectUnchecked(id)
	}
	for _, id := range m.DelIDs {
		s.selectUnchecked(id)
	}
}
