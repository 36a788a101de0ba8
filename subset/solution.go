package subset

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math/rand"
	"sort"
	"sync"

	"github.com/katalvlaran/trajecta/errs"
)

// Comparator imposes a total order on item IDs. When supplied at
// construction, every ordered view (Selected, Unselected, All) is kept
// sorted by it; otherwise insertion order is used and is immaterial to
// correctness.
type Comparator func(a, b int) bool

// Option configures a SubsetSolution at construction time.
type Option func(*config)

type config struct {
	comparator Comparator
}

// WithComparator installs a total order over item IDs.
func WithComparator(less Comparator) Option {
	return func(c *config) { c.comparator = less }
}

// SubsetSolution is a candidate answer that selects a subset of a fixed
// universe of integer IDs. It maintains the invariants selected ∩
// unselected = ∅ and selected ∪ unselected = all after every operation,
// and is safe for concurrent read/write from multiple goroutines (it is
// shared, without copying, only across a single Search's sequential
// loop; concurrent access matters for ParallelTempering's swap phase and
// for listeners reading a just-reported best solution while the search
// keeps running).
type SubsetSolution struct {
	mu         sync.RWMutex
	all        *idSet
	selected   *idSet
	unselected *idSet
	comparator Comparator
}

// New constructs a SubsetSolution over the given universe of IDs with
// the given initial selection. Every ID in selectedIDs must already
// appear in allIDs; a stray ID is a *errs.SolutionModificationError.
func New(allIDs []int, selectedIDs []int, opts ...Option) (*SubsetSolution, error) {
	cfg := &config{}
	for _, o := range opts {
		o(cfg)
	}

	all := newIDSet(allIDs, cfg.comparator)
	selectedFlag := make(map[int]struct{}, len(selectedIDs))
	for _, id := range selectedIDs {
		if !all.contains(id) {
			return nil, errs.NewSolutionModificationError(id, "initial selected ID is not part of the subset universe")
		}
		selectedFlag[id] = struct{}{}
	}

	var selIDs, unselIDs []int
	for _, id := range all.ids {
		if _, ok := selectedFlag[id]; ok {
			selIDs = append(selIDs, id)
		} else {
			unselIDs = append(unselIDs, id)
		}
	}

	return &SubsetSolution{
		all:        all,
		selected:   newIDSet(selIDs, cfg.comparator),
		unselected: newIDSet(unselIDs, cfg.comparator),
		comparator: cfg.comparator,
	}, nil
}

// Copy returns a deep, independent copy: mutating the copy never
// mutates the receiver.
func (s *SubsetSolution) Copy() *SubsetSolution {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &SubsetSolution{
		all:        s.all.clone(),
		selected:   s.selected.clone(),
		unselected: s.unselected.clone(),
		comparator: s.comparator,
	}
}

// Equals reports whether the receiver and other select the same subset
// of the same universe.
func (s *SubsetSolution) Equals(other *SubsetSolution) bool {
	if s == other {
		return true
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	other.mu.RLock()
	defer other.mu.RUnlock()
	return setEqual(s.all.present, other.all.present) && setEqual(s.selected.present, other.selected.present)
}

// Hash returns a content-stable hash of the selected set.
func (s *SubsetSolution) Hash() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := append([]int(nil), s.selected.ids...)
	sort.Ints(ids)
	h := fnv.New64a()
	buf := make([]byte, 8)
	for _, id := range ids {
		binary.LittleEndian.PutUint64(buf, uint64(int64(id)))
		_, _ = h.Write(buf)
	}
	return h.Sum64()
}

// String implements fmt.Stringer.
func (s *SubsetSolution) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := append([]int(nil), s.selected.ids...)
	sort.Ints(ids)
	return fmt.Sprintf("SubsetSolution{selected=%v, size=%d/%d}", ids, len(ids), s.all.size())
}

// Select adds id to the selected set. It is idempotent: selecting an
// already-selected ID is a no-op. id must belong to the universe passed
// to New, or a *errs.SolutionModificationError is returned and the
// solution is left unchanged.
func (s *SubsetSolution) Select(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.all.contains(id) {
		return errs.NewSolutionModificationError(id, "ID does not exist in this solution's universe")
	}
	s.selectUnchecked(id)
	return nil
}

// Deselect removes id from the selected set. It is idempotent. id must
// belong to the universe passed to New, or a
// *errs.SolutionModificationError is returned and the solution is left
// unchanged.
func (s *SubsetSolution) Deselect(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.all.contains(id) {
		return errs.NewSolutionModificationError(id, "ID does not exist in this solution's universe")
	}
	s.deselectUnchecked(id)
	return nil
}

// selectUnchecked and deselectUnchecked assume id ∈ all and the caller
// already holds mu. Moves in this package call these directly: a
// Neighbourhood only ever proposes IDs drawn from the solution's own
// selected/unselected views, so the universe-membership check Select and
// Deselect perform would be redundant on the hot path.
func (s *SubsetSolution) selectUnchecked(id int) {
	s.selected.add(id)
	s.unselected.remove(id)
}

func (s *SubsetSolution) deselectUnchecked(id int) {
	s.unselected.add(id)
	s.selected.remove(id)
}

// Contains reports whether id belongs to this solution's universe.
func (s *SubsetSolution) Contains(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.all.contains(id)
}

// IsSelected reports whether id is currently selected.
func (s *SubsetSolution) IsSelected(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected.contains(id)
}

// All returns a snapshot of every ID in the universe.
func (s *SubsetSolution) All() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.all.slice()
}

// Selected returns a snapshot of the currently selected IDs.
func (s *SubsetSolution) Selected() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected.slice()
}

// Unselected returns a snapshot of the currently unselected IDs.
func (s *SubsetSolution) Unselected() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unselected.slice()
}

// NumSelected returns len(Selected()) without allocating a snapshot.
func (s *SubsetSolution) NumSelected() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected.size()
}

// NumUnselected returns len(Unselected()) without allocating a snapshot.
func (s *SubsetSolution) NumUnselected() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unselected.size()
}

// RandomSelected draws one uniformly random selected ID, or (0, false)
// if nothing is selected.
func (s *SubsetSolution) RandomSelected(rng *rand.Rand) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected.randomElement(rng)
}

// RandomUnselected draws one uniformly random unselected ID, or (0,
// false) if everything is selected.
func (s *SubsetSolution) RandomUnselected(rng *rand.Rand) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unselected.randomElement(rng)
}
