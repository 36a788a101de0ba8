package subset

import (
	"math/rand"
	"sort"
)

// idSet is an ordered set of integer IDs backed by both a slice (for
// deterministic iteration and O(1) uniform random sampling, sidestepping
// Go's non-uniform map iteration order entirely) and a membership map
// (for O(1) Contains). When less is non-nil, the slice is kept sorted by
// it on every insertion; otherwise new IDs are appended, preserving
// insertion order.
type idSet struct {
	ids     []int
	present map[int]struct{}
	less    func(a, b int) bool
}

func newIDSet(ids []int, less func(a, b int) bool) *idSet {
	cp := append([]int(nil), ids...)
	if less != nil {
		sort.Slice(cp, func(i, j int) bool { return less(cp[i], cp[j]) })
	}
	present := make(map[int]struct{}, len(cp))
	for _, id := range cp {
		present[id] = struct{}{}
	}
	return &idSet{ids: cp, present: present, less: less}
}

func (s *idSet) contains(id int) bool {
	_, ok := s.present[id]
	return ok
}

func (s *idSet) size() int { return len(s.ids) }

func (s *idSet) slice() []int { return append([]int(nil), s.ids...) }

// add inserts id if not already present, maintaining sort order when
// less is configured.
func (s *idSet) add(id int) {
	if s.contains(id) {
		return
	}
	s.present[id] = struct{}{}
	if s.less == nil {
		s.ids = append(s.ids, id)
		return
	}
	i := sort.Search(len(s.ids), func(i int) bool { return !s.less(s.ids[i], id) })
	s.ids = append(s.ids, 0)
	copy(s.ids[i+1:], s.ids[i:])
	s.ids[i] = id
}

// remove deletes id if present. O(n) — acceptable for the subset sizes
// this package targets; a production-scale variant would add a position
// index to make this O(1) at the cost of extra bookkeeping on add.
func (s *idSet) remove(id int) {
	if !s.contains(id) {
		return
	}
	delete(s.present, id)
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
}

func (s *idSet) clone() *idSet {
	present := make(map[int]struct{}, len(s.present))
	for id := range s.present {
		present[id] = struct{}{}
	}
	return &idSet{ids: append([]int(nil), s.ids...), present: present, less: s.less}
}

// randomElement returns a uniformly chosen element and true, or (0,
// false) if the set is empty.
func (s *idSet) randomElement(rng *rand.Rand) (int, bool) {
	if len(s.ids) == 0 {
		return 0, false
	}
	return s.ids[rng.Intn(len(s.ids))], true
}

// sample draws k distinct elements uniformly at random without
// replacement using reservoir sampling (algorithm R). If k >= size, the
// full set is returned (in its current order, not a random permutation
// of it).
func (s *idSet) sample(k int, rng *rand.Rand) []int {
	return reservoirSample(s.ids, k, rng)
}

// reservoirSample implements Vitter's algorithm R over ids, returning k
// distinct elements chosen uniformly at random without replacement.
func reservoirSample(ids []int, k int, rng *rand.Rand) []int {
	n := len(ids)
	if k <= 0 {
		return nil
	}
	if k >= n {
		return append([]int(nil), ids...)
	}
	res := append([]int(nil), ids[:k]...)
	for i := k; i < n; i++ {
		j := rng.Intn(i + 1)
		if j < k {
			res[j] = ids[i]
		}
	}
	return res
}

func setEqual(a, b map[int]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if _, ok := b[id]; !ok {
			return false
		}
	}
	return true
}
