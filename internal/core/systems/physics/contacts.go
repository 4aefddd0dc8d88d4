package physics

import "sort"

// Body is a circle collider snapshot used for one contact update.
type Body struct {
	ID       uint64
	Position Vec2
	Radius   float64
}

// Overlaps reports whether two circles intersect. Touching edges do not count.
func (b Body) Overlaps(o Body) bool {
	return Distance2V(b.Position, o.Position) < b.Radius+o.Radius
}

// Pair identifies a contact between two bodies; A is always the smaller id.
type Pair struct {
	A, B uint64
}

func MakePair(a, b uint64) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// Other returns the partner of id in p.
func (p Pair) Other(id uint64) uint64 {
	if p.A == id {
		return p.B
	}
	return p.A
}

func (p Pair) Has(id uint64) bool { return p.A == id || p.B == id }

// ContactTracker remembers which pairs overlapped on the previous update so it
// can report begin and end transitions. Not safe for concurrent use.
type ContactTracker struct {
	active map[Pair]struct{}
}

func NewContactTracker() *ContactTracker {
	return &ContactTracker{active: make(map[Pair]struct{})}
}

// Update computes the overlapping pairs among bodies and returns the pairs that
// started and stopped touching since the last call. Bodies with a non-positive
// radius are ignored.
func (t *ContactTracker) Update(bodies []Body) (begin, end []Pair) {
	current := make(map[Pair]struct{})
	for i := 0; i < len(bodies); i++ {
		if bodies[i].Radius <= 0 {
			continue
		}
		for j := i + 1; j < len(bodies); j++ {
			if bodies[j].Radius <= 0 || bodies[i].ID == bodies[j].ID {
				continue
			}
			if bodies[i].Overlaps(bodies[j]) {
				current[MakePair(bodies[i].ID, bodies[j].ID)] = struct{}{}
			}
		}
	}

	for p := range current {
		if _, ok := t.active[p]; !ok {
			begin = append(begin, p)
		}
	}
	for p := range t.active {
		if _, ok := current[p]; !ok {
			end = append(end, p)
		}
	}
	t.active = current

	sortPairs(begin)
	sortPairs(end)
	return begin, end
}

// Forget drops every active contact that involves id and returns them.
func (t *ContactTracker) Forget(id uint64) []Pair {
	var ended []Pair
	for p := range t.active {
		if p.Has(id) {
			ended = append(ended, p)
			delete(t.active, p)
		}
	}
	sortPairs(ended)
	return ended
}

// Active returns the current contacts in sorted order.
func (t *ContactTracker) Active() []Pair {
	out := make([]Pair, 0, len(t.active))
	for p := range t.active {
		out = append(out, p)
	}
	sortPairs(out)
	return out
}

// InContact reports whether a and b currently touch.
func (t *ContactTracker) InContact(a, b uint64) bool {
	_, ok := t.active[MakePair(a, b)]
	return ok
}

func sortPairs(pairs []Pair) {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
}
