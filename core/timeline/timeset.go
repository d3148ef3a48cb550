package timeline

import (
	"sort"
	"strings"
	"time"

	"github.com/goto/chrono/internal/errors"
)

const EntityTimeSet = "timeset"

// TimeSet is a finite disjoint union of non-empty intervals kept in
// canonical form: components are sorted by start, and every adjacent pair is
// separated by a genuine gap. Every operation returns a new TimeSet already
// reduced to canonical form.
type TimeSet struct {
	intervals []Interval
}

func EmptySet() TimeSet {
	return TimeSet{}
}

// TimelineSet is the set covering the entire timeline, as a single
// component.
func TimelineSet() TimeSet {
	return TimeSet{intervals: []Interval{Timeline()}}
}

// Union builds the canonical set covering all the given intervals: empties
// are dropped, the rest are sorted by start, touching runs are collapsed
// into their minimal cover.
func Union(intervals ...Interval) TimeSet {
	nonempty := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if !iv.IsEmpty() {
			nonempty = append(nonempty, iv)
		}
	}
	if len(nonempty) == 0 {
		return EmptySet()
	}

	sort.Slice(nonempty, func(a, b int) bool {
		if c := compareStartBounds(nonempty[a], nonempty[b]); c != 0 {
			return c < 0
		}
		return compareEndBounds(nonempty[a], nonempty[b]) < 0
	})

	// grow each component as the minimal cover of the touching run seen so
	// far; comparing against the running cover keeps nested intervals in
	// the same component
	components := make([]Interval, 0, len(nonempty))
	cover := nonempty[0]
	for _, iv := range nonempty[1:] {
		if cover.Touches(iv) {
			cover = MinimalCover(cover, iv)
			continue
		}
		components = append(components, cover)
		cover = iv
	}
	components = append(components, cover)

	return TimeSet{intervals: components}
}

// FromComponents builds a set from intervals that must already be in
// canonical form: non-empty, sorted, and pairwise disconnected. Use Union
// when the input needs normalizing.
func FromComponents(components ...Interval) (TimeSet, error) {
	for _, iv := range components {
		if iv.IsEmpty() {
			return TimeSet{}, errors.InvalidArgument(EntityTimeSet, "a component interval must not be empty")
		}
	}
	for idx := 0; idx+1 < len(components); idx++ {
		if !components[idx].IsLeftOfDisconnectedly(components[idx+1]) {
			return TimeSet{}, errors.InvalidArgument(EntityTimeSet, "components must be ordered and separated by gaps")
		}
	}

	intervals := make([]Interval, len(components))
	copy(intervals, components)
	return TimeSet{intervals: intervals}, nil
}

// Components returns the connected components in start order.
func (s TimeSet) Components() []Interval {
	out := make([]Interval, len(s.intervals))
	copy(out, s.intervals)
	return out
}

func (s TimeSet) IsEmpty() bool {
	return len(s.intervals) == 0
}

// IsBounded reports boundedness in the mathematical sense; the empty set is
// bounded.
func (s TimeSet) IsBounded() bool {
	if s.IsEmpty() {
		return true
	}
	return s.intervals[0].IsBounded() && s.intervals[len(s.intervals)-1].IsBounded()
}

// IsConnected reports whether the set has at most one connected component.
func (s TimeSet) IsConnected() bool {
	return len(s.intervals) <= 1
}

func (s TimeSet) IsPoint() bool {
	return len(s.intervals) == 1 && s.intervals[0].IsPoint()
}

func (s TimeSet) IsOpen() bool {
	for _, iv := range s.intervals {
		if !iv.IsOpen() {
			return false
		}
	}
	return true
}

func (s TimeSet) IsClosed() bool {
	for _, iv := range s.intervals {
		if !iv.IsClosed() {
			return false
		}
	}
	return true
}

func (s TimeSet) ContainsInstant(moment Instant) bool {
	for _, iv := range s.intervals {
		if iv.ContainsInstant(moment) {
			return true
		}
	}
	return false
}

// IntersectInterval intersects the set with a single interval. Components
// strictly left of the interval are skipped, the walk stops at the first
// component strictly right of it.
func (s TimeSet) IntersectInterval(other Interval) TimeSet {
	kept := make([]Interval, 0, len(s.intervals))
	for _, component := range s.intervals {
		if component.IsLeftOf(other) {
			continue
		}
		if component.IsRightOf(other) {
			break
		}
		if section := component.Intersect(other); !section.IsEmpty() {
			kept = append(kept, section)
		}
	}

	// sections of canonical components stay separated by the original
	// gaps, so the list is already canonical
	return TimeSet{intervals: kept}
}

// Intersect intersects two sets with a two-pointer walk over their
// components.
func (s TimeSet) Intersect(other TimeSet) TimeSet {
	kept := []Interval{}
	a, b := 0, 0
	for a < len(s.intervals) && b < len(other.intervals) {
		left, right := s.intervals[a], other.intervals[b]
		if left.IsLeftOf(right) {
			a++
			continue
		}
		if right.IsLeftOf(left) {
			b++
			continue
		}

		if section := left.Intersect(right); !section.IsEmpty() {
			kept = append(kept, section)
		}

		// advance the component that ends first; an unbounded end sorts
		// last
		if compareEndBounds(left, right) <= 0 {
			a++
		} else {
			b++
		}
	}

	return TimeSet{intervals: kept}
}

// Complement returns everything outside the set. The complement of the
// empty set is the entire timeline.
func (s TimeSet) Complement() TimeSet {
	if s.IsEmpty() {
		return TimelineSet()
	}

	pieces := make([]Interval, 0, len(s.intervals)+1)
	pieces = append(pieces, s.intervals[0].ToTheLeft())
	for idx := 0; idx+1 < len(s.intervals); idx++ {
		pieces = append(pieces, Between(s.intervals[idx], s.intervals[idx+1]))
	}
	pieces = append(pieces, s.intervals[len(s.intervals)-1].ToTheRight())

	// Union drops the empty rays of unbounded edges and repairs any
	// touching pieces
	return Union(pieces...)
}

// UnionWith returns the union of two sets.
func (s TimeSet) UnionWith(other TimeSet) TimeSet {
	combined := make([]Interval, 0, len(s.intervals)+len(other.intervals))
	combined = append(combined, s.intervals...)
	combined = append(combined, other.intervals...)
	return Union(combined...)
}

// Difference returns the part of the set not covered by the other one.
func (s TimeSet) Difference(other TimeSet) TimeSet {
	return s.Intersect(other.Complement())
}

// Contains reports whether every component of the other set fits inside
// some component of this set. Both walks are monotonic left to right.
func (s TimeSet) Contains(other TimeSet) bool {
	a := 0
	for _, wanted := range other.intervals {
		for {
			if a >= len(s.intervals) {
				return false
			}
			if s.intervals[a].Contains(wanted) {
				break
			}
			if !s.intervals[a].IsLeftOf(wanted) {
				return false
			}
			a++
		}
	}
	return true
}

// Overlaps reports whether the two sets share any part of the timeline.
func (s TimeSet) Overlaps(other TimeSet) bool {
	a, b := 0, 0
	for a < len(s.intervals) && b < len(other.intervals) {
		left, right := s.intervals[a], other.intervals[b]
		if left.Overlaps(right) {
			return true
		}
		if compareEndBounds(left, right) <= 0 {
			a++
		} else {
			b++
		}
	}
	return false
}

// Duration returns the summed length of all components. The second value is
// false when any component is unbounded.
func (s TimeSet) Duration() (time.Duration, bool) {
	var total time.Duration
	for _, iv := range s.intervals {
		d, ok := iv.Duration()
		if !ok {
			return 0, false
		}
		total += d
	}
	return total, true
}

// Closure returns the topological closure of the set.
func (s TimeSet) Closure() TimeSet {
	closed := make([]Interval, 0, len(s.intervals))
	for _, iv := range s.intervals {
		closed = append(closed, iv.Closure())
	}
	// closing bounds can make previously gap-separated components touch
	return Union(closed...)
}

// Equal reports whether two sets have the same canonical components.
func (s TimeSet) Equal(other TimeSet) bool {
	if len(s.intervals) != len(other.intervals) {
		return false
	}
	for idx := range s.intervals {
		if !s.intervals[idx].Equal(other.intervals[idx]) {
			return false
		}
	}
	return true
}

func (s TimeSet) String() string {
	if s.IsEmpty() {
		return "∅"
	}

	parts := make([]string, len(s.intervals))
	for idx, iv := range s.intervals {
		parts[idx] = iv.String()
	}
	return strings.Join(parts, " ⊔\n")
}
