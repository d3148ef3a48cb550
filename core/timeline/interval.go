package timeline

import (
	"time"

	"github.com/goto/chrono/internal/errors"
)

const EntityInterval = "interval"

// Kind identifies the topological shape of an interval. The kind fully
// determines which bounds are present and whether they are included.
type Kind int

const (
	KindEmpty Kind = iota
	KindPoint
	KindOpen
	KindClosed // bounded closed, not a point
	KindClosedOpen
	KindOpenClosed
	KindRightOpen
	KindRightClosed
	KindLeftOpen
	KindLeftClosed
	KindTimeline
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindPoint:
		return "point"
	case KindOpen:
		return "open"
	case KindClosed:
		return "closed"
	case KindClosedOpen:
		return "closed-open"
	case KindOpenClosed:
		return "open-closed"
	case KindRightOpen:
		return "right-open"
	case KindRightClosed:
		return "right-closed"
	case KindLeftOpen:
		return "left-open"
	case KindLeftClosed:
		return "left-closed"
	case KindTimeline:
		return "timeline"
	}
	return "unknown"
}

func (k Kind) specifiesStart() bool {
	switch k {
	case KindPoint, KindOpen, KindClosed, KindClosedOpen, KindOpenClosed, KindRightOpen, KindRightClosed:
		return true
	case KindEmpty, KindLeftOpen, KindLeftClosed, KindTimeline:
		return false
	}
	return false
}

func (k Kind) specifiesEnd() bool {
	switch k {
	case KindPoint, KindOpen, KindClosed, KindClosedOpen, KindOpenClosed, KindLeftOpen, KindLeftClosed:
		return true
	case KindEmpty, KindRightOpen, KindRightClosed, KindTimeline:
		return false
	}
	return false
}

func (k Kind) includesStart() bool {
	switch k {
	case KindPoint, KindClosed, KindClosedOpen, KindRightClosed:
		return true
	case KindEmpty, KindOpen, KindOpenClosed, KindRightOpen, KindLeftOpen, KindLeftClosed, KindTimeline:
		return false
	}
	return false
}

func (k Kind) includesEnd() bool {
	switch k {
	case KindPoint, KindClosed, KindOpenClosed, KindLeftClosed:
		return true
	case KindEmpty, KindOpen, KindClosedOpen, KindRightOpen, KindRightClosed, KindLeftOpen, KindTimeline:
		return false
	}
	return false
}

// Interval is a single connected subset of the timeline: empty, a point, a
// bounded segment, a ray, or the entire timeline. It is an immutable value
// type; all set operations return a new Interval.
type Interval struct {
	kind  Kind
	start Instant
	end   Instant
}

func Empty() Interval {
	return Interval{kind: KindEmpty}
}

// Point corresponds to an instantaneous event.
func Point(moment Instant) Interval {
	return Interval{kind: KindPoint, start: moment, end: moment}
}

func Open(start, end Instant) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, errors.InvalidArgument(EntityInterval, "the start of an open interval must be strictly before its end")
	}
	return Interval{kind: KindOpen, start: start, end: end}, nil
}

// Closed builds a bounded closed interval that is not a point. Use Point
// for equal bounds.
func Closed(start, end Instant) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, errors.InvalidArgument(EntityInterval, "the start of a closed interval must be strictly before its end; use a point for equal bounds")
	}
	return Interval{kind: KindClosed, start: start, end: end}, nil
}

func ClosedOpen(start, end Instant) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, errors.InvalidArgument(EntityInterval, "the start of a closed-open interval must be strictly before its end")
	}
	return Interval{kind: KindClosedOpen, start: start, end: end}, nil
}

func OpenClosed(start, end Instant) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, errors.InvalidArgument(EntityInterval, "the start of an open-closed interval must be strictly before its end")
	}
	return Interval{kind: KindOpenClosed, start: start, end: end}, nil
}

func RightOpen(start Instant) Interval {
	return Interval{kind: KindRightOpen, start: start}
}

func RightClosed(start Instant) Interval {
	return Interval{kind: KindRightClosed, start: start}
}

func LeftOpen(end Instant) Interval {
	return Interval{kind: KindLeftOpen, end: end}
}

func LeftClosed(end Instant) Interval {
	return Interval{kind: KindLeftClosed, end: end}
}

func Timeline() Interval {
	return Interval{kind: KindTimeline}
}

// FromBoundaries builds an interval from its boundaries, inferring the kind.
// A nil bound extends to infinity on that side and its inclusion flag must
// also be nil. Equal included bounds collapse to a point. Both bounds absent
// builds the entire timeline.
func FromBoundaries(start, end *Instant, startIncluded, endIncluded *bool) (Interval, error) {
	if (start == nil) != (startIncluded == nil) {
		return Interval{}, errors.InvalidArgument(EntityInterval, "the start inclusion flag must be set exactly when the start is set")
	}
	if (end == nil) != (endIncluded == nil) {
		return Interval{}, errors.InvalidArgument(EntityInterval, "the end inclusion flag must be set exactly when the end is set")
	}

	switch {
	case start != nil && end != nil:
		if *startIncluded && *endIncluded {
			if start.After(*end) {
				return Interval{}, errors.InvalidArgument(EntityInterval, "the start of the interval cannot occur after its end")
			}
			if start.Equal(*end) {
				return Point(*start), nil
			}
			return Closed(*start, *end)
		}
		if *startIncluded {
			return ClosedOpen(*start, *end)
		}
		if *endIncluded {
			return OpenClosed(*start, *end)
		}
		return Open(*start, *end)

	case start != nil:
		if *startIncluded {
			return RightClosed(*start), nil
		}
		return RightOpen(*start), nil

	case end != nil:
		if *endIncluded {
			return LeftClosed(*end), nil
		}
		return LeftOpen(*end), nil

	default:
		return Timeline(), nil
	}
}

func (i Interval) Kind() Kind {
	return i.kind
}

// Start returns the start bound. The second value is false when the start
// is not specified, i.e. the interval is empty or extends to -infinity.
func (i Interval) Start() (Instant, bool) {
	if !i.kind.specifiesStart() {
		return Instant{}, false
	}
	return i.start, true
}

// End returns the end bound. The second value is false when the end is not
// specified, i.e. the interval is empty or extends to +infinity.
func (i Interval) End() (Instant, bool) {
	if !i.kind.specifiesEnd() {
		return Instant{}, false
	}
	return i.end, true
}

// IsStartIncluded reports whether the start bound belongs to the interval.
// The second value is false when the start is not specified.
func (i Interval) IsStartIncluded() (included, specified bool) {
	if !i.kind.specifiesStart() {
		return false, false
	}
	return i.kind.includesStart(), true
}

// IsEndIncluded reports whether the end bound belongs to the interval. The
// second value is false when the end is not specified.
func (i Interval) IsEndIncluded() (included, specified bool) {
	if !i.kind.specifiesEnd() {
		return false, false
	}
	return i.kind.includesEnd(), true
}

func (i Interval) IsEmpty() bool {
	return i.kind == KindEmpty
}

func (i Interval) IsPoint() bool {
	return i.kind == KindPoint
}

func (i Interval) IsTimeline() bool {
	return i.kind == KindTimeline
}

// IsBounded reports boundedness in the mathematical sense, so an empty
// interval is bounded.
func (i Interval) IsBounded() bool {
	switch i.kind {
	case KindEmpty, KindPoint, KindOpen, KindClosed, KindClosedOpen, KindOpenClosed:
		return true
	case KindRightOpen, KindRightClosed, KindLeftOpen, KindLeftClosed, KindTimeline:
		return false
	}
	return false
}

func (i Interval) IsLeftBounded() bool {
	switch i.kind {
	case KindEmpty, KindPoint, KindOpen, KindClosed, KindClosedOpen, KindOpenClosed, KindRightOpen, KindRightClosed:
		return true
	case KindLeftOpen, KindLeftClosed, KindTimeline:
		return false
	}
	return false
}

func (i Interval) IsRightBounded() bool {
	switch i.kind {
	case KindEmpty, KindPoint, KindOpen, KindClosed, KindClosedOpen, KindOpenClosed, KindLeftOpen, KindLeftClosed:
		return true
	case KindRightOpen, KindRightClosed, KindTimeline:
		return false
	}
	return false
}

// IsOpen reports openness in the topological sense: the empty interval and
// the entire timeline are open, a half-open interval is not.
func (i Interval) IsOpen() bool {
	switch i.kind {
	case KindEmpty, KindOpen, KindRightOpen, KindLeftOpen, KindTimeline:
		return true
	case KindPoint, KindClosed, KindClosedOpen, KindOpenClosed, KindRightClosed, KindLeftClosed:
		return false
	}
	return false
}

// IsClosed reports closedness in the topological sense. Non-openness does
// not imply closedness: a half-open interval is neither.
func (i Interval) IsClosed() bool {
	switch i.kind {
	case KindEmpty, KindPoint, KindClosed, KindRightClosed, KindLeftClosed, KindTimeline:
		return true
	case KindOpen, KindClosedOpen, KindOpenClosed, KindRightOpen, KindLeftOpen:
		return false
	}
	return false
}

// ContainsInstant reports whether the given moment falls within the
// interval.
func (i Interval) ContainsInstant(moment Instant) bool {
	switch i.kind {
	case KindEmpty:
		return false
	case KindPoint:
		return moment.Equal(i.start)
	case KindTimeline:
		return true
	}

	leftOK := true
	if start, ok := i.Start(); ok {
		if i.kind.includesStart() {
			leftOK = !moment.Before(start)
		} else {
			leftOK = moment.After(start)
		}
	}

	rightOK := true
	if end, ok := i.End(); ok {
		if i.kind.includesEnd() {
			rightOK = !moment.After(end)
		} else {
			rightOK = moment.Before(end)
		}
	}

	return leftOK && rightOK
}

// Contains reports whether the interval contains the other one. Every
// interval contains the empty interval.
func (i Interval) Contains(other Interval) bool {
	if other.IsEmpty() {
		return true
	}
	if i.IsEmpty() {
		return false
	}

	if otherStart, ok := other.Start(); ok {
		if selfStart, selfOk := i.Start(); selfOk {
			switch selfStart.Compare(otherStart) {
			case 1:
				return false
			case 0:
				if !i.kind.includesStart() && other.kind.includesStart() {
					return false
				}
			}
		}
	} else if i.kind.specifiesStart() {
		// other extends to -infinity, self does not
		return false
	}

	if otherEnd, ok := other.End(); ok {
		if selfEnd, selfOk := i.End(); selfOk {
			switch selfEnd.Compare(otherEnd) {
			case -1:
				return false
			case 0:
				if !i.kind.includesEnd() && other.kind.includesEnd() {
					return false
				}
			}
		}
	} else if i.kind.specifiesEnd() {
		// other extends to +infinity, self does not
		return false
	}

	return true
}

// IsContainedIn reports whether the interval is contained in the other one.
func (i Interval) IsContainedIn(other Interval) bool {
	return other.Contains(i)
}

// IsLeftOf reports that the interval lies entirely to the left of the other
// without intersecting it; touching at an excluded bound is allowed. It is
// automatically true when either interval is empty.
func (i Interval) IsLeftOf(other Interval) bool {
	if i.IsEmpty() || other.IsEmpty() {
		return true
	}

	selfEnd, selfOk := i.End()
	otherStart, otherOk := other.Start()
	if !selfOk || !otherOk {
		return false
	}

	switch selfEnd.Compare(otherStart) {
	case -1:
		return true
	case 0:
		return !i.kind.includesEnd() || !other.kind.includesStart()
	}
	return false
}

func (i Interval) IsRightOf(other Interval) bool {
	return other.IsLeftOf(i)
}

// IsLeftOfDisconnectedly additionally requires the union of the two
// intervals to be disconnected: when the adjoining bounds are equal, both
// must be excluded. It is never true when either interval is empty, because
// a disconnected union needs two non-empty pieces.
func (i Interval) IsLeftOfDisconnectedly(other Interval) bool {
	if i.IsEmpty() || other.IsEmpty() {
		return false
	}

	selfEnd, selfOk := i.End()
	otherStart, otherOk := other.Start()
	if !selfOk || !otherOk {
		return false
	}

	switch selfEnd.Compare(otherStart) {
	case -1:
		return true
	case 0:
		return !i.kind.includesEnd() && !other.kind.includesStart()
	}
	return false
}

func (i Interval) IsRightOfDisconnectedly(other Interval) bool {
	return other.IsLeftOfDisconnectedly(i)
}

// Overlaps reports whether the two intervals have a non-empty intersection.
func (i Interval) Overlaps(other Interval) bool {
	if i.IsEmpty() || other.IsEmpty() {
		return false
	}
	return !i.IsLeftOf(other) && !other.IsLeftOf(i)
}

// Touches reports whether both intervals are non-empty and their union is
// connected: they overlap or share an unbroken boundary.
func (i Interval) Touches(other Interval) bool {
	if i.IsEmpty() || other.IsEmpty() {
		return false
	}
	return !i.IsLeftOfDisconnectedly(other) && !other.IsLeftOfDisconnectedly(i)
}

// Intersect returns the intersection of two intervals.
func (i Interval) Intersect(other Interval) Interval {
	if i.IsEmpty() || other.IsEmpty() {
		return Empty()
	}
	if i.IsTimeline() {
		return other
	}
	if other.IsTimeline() {
		return i
	}

	var start *Instant
	var startIncluded *bool
	selfStart, selfStartOk := i.Start()
	otherStart, otherStartOk := other.Start()
	switch {
	case selfStartOk && otherStartOk:
		// the later start wins; on a tie the bound stays included only
		// when both sides include it
		switch selfStart.Compare(otherStart) {
		case -1:
			start, startIncluded = &otherStart, boolPtr(other.kind.includesStart())
		case 1:
			start, startIncluded = &selfStart, boolPtr(i.kind.includesStart())
		default:
			start, startIncluded = &selfStart, boolPtr(i.kind.includesStart() && other.kind.includesStart())
		}
	case selfStartOk:
		start, startIncluded = &selfStart, boolPtr(i.kind.includesStart())
	case otherStartOk:
		start, startIncluded = &otherStart, boolPtr(other.kind.includesStart())
	}

	var end *Instant
	var endIncluded *bool
	selfEnd, selfEndOk := i.End()
	otherEnd, otherEndOk := other.End()
	switch {
	case selfEndOk && otherEndOk:
		// the earlier end wins, with the same tie rule
		switch selfEnd.Compare(otherEnd) {
		case -1:
			end, endIncluded = &selfEnd, boolPtr(i.kind.includesEnd())
		case 1:
			end, endIncluded = &otherEnd, boolPtr(other.kind.includesEnd())
		default:
			end, endIncluded = &selfEnd, boolPtr(i.kind.includesEnd() && other.kind.includesEnd())
		}
	case selfEndOk:
		end, endIncluded = &selfEnd, boolPtr(i.kind.includesEnd())
	case otherEndOk:
		end, endIncluded = &otherEnd, boolPtr(other.kind.includesEnd())
	}

	if start != nil && end != nil {
		switch start.Compare(*end) {
		case 1:
			return Empty()
		case 0:
			if !(*startIncluded && *endIncluded) {
				return Empty()
			}
		}
	}

	result, err := FromBoundaries(start, end, startIncluded, endIncluded)
	if err != nil {
		// bounds combined from two valid intervals and re-checked above
		// cannot be invalid
		return Empty()
	}
	return result
}

// Duration returns the length of the interval. The second value is false
// when the interval is unbounded. An empty interval has zero duration.
func (i Interval) Duration() (time.Duration, bool) {
	if !i.IsBounded() {
		return 0, false
	}
	if i.IsEmpty() {
		return 0, true
	}
	return i.end.Sub(i.start), true
}

// ToTheLeft returns the interval occupying everything strictly to the left
// of this one: the entire timeline for an empty interval, nothing for an
// interval already extending to -infinity.
func (i Interval) ToTheLeft() Interval {
	if i.IsEmpty() {
		return Timeline()
	}
	start, ok := i.Start()
	if !ok {
		return Empty()
	}
	if i.kind.includesStart() {
		return LeftOpen(start)
	}
	return LeftClosed(start)
}

// ToTheRight returns the interval occupying everything strictly to the
// right of this one.
func (i Interval) ToTheRight() Interval {
	if i.IsEmpty() {
		return Timeline()
	}
	end, ok := i.End()
	if !ok {
		return Empty()
	}
	if i.kind.includesEnd() {
		return RightOpen(end)
	}
	return RightClosed(end)
}

// Between returns the gap strictly to the right of first and strictly to
// the left of second. When first does not lie to the left of second the gap
// is empty. Touching bounds that are both excluded leave a single point
// between the intervals.
func Between(first, second Interval) Interval {
	if !first.IsLeftOf(second) {
		return Empty()
	}
	return first.ToTheRight().Intersect(second.ToTheLeft())
}

// MinimalCover returns the smallest single interval containing all the
// given intervals. The cover of no intervals, or of only empty ones, is
// empty.
func MinimalCover(intervals ...Interval) Interval {
	nonempty := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if !iv.IsEmpty() {
			nonempty = append(nonempty, iv)
		}
	}
	if len(nonempty) == 0 {
		return Empty()
	}

	var start *Instant
	var startIncluded *bool
	leftmost := nonempty[0]
	for _, iv := range nonempty[1:] {
		if compareStartBounds(iv, leftmost) < 0 {
			leftmost = iv
		}
	}
	if coverStart, ok := leftmost.Start(); ok {
		included := false
		for _, iv := range nonempty {
			if s, sok := iv.Start(); sok && s.Equal(coverStart) && iv.kind.includesStart() {
				included = true
				break
			}
		}
		start, startIncluded = &coverStart, &included
	}

	var end *Instant
	var endIncluded *bool
	rightmost := nonempty[0]
	for _, iv := range nonempty[1:] {
		if compareEndBounds(iv, rightmost) > 0 {
			rightmost = iv
		}
	}
	if coverEnd, ok := rightmost.End(); ok {
		included := false
		for _, iv := range nonempty {
			if e, eok := iv.End(); eok && e.Equal(coverEnd) && iv.kind.includesEnd() {
				included = true
				break
			}
		}
		end, endIncluded = &coverEnd, &included
	}

	cover, err := FromBoundaries(start, end, startIncluded, endIncluded)
	if err != nil {
		// bounds taken from valid non-empty intervals cannot produce an
		// invalid cover
		return Empty()
	}
	return cover
}

// Closure returns the topological closure of the interval.
func (i Interval) Closure() Interval {
	switch i.kind {
	case KindOpen, KindClosedOpen, KindOpenClosed:
		return Interval{kind: KindClosed, start: i.start, end: i.end}
	case KindRightOpen:
		return RightClosed(i.start)
	case KindLeftOpen:
		return LeftClosed(i.end)
	case KindEmpty, KindPoint, KindClosed, KindRightClosed, KindLeftClosed, KindTimeline:
		return i
	}
	return i
}

// Interior returns the topological interior of the interval. The interior
// of a point is empty.
func (i Interval) Interior() Interval {
	switch i.kind {
	case KindPoint:
		return Empty()
	case KindClosed, KindClosedOpen, KindOpenClosed:
		return Interval{kind: KindOpen, start: i.start, end: i.end}
	case KindRightClosed:
		return RightOpen(i.start)
	case KindLeftClosed:
		return LeftOpen(i.end)
	case KindEmpty, KindOpen, KindRightOpen, KindLeftOpen, KindTimeline:
		return i
	}
	return i
}

// Equal reports structural equality: same kind and the same specified
// bounds, compared on the absolute moment.
func (i Interval) Equal(other Interval) bool {
	if i.kind != other.kind {
		return false
	}
	if i.kind.specifiesStart() && !i.start.Equal(other.start) {
		return false
	}
	if i.kind.specifiesEnd() && !i.end.Equal(other.end) {
		return false
	}
	return true
}

func (i Interval) String() string {
	switch i.kind {
	case KindEmpty:
		return "∅"
	case KindPoint:
		return "{" + i.start.String() + "}"
	case KindOpen:
		return "(" + i.start.String() + "; " + i.end.String() + ")"
	case KindClosed:
		return "[" + i.start.String() + "; " + i.end.String() + "]"
	case KindClosedOpen:
		return "[" + i.start.String() + "; " + i.end.String() + ")"
	case KindOpenClosed:
		return "(" + i.start.String() + "; " + i.end.String() + "]"
	case KindRightOpen:
		return "(" + i.start.String() + "; +∞)"
	case KindRightClosed:
		return "[" + i.start.String() + "; +∞)"
	case KindLeftOpen:
		return "(-∞; " + i.end.String() + ")"
	case KindLeftClosed:
		return "(-∞; " + i.end.String() + "]"
	case KindTimeline:
		return "(-∞; +∞)"
	}
	return "invalid interval"
}

// compareStartBounds orders intervals by their start bound; an unspecified
// start extends to -infinity and sorts before every finite start. This is
// the single place encoding the ordering convention for absent bounds.
func compareStartBounds(a, b Interval) int {
	aStart, aOk := a.Start()
	bStart, bOk := b.Start()
	switch {
	case !aOk && !bOk:
		return 0
	case !aOk:
		return -1
	case !bOk:
		return 1
	}
	return aStart.Compare(bStart)
}

// compareEndBounds orders intervals by their end bound; an unspecified end
// extends to +infinity and sorts after every finite end.
func compareEndBounds(a, b Interval) int {
	aEnd, aOk := a.End()
	bEnd, bOk := b.End()
	switch {
	case !aOk && !bOk:
		return 0
	case !aOk:
		return 1
	case !bOk:
		return -1
	}
	return aEnd.Compare(bEnd)
}

func boolPtr(b bool) *bool {
	return &b
}
