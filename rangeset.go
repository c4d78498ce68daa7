package almanac

import (
	"strings"

	"github.com/b97tsk/rangeset"
)

// RangeSet is a set of values stored as sorted, disjoint intervals.
// Adjacent and overlapping intervals are coalesced on insertion, so the
// number of stored intervals never exceeds what the values require.
//
// The zero value is an empty set.
type RangeSet struct {
	s rangeset.RangeSet[int64]
}

func NewRangeSet(intervals ...Interval) RangeSet {
	var s RangeSet
	for _, iv := range intervals {
		s.Add(iv)
	}
	return s
}

// Add inserts iv. Empty intervals are ignored.
func (s *RangeSet) Add(iv Interval) {
	if iv.IsEmpty() {
		return
	}
	s.s.AddRange(iv.Start, iv.End())
}

func (s *RangeSet) Delete(iv Interval) {
	if iv.IsEmpty() {
		return
	}
	s.s.DeleteRange(iv.Start, iv.End())
}

func (s RangeSet) Intervals() []Interval {
	intervals := make([]Interval, len(s.s))
	for i, r := range s.s {
		intervals[i] = Interval{r.Low, r.High - r.Low}
	}
	return intervals
}

func (s RangeSet) Len() int {
	return len(s.s)
}

func (s RangeSet) IsEmpty() bool {
	return len(s.s) == 0
}

// Count returns the number of values in s.
func (s RangeSet) Count() int64 {
	var n int64
	for _, r := range s.s {
		n += r.High - r.Low
	}
	return n
}

// MinStart returns the smallest value in s.
func (s RangeSet) MinStart() (int64, bool) {
	if len(s.s) == 0 {
		return 0, false
	}
	min := s.s[0].Low
	for _, r := range s.s[1:] {
		if r.Low < min {
			min = r.Low
		}
	}
	return min, true
}

func (s RangeSet) Equal(t RangeSet) bool {
	if len(s.s) != len(t.s) {
		return false
	}
	for i := range s.s {
		if s.s[i] != t.s[i] {
			return false
		}
	}
	return true
}

func (s RangeSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, iv := range s.Intervals() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(iv.String())
	}
	b.WriteByte('}')
	return b.String()
}
