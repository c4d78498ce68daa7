// Package almanac maps sets of seed values through a chain of piecewise-offset
// stages, working on intervals instead of individual values.
package almanac

import (
	"math"
	"strconv"
)

// Interval is the half-open range [Start, Start+Length).
type Interval struct {
	Start, Length int64
}

func (iv Interval) End() int64 {
	return iv.Start + iv.Length
}

func (iv Interval) IsEmpty() bool {
	return iv.Length <= 0
}

func (iv Interval) Contains(v int64) bool {
	return iv.Start <= v && v < iv.End()
}

// Shift translates iv by offset, keeping its length.
func (iv Interval) Shift(offset int64) Interval {
	return Interval{iv.Start + offset, iv.Length}
}

func (iv Interval) String() string {
	return "[" + strconv.FormatInt(iv.Start, 10) + "," + strconv.FormatInt(iv.End(), 10) + ")"
}

// Overlap returns the intersection of a and b, and false if they do not
// overlap.
func Overlap(a, b Interval) (Interval, bool) {
	low, high := a.Start, a.End()
	if b.Start > low {
		low = b.Start
	}
	if end := b.End(); end < high {
		high = end
	}
	if low >= high {
		return Interval{}, false
	}
	return Interval{low, high - low}, true
}

// Subtract returns the pieces of a not covered by b: none when b covers a,
// one when b overlaps an edge of a, two when b punches a hole in a.
func Subtract(a, b Interval) []Interval {
	overlap, ok := Overlap(a, b)
	if !ok {
		return []Interval{a}
	}
	var pieces []Interval
	if overlap.Start > a.Start {
		pieces = append(pieces, Interval{a.Start, overlap.Start - a.Start})
	}
	if end := overlap.End(); end < a.End() {
		pieces = append(pieces, Interval{end, a.End() - end})
	}
	return pieces
}

func fitsInt64(start, length int64) bool {
	return start >= 0 && length > 0 && start <= math.MaxInt64-length
}
