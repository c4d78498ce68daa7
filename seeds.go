package almanac

import (
	"fmt"
)

// SeedMode selects how a seed list is read.
type SeedMode int

const (
	// SeedValues treats every number as a single seed.
	SeedValues SeedMode = iota
	// SeedRanges treats the numbers as "start length" pairs.
	SeedRanges
)

func (m SeedMode) String() string {
	switch m {
	case SeedValues:
		return "values"
	case SeedRanges:
		return "ranges"
	}
	return fmt.Sprintf("SeedMode(%d)", int(m))
}

func ParseSeedMode(s string) (SeedMode, error) {
	switch s {
	case "values", "seeds", "1":
		return SeedValues, nil
	case "ranges", "2":
		return SeedRanges, nil
	}
	return 0, errorf("unknown seed mode %q", s)
}

// BuildInitialRangeSet returns the set of seed values described by seeds.
func BuildInitialRangeSet(seeds []int64, mode SeedMode) (RangeSet, error) {
	var s RangeSet
	switch mode {
	case SeedValues:
		for i, v := range seeds {
			if v < 0 {
				return RangeSet{}, fmt.Errorf("%w: seed %v: negative value %v", ErrInvalidSeeds, i, v)
			}
			s.Add(Interval{v, 1})
		}
	case SeedRanges:
		if len(seeds)%2 != 0 {
			return RangeSet{}, fmt.Errorf("%w: odd number of values (%v) for start-length pairs", ErrInvalidSeeds, len(seeds))
		}
		for i := 0; i < len(seeds); i += 2 {
			start, length := seeds[i], seeds[i+1]
			if !fitsInt64(start, length) {
				return RangeSet{}, fmt.Errorf("%w: pair %v: bad range (start %v, length %v)", ErrInvalidSeeds, i/2, start, length)
			}
			s.Add(Interval{start, length})
		}
	default:
		return RangeSet{}, fmt.Errorf("%w: %v", ErrInvalidSeeds, mode)
	}
	return s, nil
}
