package almanac

// Stage is one labelled piecewise-offset transformation. Values not covered
// by any rule map to themselves. A Stage is never modified after NewStage
// returns.
type Stage struct {
	from, to string
	rules    []ConversionRule
}

// NewStage returns a Stage whose rules are scanned in the given order; when
// source ranges overlap, the first matching rule wins.
func NewStage(from, to string, rules ...ConversionRule) (*Stage, error) {
	for i, r := range rules {
		if err := r.validate(); err != nil {
			return nil, constructionErrorf(-1, i, "%v-to-%v: %v", from, to, err)
		}
	}
	return &Stage{
		from:  from,
		to:    to,
		rules: append([]ConversionRule(nil), rules...),
	}, nil
}

func (st *Stage) From() string { return st.from }
func (st *Stage) To() string   { return st.to }

func (st *Stage) Rules() []ConversionRule {
	return append([]ConversionRule(nil), st.rules...)
}

// Remap splits iv against the stage's rules and returns its image as a list
// of pieces. Every value of iv is mapped exactly once, so the lengths of the
// returned pieces add up to iv.Length. The pieces may overlap each other.
func (st *Stage) Remap(iv Interval) []Interval {
	return st.remap(nil, iv)
}

func (st *Stage) remap(mapped []Interval, iv Interval) []Interval {
	if iv.IsEmpty() {
		return mapped
	}

	unmapped := []Interval{iv}
	for _, r := range st.rules {
		if len(unmapped) == 0 {
			break
		}
		source, offset := r.SourceInterval(), r.Offset()
		var remainder []Interval
		for _, piece := range unmapped {
			overlap, ok := Overlap(piece, source)
			if !ok {
				remainder = append(remainder, piece)
				continue
			}
			remainder = append(remainder, Subtract(piece, overlap)...)
			mapped = append(mapped, overlap.Shift(offset))
		}
		unmapped = remainder
	}

	return append(mapped, unmapped...)
}

// Apply returns the set of all images of the values in s.
func (st *Stage) Apply(s RangeSet) RangeSet {
	var (
		out    RangeSet
		pieces []Interval
	)
	for _, iv := range s.Intervals() {
		pieces = st.remap(pieces[:0], iv)
		for _, p := range pieces {
			out.Add(p)
		}
	}
	return out
}

// Map returns the image of a single value. It exists as a reference for the
// interval algorithm and for tracing individual values.
func (st *Stage) Map(v int64) int64 {
	for _, r := range st.rules {
		if w, ok := r.Map(v); ok {
			return w
		}
	}
	return v
}
