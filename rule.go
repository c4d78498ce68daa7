package almanac

// ConversionRule maps [Source, Source+Length) onto
// [Destination, Destination+Length) by a constant offset.
type ConversionRule struct {
	Source      int64
	Destination int64
	Length      int64
}

// NewConversionRule takes its arguments in the order they appear in an
// almanac line: destination, source, length.
func NewConversionRule(destination, source, length int64) (ConversionRule, error) {
	r := ConversionRule{Source: source, Destination: destination, Length: length}
	if err := r.validate(); err != nil {
		return ConversionRule{}, &ConstructionError{-1, -1, err.Error()}
	}
	return r, nil
}

func (r ConversionRule) validate() error {
	switch {
	case r.Length <= 0:
		return errorf("non-positive length %v", r.Length)
	case r.Source < 0 || r.Destination < 0:
		return errorf("negative start (source %v, destination %v)", r.Source, r.Destination)
	case !fitsInt64(r.Source, r.Length) || !fitsInt64(r.Destination, r.Length):
		return errorf("range overflows int64")
	}
	return nil
}

func (r ConversionRule) SourceInterval() Interval {
	return Interval{r.Source, r.Length}
}

func (r ConversionRule) DestinationInterval() Interval {
	return Interval{r.Destination, r.Length}
}

func (r ConversionRule) Offset() int64 {
	return r.Destination - r.Source
}

// Map returns the image of v and true if v lies in the rule's source range.
func (r ConversionRule) Map(v int64) (int64, bool) {
	if !r.SourceInterval().Contains(v) {
		return v, false
	}
	return v + r.Offset(), true
}
