package almanac

import (
	"errors"
)

// StageBlock is the parsed form of one "<from>-to-<to> map:" block.
type StageBlock struct {
	From  string     `yaml:"from"`
	To    string     `yaml:"to"`
	Rules []RuleSpec `yaml:"rules"`
}

// RuleSpec is one "destination source length" line.
type RuleSpec struct {
	Destination int64 `yaml:"destination"`
	Source      int64 `yaml:"source"`
	Length      int64 `yaml:"length"`
}

// Pipeline is an ordered chain of stages in which every stage's To label is
// the next stage's From label. It is immutable and may be used by multiple
// goroutines at once.
type Pipeline struct {
	stages []*Stage
}

// BuildPipeline builds a Pipeline from stage blocks in the given order.
func BuildPipeline(blocks []StageBlock) (*Pipeline, error) {
	stages := make([]*Stage, len(blocks))
	for i, b := range blocks {
		rules := make([]ConversionRule, len(b.Rules))
		for j, spec := range b.Rules {
			rules[j] = ConversionRule{Source: spec.Source, Destination: spec.Destination, Length: spec.Length}
		}
		st, err := NewStage(b.From, b.To, rules...)
		if err != nil {
			var ce *ConstructionError
			if errors.As(err, &ce) {
				ce.Stage = i
			}
			return nil, err
		}
		stages[i] = st
	}
	return NewPipeline(stages...)
}

func NewPipeline(stages ...*Stage) (*Pipeline, error) {
	if len(stages) == 0 {
		return nil, constructionErrorf(-1, -1, "no stages")
	}
	for i, st := range stages {
		if st == nil {
			return nil, constructionErrorf(i, -1, "nil stage")
		}
		if i > 0 && stages[i-1].to != st.from {
			return nil, constructionErrorf(i, -1, "stage %v-to-%v does not follow %v-to-%v",
				st.from, st.to, stages[i-1].from, stages[i-1].to)
		}
	}
	return &Pipeline{append([]*Stage(nil), stages...)}, nil
}

// From returns the input domain label.
func (p *Pipeline) From() string { return p.stages[0].from }

// To returns the output domain label.
func (p *Pipeline) To() string { return p.stages[len(p.stages)-1].to }

func (p *Pipeline) Stages() []*Stage {
	return append([]*Stage(nil), p.stages...)
}

// Resolve pushes initial through every stage in order and returns the set of
// reachable values in the output domain.
func (p *Pipeline) Resolve(initial RangeSet) RangeSet {
	s := initial
	for _, st := range p.stages {
		s = st.Apply(s)
	}
	return s
}

// ResolveFunc is like Resolve, but calls f with the set produced by each
// stage.
func (p *Pipeline) ResolveFunc(initial RangeSet, f func(st *Stage, s RangeSet)) RangeSet {
	s := initial
	for _, st := range p.stages {
		s = st.Apply(s)
		f(st, s)
	}
	return s
}

// MinimumValue returns the smallest output value reachable from initial.
// It returns ErrEmptyInput if initial is empty.
func (p *Pipeline) MinimumValue(initial RangeSet) (int64, error) {
	if initial.IsEmpty() {
		return 0, ErrEmptyInput
	}
	min, _ := p.Resolve(initial).MinStart()
	return min, nil
}

// Step is the value of a traced seed in one domain.
type Step struct {
	Domain string
	Value  int64
}

// Lookup maps a single value through every stage.
func (p *Pipeline) Lookup(v int64) int64 {
	for _, st := range p.stages {
		v = st.Map(v)
	}
	return v
}

// Trace is like Lookup, but records the value in every domain, starting with
// the input domain.
func (p *Pipeline) Trace(v int64) []Step {
	steps := make([]Step, 0, len(p.stages)+1)
	steps = append(steps, Step{p.From(), v})
	for _, st := range p.stages {
		v = st.Map(v)
		steps = append(steps, Step{st.to, v})
	}
	return steps
}
