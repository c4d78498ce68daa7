package almanac

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustStage(t *testing.T, from, to string, specs ...RuleSpec) *Stage {
	t.Helper()
	rules := make([]ConversionRule, len(specs))
	for i, spec := range specs {
		r, err := NewConversionRule(spec.Destination, spec.Source, spec.Length)
		require.NoError(t, err)
		rules[i] = r
	}
	st, err := NewStage(from, to, rules...)
	require.NoError(t, err)
	return st
}

func sumLengths(intervals []Interval) int64 {
	var n int64
	for _, iv := range intervals {
		n += iv.Length
	}
	return n
}

func TestStageMap(t *testing.T) {
	st := mustStage(t, "seed", "soil", RuleSpec{50, 98, 2}, RuleSpec{52, 50, 48})

	tests := map[int64]int64{
		0:  0,
		1:  1,
		48: 48,
		49: 49,
		50: 52,
		51: 53,
		96: 98,
		97: 99,
		98: 50,
		99: 51,
	}
	for seed, soil := range tests {
		assert.Equal(t, soil, st.Map(seed), "seed %v", seed)
	}
}

func TestStageOffset(t *testing.T) {
	st := mustStage(t, "a", "b", RuleSpec{Destination: 52, Source: 50, Length: 48})

	assert.Equal(t, NewRangeSet(Interval{52, 1}), st.Apply(NewRangeSet(Interval{50, 1})))
	assert.Equal(t, NewRangeSet(Interval{49, 1}), st.Apply(NewRangeSet(Interval{49, 1})))
	assert.Equal(t, int64(49), st.Map(49))
}

func TestStageSplit(t *testing.T) {
	st := mustStage(t, "a", "b", RuleSpec{Destination: 50, Source: 98, Length: 2})

	pieces := st.Remap(Interval{96, 4})
	assert.Equal(t, []Interval{{50, 2}, {96, 2}}, pieces)
	assert.Equal(t, NewRangeSet(Interval{50, 2}, Interval{96, 2}), st.Apply(NewRangeSet(Interval{96, 4})))
}

func TestStageHole(t *testing.T) {
	st := mustStage(t, "a", "b", RuleSpec{Destination: 110, Source: 10, Length: 5})

	pieces := st.Remap(Interval{0, 30})
	assert.Equal(t, []Interval{{110, 5}, {0, 10}, {15, 15}}, pieces)
}

func TestStageIdentity(t *testing.T) {
	st := mustStage(t, "a", "b")

	in := NewRangeSet(Interval{0, 3}, Interval{10, 1_000_000_000}, Interval{5_000_000_000, 7})
	assert.Equal(t, in, st.Apply(in))
	assert.Equal(t, []Interval{{4, 2}}, st.Remap(Interval{4, 2}))
}

func TestStageFirstRuleWins(t *testing.T) {
	st := mustStage(t, "a", "b",
		RuleSpec{Destination: 100, Source: 0, Length: 10},
		RuleSpec{Destination: 200, Source: 5, Length: 10},
	)

	assert.Equal(t, int64(107), st.Map(7))
	assert.Equal(t, int64(205), st.Map(10))
	assert.Equal(t, []Interval{{100, 10}, {205, 5}}, st.Remap(Interval{0, 15}))
}

func TestStageCoverage(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 200; i++ {
		var specs []RuleSpec
		for j := rng.Intn(6); j > 0; j-- {
			specs = append(specs, RuleSpec{
				Destination: rng.Int63n(1000),
				Source:      rng.Int63n(1000),
				Length:      1 + rng.Int63n(200),
			})
		}
		st := mustStage(t, "a", "b", specs...)

		iv := Interval{rng.Int63n(1000), 1 + rng.Int63n(300)}
		pieces := st.Remap(iv)
		require.Equal(t, iv.Length, sumLengths(pieces), "rules %v, input %v", specs, iv)

		var want RangeSet
		for x := iv.Start; x < iv.End(); x++ {
			want.Add(Interval{st.Map(x), 1})
		}
		require.Equal(t, want, st.Apply(NewRangeSet(iv)), "rules %v, input %v", specs, iv)
	}
}

func TestNewStageRejectsBadRules(t *testing.T) {
	tests := []struct {
		name string
		rule ConversionRule
	}{
		{"zero length", ConversionRule{Source: 1, Destination: 2, Length: 0}},
		{"negative length", ConversionRule{Source: 1, Destination: 2, Length: -4}},
		{"negative source", ConversionRule{Source: -1, Destination: 2, Length: 4}},
		{"overflow", ConversionRule{Source: 1 << 62, Destination: 0, Length: 1 << 62}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok := ConversionRule{Source: 0, Destination: 0, Length: 1}
			_, err := NewStage("a", "b", ok, tt.rule)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConstruction))

			var ce *ConstructionError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, 1, ce.Rule)
		})
	}

	_, err := NewConversionRule(2, 1, 0)
	assert.ErrorIs(t, err, ErrConstruction)
}

func TestStageIsNotAliased(t *testing.T) {
	rules := []ConversionRule{{Source: 0, Destination: 10, Length: 5}}
	st, err := NewStage("a", "b", rules...)
	require.NoError(t, err)

	rules[0].Destination = 1000
	st.Rules()[0].Destination = 2000
	assert.Equal(t, int64(13), st.Map(3))
}
