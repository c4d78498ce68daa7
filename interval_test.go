package almanac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want Interval
		ok   bool
	}{
		{"disjoint", Interval{0, 10}, Interval{20, 5}, Interval{}, false},
		{"adjacent", Interval{0, 10}, Interval{10, 5}, Interval{}, false},
		{"left edge", Interval{5, 10}, Interval{0, 7}, Interval{5, 2}, true},
		{"right edge", Interval{5, 10}, Interval{12, 10}, Interval{12, 3}, true},
		{"inside", Interval{0, 100}, Interval{40, 10}, Interval{40, 10}, true},
		{"covering", Interval{40, 10}, Interval{0, 100}, Interval{40, 10}, true},
		{"equal", Interval{3, 3}, Interval{3, 3}, Interval{3, 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Overlap(tt.a, tt.b)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)

			got, ok = Overlap(tt.b, tt.a)
			assert.Equal(t, tt.ok, ok, "overlap is symmetric")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want []Interval
	}{
		{"disjoint", Interval{0, 10}, Interval{20, 5}, []Interval{{0, 10}}},
		{"covered", Interval{5, 5}, Interval{0, 100}, nil},
		{"equal", Interval{5, 5}, Interval{5, 5}, nil},
		{"left edge", Interval{5, 10}, Interval{0, 7}, []Interval{{7, 8}}},
		{"right edge", Interval{5, 10}, Interval{12, 10}, []Interval{{5, 7}}},
		{"hole", Interval{0, 30}, Interval{10, 5}, []Interval{{0, 10}, {15, 15}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Subtract(tt.a, tt.b))
		})
	}
}

func TestIntervalShift(t *testing.T) {
	iv := Interval{98, 2}
	assert.Equal(t, Interval{50, 2}, iv.Shift(-48))
	assert.Equal(t, Interval{100, 2}, iv.Shift(2))
	assert.Equal(t, Interval{98, 2}, iv, "shift does not modify the receiver")
}

func TestIntervalContains(t *testing.T) {
	iv := Interval{50, 48}
	assert.False(t, iv.Contains(49))
	assert.True(t, iv.Contains(50))
	assert.True(t, iv.Contains(97))
	assert.False(t, iv.Contains(98))
	assert.Equal(t, "[50,98)", iv.String())
}
