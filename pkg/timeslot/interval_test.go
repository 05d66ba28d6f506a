package timeslot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iv(start, end int) Interval {
	return Interval{Start: start, End: end}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name  string
		input []Interval
		want  []Interval
	}{
		{name: "empty", input: nil, want: []Interval{}},
		{name: "single", input: []Interval{iv(540, 600)}, want: []Interval{iv(540, 600)}},
		{
			name:  "disjoint stay separate",
			input: []Interval{iv(780, 840), iv(540, 600)},
			want:  []Interval{iv(540, 600), iv(780, 840)},
		},
		{
			name:  "overlapping coalesce",
			input: []Interval{iv(540, 630), iv(600, 720)},
			want:  []Interval{iv(540, 720)},
		},
		{
			name:  "touching coalesce",
			input: []Interval{iv(540, 600), iv(600, 660)},
			want:  []Interval{iv(540, 660)},
		},
		{
			name:  "contained is absorbed",
			input: []Interval{iv(540, 720), iv(570, 600)},
			want:  []Interval{iv(540, 720)},
		},
		{
			name:  "unsorted mixed",
			input: []Interval{iv(700, 760), iv(540, 600), iv(590, 650), iv(760, 800)},
			want:  []Interval{iv(540, 650), iv(700, 800)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Merge(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMergeRejectsInvalidInterval(t *testing.T) {
	_, err := Merge([]Interval{iv(600, 600)})
	var invalid *InvalidIntervalError
	require.ErrorAs(t, err, &invalid)

	_, err = Merge([]Interval{iv(600, 540)})
	require.ErrorAs(t, err, &invalid)
}

func TestMergeIdempotent(t *testing.T) {
	inputs := [][]Interval{
		{},
		{iv(540, 600)},
		{iv(540, 630), iv(600, 720), iv(100, 200), iv(150, 250), iv(250, 300)},
		{iv(0, 1440)},
	}
	for _, input := range inputs {
		once, err := Merge(input)
		require.NoError(t, err)
		twice, err := Merge(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	}
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		name     string
		base     []Interval
		subtract []Interval
		want     []Interval
	}{
		{
			name: "nothing to subtract",
			base: []Interval{iv(540, 720)},
			want: []Interval{iv(540, 720)},
		},
		{
			name:     "hole in the middle",
			base:     []Interval{iv(540, 720)},
			subtract: []Interval{iv(600, 660)},
			want:     []Interval{iv(540, 600), iv(660, 720)},
		},
		{
			name:     "full cover",
			base:     []Interval{iv(540, 720)},
			subtract: []Interval{iv(500, 800)},
			want:     []Interval{},
		},
		{
			name:     "partial overlap at start",
			base:     []Interval{iv(540, 720)},
			subtract: []Interval{iv(480, 600)},
			want:     []Interval{iv(600, 720)},
		},
		{
			name:     "partial overlap at end",
			base:     []Interval{iv(540, 720)},
			subtract: []Interval{iv(660, 800)},
			want:     []Interval{iv(540, 660)},
		},
		{
			name:     "subtrahend entirely outside base",
			base:     []Interval{iv(540, 720)},
			subtract: []Interval{iv(60, 120), iv(800, 900)},
			want:     []Interval{iv(540, 720)},
		},
		{
			name:     "multiple bases and holes",
			base:     []Interval{iv(540, 720), iv(780, 1080)},
			subtract: []Interval{iv(570, 630), iv(700, 800), iv(900, 930)},
			want:     []Interval{iv(540, 570), iv(630, 700), iv(800, 900), iv(930, 1080)},
		},
		{
			name:     "touching subtrahend leaves base intact",
			base:     []Interval{iv(540, 720)},
			subtract: []Interval{iv(720, 780)},
			want:     []Interval{iv(540, 720)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Subtract(tt.base, tt.subtract)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Remaining time after subtraction never exceeds the merged base time.
func TestSubtractConservation(t *testing.T) {
	base := []Interval{iv(540, 720), iv(780, 1080), iv(700, 790)}
	subtracts := [][]Interval{
		{},
		{iv(600, 660)},
		{iv(0, 1440)},
		{iv(500, 560), iv(550, 620), iv(1000, 1200)},
	}

	mergedBase, err := Merge(base)
	require.NoError(t, err)

	for _, sub := range subtracts {
		got, err := Subtract(base, sub)
		require.NoError(t, err)
		assert.LessOrEqual(t, TotalMinutes(got), TotalMinutes(mergedBase))
	}
}

func TestIntersectsAny(t *testing.T) {
	set := []Interval{iv(540, 600), iv(720, 780)}

	assert.True(t, IntersectsAny(iv(570, 630), set))
	assert.True(t, IntersectsAny(iv(550, 560), set))
	assert.False(t, IntersectsAny(iv(600, 720), set), "touching both is not overlap")
	assert.False(t, IntersectsAny(iv(0, 540), set))
	assert.False(t, IntersectsAny(iv(780, 900), set))
}

func TestIntervalHelpers(t *testing.T) {
	assert.Equal(t, 90, iv(540, 630).Length())
	assert.Equal(t, 30, iv(540, 630).OverlapMinutes(iv(600, 700)))
	assert.Equal(t, 0, iv(540, 630).OverlapMinutes(iv(630, 700)))
	assert.Equal(t, "9:00 AM - 10:30 AM", iv(540, 630).Label())
	assert.Equal(t, 150, TotalMinutes([]Interval{iv(540, 630), iv(700, 760)}))

	_, err := NewInterval(600, 540)
	var invalid *InvalidIntervalError
	assert.ErrorAs(t, err, &invalid)
}
