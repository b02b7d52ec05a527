package builder_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusmap/builder"
	"github.com/katalvlaran/campusmap/navigator"
)

func TestPath(t *testing.T) {
	recs, err := builder.BuildRecords(nil, builder.Path(3))
	require.NoError(t, err)
	require.Equal(t, []navigator.Record{
		{Source: "L0", Destination: "L1", Seconds: 60},
		{Source: "L1", Destination: "L2", Seconds: 60},
	}, recs)
}

func TestCycleTwoWay(t *testing.T) {
	recs, err := builder.BuildRecords([]builder.BuilderOption{builder.WithTwoWay()}, builder.Cycle(3))
	require.NoError(t, err)
	require.Len(t, recs, 6)
	assert.Equal(t, navigator.Record{Source: "L2", Destination: "L0", Seconds: 60}, recs[4])
	assert.Equal(t, navigator.Record{Source: "L0", Destination: "L2", Seconds: 60}, recs[5])
}

func TestStarAndIDScheme(t *testing.T) {
	names := []string{"Union", "Library", "Gym"}
	recs, err := builder.BuildRecords(
		[]builder.BuilderOption{builder.WithIDScheme(func(i int) string { return names[i] })},
		builder.Star(3),
	)
	require.NoError(t, err)
	require.Equal(t, []navigator.Record{
		{Source: "Union", Destination: "Library", Seconds: 60},
		{Source: "Union", Destination: "Gym", Seconds: 60},
	}, recs)
}

func TestGrid(t *testing.T) {
	recs, err := builder.BuildRecords(nil, builder.Grid(2, 2))
	require.NoError(t, err)
	got := make([]string, len(recs))
	for i, r := range recs {
		got[i] = r.Source + ">" + r.Destination
	}
	require.Equal(t, []string{"0,0>0,1", "0,0>1,0", "0,1>1,1", "1,0>1,1"}, got)

	recs, err = builder.BuildRecords(nil, builder.Grid(1, 1))
	require.NoError(t, err)
	require.Empty(t, recs)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(11), builder.WithUniformSeconds(10, 100)}
	a, err := builder.BuildRecords(opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	opts = []builder.BuilderOption{builder.WithSeed(11), builder.WithUniformSeconds(10, 100)}
	b, err := builder.BuildRecords(opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	require.Equal(t, a, b)
	for _, r := range a {
		assert.GreaterOrEqual(t, r.Seconds, 10.0)
		assert.Less(t, r.Seconds, 100.0)
		assert.NotEqual(t, r.Source, r.Destination)
	}

	full, err := builder.BuildRecords(nil, builder.RandomSparse(4, 1))
	require.NoError(t, err)
	require.Len(t, full, 12)
}

func TestErrors(t *testing.T) {
	cases := []struct {
		name string
		opts []builder.BuilderOption
		con  builder.Constructor
		want error
	}{
		{"short path", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"short cycle", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"lonely star", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"empty grid", nil, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"bad probability", nil, builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"no rng", nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildRecords(tc.opts, tc.con)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithUniformSeconds(5, 5) })
	assert.Panics(t, func() { builder.WithUniformSeconds(-1, 5) })
}

func TestBuildNavigator(t *testing.T) {
	nav, err := builder.BuildNavigator(
		[]builder.BuilderOption{builder.WithWeightFn(func(*rand.Rand) float64 { return 30 })},
		builder.Path(4), builder.Star(3),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"L0", "L1", "L2", "L3"}, nav.Locations())
	far, err := nav.MostDistant("L0")
	require.NoError(t, err)
	require.Equal(t, "L3", far)
	// Star adds the shortcut L0→L2.
	require.Equal(t, 60.0, nav.TotalTime("L0", "L3"))
}

func ExampleBuildRecords() {
	recs, _ := builder.BuildRecords([]builder.BuilderOption{builder.WithTwoWay()}, builder.Path(2))
	for _, r := range recs {
		fmt.Printf("%s -> %s %gs\n", r.Source, r.Destination, r.Seconds)
	}

	// Output:
	// L0 -> L1 60s
	// L1 -> L0 60s
}
