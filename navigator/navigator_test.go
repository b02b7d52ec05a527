package navigator_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/campusmap/core"
	"github.com/katalvlaran/campusmap/navigator"
)

// campus is a small slice of the campus map.
var campus = []navigator.Record{
	{"Memorial Union", "Science Hall", 105.8},
	{"Memorial Union", "Jorns Hall", 90},
	{"Jorns Hall", "Adams Residence Hall", 60},
	{"Science Hall", "Psychology", 170},
	{"Jorns Hall", "Psychology", 400},
	{"Psychology", "Memorial Union", 250},
	{"Adams Residence Hall", "Jorns Hall", 60},
}

// NavigatorSuite exercises loading and queries on the campus fixture.
type NavigatorSuite struct {
	suite.Suite
	nav *navigator.Navigator
}

func (s *NavigatorSuite) SetupTest() {
	s.nav = navigator.New()
	require.NoError(s.T(), s.nav.LoadGraph(campus))
}

// TestLocationsOrder verifies first-encounter order from the registry.
func (s *NavigatorSuite) TestLocationsOrder() {
	require.Equal(s.T(), []string{
		"Memorial Union", "Science Hall", "Jorns Hall", "Adams Residence Hall", "Psychology",
	}, s.nav.Locations())
	require.Equal(s.T(), 5, s.nav.Len())
}

// TestLoadIsIdempotent replays the same records and expects no change.
func (s *NavigatorSuite) TestLoadIsIdempotent() {
	before := s.nav.Locations()
	require.NoError(s.T(), s.nav.LoadGraph(campus))
	require.Equal(s.T(), before, s.nav.Locations())
	require.Equal(s.T(), []float64{60}, s.nav.TravelTimes("Jorns Hall", "Adams Residence Hall"))
}

// TestLoadKeepsFirstWeight verifies a repeated pair with a new weight is ignored.
func (s *NavigatorSuite) TestLoadKeepsFirstWeight() {
	require.NoError(s.T(), s.nav.LoadGraph([]navigator.Record{{"Jorns Hall", "Adams Residence Hall", 5}}))
	require.Equal(s.T(), 60.0, s.nav.TotalTime("Jorns Hall", "Adams Residence Hall"))
}

// TestSingleEdgePath is the Jorns Hall → Adams Residence Hall scenario.
func (s *NavigatorSuite) TestSingleEdgePath() {
	require.Equal(s.T(), []string{"Jorns Hall", "Adams Residence Hall"},
		s.nav.ShortestPath("Jorns Hall", "Adams Residence Hall"))
	require.Equal(s.T(), []float64{60}, s.nav.TravelTimes("Jorns Hall", "Adams Residence Hall"))
}

// TestMultiHopPath picks the cheaper of two routes to Psychology.
func (s *NavigatorSuite) TestMultiHopPath() {
	path := s.nav.ShortestPath("Memorial Union", "Psychology")
	times := s.nav.TravelTimes("Memorial Union", "Psychology")
	require.Equal(s.T(), []string{"Memorial Union", "Science Hall", "Psychology"}, path)
	require.Equal(s.T(), []float64{105.8, 170}, times)
	require.Len(s.T(), times, len(path)-1)
	assert.InDelta(s.T(), 275.8, s.nav.TotalTime("Memorial Union", "Psychology"), 1e-9)
}

// TestSelfPath returns the single-node path with no legs.
func (s *NavigatorSuite) TestSelfPath() {
	require.Equal(s.T(), []string{"Psychology"}, s.nav.ShortestPath("Psychology", "Psychology"))
	require.Empty(s.T(), s.nav.TravelTimes("Psychology", "Psychology"))
}

// TestUnknownAndUnreachable verifies soft empty results.
func (s *NavigatorSuite) TestUnknownAndUnreachable() {
	require.Empty(s.T(), s.nav.ShortestPath("DNE", "Psychology"))
	require.Empty(s.T(), s.nav.TravelTimes("Psychology", "DNE"))
	require.Zero(s.T(), s.nav.TotalTime("DNE", "DNE"))

	require.NoError(s.T(), s.nav.LoadGraph([]navigator.Record{{"Island", "Lake Shore", 30}}))
	require.Empty(s.T(), s.nav.ShortestPath("Memorial Union", "Island"))
	require.Empty(s.T(), s.nav.TravelTimes("Memorial Union", "Island"))
}

// TestMostDistant picks the location with the largest shortest-path time.
func (s *NavigatorSuite) TestMostDistant() {
	// From Memorial Union: Science 105.8, Jorns 90, Adams 150, Psychology 275.8.
	far, err := s.nav.MostDistant("Memorial Union")
	require.NoError(s.T(), err)
	require.Equal(s.T(), "Psychology", far)

	_, err = s.nav.MostDistant("DNE")
	require.ErrorIs(s.T(), err, navigator.ErrUnknownLocation)
}

// TestMostDistantMatchesTotals checks the single-run answer against per-pair totals.
func (s *NavigatorSuite) TestMostDistantMatchesTotals() {
	for _, a := range s.nav.Locations() {
		far, err := s.nav.MostDistant(a)
		require.NoError(s.T(), err)

		want, best := navigator.NoLocation, -1.0
		for _, b := range s.nav.Locations() {
			if b == a || len(s.nav.ShortestPath(a, b)) == 0 {
				continue
			}
			if t := s.nav.TotalTime(a, b); t > best {
				want, best = b, t
			}
		}
		require.Equal(s.T(), want, far, "from %s", a)
	}
}

// TestRoute covers the combined query and its rendering.
func (s *NavigatorSuite) TestRoute() {
	r, err := s.nav.Route("Memorial Union", "Adams Residence Hall")
	require.NoError(s.T(), err)
	require.Equal(s.T(), navigator.Route{
		Path:  []string{"Memorial Union", "Jorns Hall", "Adams Residence Hall"},
		Times: []float64{90, 60},
		Total: 150,
	}, r)
	require.Equal(s.T(), "Memorial Union -(90s)-> Jorns Hall -(60s)-> Adams Residence Hall", r.String())

	_, err = s.nav.Route("Memorial Union", "DNE")
	require.ErrorIs(s.T(), err, navigator.ErrUnknownLocation)

	require.NoError(s.T(), s.nav.LoadGraph([]navigator.Record{{"Island", "Lake Shore", 30}}))
	r, err = s.nav.Route("Memorial Union", "Island")
	require.NoError(s.T(), err)
	require.True(s.T(), r.Empty())
	require.Equal(s.T(), "", r.String())
}

func TestNavigatorSuite(t *testing.T) {
	suite.Run(t, new(NavigatorSuite))
}

// TestMostDistant_SingleEdge is the Memorial Union → Science Hall scenario.
func TestMostDistant_SingleEdge(t *testing.T) {
	nav := navigator.New()
	require.NoError(t, nav.LoadGraph([]navigator.Record{{"Memorial Union", "Science Hall", 105.8}}))

	far, err := nav.MostDistant("Memorial Union")
	require.NoError(t, err)
	require.Equal(t, "Science Hall", far)

	// Science Hall has no outgoing edges.
	far, err = nav.MostDistant("Science Hall")
	require.NoError(t, err)
	require.Equal(t, navigator.NoLocation, far)
}

// TestMostDistant_TieGoesToFirstLocation verifies the documented tie rule.
func TestMostDistant_TieGoesToFirstLocation(t *testing.T) {
	nav := navigator.New()
	require.NoError(t, nav.LoadGraph([]navigator.Record{
		{"Hub", "North", 10},
		{"Hub", "South", 10},
		{"Hub", "East", 4},
	}))
	far, err := nav.MostDistant("Hub")
	require.NoError(t, err)
	require.Equal(t, "North", far)
}

// TestMostDistant_ZeroTimeIsReachable counts a zero-second neighbour as reachable.
func TestMostDistant_ZeroTimeIsReachable(t *testing.T) {
	nav := navigator.New()
	require.NoError(t, nav.LoadGraph([]navigator.Record{{"Lobby", "Atrium", 0}}))
	far, err := nav.MostDistant("Lobby")
	require.NoError(t, err)
	require.Equal(t, "Atrium", far)
}

// TestLoadGraph_InvalidRecords verifies structural errors carry the record index.
func TestLoadGraph_InvalidRecords(t *testing.T) {
	cases := []struct {
		name   string
		record navigator.Record
		target error
	}{
		{"empty source", navigator.Record{"", "B", 1}, navigator.ErrInvalidRecord},
		{"empty destination", navigator.Record{"A", "", 1}, navigator.ErrInvalidRecord},
		{"negative seconds", navigator.Record{"A", "B", -1}, core.ErrNegativeWeight},
		{"NaN seconds", navigator.Record{"A", "B", math.NaN()}, core.ErrBadWeight},
		{"infinite seconds", navigator.Record{"A", "B", math.Inf(1)}, core.ErrBadWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			nav := navigator.New()
			err := nav.LoadGraph([]navigator.Record{{"X", "Y", 1}, tc.record})
			require.ErrorIs(t, err, tc.target)
			require.Contains(t, err.Error(), "record 1")
			// The record before the bad one stays loaded, none of the bad one does.
			require.Equal(t, []float64{1}, nav.TravelTimes("X", "Y"))
			require.Equal(t, []string{"X", "Y"}, nav.Locations())
			require.False(t, nav.Contains("A"))
			_, err = nav.MostDistant("A")
			require.ErrorIs(t, err, navigator.ErrUnknownLocation)
		})
	}
}

// TestLoadGraph_LogsSummary verifies the Debug summary reaches an injected logger.
func TestLoadGraph_LogsSummary(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	nav := navigator.New(navigator.WithLogger(logger), navigator.WithCapacity(4))

	require.NoError(t, nav.LoadGraph(campus))
	require.NoError(t, nav.LoadGraph(campus))

	out := buf.String()
	assert.Contains(t, out, "graph loaded")
	assert.Contains(t, out, "edges_added=7")
	assert.Contains(t, out, "edges_skipped=7")
	assert.Contains(t, out, "locations=5")
}

func TestWithCapacity_Panics(t *testing.T) {
	require.PanicsWithValue(t, navigator.ErrBadCapacity.Error(), func() { navigator.WithCapacity(0) })
}
