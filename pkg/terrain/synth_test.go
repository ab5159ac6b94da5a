package terrain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElevationDeterminism(t *testing.T) {
	doc := PresetAlpine()
	s1 := mustSynth(t, doc)
	s2 := mustSynth(t, doc)

	for i := 0; i < 200; i++ {
		x := float64(i)*13.7 - 1400
		y := float64(i)*7.9 - 800
		h1 := s1.ElevationAt(x, y)
		h2 := s2.ElevationAt(x, y)
		require.Equal(t, h1, h2, "elevation differs across synthesizers at (%g, %g)", x, y)
		require.Equal(t, h1, s1.ElevationAt(x, y), "repeated query differs at (%g, %g)", x, y)
	}
}

func TestElevationSeedsDiffer(t *testing.T) {
	doc := PresetAlpine()
	s1 := mustSynth(t, doc)

	doc.World.Seed = 7
	s2 := mustSynth(t, doc)

	same := 0
	for i := 0; i < 100; i++ {
		x := float64(i)*23.0 - 1100
		y := float64(i)*17.0 - 900
		if s1.ElevationAt(x, y) == s2.ElevationAt(x, y) {
			same++
		}
	}
	if same > 30 {
		t.Errorf("different world seeds produced %d/100 identical elevations", same)
	}
}

func TestSpawnClamp(t *testing.T) {
	// A wide valley through the origin drags the unclamped terrain far
	// below the spawn minimum.
	valley := ValleyPath{Name: "origin trench", Waypoints: [][2]float64{{-200, 0}, {200, 0}}, Width: 80}

	world := testWorld(5)
	world.SpawnRadius = 100
	world.SpawnMinHeight = 30

	clamped := mustSynth(t, Document{World: world, Valleys: []ValleyPath{valley}})

	// Same world with a negligible spawn region exposes the raw surface.
	raw := world
	raw.SpawnRadius = 1e-9
	raw.SpawnMinHeight = -math.MaxFloat64
	unclamped := mustSynth(t, Document{World: raw, Valleys: []ValleyPath{valley}})

	below := 0
	for i := 0; i < 400; i++ {
		angle := float64(i) * 0.177
		dist := float64(i%97) + 1
		x := math.Cos(angle) * dist
		y := math.Sin(angle) * dist
		if dist >= world.SpawnRadius {
			continue
		}

		rawH := unclamped.ElevationAt(x, y)
		gotH := clamped.ElevationAt(x, y)
		if rawH < world.SpawnMinHeight {
			below++
			require.Equal(t, world.SpawnMinHeight, gotH,
				"spawn clamp must pin to exactly the minimum at (%g, %g)", x, y)
		} else {
			require.Equal(t, rawH, gotH, "clamp must not touch safe ground at (%g, %g)", x, y)
		}
	}
	require.Greater(t, below, 0, "test never exercised the clamp; deepen the valley")
}

func TestSpawnDefaultsApplied(t *testing.T) {
	s := mustSynth(t, Document{World: testWorld(1)})
	cfg := s.Config()
	assert.Equal(t, defaultSpawnRadius, cfg.SpawnRadius)
	assert.Equal(t, defaultSpawnMinHeight, cfg.SpawnMinHeight)

	// Inside the default spawn region nothing dips below the minimum.
	for i := 0; i < 200; i++ {
		angle := float64(i) * 0.31
		dist := float64(i % 99)
		x := math.Cos(angle) * dist
		y := math.Sin(angle) * dist
		assert.GreaterOrEqual(t, s.ElevationAt(x, y), defaultSpawnMinHeight)
	}
}

func TestEdgeClosure(t *testing.T) {
	for _, doc := range []Document{PresetAlpine(), PresetEpic(), PresetClassic()} {
		s := mustSynth(t, doc)
		half := doc.World.WorldSize / 2

		corners := [][2]float64{{half, half}, {-half, half}, {half, -half}, {-half, -half}}
		for _, c := range corners {
			h := s.ElevationAt(c[0], c[1])
			assert.LessOrEqual(t, h, doc.World.WaterLevel,
				"corner (%g, %g) must sit at or below water level", c[0], c[1])
		}

		// Edge midpoints reach full Chebyshev distance too.
		for _, p := range [][2]float64{{half, 0}, {0, half}, {-half, 0}, {0, -half}} {
			assert.LessOrEqual(t, s.ElevationAt(p[0], p[1]), doc.World.WaterLevel)
		}
	}
}

func TestEdgeFalloffTrendsDown(t *testing.T) {
	// With features far away, the falloff zone trends monotonically
	// toward the floor along the diagonal.
	world := testWorld(11)
	s := mustSynth(t, Document{World: world})
	half := world.WorldSize / 2

	// Average the trend over a few rays to tolerate local noise wiggle.
	start := half * edgeFalloffStart
	prevAvg := math.Inf(1)
	for _, frac := range []float64{0.0, 0.4, 0.8, 1.0} {
		d := start + (half-start)*frac
		sum := 0.0
		for _, dir := range [][2]float64{{1, 0}, {0, 1}, {-1, 0}, {0, -1}} {
			sum += s.ElevationAt(dir[0]*d, dir[1]*d)
		}
		avg := sum / 4
		assert.LessOrEqual(t, avg, prevAvg+1.0, "falloff not trending down at distance %g", d)
		prevAvg = avg
	}
}

func TestGridMatchesPointQueries(t *testing.T) {
	// Downstream consumers re-query elevation after the grid pass; the
	// answers must agree bit for bit with what the workers wrote.
	doc := PresetClassic()
	doc.World.Resolution = 32
	s := mustSynth(t, doc)

	grid, err := GenerateGrid(s.Config(), s.ElevationAt)
	require.NoError(t, err)

	n := doc.World.Resolution + 1
	for iy := 0; iy < n; iy++ {
		for ix := 0; ix < n; ix++ {
			x, y := grid.PosAt(ix, iy)
			require.Equal(t, grid.At(ix, iy), s.ElevationAt(x, y),
				"grid sample (%d, %d) disagrees with re-query", ix, iy)
		}
	}
}

func TestGridStats(t *testing.T) {
	doc := PresetClassic()
	doc.World.Resolution = 16
	s := mustSynth(t, doc)

	grid, err := GenerateGrid(s.Config(), s.ElevationAt)
	require.NoError(t, err)

	st := grid.Stats()
	assert.LessOrEqual(t, st.Min, st.Mean)
	assert.LessOrEqual(t, st.Mean, st.Max)
	assert.Less(t, st.Min, 0.0, "edge falloff should push the border underwater")
}

func TestGridSlopeFlatOnPlane(t *testing.T) {
	cfg := testWorld(1)
	cfg.Resolution = 8

	grid, err := GenerateGrid(cfg, func(x, y float64) float64 { return 12.5 })
	require.NoError(t, err)

	for iy := 0; iy <= 8; iy++ {
		for ix := 0; ix <= 8; ix++ {
			assert.Zero(t, grid.SlopeAt(ix, iy))
		}
	}
}

func TestGridRejectsInvalidConfig(t *testing.T) {
	cfg := testWorld(1)
	cfg.Resolution = 0
	_, err := GenerateGrid(cfg, func(x, y float64) float64 { return 0 })
	require.Error(t, err)

	cfg = testWorld(1)
	cfg.WorldSize = -10
	_, err = GenerateGrid(cfg, func(x, y float64) float64 { return 0 })
	require.Error(t, err)
}
