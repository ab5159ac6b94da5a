package terrain

// Band is a material band assigned to a grid sample from its height and
// slope. Bands are what downstream material assignment consumes; the
// classification itself is deliberately simple.
type Band uint8

const (
	BandWater Band = iota
	BandShore
	BandMeadow
	BandForest
	BandRock
	BandSnow
)

// String returns the band name.
func (b Band) String() string {
	switch b {
	case BandWater:
		return "water"
	case BandShore:
		return "shore"
	case BandMeadow:
		return "meadow"
	case BandForest:
		return "forest"
	case BandRock:
		return "rock"
	case BandSnow:
		return "snow"
	}
	return "unknown"
}

// shoreRise is how far above water level the shore band extends.
const shoreRise = 5.0

// meadowCeiling is the height under which flat ground reads as valley
// meadow rather than forest.
const meadowCeiling = 40.0

// steepSlope marks terrain too steep to hold soil or snow approach paths;
// such faces classify as bare rock below the snow line.
const steepSlope = 0.6

// ClassifyBand assigns a material band from height and slope using the
// world's water level, treeline and snow line.
func (c WorldConfig) ClassifyBand(height, slope float64) Band {
	switch {
	case height < c.WaterLevel:
		return BandWater
	case height < c.WaterLevel+shoreRise:
		return BandShore
	case height >= c.SnowLine:
		return BandSnow
	case slope > steepSlope:
		return BandRock
	case height >= c.Treeline:
		return BandRock
	case height < meadowCeiling:
		return BandMeadow
	default:
		return BandForest
	}
}

// ClassifyGrid classifies every sample of a generated grid. The result is
// row-major and aligned with the grid's vertex order.
func ClassifyGrid(g *HeightFieldGrid) [][]Band {
	n := g.cfg.Resolution + 1
	bands := make([][]Band, n)
	for iy := 0; iy < n; iy++ {
		bands[iy] = make([]Band, n)
		for ix := 0; ix < n; ix++ {
			bands[iy][ix] = g.cfg.ClassifyBand(g.heights[iy][ix], g.SlopeAt(ix, iy))
		}
	}
	return bands
}
