package terrain

import "math"

// Standard spawn area applied when the config leaves both fields zero.
const (
	defaultSpawnRadius    = 100.0
	defaultSpawnMinHeight = 5.0
)

// Edge falloff constants: beyond edgeFalloffStart x half-size the terrain
// blends linearly down so the world is closed and water-bounded.
const (
	edgeFalloffStart = 0.8
	edgeDropBase     = 50.0
)

// Layer parameters of the elevation function.
const (
	warpStrength = 0.3
	warpScale    = 600.0

	baseScale   = 800.0
	baseAmp     = 25.0
	baseLift    = 15.0
	hillScale   = 300.0
	hillAmp     = 40.0
	hillSeed    = 1000
	detailScale = 80.0
	detailAmp   = 10.0
	detailSeed  = 2000
)

// Synthesizer is the single elevation function for one world. It is
// immutable once constructed: every query depends only on (x, y) and the
// authored configuration, so repeated calls return bit-identical results
// and any number of goroutines may sample concurrently.
type Synthesizer struct {
	doc        Document
	noise      *Noise
	rangeSeeds []int64
	subPeaks   [][]subPeak
	edgeDrop   float64
}

// NewSynthesizer validates the document and prepares the elevation
// function. All configuration errors surface here, before any sampling.
func NewSynthesizer(doc Document) (*Synthesizer, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if doc.World.SpawnRadius == 0 && doc.World.SpawnMinHeight == 0 {
		doc.World.SpawnRadius = defaultSpawnRadius
		doc.World.SpawnMinHeight = defaultSpawnMinHeight
	}

	s := &Synthesizer{
		doc:        doc,
		noise:      NewNoise(doc.World.Seed),
		rangeSeeds: make([]int64, len(doc.Mountains)),
		subPeaks:   make([][]subPeak, len(doc.Mountains)),
		edgeDrop:   math.Max(edgeDropBase, -doc.World.WaterLevel+edgeDropBase),
	}
	for i, m := range doc.Mountains {
		s.rangeSeeds[i] = featureSeed(doc.World.Seed, m.Name)
		s.subPeaks[i] = buildSubPeaks(m, doc.World.Seed)
	}
	return s, nil
}

// Config returns the world parameters in effect, with spawn defaults
// resolved.
func (s *Synthesizer) Config() WorldConfig {
	return s.doc.World
}

// ElevationAt returns the terrain height at world coordinates (x, y).
//
// The point is domain-warped once, then the warped point feeds the three
// fractal layers; macro-features are evaluated at the unwarped point so
// range centers and valley lines land where they were authored. Edge
// falloff and the spawn clamp apply last, in that order.
func (s *Synthesizer) ElevationAt(x, y float64) float64 {
	seed := s.doc.World.Seed
	wx, wy := s.noise.Warp(x, y, warpStrength, warpScale)

	base := s.noise.FBM(wx, wy, 4, 0.5, 2.0, baseScale, seed)*baseAmp + baseLift
	hills := s.noise.FBM(wx, wy, 5, 0.5, 2.0, hillScale, seed+hillSeed) * hillAmp
	detail := s.noise.FBM(wx, wy, 6, 0.5, 2.0, detailScale, seed+detailSeed) * detailAmp

	h := base + hills + detail + s.MountainContribution(x, y) - s.ValleyContribution(x, y)

	half := s.doc.World.WorldSize / 2
	edgeDist := math.Max(math.Abs(x), math.Abs(y))
	if start := half * edgeFalloffStart; edgeDist > start {
		falloff := 1.0 - (edgeDist-start)/(half-start)
		if falloff < 0 {
			falloff = 0
		}
		h *= falloff
		h -= (1 - falloff) * s.edgeDrop
	}

	// Spawn clamp runs after everything else, unconditionally.
	if math.Hypot(x, y) < s.doc.World.SpawnRadius && h < s.doc.World.SpawnMinHeight {
		h = s.doc.World.SpawnMinHeight
	}

	return h
}
