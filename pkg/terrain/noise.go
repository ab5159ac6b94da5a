package terrain

import (
	"math"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Noise bundles the coherent noise primitives for one world seed.
// All sampling is read-only after construction, so one Noise may be
// shared by any number of goroutines.
type Noise struct {
	gradient *perlin.Perlin    // primary gradient noise, all fBm/ridged layers
	warpX    opensimplex.Noise // domain warp displacement, x component
	warpY    opensimplex.Noise // domain warp displacement, y component
}

// Seed offsets for the warp displacement fields. Simplex is a separate
// primitive from the perlin layers it feeds, so the warp cannot line up
// with the field being warped.
const (
	warpSeedX = 3000
	warpSeedY = 3100
)

// seedShift converts a layer seed into a sampling-domain offset. Layers
// share one gradient field but read it at disjoint offsets, so octaves
// are independent rather than phase-shifted copies of each other.
const seedShift = 0.1

// NewNoise builds the noise primitives for a world seed.
func NewNoise(seed int64) *Noise {
	return &Noise{
		// alpha/beta are irrelevant at a single iteration; the fractal
		// composition lives in FBM and Ridged, not in the primitive.
		gradient: perlin.NewPerlin(2, 2, 1, seed),
		warpX:    opensimplex.New(seed + warpSeedX),
		warpY:    opensimplex.New(seed + warpSeedY),
	}
}

// Sample returns coherent gradient noise at (x, y, z), roughly in [-1, 1].
// The layer seed offsets the sampling domain to decorrelate layers.
func (n *Noise) Sample(x, y, z float64, seed int64) float64 {
	o := float64(seed) * seedShift
	return n.gradient.Noise3D(x+o, y+o, z)
}

// FBM sums octaves of noise, each at frequency x lacunarity and amplitude
// x persistence relative to the previous. The result is normalized by the
// amplitude sum so output stays in [-1, 1] for any octave count.
func (n *Noise) FBM(x, y float64, octaves int, persistence, lacunarity, scale float64, seed int64) float64 {
	total := 0.0
	frequency := 1.0 / scale
	amplitude := 1.0
	maxValue := 0.0

	for i := 0; i < octaves; i++ {
		total += n.Sample(x*frequency, y*frequency, 0, seed+int64(i)*100) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}

	return total / maxValue
}

// Ridged folds each octave via (1-|n|)^2 and weights it by the previous
// octave's output, concentrating detail near existing ridgelines. Output
// is always >= 0. The frequency step of 2.2 is intentionally off the
// power-of-two grid to avoid periodic artifacts.
func (n *Noise) Ridged(x, y float64, octaves int, scale float64, seed int64) float64 {
	total := 0.0
	frequency := 1.0 / scale
	amplitude := 1.0
	prev := 1.0

	for i := 0; i < octaves; i++ {
		v := n.Sample(x*frequency, y*frequency, 0, seed+int64(i)*50)
		v = 1.0 - math.Abs(v)
		v = v * v
		v *= prev
		prev = v
		total += v * amplitude
		amplitude *= 0.5
		frequency *= 2.2
	}

	return total
}

// Warp displaces (x, y) by two independent low-octave simplex fBm fields.
// Every layer of one elevation query must sample the same warped point,
// so the synthesizer calls this exactly once per query.
func (n *Noise) Warp(x, y, strength, scale float64) (float64, float64) {
	wx := n.simplexFBM(n.warpX, x+1000, y+1000, 3, scale) * strength * scale
	wy := n.simplexFBM(n.warpY, x+2000, y+2000, 3, scale) * strength * scale
	return x + wx, y + wy
}

// simplexFBM is the displacement-field variant of FBM, running over a
// simplex primitive with fixed persistence 0.5 and lacunarity 2.
func (n *Noise) simplexFBM(src opensimplex.Noise, x, y float64, octaves int, scale float64) float64 {
	total := 0.0
	frequency := 1.0 / scale
	amplitude := 1.0
	maxValue := 0.0

	for i := 0; i < octaves; i++ {
		total += src.Eval2(x*frequency, y*frequency) * amplitude
		maxValue += amplitude
		amplitude *= 0.5
		frequency *= 2.0
	}

	return total / maxValue
}
