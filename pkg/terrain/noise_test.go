package terrain

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleDeterminism(t *testing.T) {
	n1 := NewNoise(12345)
	n2 := NewNoise(12345)

	for i := 0; i < 100; i++ {
		x := float64(i) * 0.37
		y := float64(i) * 0.53
		if n1.Sample(x, y, 0, 7) != n2.Sample(x, y, 0, 7) {
			t.Fatalf("Sample not deterministic at (%f, %f)", x, y)
		}
	}
}

func TestSampleRange(t *testing.T) {
	n := NewNoise(42)
	for i := 0; i < 10000; i++ {
		x := float64(i)*0.1 - 500
		y := float64(i)*0.07 - 350
		v := n.Sample(x, y, 0, 0)
		if v < -1.5 || v > 1.5 {
			t.Errorf("Sample(%f, %f) = %f, out of expected range", x, y, v)
		}
	}
}

func TestSampleSeedDecorrelation(t *testing.T) {
	n := NewNoise(1)
	same := 0
	for i := 0; i < 100; i++ {
		x := float64(i) * 0.5
		y := float64(i) * 0.3
		if n.Sample(x, y, 0, 0) == n.Sample(x, y, 0, 100) {
			same++
		}
	}
	if same > 30 {
		t.Errorf("layer seeds produced %d/100 identical values", same)
	}
}

func TestFBMBounded(t *testing.T) {
	n := NewNoise(7)

	for octaves := 1; octaves <= 8; octaves++ {
		for _, persistence := range []float64{0.3, 0.5, 0.8} {
			t.Run(fmt.Sprintf("octaves=%d persistence=%g", octaves, persistence), func(t *testing.T) {
				for i := 0; i < 500; i++ {
					x := float64(i)*3.7 - 900
					y := float64(i)*2.3 - 600
					v := n.FBM(x, y, octaves, persistence, 2.0, 100, 0)
					assert.LessOrEqual(t, math.Abs(v), 1.0, "FBM(%f, %f)", x, y)
				}
			})
		}
	}
}

func TestFBMSmoothness(t *testing.T) {
	n := NewNoise(77)
	prev := n.FBM(0, 0, 4, 0.5, 2.0, 100, 0)
	maxDiff := 0.0
	for i := 1; i < 1000; i++ {
		v := n.FBM(float64(i), 0, 4, 0.5, 2.0, 100, 0)
		diff := math.Abs(v - prev)
		if diff > maxDiff {
			maxDiff = diff
		}
		prev = v
	}
	if maxDiff > 0.5 {
		t.Errorf("FBM max step difference = %f, expected smooth transitions", maxDiff)
	}
}

func TestRidgedNonNegative(t *testing.T) {
	n := NewNoise(9)
	for i := 0; i < 2000; i++ {
		x := float64(i)*1.7 - 1500
		y := float64(i)*4.1 - 2000
		v := n.Ridged(x, y, 6, 150, 0)
		require.GreaterOrEqual(t, v, 0.0, "Ridged(%f, %f)", x, y)
	}
}

func TestRidgedVariesAcrossSeeds(t *testing.T) {
	n := NewNoise(9)
	same := 0
	for i := 0; i < 100; i++ {
		x := float64(i) * 5.1
		y := float64(i) * 3.3
		if n.Ridged(x, y, 5, 200, 0) == n.Ridged(x, y, 5, 200, 31) {
			same++
		}
	}
	if same > 30 {
		t.Errorf("ridged seeds produced %d/100 identical values", same)
	}
}

func TestWarpDeterministicAndBounded(t *testing.T) {
	n := NewNoise(55)

	const strength, scale = 0.3, 600.0
	for i := 0; i < 500; i++ {
		x := float64(i)*6.3 - 1500
		y := float64(i)*4.9 - 1200

		wx1, wy1 := n.Warp(x, y, strength, scale)
		wx2, wy2 := n.Warp(x, y, strength, scale)
		require.Equal(t, wx1, wx2)
		require.Equal(t, wy1, wy2)

		assert.LessOrEqual(t, math.Abs(wx1-x), strength*scale*1.01)
		assert.LessOrEqual(t, math.Abs(wy1-y), strength*scale*1.01)
	}
}

func TestWarpAxesIndependent(t *testing.T) {
	n := NewNoise(55)
	same := 0
	for i := 0; i < 100; i++ {
		x := float64(i) * 17.0
		y := float64(i) * 23.0
		wx, wy := n.Warp(x, y, 0.3, 600)
		if wx-x == wy-y {
			same++
		}
	}
	if same > 10 {
		t.Errorf("warp displacement components identical at %d/100 points", same)
	}
}
