package terrain

import (
	"math"
	"runtime"
	"sync"
)

// HeightFieldGrid is the fully materialized elevation grid:
// (resolution+1) x (resolution+1) samples over [-half, half]^2.
// It is built once and read-only afterwards.
type HeightFieldGrid struct {
	cfg     WorldConfig
	step    float64
	heights [][]float64 // heights[iy][ix], row-major
}

// GenerateGrid samples the elevation function on the uniform grid.
// Rows are independent, so they are computed by concurrent workers and
// joined into the pre-sized array; the only ordering rule downstream is
// "grid complete before use", which the return enforces.
func GenerateGrid(cfg WorldConfig, elevation func(x, y float64) float64) (*HeightFieldGrid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := cfg.Resolution + 1
	step := cfg.WorldSize / float64(cfg.Resolution)
	half := cfg.WorldSize / 2

	g := &HeightFieldGrid{
		cfg:     cfg,
		step:    step,
		heights: make([][]float64, n),
	}
	for iy := range g.heights {
		g.heights[iy] = make([]float64, n)
	}

	rows := make(chan int)
	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for iy := range rows {
				y := -half + float64(iy)*step
				row := g.heights[iy]
				for ix := 0; ix < n; ix++ {
					row[ix] = elevation(-half+float64(ix)*step, y)
				}
			}
		}()
	}
	for iy := 0; iy < n; iy++ {
		rows <- iy
	}
	close(rows)
	wg.Wait()

	return g, nil
}

// Config returns the world parameters the grid was sampled with.
func (g *HeightFieldGrid) Config() WorldConfig { return g.cfg }

// Resolution returns the number of grid cells per side.
func (g *HeightFieldGrid) Resolution() int { return g.cfg.Resolution }

// Step returns the world-space distance between adjacent samples.
func (g *HeightFieldGrid) Step() float64 { return g.step }

// At returns the elevation sample at grid index (ix, iy).
func (g *HeightFieldGrid) At(ix, iy int) float64 { return g.heights[iy][ix] }

// PosAt returns the world-space (x, y) of grid index (ix, iy).
func (g *HeightFieldGrid) PosAt(ix, iy int) (float64, float64) {
	half := g.cfg.WorldSize / 2
	return -half + float64(ix)*g.step, -half + float64(iy)*g.step
}

// SlopeAt returns the gradient magnitude at (ix, iy) by central
// differences, falling back to one-sided differences at the borders.
func (g *HeightFieldGrid) SlopeAt(ix, iy int) float64 {
	n := g.cfg.Resolution + 1

	x0, x1 := ix-1, ix+1
	if x0 < 0 {
		x0 = 0
	}
	if x1 >= n {
		x1 = n - 1
	}
	y0, y1 := iy-1, iy+1
	if y0 < 0 {
		y0 = 0
	}
	if y1 >= n {
		y1 = n - 1
	}

	dx := (g.heights[iy][x1] - g.heights[iy][x0]) / (float64(x1-x0) * g.step)
	dy := (g.heights[y1][ix] - g.heights[y0][ix]) / (float64(y1-y0) * g.step)
	return math.Hypot(dx, dy)
}

// GridStats summarizes a generated grid.
type GridStats struct {
	Min, Max, Mean float64
}

// Stats scans the grid once and reports elevation extremes and mean.
func (g *HeightFieldGrid) Stats() GridStats {
	st := GridStats{Min: math.Inf(1), Max: math.Inf(-1)}
	sum := 0.0
	count := 0
	for _, row := range g.heights {
		for _, h := range row {
			if h < st.Min {
				st.Min = h
			}
			if h > st.Max {
				st.Max = h
			}
			sum += h
			count++
		}
	}
	st.Mean = sum / float64(count)
	return st
}
