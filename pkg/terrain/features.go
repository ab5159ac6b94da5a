package terrain

import (
	"hash/fnv"
	"math"
)

// maxValleyDepth is the carve depth at the centerline of a valley.
const maxValleyDepth = 40.0

// subPeak is a precomputed satellite peak around a range center.
type subPeak struct {
	x, y float64
}

// featureSeed derives a small per-range noise seed from the world seed and
// the range name. Keeping the value small keeps the sampling-domain offset
// in a range where float64 precision is not an issue.
func featureSeed(worldSeed int64, name string) int64 {
	h := fnv.New32a()
	h.Write([]byte(name))
	return worldSeed + int64(h.Sum32()%9973)
}

// featureHash is a splitmix64-style mix of (seed, feature name, index),
// used as the deterministic jitter source for sub-peak placement.
func featureHash(seed int64, name string, i int64) uint64 {
	const k1 uint64 = 0x9E3779B97F4A7C15
	const k2 uint64 = 0xBF58476D1CE4E5B9
	const k3 uint64 = 0x94D049BB133111EB

	fh := fnv.New32a()
	fh.Write([]byte(name))

	h := uint64(seed) ^ uint64(fh.Sum32())*k1 ^ uint64(i)*0x6C8E9CF570932BD5
	h = (h ^ (h >> 30)) * k2
	h = (h ^ (h >> 27)) * k3
	return h ^ (h >> 31)
}

// jitter01 returns a deterministic value in [0, 1).
func jitter01(seed int64, name string, i int64) float64 {
	return float64(featureHash(seed, name, i)%100000) / 100000.0
}

// buildSubPeaks places PeakCount satellite peaks around a range center.
// Angle walks the circle evenly with a jittered offset; distance lands in
// [0.3, 0.8) of the range radius.
func buildSubPeaks(m MountainRange, worldSeed int64) []subPeak {
	peaks := make([]subPeak, 0, m.PeakCount)
	for i := 0; i < m.PeakCount; i++ {
		angle := (float64(i)/float64(m.PeakCount))*2*math.Pi +
			jitter01(worldSeed, m.Name, int64(i))*2*math.Pi*0.1
		dist := m.Radius * (0.3 + 0.5*jitter01(worldSeed, m.Name, int64(i)+1000))
		peaks = append(peaks, subPeak{
			x: m.Center[0] + math.Cos(angle)*dist,
			y: m.Center[1] + math.Sin(angle)*dist,
		})
	}
	return peaks
}

// MountainContribution returns the height added by mountain ranges at
// (x, y). Ranges blend by max, never by sum, so overlapping ranges cannot
// stack into spikes taller than their tallest member.
func (s *Synthesizer) MountainContribution(x, y float64) float64 {
	best := 0.0

	for ri, m := range s.doc.Mountains {
		dx := x - m.Center[0]
		dy := y - m.Center[1]
		dist := math.Hypot(dx, dy)
		if dist >= m.Radius*1.5 {
			continue
		}

		influence := 1.0 - dist/m.Radius
		if influence < 0 {
			influence = 0
		}

		seed := s.rangeSeeds[ri]
		var peak float64
		switch m.Style {
		case StyleJagged:
			ridge := s.noise.Ridged(x, y, 6, 150, seed)
			peak = math.Pow(influence, 1.5) * (0.7 + ridge*0.5)
		case StyleRidged:
			ridge := s.noise.Ridged(x, y, 5, 200, seed)
			peak = math.Pow(influence, 1.3) * (0.6 + ridge*0.6)
		case StyleVolcanic:
			peak = math.Pow(influence, 2.5)
			if influence > 0.9 {
				peak *= 0.8 // crater
			}
		case StyleMassive:
			ridge := s.noise.Ridged(x, y, 4, 300, seed)
			peak = math.Pow(influence, 1.2) * (0.8 + ridge*0.3)
		case StyleEroded:
			erosion := s.noise.FBM(x, y, 5, 0.5, 2.0, 100, seed)
			peak = math.Pow(influence, 1.8) * (0.5 + erosion*0.3)
		}

		height := peak * m.PeakHeight

		subRadius := m.Radius * 0.3
		for _, sp := range s.subPeaks[ri] {
			subDist := math.Hypot(x-sp.x, y-sp.y)
			if subDist >= subRadius {
				continue
			}
			subInfluence := 1.0 - subDist/subRadius
			subHeight := subInfluence * subInfluence * m.PeakHeight * 0.6
			if subHeight > height {
				height = subHeight
			}
		}

		if height > best {
			best = height
		}
	}

	return best
}

// ValleyContribution returns the carve depth at (x, y). The deepest
// (nearest) valley wins; depths are not summed.
func (s *Synthesizer) ValleyContribution(x, y float64) float64 {
	deepest := 0.0

	for _, v := range s.doc.Valleys {
		dist := v.distance(x, y)
		if dist >= v.Width*2 {
			continue
		}
		influence := 1.0 - dist/(v.Width*2)
		depth := influence * influence * maxValleyDepth
		if depth > deepest {
			deepest = depth
		}
	}

	return deepest
}

// distance returns the minimum distance from (x, y) to the path's
// waypoint segments.
func (v ValleyPath) distance(x, y float64) float64 {
	min := math.Inf(1)
	for i := 0; i+1 < len(v.Waypoints); i++ {
		d := distToSegment(x, y,
			v.Waypoints[i][0], v.Waypoints[i][1],
			v.Waypoints[i+1][0], v.Waypoints[i+1][1])
		if d < min {
			min = d
		}
	}
	return min
}

// distToSegment is the shortest distance from (px, py) to the finite
// segment (x1, y1)-(x2, y2).
func distToSegment(px, py, x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	lengthSq := dx*dx + dy*dy

	if lengthSq == 0 {
		return math.Hypot(px-x1, py-y1)
	}

	t := ((px-x1)*dx + (py-y1)*dy) / lengthSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return math.Hypot(px-(x1+t*dx), py-(y1+t*dy))
}
