package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	hsluv "github.com/hsluv/hsluv-go"

	"github.com/StoreStation/TerraForge/pkg/terrain"
)

// bandHSL is the HSLuv palette entry for one material band. HSLuv keeps
// perceived lightness consistent across hues, so the hillshading reads the
// same over snow and forest alike.
type bandHSL struct {
	h, s, l float64
}

var bandPalette = map[terrain.Band]bandHSL{
	terrain.BandWater:  {240, 75, 40},
	terrain.BandShore:  {65, 45, 70},
	terrain.BandMeadow: {110, 65, 65},
	terrain.BandForest: {130, 75, 35},
	terrain.BandRock:   {45, 12, 45},
	terrain.BandSnow:   {250, 6, 95},
}

// previewLight is the hillshade light direction.
var previewLight = mgl64.Vec3{-0.5, -0.5, 1}.Normalize()

// Preview renders a top-down color map of the grid: one band color per
// sample, shaded by the local surface normal, replicated scale x scale
// pixels per sample.
func Preview(g *terrain.HeightFieldGrid, bands [][]terrain.Band, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	n := g.Resolution() + 1
	img := image.NewRGBA(image.Rect(0, 0, n*scale, n*scale))

	// The configured max height normalizes the altitude tint.
	ceiling := g.Config().MaxHeight

	for iy := 0; iy < n; iy++ {
		for ix := 0; ix < n; ix++ {
			c := sampleColor(g, bands[iy][ix], ix, iy, ceiling)
			for py := 0; py < scale; py++ {
				for px := 0; px < scale; px++ {
					img.SetRGBA(ix*scale+px, iy*scale+py, c)
				}
			}
		}
	}

	return img
}

func sampleColor(g *terrain.HeightFieldGrid, band terrain.Band, ix, iy int, ceiling float64) color.RGBA {
	p := bandPalette[band]

	shade := 1.0
	if band != terrain.BandWater {
		shade = hillshade(g, ix, iy)
	}

	// Subtle lift with altitude so high ground separates from valleys
	// even inside one band.
	lift := g.At(ix, iy) / ceiling
	if lift < 0 {
		lift = 0
	}
	l := p.l*shade + lift*8
	if l > 100 {
		l = 100
	}

	r, gr, b := hsluv.HsluvToRGB(p.h, p.s, l)
	return color.RGBA{
		R: uint8(r*255 + 0.5),
		G: uint8(gr*255 + 0.5),
		B: uint8(b*255 + 0.5),
		A: 255,
	}
}

// hillshade computes Lambert shading from the sample's central-difference
// normal, floored so shadowed faces stay readable.
func hillshade(g *terrain.HeightFieldGrid, ix, iy int) float64 {
	n := g.Resolution() + 1

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

	dx := (g.At(x1, iy) - g.At(x0, iy)) / (float64(x1-x0) * g.Step())
	dy := (g.At(ix, y1) - g.At(ix, y0)) / (float64(y1-y0) * g.Step())

	normal := mgl64.Vec3{-dx, -dy, 1}.Normalize()
	d := normal.Dot(previewLight)
	if d < 0.25 {
		d = 0.25
	}
	if d > 1 {
		d = 1
	}
	return d
}

// WritePNGFile encodes the image to a PNG file at path.
func WritePNGFile(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("export: encode %s: %w", path, err)
	}
	return f.Close()
}
