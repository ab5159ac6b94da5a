package main

import (
	"flag"
	"log"
	"path/filepath"
	"strings"

	"github.com/StoreStation/TerraForge/pkg/export"
	"github.com/StoreStation/TerraForge/pkg/terrain"
)

func main() {
	configPath := flag.String("config", "", "Path to a JSON world configuration (overrides -preset)")
	preset := flag.String("preset", "alpine", "Built-in world preset ("+strings.Join(terrain.PresetNames(), ", ")+")")
	seed := flag.Int64("seed", 0, "World seed override (0 = keep the configured seed)")
	outDir := flag.String("out", ".", "Output directory")
	writePreview := flag.Bool("preview", true, "Render a PNG preview map")
	previewScale := flag.Int("preview-scale", 2, "Preview pixels per grid sample")
	flag.Parse()

	var doc terrain.Document
	if *configPath != "" {
		loaded, err := terrain.LoadDocument(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		doc = *loaded
	} else {
		var ok bool
		doc, ok = terrain.Preset(*preset)
		if !ok {
			log.Fatalf("Unknown preset %q (have: %s)", *preset, strings.Join(terrain.PresetNames(), ", "))
		}
	}
	if *seed != 0 {
		doc.World.Seed = *seed
	}

	synth, err := terrain.NewSynthesizer(doc)
	if err != nil {
		log.Fatalf("Invalid world configuration: %v", err)
	}

	cfg := synth.Config()
	log.Printf("Generating world: size=%g resolution=%d seed=%d mountains=%d valleys=%d",
		cfg.WorldSize, cfg.Resolution, cfg.Seed, len(doc.Mountains), len(doc.Valleys))

	grid, err := terrain.GenerateGrid(cfg, synth.ElevationAt)
	if err != nil {
		log.Fatalf("Grid generation failed: %v", err)
	}
	stats := grid.Stats()
	log.Printf("Height field: %dx%d samples, elevation min=%.1f max=%.1f mean=%.1f",
		cfg.Resolution+1, cfg.Resolution+1, stats.Min, stats.Max, stats.Mean)

	mesh := terrain.MeshFromGrid(grid)
	log.Printf("Mesh: %d vertices, %d faces", len(mesh.Vertices), len(mesh.Faces))

	objPath := filepath.Join(*outDir, "terrain.obj")
	if err := export.WriteOBJFile(objPath, mesh); err != nil {
		log.Fatalf("OBJ export failed: %v", err)
	}
	log.Printf("Exported: %s", objPath)

	if *writePreview {
		bands := terrain.ClassifyGrid(grid)
		img := export.Preview(grid, bands, *previewScale)
		pngPath := filepath.Join(*outDir, "preview.png")
		if err := export.WritePNGFile(pngPath, img); err != nil {
			log.Fatalf("Preview export failed: %v", err)
		}
		log.Printf("Exported: %s", pngPath)
	}
}
