package terrain

// Presets are the shipped world configurations. They replace what used to
// be three separately tuned generator variants with one engine driven by
// different feature tables.

// PresetAlpine is the flagship alpine landscape: five named ranges, three
// river valleys, snow line and treeline tuned for dramatic peaks.
func PresetAlpine() Document {
	return Document{
		World: WorldConfig{
			WorldSize:  3000,
			Resolution: 200,
			MaxHeight:  450,
			WaterLevel: -8,
			SnowLine:   280,
			Treeline:   200,
			Seed:       42069,
		},
		Mountains: []MountainRange{
			{Name: "The Frozen Sentinels", Center: [2]float64{400, -500}, Radius: 500, PeakHeight: 420, PeakCount: 5, Style: StyleJagged},
			{Name: "Shadow's Teeth", Center: [2]float64{500, -200}, Radius: 400, PeakHeight: 350, PeakCount: 4, Style: StyleRidged},
			{Name: "The Ember Crown", Center: [2]float64{250, 300}, Radius: 350, PeakHeight: 300, PeakCount: 3, Style: StyleVolcanic},
			{Name: "Giants' Throne", Center: [2]float64{450, 450}, Radius: 550, PeakHeight: 450, PeakCount: 6, Style: StyleMassive},
			{Name: "The Broken Spine", Center: [2]float64{-400, 350}, Radius: 300, PeakHeight: 200, PeakCount: 8, Style: StyleEroded},
		},
		Valleys: []ValleyPath{
			{Name: "Serpent's Flow", Waypoints: [][2]float64{{-500, -400}, {-100, 400}}, Width: 60},
			{Name: "Whispering Waters", Waypoints: [][2]float64{{100, -300}, {350, 300}}, Width: 40},
			{Name: "Shadow Creek", Waypoints: [][2]float64{{-300, 100}, {200, 400}}, Width: 50},
		},
	}
}

// PresetEpic is a harsher, more vertical world: taller peaks packed into a
// smaller map, most ranges sharp-styled.
func PresetEpic() Document {
	return Document{
		World: WorldConfig{
			WorldSize:  2000,
			Resolution: 128,
			MaxHeight:  500,
			WaterLevel: -10,
			SnowLine:   300,
			Treeline:   220,
			Seed:       12345,
		},
		Mountains: []MountainRange{
			{Name: "Frozen Peaks", Center: [2]float64{600, -800}, Radius: 600, PeakHeight: 500, PeakCount: 3, Style: StyleJagged},
			{Name: "Shadow Mountains", Center: [2]float64{800, -400}, Radius: 600, PeakHeight: 425, PeakCount: 4, Style: StyleRidged},
			{Name: "Ember Ridge", Center: [2]float64{400, 400}, Radius: 600, PeakHeight: 350, PeakCount: 2, Style: StyleVolcanic},
			{Name: "The Giants", Center: [2]float64{700, 700}, Radius: 600, PeakHeight: 475, PeakCount: 5, Style: StyleMassive},
			{Name: "Broken Hills", Center: [2]float64{-700, 600}, Radius: 600, PeakHeight: 250, PeakCount: 6, Style: StyleEroded},
		},
	}
}

// PresetClassic is the original compact mountain layout: smaller world,
// gentler ranges, no carved valleys.
func PresetClassic() Document {
	return Document{
		World: WorldConfig{
			WorldSize:  1600,
			Resolution: 64,
			MaxHeight:  400,
			WaterLevel: -5,
			SnowLine:   200,
			Treeline:   150,
			Seed:       2024,
		},
		Mountains: []MountainRange{
			{Name: "Frozen Peaks", Center: [2]float64{300, -400}, Radius: 400, PeakHeight: 350, PeakCount: 3, Style: StyleJagged},
			{Name: "Shadow Mountains", Center: [2]float64{400, -200}, Radius: 350, PeakHeight: 300, PeakCount: 4, Style: StyleRidged},
			{Name: "Ember Ridge", Center: [2]float64{200, 200}, Radius: 300, PeakHeight: 250, PeakCount: 2, Style: StyleVolcanic},
			{Name: "The Giants", Center: [2]float64{350, 350}, Radius: 450, PeakHeight: 400, PeakCount: 5, Style: StyleMassive},
			{Name: "Broken Hills", Center: [2]float64{-350, 300}, Radius: 250, PeakHeight: 150, PeakCount: 6, Style: StyleEroded},
		},
	}
}

// Preset looks up a shipped configuration by name.
func Preset(name string) (Document, bool) {
	switch name {
	case "alpine":
		return PresetAlpine(), true
	case "epic":
		return PresetEpic(), true
	case "classic":
		return PresetClassic(), true
	}
	return Document{}, false
}

// PresetNames lists the shipped preset names.
func PresetNames() []string {
	return []string{"alpine", "epic", "classic"}
}
