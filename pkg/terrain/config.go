package terrain

import (
	"encoding/json"
	"fmt"
	"os"
)

// Style selects the shaping curve applied inside a mountain range's
// influence radius.
type Style string

// Supported mountain styles.
const (
	StyleJagged   Style = "jagged"   // sharp peaks, ridged noise blend
	StyleRidged   Style = "ridged"   // connected ridgeline
	StyleVolcanic Style = "volcanic" // cone with crater depression
	StyleMassive  Style = "massive"  // broad, imposing
	StyleEroded   Style = "eroded"   // weathered, irregular
)

// WorldConfig holds the immutable parameters for one generation run.
type WorldConfig struct {
	WorldSize  float64 `json:"world_size"` // total extent in studs, world spans [-size/2, size/2]
	Resolution int     `json:"resolution"` // grid cells per side; (resolution+1)^2 samples
	MaxHeight  float64 `json:"max_height"` // nominal tallest peak, used for preview normalization
	WaterLevel float64 `json:"water_level"`
	SnowLine   float64 `json:"snow_line"`
	Treeline   float64 `json:"treeline"`
	Seed       int64   `json:"seed"`

	// Spawn safety. Zero values take the standard spawn area
	// (radius 100, minimum height 5).
	SpawnRadius    float64 `json:"spawn_radius,omitempty"`
	SpawnMinHeight float64 `json:"spawn_min_height,omitempty"`
}

// MountainRange is a named macro-feature contributing height around a center.
type MountainRange struct {
	Name       string     `json:"name"`
	Center     [2]float64 `json:"center"`
	Radius     float64    `json:"radius"`
	PeakHeight float64    `json:"peak_height"`
	PeakCount  int        `json:"peaks"`
	Style      Style      `json:"style"`
}

// ValleyPath carves a depression along an ordered polyline of waypoints.
type ValleyPath struct {
	Name      string       `json:"name"`
	Waypoints [][2]float64 `json:"waypoints"`
	Width     float64      `json:"width"`
}

// Document is the file-based configuration boundary: one world plus its
// ordered feature lists.
type Document struct {
	World     WorldConfig     `json:"world"`
	Mountains []MountainRange `json:"mountains"`
	Valleys   []ValleyPath    `json:"valleys"`
}

// ConfigError reports an invalid configuration value. Validation happens
// before any sampling; bad values are never clamped or defaulted.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("terrain: invalid config: %s: %s", e.Field, e.Reason)
}

// Validate checks the world parameters.
func (c WorldConfig) Validate() error {
	if c.WorldSize <= 0 {
		return &ConfigError{"world_size", fmt.Sprintf("must be positive, got %g", c.WorldSize)}
	}
	if c.Resolution <= 0 {
		return &ConfigError{"resolution", fmt.Sprintf("must be positive, got %d", c.Resolution)}
	}
	if c.MaxHeight <= 0 {
		return &ConfigError{"max_height", fmt.Sprintf("must be positive, got %g", c.MaxHeight)}
	}
	if c.SpawnRadius < 0 {
		return &ConfigError{"spawn_radius", fmt.Sprintf("must not be negative, got %g", c.SpawnRadius)}
	}
	return nil
}

// Validate checks a mountain range definition.
func (m MountainRange) Validate() error {
	if m.Radius <= 0 {
		return &ConfigError{"mountain " + m.Name, fmt.Sprintf("radius must be positive, got %g", m.Radius)}
	}
	if m.PeakCount < 1 {
		return &ConfigError{"mountain " + m.Name, fmt.Sprintf("peaks must be at least 1, got %d", m.PeakCount)}
	}
	switch m.Style {
	case StyleJagged, StyleRidged, StyleVolcanic, StyleMassive, StyleEroded:
	default:
		return &ConfigError{"mountain " + m.Name, fmt.Sprintf("unknown style %q", m.Style)}
	}
	return nil
}

// Validate checks a valley path definition.
func (v ValleyPath) Validate() error {
	if len(v.Waypoints) < 2 {
		return &ConfigError{"valley " + v.Name, fmt.Sprintf("needs at least 2 waypoints, got %d", len(v.Waypoints))}
	}
	if v.Width <= 0 {
		return &ConfigError{"valley " + v.Name, fmt.Sprintf("width must be positive, got %g", v.Width)}
	}
	return nil
}

// Validate checks the whole document.
func (d *Document) Validate() error {
	if err := d.World.Validate(); err != nil {
		return err
	}
	for _, m := range d.Mountains {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	for _, v := range d.Valleys {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// LoadDocument reads and validates a JSON world configuration file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("terrain: read config: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("terrain: parse config %s: %w", path, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}
