package shape

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidPreset     = errors.New("invalid preset")
	ErrUnsupportedFormat = errors.New("unsupported preset format")
)

// Preset describes a Profile plant. Angles are in radians.
type Preset struct {
	Name       string       `yaml:"name" toml:"name"`
	Segments   int          `yaml:"segments" toml:"segments"`
	Length     float32      `yaml:"length" toml:"length"`
	Bend       float32      `yaml:"bend" toml:"bend"`   // Per segment, around Z
	Twist      float32      `yaml:"twist" toml:"twist"` // Per segment, around Y
	Ease       bool         `yaml:"ease" toml:"ease"` // Ramp bend and twist up from zero at the base
	Origin     [3]float32   `yaml:"origin" toml:"origin"`
	Rotation   [3]float32   `yaml:"rotation" toml:"rotation"` // Base pitch (X), yaw (Y), roll (Z)
	BaseRadius float32      `yaml:"base_radius" toml:"base_radius"`
	TipRadius  float32      `yaml:"tip_radius" toml:"tip_radius"`
	Sides      int          `yaml:"sides" toml:"sides"`
	Profile    [][2]float32 `yaml:"profile,omitempty" toml:"profile,omitempty"` // Unit cross-section, overrides Sides
	PinchBase  bool         `yaml:"pinch_base" toml:"pinch_base"`
	PinchTip   bool         `yaml:"pinch_tip" toml:"pinch_tip"`
	Color      [4]float32   `yaml:"color" toml:"color"`
}

// DefaultPreset returns a slightly bent, twisted hexagonal stem.
func DefaultPreset() Preset {
	return Preset{
		Name:       "stem",
		Segments:   8,
		Length:     2,
		Bend:       0.08,
		Twist:      0.3,
		BaseRadius: 0.2,
		TipRadius:  0.05,
		Sides:      6,
		PinchTip:   true,
		Color:      [4]float32{0.25, 0.6, 0.2, 1},
	}
}

// Validate checks that the preset can produce a mesh.
func (p Preset) Validate() error {
	if p.Segments < 1 {
		return fmt.Errorf("%w: segments must be at least 1, got %d", ErrInvalidPreset, p.Segments)
	}
	if p.Length <= 0 {
		return fmt.Errorf("%w: length must be positive, got %v", ErrInvalidPreset, p.Length)
	}
	if p.BaseRadius < 0 || p.TipRadius < 0 {
		return fmt.Errorf("%w: radii must not be negative", ErrInvalidPreset)
	}
	if len(p.Profile) == 0 && p.Sides < 1 {
		return fmt.Errorf("%w: sides must be at least 1, got %d", ErrInvalidPreset, p.Sides)
	}
	return nil
}

// ParsePreset decodes a preset in the given format ("yaml", "yml" or
// "toml"). Fields missing from data keep their DefaultPreset values.
func ParsePreset(data []byte, format string) (Preset, error) {
	p := DefaultPreset()

	var err error
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &p)
	case "toml":
		err = toml.Unmarshal(data, &p)
	default:
		return Preset{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return Preset{}, fmt.Errorf("%w: %v", ErrInvalidPreset, err)
	}

	if err := p.Validate(); err != nil {
		return Preset{}, err
	}
	return p, nil
}

// LoadPreset reads a preset file, choosing the decoder by extension.
func LoadPreset(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, err
	}
	p, err := ParsePreset(data, filepath.Ext(path))
	if err != nil {
		return Preset{}, fmt.Errorf("loading preset %s: %w", path, err)
	}
	return p, nil
}
