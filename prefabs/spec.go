package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	TuningFile = "tuning.yaml"
	ArenaFile  = "arena.yaml"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// TuningSpec holds every gameplay number. Archetypes are keyed by name.
type TuningSpec struct {
	Mask       MaskSpec                 `yaml:"mask"`
	Stability  StabilitySpec            `yaml:"stability"`
	Archetypes map[string]ArchetypeSpec `yaml:"archetypes"`
}

type MaskSpec struct {
	MoveSpeed        float64    `yaml:"move_speed"`
	Radius           float64    `yaml:"radius"`
	InteractionRange float64    `yaml:"interaction_range"`
	EjectOffset      float64    `yaml:"eject_offset"`
	EjectImpulse     float64    `yaml:"eject_impulse"`
	Gravity          float64    `yaml:"gravity"`
	Color            *YAMLColor `yaml:"color"`
}

type StabilitySpec struct {
	Floor     float64 `yaml:"floor"`
	Threshold float64 `yaml:"threshold"`
}

type WeaponSpec struct {
	Speed    float64 `yaml:"speed"`
	Damage   float64 `yaml:"damage"`
	Lifetime float64 `yaml:"lifetime"`
	Radius   float64 `yaml:"radius"`
	Muzzle   float64 `yaml:"muzzle"`
}

// ArchetypeSpec describes one enemy kind. Variant is "standard", "resistant"
// or "tank" for possessable bodies and ignored otherwise.
type ArchetypeSpec struct {
	Possessable     bool       `yaml:"possessable"`
	Variant         string     `yaml:"variant"`
	DetectionRadius float64    `yaml:"detection_radius"`
	AttackRange     float64    `yaml:"attack_range"`
	AttackCooldown  float64    `yaml:"attack_cooldown"`
	AttackClip      float64    `yaml:"attack_clip"`
	NavSpeed        float64    `yaml:"nav_speed"`
	StoppingDist    float64    `yaml:"stopping_distance"`
	MaxStability    float64    `yaml:"max_stability"`
	DecayRate       float64    `yaml:"decay_rate"`
	PossessedSpeed  float64    `yaml:"possessed_speed"`
	Health          float64    `yaml:"health"`
	Radius          float64    `yaml:"radius"`
	Weapon          WeaponSpec `yaml:"weapon"`
	PossessedWeapon WeaponSpec `yaml:"possessed_weapon"`
	Color           *YAMLColor `yaml:"color"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type SpawnSpec struct {
	Archetype string  `yaml:"archetype"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Facing    float64 `yaml:"facing"`
}

type WallSpec struct {
	From      PointSpec `yaml:"from"`
	To        PointSpec `yaml:"to"`
	Thickness float64   `yaml:"thickness"`
}

type ArenaSpec struct {
	Name    string      `yaml:"name"`
	Mask    PointSpec   `yaml:"mask"`
	Enemies []SpawnSpec `yaml:"enemies"`
	Walls   []WallSpec  `yaml:"walls"`
}

var knownVariants = map[string]bool{
	"":          true,
	"standard":  true,
	"resistant": true,
	"tank":      true,
}

func (t *TuningSpec) Validate() error {
	if t.Mask.InteractionRange <= 0 {
		return fmt.Errorf("%w: mask interaction_range must be positive", ErrInvalidSpec)
	}
	if t.Mask.Radius <= 0 {
		return fmt.Errorf("%w: mask radius must be positive", ErrInvalidSpec)
	}
	if t.Stability.Threshold < 0 || t.Stability.Threshold > 1 {
		return fmt.Errorf("%w: stability threshold %v outside [0,1]", ErrInvalidSpec, t.Stability.Threshold)
	}
	if t.Stability.Floor < 0 {
		return fmt.Errorf("%w: stability floor must not be negative", ErrInvalidSpec)
	}
	if len(t.Archetypes) == 0 {
		return fmt.Errorf("%w: no archetypes", ErrInvalidSpec)
	}
	for name, a := range t.Archetypes {
		if err := a.validate(); err != nil {
			return fmt.Errorf("archetype %q: %w", name, err)
		}
	}
	return nil
}

func (a *ArchetypeSpec) validate() error {
	switch {
	case a.DetectionRadius <= 0:
		return fmt.Errorf("%w: detection_radius must be positive", ErrInvalidSpec)
	case a.AttackRange <= 0:
		return fmt.Errorf("%w: attack_range must be positive", ErrInvalidSpec)
	case a.AttackCooldown < 0:
		return fmt.Errorf("%w: attack_cooldown must not be negative", ErrInvalidSpec)
	case a.Radius <= 0:
		return fmt.Errorf("%w: radius must be positive", ErrInvalidSpec)
	case a.Weapon.Speed <= 0 || a.Weapon.Lifetime <= 0:
		return fmt.Errorf("%w: weapon speed and lifetime must be positive", ErrInvalidSpec)
	}
	if !a.Possessable {
		if a.Health <= 0 {
			return fmt.Errorf("%w: unpossessable archetype needs health", ErrInvalidSpec)
		}
		return nil
	}
	if !knownVariants[a.Variant] {
		return fmt.Errorf("%w: unknown variant %q", ErrInvalidSpec, a.Variant)
	}
	if a.MaxStability <= 0 {
		return fmt.Errorf("%w: max_stability must be positive", ErrInvalidSpec)
	}
	if a.PossessedWeapon.Speed <= 0 || a.PossessedWeapon.Lifetime <= 0 {
		return fmt.Errorf("%w: possessed_weapon speed and lifetime must be positive", ErrInvalidSpec)
	}
	return nil
}

// Validate checks the arena against the archetypes it references.
func (a *ArenaSpec) Validate(tuning *TuningSpec) error {
	for i, s := range a.Enemies {
		if _, ok := tuning.Archetypes[s.Archetype]; !ok {
			return fmt.Errorf("%w: enemy %d: unknown archetype %q", ErrInvalidSpec, i, s.Archetype)
		}
	}
	for i, w := range a.Walls {
		if w.From == w.To {
			return fmt.Errorf("%w: wall %d has zero length", ErrInvalidSpec, i)
		}
	}
	return nil
}

func LoadTuning() (*TuningSpec, error) {
	spec, err := LoadSpec[TuningSpec](TuningFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", TuningFile, err)
	}
	return &spec, nil
}

// LoadArena loads and validates the named arena file, or arena.yaml when
// name is empty.
func LoadArena(name string, tuning *TuningSpec) (*ArenaSpec, error) {
	if name == "" {
		name = ArenaFile
	}
	spec, err := LoadSpec[ArenaSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(tuning); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// ColorOr returns the parsed color or fallback when none was configured.
func (c *YAMLColor) ColorOr(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
