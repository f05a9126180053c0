package life

import (
	"fmt"
	"strconv"
	"strings"

	"game-of-life/internal/core"
	pcore "game-of-life/pkg/core"
)

// Seeding modes accepted by Config.Mode.
const (
	ModeFixed  = "fixed"
	ModeRandom = "random"
	ModeEmpty  = "empty"
)

// Config controls how the Life simulation is constructed.
type Config struct {
	Width  int
	Height int
	Mode   string
	Seed   int64

	// Stamps maps a shape name to the anchors it is stamped at after seeding.
	Stamps map[string][]Coord
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: DefaultWidth, Height: DefaultHeight, Mode: ModeFixed, Seed: 42}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Every shape name is a key holding an anchor list of "row,col" pairs
// separated by ';'.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	var err error
	if v, ok := cfg["w"]; ok {
		if c.Width, err = parseDimension("w", v); err != nil {
			return c, err
		}
	}
	if v, ok := cfg["h"]; ok {
		if c.Height, err = parseDimension("h", v); err != nil {
			return c, err
		}
	}
	if v, ok := cfg["seed"]; ok {
		if c.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return c, fmt.Errorf("life: seed %q: %w", v, err)
		}
	}
	if v, ok := cfg["mode"]; ok && v != "" {
		switch v {
		case ModeFixed, ModeRandom, ModeEmpty:
			c.Mode = v
		default:
			return c, fmt.Errorf("life: unknown seeding mode %q", v)
		}
	}
	for _, name := range ShapeNames() {
		v, ok := cfg[name]
		if !ok {
			continue
		}
		anchors, err := ParseAnchors(v)
		if err != nil {
			return c, fmt.Errorf("life: %s anchors: %w", name, err)
		}
		if c.Stamps == nil {
			c.Stamps = map[string][]Coord{}
		}
		c.Stamps[name] = anchors
	}
	return c, nil
}

func parseDimension(key, v string) (int, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("life: %s %q: %w", key, v, err)
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("%w: %s=%d", ErrDegenerateSize, key, parsed)
	}
	return parsed, nil
}

// ParseAnchors parses "row,col;row,col" into coordinates. Empty input yields
// no anchors.
func ParseAnchors(s string) ([]Coord, error) {
	var out []Coord
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		rs, cs, ok := strings.Cut(part, ",")
		if !ok {
			return nil, fmt.Errorf("anchor %q: want row,col", part)
		}
		row, err := strconv.ParseUint(strings.TrimSpace(rs), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("anchor %q: %w", part, err)
		}
		col, err := strconv.ParseUint(strings.TrimSpace(cs), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("anchor %q: %w", part, err)
		}
		out = append(out, Coord{Row: uint32(row), Col: uint32(col)})
	}
	return out, nil
}

// Build constructs a Universe from the config, stamps the configured shapes
// and records the result as the restart point.
func (c Config) Build() (*Universe, error) {
	if c.Width <= 0 || c.Height <= 0 || uint64(c.Width)*uint64(c.Height) > MaxCells {
		return nil, fmt.Errorf("%w: %dx%d", ErrDegenerateSize, c.Width, c.Height)
	}
	for name := range c.Stamps {
		if _, ok := ShapeByName(name); !ok {
			return nil, fmt.Errorf("life: unknown shape %q", name)
		}
	}
	var (
		u   *Universe
		err error
	)
	switch c.Mode {
	case ModeFixed, "":
		u, err = NewFixed(uint32(c.Width), uint32(c.Height))
	case ModeRandom:
		u, err = NewRandom(uint32(c.Width), uint32(c.Height), pcore.NewRNG(c.Seed))
	case ModeEmpty:
		u, err = EmptySized(uint32(c.Width), uint32(c.Height))
	default:
		err = fmt.Errorf("life: unknown seeding mode %q", c.Mode)
	}
	if err != nil {
		return nil, err
	}
	for _, name := range ShapeNames() {
		anchors := c.Stamps[name]
		if len(anchors) == 0 {
			continue
		}
		shape, _ := ShapeByName(name)
		for _, a := range anchors {
			if err := u.Stamp(shape, a.Row, a.Col); err != nil {
				return nil, err
			}
		}
	}
	u.MarkOrigin()
	return u, nil
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		u, err := c.Build()
		if err != nil {
			return nil, err
		}
		return u, nil
	})
}
