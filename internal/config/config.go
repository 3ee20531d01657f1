package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/horde/internal/core/observability/log"
	"github.com/zeusync/horde/internal/game/geom"
	"github.com/zeusync/horde/internal/game/zombie"
)

type Config struct {
	Log       LogConfig       `yaml:"log"`
	World     WorldConfig     `yaml:"world"`
	Zombie    ZombieConfig    `yaml:"zombie"`
	Boy       BoyConfig       `yaml:"boy"`
	Spectator SpectatorConfig `yaml:"spectator"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type WorldConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Zombies   int     `yaml:"zombies"`
	Balls     int     `yaml:"balls"`
	Seed      uint64  `yaml:"seed"`
	FrameRate int     `yaml:"frame_rate"`
	// Parallel updates zombies concurrently within a frame.
	Parallel bool `yaml:"parallel"`
}

// Bounds is the playing field.
func (w WorldConfig) Bounds() geom.Rect {
	return geom.Rect{Right: w.Width, Top: w.Height}
}

// FrameTime is the fixed step in seconds between two frames.
func (w WorldConfig) FrameTime() float64 {
	return 1 / float64(w.FrameRate)
}

type ZombieConfig struct {
	Wander string `yaml:"wander"`
	// Radii in meters.
	NearbyRadius float64      `yaml:"nearby_radius"`
	ArriveRadius float64      `yaml:"arrive_radius"`
	FleeRadius   float64      `yaml:"flee_radius"`
	Patrol       []geom.Point `yaml:"patrol"`
	Post         geom.Point   `yaml:"post"`
}

type BoyConfig struct {
	Start     geom.Point   `yaml:"start"`
	Speed     float64      `yaml:"speed"`
	Balls     int          `yaml:"balls"`
	Waypoints []geom.Point `yaml:"waypoints"`
}

type SpectatorConfig struct {
	// Addr is the listen address of the websocket feed. Empty disables it.
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		World: WorldConfig{
			Width:     1280,
			Height:    1024,
			Zombies:   3,
			Balls:     30,
			Seed:      1,
			FrameRate: 60,
		},
		Zombie: ZombieConfig{
			Wander:       string(zombie.WanderRandom),
			NearbyRadius: 7,
			ArriveRadius: 0.5,
			FleeRadius:   7,
			Patrol:       append([]geom.Point(nil), zombie.DefaultPatrol...),
			Post:         geom.Pt(640, 512),
		},
		Boy: BoyConfig{
			Start: geom.Pt(640, 512),
			Speed: 200,
			Waypoints: []geom.Point{
				{X: 200, Y: 200}, {X: 1080, Y: 200}, {X: 1080, Y: 824}, {X: 200, Y: 824},
			},
		},
	}
}

// Load reads a YAML file on top of Default.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	w := c.World
	if w.Width <= 200 || w.Height <= 200 {
		errs = append(errs, fmt.Errorf("world: size %vx%v must exceed 200x200", w.Width, w.Height))
	}
	if w.Zombies < 0 {
		errs = append(errs, fmt.Errorf("world.zombies: must not be negative"))
	}
	if w.Balls < 0 {
		errs = append(errs, fmt.Errorf("world.balls: must not be negative"))
	}
	if w.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("world.frame_rate: must be positive"))
	}

	z := c.Zombie
	switch zombie.WanderMode(z.Wander) {
	case zombie.WanderRandom, zombie.WanderGuard:
	case zombie.WanderPatrol:
		if len(z.Patrol) == 0 {
			errs = append(errs, fmt.Errorf("zombie.patrol: required in patrol mode"))
		}
	default:
		errs = append(errs, fmt.Errorf("zombie.wander: unknown mode %q", z.Wander))
	}
	if z.NearbyRadius <= 0 || z.ArriveRadius <= 0 || z.FleeRadius <= 0 {
		errs = append(errs, fmt.Errorf("zombie: radii must be positive"))
	}

	if c.Boy.Speed < 0 {
		errs = append(errs, fmt.Errorf("boy.speed: must not be negative"))
	}
	return errors.Join(errs...)
}

// ZombieTemplate converts the zombie section into per-agent settings.
// Spawn is left unset so every zombie gets its own random position.
func (c *Config) ZombieTemplate() zombie.Config {
	field := c.World.Bounds()
	return zombie.Config{
		SpawnArea:    field.Inset(100),
		Roam:         field.Inset(100),
		Wander:       zombie.WanderMode(c.Zombie.Wander),
		Patrol:       append([]geom.Point(nil), c.Zombie.Patrol...),
		Post:         c.Zombie.Post,
		NearbyRadius: c.Zombie.NearbyRadius,
		ArriveRadius: c.Zombie.ArriveRadius,
		FleeRadius:   c.Zombie.FleeRadius,
		Seed:         c.World.Seed,
	}
}
