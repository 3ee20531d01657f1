// Package zombie implements the zombie agent. Each zombie owns one behavior
// tree and ticks it once per frame; everything the tree does is visible through
// the zombie's position, target and animation state.
package zombie

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"

	"github.com/zeusync/horde/internal/core/bt"
	"github.com/zeusync/horde/internal/core/observability/log"
	"github.com/zeusync/horde/internal/game/geom"
)

// Run speed
const (
	RunSpeedKMPH = 10.0
	RunSpeedMPM  = RunSpeedKMPH * 1000.0 / 60.0
	RunSpeedMPS  = RunSpeedMPM / 60.0
	RunSpeedPPS  = RunSpeedMPS * geom.PixelPerMeter
)

// Animation speed
const (
	TimePerAction   = 0.5
	ActionPerTime   = 1.0 / TimePerAction
	FramesPerAction = 10.0
)

// CollisionBall is the collision group reported when a zombie touches a ball.
const CollisionBall = "zombie:ball"

type Animation string

const (
	AnimWalk Animation = "Walk"
	AnimIdle Animation = "Idle"
)

// WanderMode selects what a zombie does when the boy is out of range.
type WanderMode string

const (
	WanderRandom WanderMode = "random"
	WanderPatrol WanderMode = "patrol"
	WanderGuard  WanderMode = "guard"
)

// FrameClock supplies the elapsed time of the current frame in seconds.
type FrameClock interface {
	FrameTime() float64
}

// Opponent is the other party a zombie compares itself against.
type Opponent interface {
	Position() (x, y float64)
	BallCount() int
}

var (
	ErrNoClock      = errors.New("zombie: frame clock is required")
	ErrNoOpponent   = errors.New("zombie: opponent is required")
	ErrEmptyPatrol  = errors.New("zombie: patrol mode needs at least one location")
	ErrBadFrameTime = errors.New("zombie: invalid frame time")
	ErrEmptyArea    = errors.New("zombie: spawn or roam area is empty")
	ErrUnknownMode  = errors.New("zombie: unknown wander mode")
)

// DefaultPatrol is the route walked in patrol mode when none is configured.
var DefaultPatrol = []geom.Point{
	{X: 43, Y: 274}, {X: 1118, Y: 274}, {X: 1050, Y: 494}, {X: 575, Y: 804},
	{X: 235, Y: 991}, {X: 575, Y: 804}, {X: 1050, Y: 494}, {X: 1118, Y: 274},
}

type Config struct {
	// Spawn is the starting position. Nil places the zombie at random inside SpawnArea.
	Spawn     *geom.Point
	SpawnArea geom.Rect
	// Roam bounds the random wander targets.
	Roam geom.Rect

	Wander WanderMode
	Patrol []geom.Point
	Post   geom.Point

	// Radii in meters.
	NearbyRadius float64
	ArriveRadius float64
	FleeRadius   float64

	// Seed is mixed with the zombie id to seed its random source.
	Seed uint64
}

// DefaultConfig returns the settings of a zombie on a 1280x1024 field.
func DefaultConfig() Config {
	field := geom.Rect{Right: 1280, Top: 1024}
	return Config{
		SpawnArea:    field.Inset(100),
		Roam:         field.Inset(100),
		Wander:       WanderRandom,
		Patrol:       DefaultPatrol,
		Post:         geom.Pt(640, 512),
		NearbyRadius: 7,
		ArriveRadius: 0.5,
		FleeRadius:   7,
	}
}

type Zombie struct {
	id string

	x, y  float64
	dir   float64
	frame float64
	state Animation
	balls int

	tx, ty    float64
	hasTarget bool

	patrol []geom.Point
	locNo  int

	cfg    Config
	rng    *rand.Rand
	clock  FrameClock
	boy    Opponent
	tree   *bt.BehaviorTree
	logger log.Log
}

type Option func(*Zombie)

// WithLogger sets the logger used by the zombie and its tree.
func WithLogger(l log.Log) Option {
	return func(z *Zombie) { z.logger = l }
}

// New creates a zombie and builds its behavior tree. A malformed tree fails here,
// never on the first Update.
func New(id string, clock FrameClock, boy Opponent, cfg Config, opts ...Option) (*Zombie, error) {
	if clock == nil {
		return nil, ErrNoClock
	}
	if boy == nil {
		return nil, ErrNoOpponent
	}
	switch cfg.Wander {
	case "":
		cfg.Wander = WanderRandom
	case WanderRandom, WanderPatrol, WanderGuard:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, cfg.Wander)
	}
	if cfg.Wander == WanderPatrol && len(cfg.Patrol) == 0 {
		return nil, ErrEmptyPatrol
	}
	if cfg.Spawn == nil && invalidArea(cfg.SpawnArea) {
		return nil, ErrEmptyArea
	}
	if cfg.Wander == WanderRandom && invalidArea(cfg.Roam) {
		return nil, ErrEmptyArea
	}

	z := &Zombie{
		id:     id,
		state:  AnimIdle,
		patrol: append([]geom.Point(nil), cfg.Patrol...),
		cfg:    cfg,
		rng:    rand.New(rand.NewPCG(cfg.Seed, xxhash.Sum64String(id))),
		clock:  clock,
		boy:    boy,
		logger: log.NewNop(),
	}
	for _, opt := range opts {
		opt(z)
	}
	z.logger = z.logger.With(log.String("zombie", id))

	if cfg.Spawn != nil {
		z.x, z.y = cfg.Spawn.X, cfg.Spawn.Y
	} else {
		z.x, z.y = z.randomIn(cfg.SpawnArea)
	}
	z.frame = float64(z.rng.IntN(int(FramesPerAction)))

	tree, err := z.buildBehaviorTree()
	if err != nil {
		return nil, fmt.Errorf("zombie %s: build behavior tree: %w", id, err)
	}
	z.tree = tree
	return z, nil
}

// Update advances the animation and runs one behavior tree tick.
func (z *Zombie) Update() error {
	if ft := z.clock.FrameTime(); ft >= 0 && !math.IsInf(ft, 1) {
		z.frame = math.Mod(z.frame+FramesPerAction*ActionPerTime*ft, FramesPerAction)
	}
	return z.tree.Tick()
}

func (z *Zombie) ID() string { return z.id }

func (z *Zombie) Position() (x, y float64) { return z.x, z.y }

// Target returns the current move target and whether one is pending.
func (z *Zombie) Target() (x, y float64, ok bool) { return z.tx, z.ty, z.hasTarget }

func (z *Zombie) BallCount() int { return z.balls }

func (z *Zombie) State() Animation { return z.state }

func (z *Zombie) Direction() float64 { return z.dir }

func (z *Zombie) Tree() *bt.BehaviorTree { return z.tree }

// BoundingBox is the 100x100 box centered on the zombie.
func (z *Zombie) BoundingBox() geom.Rect {
	return geom.Box(z.x, z.y, 50, 50)
}

// HandleCollision reacts to a collision reported by the world.
func (z *Zombie) HandleCollision(group string, _ any) {
	if group == CollisionBall {
		z.balls++
	}
}

// Sprite describes what a renderer should draw this frame.
type Sprite struct {
	Animation Animation
	Frame     int
	// Flip mirrors the image horizontally when the zombie faces left.
	Flip bool
}

func (z *Zombie) Sprite() Sprite {
	return Sprite{
		Animation: z.state,
		Frame:     int(z.frame),
		Flip:      math.Cos(z.dir) < 0,
	}
}

func (z *Zombie) randomIn(r geom.Rect) (float64, float64) {
	x := r.Left + float64(z.rng.IntN(int(r.Width())+1))
	y := r.Bottom + float64(z.rng.IntN(int(r.Height())+1))
	return x, y
}

func invalidArea(r geom.Rect) bool {
	return r.Width() < 0 || r.Height() < 0 || (r == geom.Rect{})
}
