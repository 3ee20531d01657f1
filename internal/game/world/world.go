// Package world owns every actor of a simulation and advances them one frame
// at a time: the boy moves first, then every zombie ticks its behavior tree,
// then collisions are dispatched.
package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/zeusync/horde/internal/config"
	"github.com/zeusync/horde/internal/core/observability/log"
	"github.com/zeusync/horde/internal/game/boy"
	"github.com/zeusync/horde/internal/game/geom"
	"github.com/zeusync/horde/internal/game/zombie"
)

// namespace derives deterministic entity ids from the world seed.
var namespace = uuid.MustParse("6f1d3c1e-8d5a-4f8e-9a55-2b1f0e7c4a10")

var ErrUnknownZombie = errors.New("world: unknown zombie")

// Ball is a pickup lying on the field.
type Ball struct {
	ID  string
	Pos geom.Point
}

func (b *Ball) BoundingBox() geom.Rect {
	return geom.Box(b.Pos.X, b.Pos.Y, 10, 10)
}

type World struct {
	cfg    *config.Config
	logger log.Log

	frameTime float64
	frame     uint64

	boy     *boy.Boy
	zombies []*zombie.Zombie
	byID    map[string]*zombie.Zombie
	balls   []*Ball

	rng     *rand.Rand
	spawned int
}

// New builds a world with the boy, the configured zombies and scattered balls.
func New(cfg *config.Config, logger log.Log) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	if logger == nil {
		logger = log.NewNop()
	}

	w := &World{
		cfg:       cfg,
		logger:    logger.Named("world"),
		frameTime: cfg.World.FrameTime(),
		byID:      make(map[string]*zombie.Zombie),
		rng:       rand.New(rand.NewPCG(cfg.World.Seed, xxhash.Sum64String("world"))),
		boy: boy.New(boy.Config{
			Start:     cfg.Boy.Start,
			Speed:     cfg.Boy.Speed,
			Balls:     cfg.Boy.Balls,
			Waypoints: cfg.Boy.Waypoints,
		}),
	}

	tpl := cfg.ZombieTemplate()
	for i := 0; i < cfg.World.Zombies; i++ {
		if _, err := w.AddZombie(tpl); err != nil {
			return nil, err
		}
	}

	area := cfg.World.Bounds().Inset(100)
	for i := 0; i < cfg.World.Balls; i++ {
		x := area.Left + w.rng.Float64()*area.Width()
		y := area.Bottom + w.rng.Float64()*area.Height()
		w.AddBall(geom.Pt(x, y))
	}

	w.logger.Info("world created",
		log.Int("zombies", len(w.zombies)),
		log.Int("balls", len(w.balls)),
		log.String("wander", cfg.Zombie.Wander),
	)
	return w, nil
}

// AddZombie spawns a zombie built from zcfg. Its id is derived from the world seed
// and spawn order, so the same config always yields the same horde.
func (w *World) AddZombie(zcfg zombie.Config) (*zombie.Zombie, error) {
	id := uuid.NewSHA1(namespace, fmt.Appendf(nil, "zombie/%d/%d", w.cfg.World.Seed, w.spawned)).String()
	z, err := zombie.New(id, w, w.boy, zcfg, zombie.WithLogger(w.logger))
	if err != nil {
		return nil, err
	}
	w.spawned++
	w.zombies = append(w.zombies, z)
	w.byID[id] = z
	return z, nil
}

// RemoveZombie drops a zombie and its tree from the world.
func (w *World) RemoveZombie(id string) error {
	if _, ok := w.byID[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownZombie, id)
	}
	delete(w.byID, id)
	for i, z := range w.zombies {
		if z.ID() == id {
			w.zombies = append(w.zombies[:i], w.zombies[i+1:]...)
			break
		}
	}
	return nil
}

func (w *World) AddBall(p geom.Point) *Ball {
	b := &Ball{
		ID:  uuid.NewSHA1(namespace, fmt.Appendf(nil, "ball/%d/%v/%v", w.cfg.World.Seed, p.X, p.Y)).String(),
		Pos: p,
	}
	w.balls = append(w.balls, b)
	return b
}

// FrameTime is the elapsed time of the frame being simulated, in seconds.
func (w *World) FrameTime() float64 { return w.frameTime }

func (w *World) Frame() uint64 { return w.frame }

func (w *World) Boy() *boy.Boy { return w.boy }

func (w *World) Zombies() []*zombie.Zombie { return append([]*zombie.Zombie(nil), w.zombies...) }

func (w *World) Zombie(id string) (*zombie.Zombie, bool) {
	z, ok := w.byID[id]
	return z, ok
}

func (w *World) Balls() []*Ball { return append([]*Ball(nil), w.balls...) }

// Step simulates one frame of frameTime seconds.
// Zombies only read the boy and mutate themselves while they update, so with
// world.parallel each one can tick on its own goroutine.
func (w *World) Step(ctx context.Context, frameTime float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w.frameTime = frameTime
	w.boy.Update(frameTime)

	if err := w.updateZombies(ctx); err != nil {
		return err
	}

	w.collide()
	w.frame++
	return nil
}

func (w *World) updateZombies(ctx context.Context) error {
	if !w.cfg.World.Parallel {
		for _, z := range w.zombies {
			if err := z.Update(); err != nil {
				return fmt.Errorf("zombie %s: %w", z.ID(), err)
			}
		}
		return nil
	}

	g, _ := errgroup.WithContext(ctx)
	for _, z := range w.zombies {
		g.Go(func() error {
			if err := z.Update(); err != nil {
				return fmt.Errorf("zombie %s: %w", z.ID(), err)
			}
			return nil
		})
	}
	return g.Wait()
}

// collide hands each ball to the first actor touching it: the boy, then zombies
// in spawn order.
func (w *World) collide() {
	boyBox := w.boy.BoundingBox()
	kept := w.balls[:0]
	for _, b := range w.balls {
		box := b.BoundingBox()
		switch {
		case boyBox.Overlaps(box):
			w.boy.HandleCollision(boy.CollisionBall, b)
		default:
			z := w.zombieTouching(box)
			if z == nil {
				kept = append(kept, b)
				continue
			}
			z.HandleCollision(zombie.CollisionBall, b)
			w.logger.Debug("ball picked up", log.String("zombie", z.ID()), log.Int("balls", z.BallCount()))
		}
	}
	for i := len(kept); i < len(w.balls); i++ {
		w.balls[i] = nil
	}
	w.balls = kept
}

func (w *World) zombieTouching(box geom.Rect) *zombie.Zombie {
	for _, z := range w.zombies {
		if z.BoundingBox().Overlaps(box) {
			return z
		}
	}
	return nil
}
