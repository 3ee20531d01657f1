package zombie

import (
	"fmt"
	"math"

	"github.com/zeusync/horde/internal/core/bt"
	"github.com/zeusync/horde/internal/game/geom"
)

// buildBehaviorTree wires the zombie's leaf callables into its decision tree.
// Children are listed in priority order:
//
//	Selector "Chase, flee or wander"
//	  Sequence "Chase or flee"
//	    Condition "Is boy nearby" (r)
//	    Selector "Pick chase or flee"
//	      Sequence "Chase boy"
//	        Condition "Has more balls than boy"
//	        Action "Move to boy" (r)
//	      Sequence "Flee from boy"
//	        Condition "Has fewer balls than boy"
//	        Action "Run away from boy" (r)
//	  Sequence "Wander" (random, patrol or guard)
func (z *Zombie) buildBehaviorTree() (*bt.BehaviorTree, error) {
	b := bt.NewBuilder()

	nearby := b.Condition("Is boy nearby", z.isBoyNearby, bt.WithArgs(z.cfg.NearbyRadius), bt.WithArity(1))

	chase := b.Sequence("Chase boy",
		b.Condition("Has more balls than boy", z.hasMoreBallsThanBoy),
		b.Action("Move to boy", z.moveToBoy, bt.WithArgs(z.cfg.ArriveRadius)),
	)
	flee := b.Sequence("Flee from boy",
		b.Condition("Has fewer balls than boy", z.hasFewerBallsThanBoy),
		b.Action("Run away from boy", z.runAwayFromBoy, bt.WithArgs(z.cfg.FleeRadius)),
	)
	chaseOrFlee := b.Sequence("Chase or flee",
		nearby,
		b.Selector("Pick chase or flee", chase, flee),
	)

	root := b.Selector("Chase, flee or wander", chaseOrFlee, z.wander(b))
	return b.Build(root, bt.WithLogger(z.logger.Named("bt")))
}

func (z *Zombie) wander(b *bt.Builder) bt.Node {
	moveTo := b.Action("Move to", z.moveTo, bt.WithArgs(z.cfg.ArriveRadius))
	switch z.cfg.Wander {
	case WanderPatrol:
		return b.Sequence("Patrol", b.Action("Next patrol location", z.nextPatrolLocation), moveTo)
	case WanderGuard:
		post := b.Action("Set target location", z.setTargetLocation,
			bt.WithArgs(z.cfg.Post.X, z.cfg.Post.Y), bt.WithArity(2))
		return b.Sequence("Guard", post, moveTo)
	default:
		return b.Sequence("Wander", b.Action("Set random location", z.setRandomLocation), moveTo)
	}
}

// Leaf callables. Conditions read the zombie and the boy; actions move the zombie
// and may leave it part way to its target when a higher priority branch takes over.

func (z *Zombie) setTargetLocation(args bt.Args) (bt.Status, error) {
	z.tx, z.ty = args.At(0), args.At(1)
	z.hasTarget = true
	return bt.StatusSuccess, nil
}

// setRandomLocation picks a new roam target once the previous one was reached.
func (z *Zombie) setRandomLocation(bt.Args) (bt.Status, error) {
	if !z.hasTarget {
		z.tx, z.ty = z.randomIn(z.cfg.Roam)
		z.hasTarget = true
	}
	return bt.StatusSuccess, nil
}

func (z *Zombie) nextPatrolLocation(bt.Args) (bt.Status, error) {
	if !z.hasTarget {
		p := z.patrol[z.locNo]
		z.tx, z.ty = p.X, p.Y
		z.locNo = (z.locNo + 1) % len(z.patrol)
		z.hasTarget = true
	}
	return bt.StatusSuccess, nil
}

func (z *Zombie) moveTo(args bt.Args) (bt.Status, error) {
	r := args.Or(0, 0.5)
	if geom.Within(z.tx, z.ty, z.x, z.y, r) {
		z.state = AnimIdle
		z.hasTarget = false
		return bt.StatusSuccess, nil
	}
	z.state = AnimWalk
	if err := z.moveSlightlyTo(z.tx, z.ty); err != nil {
		return bt.StatusFailure, err
	}
	if geom.Within(z.tx, z.ty, z.x, z.y, r) {
		z.hasTarget = false
		return bt.StatusSuccess, nil
	}
	return bt.StatusRunning, nil
}

func (z *Zombie) isBoyNearby(args bt.Args) (bool, error) {
	bx, by := z.boy.Position()
	return geom.Within(bx, by, z.x, z.y, args.At(0)), nil
}

func (z *Zombie) hasMoreBallsThanBoy(bt.Args) (bool, error) {
	return z.balls >= z.boy.BallCount(), nil
}

func (z *Zombie) hasFewerBallsThanBoy(bt.Args) (bool, error) {
	return z.balls < z.boy.BallCount(), nil
}

func (z *Zombie) moveToBoy(args bt.Args) (bt.Status, error) {
	r := args.Or(0, 0.5)
	bx, by := z.boy.Position()
	z.state = AnimWalk
	if err := z.moveSlightlyTo(bx, by); err != nil {
		return bt.StatusFailure, err
	}
	if geom.Within(bx, by, z.x, z.y, r) {
		return bt.StatusSuccess, nil
	}
	return bt.StatusRunning, nil
}

func (z *Zombie) runAwayFromBoy(args bt.Args) (bt.Status, error) {
	r := args.Or(0, 7)
	bx, by := z.boy.Position()
	z.state = AnimWalk
	if err := z.runAwaySlightlyFrom(bx, by); err != nil {
		return bt.StatusFailure, err
	}
	if geom.Beyond(bx, by, z.x, z.y, r) {
		return bt.StatusSuccess, nil
	}
	return bt.StatusRunning, nil
}

func (z *Zombie) step() (float64, error) {
	ft := z.clock.FrameTime()
	if ft < 0 || math.IsNaN(ft) || math.IsInf(ft, 0) {
		return 0, fmt.Errorf("%w: %v", ErrBadFrameTime, ft)
	}
	return RunSpeedPPS * ft, nil
}

func (z *Zombie) moveSlightlyTo(tx, ty float64) error {
	d, err := z.step()
	if err != nil {
		return err
	}
	z.dir = geom.Heading(z.x, z.y, tx, ty)
	z.x += d * math.Cos(z.dir)
	z.y += d * math.Sin(z.dir)
	return nil
}

func (z *Zombie) runAwaySlightlyFrom(tx, ty float64) error {
	d, err := z.step()
	if err != nil {
		return err
	}
	z.dir = geom.Heading(z.x, z.y, tx, ty)
	z.x -= d * math.Cos(z.dir)
	z.y -= d * math.Sin(z.dir)
	return nil
}
