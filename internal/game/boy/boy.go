// Package boy implements the player character the zombies react to. Without
// input handling the boy walks a scripted loop of waypoints.
package boy

import (
	"math"

	"github.com/zeusync/horde/internal/game/geom"
)

// CollisionBall is the collision group reported when the boy touches a ball.
const CollisionBall = "boy:ball"

type Config struct {
	Start     geom.Point
	Speed     float64 // pixels per second
	Balls     int
	Waypoints []geom.Point
}

type Boy struct {
	x, y      float64
	dir       float64
	speed     float64
	balls     int
	waypoints []geom.Point
	next      int
}

func New(cfg Config) *Boy {
	return &Boy{
		x:         cfg.Start.X,
		y:         cfg.Start.Y,
		speed:     cfg.Speed,
		balls:     cfg.Balls,
		waypoints: append([]geom.Point(nil), cfg.Waypoints...),
	}
}

// Update walks towards the current waypoint, moving on to the next one once reached.
func (b *Boy) Update(frameTime float64) {
	if len(b.waypoints) == 0 || b.speed <= 0 || frameTime <= 0 {
		return
	}
	step := b.speed * frameTime
	for i := 0; step > 0 && i < len(b.waypoints); i++ {
		wp := b.waypoints[b.next]
		d := math.Sqrt(geom.Dist2(b.x, b.y, wp.X, wp.Y))
		if d > step {
			b.dir = geom.Heading(b.x, b.y, wp.X, wp.Y)
			b.x += step * math.Cos(b.dir)
			b.y += step * math.Sin(b.dir)
			return
		}
		b.x, b.y = wp.X, wp.Y
		b.next = (b.next + 1) % len(b.waypoints)
		step -= d
	}
}

func (b *Boy) Position() (x, y float64) { return b.x, b.y }

// SetPosition teleports the boy, e.g. when driven by an external controller.
func (b *Boy) SetPosition(x, y float64) { b.x, b.y = x, y }

func (b *Boy) BallCount() int { return b.balls }

func (b *Boy) BoundingBox() geom.Rect {
	return geom.Box(b.x, b.y, 20, 50)
}

func (b *Boy) HandleCollision(group string, _ any) {
	if group == CollisionBall {
		b.balls++
	}
}
