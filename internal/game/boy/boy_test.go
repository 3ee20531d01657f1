package boy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zeusync/horde/internal/game/geom"
)

func TestBoyWalksWaypoints(t *testing.T) {
	b := New(Config{
		Start:     geom.Pt(0, 0),
		Speed:     100,
		Waypoints: []geom.Point{{X: 50, Y: 0}, {X: 50, Y: 100}},
	})

	b.Update(0.25)
	x, y := b.Position()
	assert.InDelta(t, 25, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)

	// 50 px more: 25 to reach the corner, 25 up the next leg.
	b.Update(0.5)
	x, y = b.Position()
	assert.InDelta(t, 50, x, 1e-9)
	assert.InDelta(t, 25, y, 1e-9)
}

func TestBoyStandsStillWithoutRoute(t *testing.T) {
	b := New(Config{Start: geom.Pt(10, 20), Speed: 100})
	b.Update(1)
	x, y := b.Position()
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 20.0, y)
}

func TestBoyCollectsBalls(t *testing.T) {
	b := New(Config{Balls: 2})
	b.HandleCollision(CollisionBall, nil)
	b.HandleCollision("zombie:ball", nil)
	assert.Equal(t, 3, b.BallCount())
}
