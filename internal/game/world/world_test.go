package world

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/horde/internal/config"
	"github.com/zeusync/horde/internal/game/geom"
	"github.com/zeusync/horde/internal/game/zombie"
)

func emptyConfig() *config.Config {
	cfg := config.Default()
	cfg.World.Zombies = 0
	cfg.World.Balls = 0
	cfg.Boy.Start = geom.Pt(100, 100)
	cfg.Boy.Waypoints = nil
	return cfg
}

func TestNewPopulatesWorld(t *testing.T) {
	cfg := config.Default()
	w, err := New(cfg, nil)
	require.NoError(t, err)

	assert.Len(t, w.Zombies(), cfg.World.Zombies)
	assert.Len(t, w.Balls(), cfg.World.Balls)
	for _, z := range w.Zombies() {
		got, ok := w.Zombie(z.ID())
		require.True(t, ok)
		assert.Same(t, z, got)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.World.FrameRate = 0
	_, err := New(cfg, nil)
	assert.Error(t, err)
}

func TestSameSeedSameHorde(t *testing.T) {
	a, err := New(config.Default(), nil)
	require.NoError(t, err)
	b, err := New(config.Default(), nil)
	require.NoError(t, err)
	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestParallelMatchesSerial(t *testing.T) {
	serialCfg := config.Default()
	serialCfg.World.Zombies = 8
	parallelCfg := config.Default()
	parallelCfg.World.Zombies = 8
	parallelCfg.World.Parallel = true

	serial, err := New(serialCfg, nil)
	require.NoError(t, err)
	parallel, err := New(parallelCfg, nil)
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 120; i++ {
		require.NoError(t, serial.Step(ctx, serialCfg.World.FrameTime()))
		require.NoError(t, parallel.Step(ctx, parallelCfg.World.FrameTime()))
	}
	assert.Equal(t, serial.Snapshot(), parallel.Snapshot())
	assert.Equal(t, uint64(120), parallel.Frame())
}

func TestZombiePicksUpBall(t *testing.T) {
	w, err := New(emptyConfig(), nil)
	require.NoError(t, err)

	zcfg := w.cfg.ZombieTemplate()
	at := geom.Pt(600, 500)
	zcfg.Spawn = &at
	z, err := w.AddZombie(zcfg)
	require.NoError(t, err)
	w.AddBall(at)
	w.AddBall(geom.Pt(1000, 900))

	require.NoError(t, w.Step(context.Background(), 1.0/60))
	assert.Equal(t, 1, z.BallCount())
	require.Len(t, w.Balls(), 1)
	assert.Equal(t, geom.Pt(1000, 900), w.Balls()[0].Pos)
}

func TestBoyPicksUpBallFirst(t *testing.T) {
	w, err := New(emptyConfig(), nil)
	require.NoError(t, err)

	zcfg := w.cfg.ZombieTemplate()
	at := geom.Pt(140, 100)
	zcfg.Spawn = &at
	z, err := w.AddZombie(zcfg)
	require.NoError(t, err)
	w.AddBall(geom.Pt(110, 100))

	require.NoError(t, w.Step(context.Background(), 1.0/60))
	assert.Equal(t, 1, w.Boy().BallCount())
	assert.Zero(t, z.BallCount())
	assert.Empty(t, w.Balls())
}

func TestStepPropagatesZombieError(t *testing.T) {
	cfg := emptyConfig()
	w, err := New(cfg, nil)
	require.NoError(t, err)

	zcfg := cfg.ZombieTemplate()
	at := geom.Pt(200, 100)
	zcfg.Spawn = &at
	z, err := w.AddZombie(zcfg)
	require.NoError(t, err)

	err = w.Step(context.Background(), -1)
	assert.ErrorIs(t, err, zombie.ErrBadFrameTime)
	assert.Contains(t, err.Error(), z.ID())
}

func TestStepHonoursContext(t *testing.T) {
	w, err := New(config.Default(), nil)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, w.Step(ctx, 0.1), context.Canceled)
	assert.Zero(t, w.Frame())
}

func TestRemoveZombie(t *testing.T) {
	w, err := New(config.Default(), nil)
	require.NoError(t, err)
	id := w.Zombies()[0].ID()

	require.NoError(t, w.RemoveZombie(id))
	_, ok := w.Zombie(id)
	assert.False(t, ok)
	assert.Len(t, w.Zombies(), config.Default().World.Zombies-1)
	assert.ErrorIs(t, w.RemoveZombie(id), ErrUnknownZombie)
}

func TestSnapshot(t *testing.T) {
	w, err := New(emptyConfig(), nil)
	require.NoError(t, err)
	w.AddBall(geom.Pt(700, 700))

	s := w.Snapshot()
	assert.Equal(t, BoyView{X: 100, Y: 100}, s.Boy)
	assert.Empty(t, s.Zombies)
	assert.Equal(t, []geom.Point{{X: 700, Y: 700}}, s.Balls)
}
