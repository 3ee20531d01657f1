package world

import "github.com/zeusync/horde/internal/game/geom"

// Snapshot is a render-ready view of one frame.
type Snapshot struct {
	Frame   uint64       `json:"frame"`
	Boy     BoyView      `json:"boy"`
	Zombies []ZombieView `json:"zombies"`
	Balls   []geom.Point `json:"balls"`
}

type BoyView struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Balls int     `json:"balls"`
}

type ZombieView struct {
	ID        string  `json:"id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	TargetX   float64 `json:"tx"`
	TargetY   float64 `json:"ty"`
	Balls     int     `json:"balls"`
	Animation string  `json:"animation"`
	Frame     int     `json:"frame"`
	Flip      bool    `json:"flip"`
}

func (w *World) Snapshot() Snapshot {
	bx, by := w.boy.Position()
	s := Snapshot{
		Frame:   w.frame,
		Boy:     BoyView{X: bx, Y: by, Balls: w.boy.BallCount()},
		Zombies: make([]ZombieView, 0, len(w.zombies)),
		Balls:   make([]geom.Point, 0, len(w.balls)),
	}
	for _, z := range w.zombies {
		x, y := z.Position()
		tx, ty, _ := z.Target()
		sp := z.Sprite()
		s.Zombies = append(s.Zombies, ZombieView{
			ID:        z.ID(),
			X:         x,
			Y:         y,
			TargetX:   tx,
			TargetY:   ty,
			Balls:     z.BallCount(),
			Animation: string(sp.Animation),
			Frame:     sp.Frame,
			Flip:      sp.Flip,
		})
	}
	for _, b := range w.balls {
		s.Balls = append(s.Balls, b.Pos)
	}
	return s
}
