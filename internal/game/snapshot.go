package game

import "github.com/snakefolio/snakefolio/internal/world"

// Snapshot is a read-only copy of what the renderers draw.
type Snapshot struct {
	Size  world.Size
	Snake []world.Point // head first
	Food  world.Point
	Menu  world.Point
	Dir   Direction
	Ready bool
}

// Moving reports whether a direction is active, which also gates the menu hint.
func (s Snapshot) Moving() bool { return s.Dir != DirNone }

// Snapshot copies the drawable state. The body slice is reused from buf when it
// has room, so a renderer can keep one buffer across frames.
func (s *Sim) Snapshot(buf []world.Point) Snapshot {
	return Snapshot{
		Size:  s.size,
		Snake: append(buf[:0], s.snake...),
		Food:  s.Food(),
		Menu:  s.Menu(),
		Dir:   s.dir,
		Ready: s.Ready(),
	}
}
