package game

import (
	"math"

	"github.com/snakefolio/snakefolio/internal/world"
)

// Key is a host-independent key identity.
type Key uint8

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
)

// IntentKind says which router handles an intent.
type IntentKind uint8

const (
	IntentKey     IntentKind = iota // key press
	IntentPointer                   // touch start or primary mouse button down
)

// Intent is one normalised input event, queued by a host and drained by the frame loop.
type Intent struct {
	Kind IntentKind
	Key  Key
	At   world.Point // pointer position in logical canvas pixels
}

// KeyIntent builds a key press intent.
func KeyIntent(k Key) Intent { return Intent{Kind: IntentKey, Key: k} }

// PointerIntent builds a pointer press intent at (x, y).
func PointerIntent(x, y float64) Intent {
	return Intent{Kind: IntentPointer, At: world.Point{X: x, Y: y}}
}

// Push queues an intent for the next frame. Safe to call only from the frame goroutine.
func (s *Sim) Push(in Intent) {
	s.inbox = append(s.inbox, in)
}

// drain routes every pending intent in arrival order. While paused they are dropped.
func (s *Sim) drain(paused bool) {
	if !paused {
		for _, in := range s.inbox {
			switch in.Kind {
			case IntentKey:
				s.routeKey(in.Key)
			case IntentPointer:
				s.routePointer(in.At)
			}
		}
	}
	clear(s.inbox)
	s.inbox = s.inbox[:0]
}

func (s *Sim) routeKey(k Key) {
	if s.dir == DirNone && k != KeyOther {
		s.cb.interactionStart()
	}
	switch k {
	case KeyUp:
		s.QueueDirection(DirUp)
	case KeyDown:
		s.QueueDirection(DirDown)
	case KeyLeft:
		s.QueueDirection(DirLeft)
	case KeyRight:
		s.QueueDirection(DirRight)
	}
}

func (s *Sim) routePointer(at world.Point) {
	c := s.size.Center()
	switch last := s.lastPlanned(); {
	case last == DirNone:
		s.cb.interactionStart()
		s.QueueDirection(ConeDirection(at.X-c.X, at.Y-c.Y))
	case last.Vertical():
		if at.X < c.X {
			s.QueueDirection(DirLeft)
		} else {
			s.QueueDirection(DirRight)
		}
	case last.Horizontal():
		if at.Y < c.Y {
			s.QueueDirection(DirUp)
		} else {
			s.QueueDirection(DirDown)
		}
	}
}

// ConeDirection buckets an offset from the viewport center into one of four
// cones. The dominant axis wins; ties go to the vertical axis.
func ConeDirection(dx, dy float64) Direction {
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return DirRight
		}
		return DirLeft
	}
	if dy > 0 {
		return DirDown
	}
	return DirUp
}
