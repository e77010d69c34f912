package game

// Direction is the snake's heading. DirNone means no motion yet.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the reverse heading. DirNone has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Vertical reports whether d moves along the y axis.
func (d Direction) Vertical() bool { return d == DirUp || d == DirDown }

// Horizontal reports whether d moves along the x axis.
func (d Direction) Horizontal() bool { return d == DirLeft || d == DirRight }

// Delta returns the unit offset for d in canvas space (y grows downwards).
func (d Direction) Delta() (dx, dy float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "UP"
	case DirDown:
		return "DOWN"
	case DirLeft:
		return "LEFT"
	case DirRight:
		return "RIGHT"
	default:
		return "NONE"
	}
}

// maxQueued bounds the turn buffer.
const maxQueued = 2

// lastPlanned is the tail of the queue, or the active direction if the queue is empty.
func (s *Sim) lastPlanned() Direction {
	if n := len(s.queue); n > 0 {
		return s.queue[n-1]
	}
	return s.dir
}

// QueueDirection buffers a turn for a later frame and reports whether it was accepted.
// Before any direction is planned, the first candidate is taken unconditionally;
// once it waits in the queue it becomes the last planned heading, so later
// candidates are checked against it. A candidate must differ from and not
// reverse the last planned heading, and at most two turns wait.
func (s *Sim) QueueDirection(d Direction) bool {
	if d == DirNone {
		return false
	}
	last := s.lastPlanned()
	if last == DirNone {
		s.queue = append(s.queue, d)
		return true
	}
	if d == last || d == last.Opposite() || len(s.queue) >= maxQueued {
		return false
	}
	s.queue = append(s.queue, d)
	return true
}
