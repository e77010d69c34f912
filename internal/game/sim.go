package game

import (
	"math"
	"slices"

	"github.com/mlange-42/ark/ecs"
	"github.com/snakefolio/snakefolio/internal/config"
	"github.com/snakefolio/snakefolio/internal/world"
)

// Callbacks are the events the simulation emits to the shell. Nil entries are skipped.
type Callbacks struct {
	OnEat              func() // food eaten: show the next section
	OnMenuHit          func() // head over the menu target, fires every frame it stays there
	OnInteractionStart func() // first input while the snake is idle
}

func (c Callbacks) eat() {
	if c.OnEat != nil {
		c.OnEat()
	}
}

func (c Callbacks) menuHit() {
	if c.OnMenuHit != nil {
		c.OnMenuHit()
	}
}

func (c Callbacks) interactionStart() {
	if c.OnInteractionStart != nil {
		c.OnInteractionStart()
	}
}

// Sim is the snake simulation. It owns all gameplay state and is only
// touched from the frame loop.
type Sim struct {
	ECS   *ecs.World
	Ticks uint64 // frames that ran a simulation step

	cfg   config.Game
	cb    Callbacks
	rng   Sampler
	size  world.Size
	epoch int

	snake []world.Point
	dir   Direction
	queue []Direction
	inbox []Intent

	food   ecs.Entity
	menu   ecs.Entity
	posMap *ecs.Map[Position]
}

// NewSim creates an uninitialised simulation. It starts once Resize reports a
// usable canvas.
func NewSim(cfg config.Game, cb Callbacks, rng Sampler) *Sim {
	w := ecs.NewWorld(8)
	markers := ecs.NewMap2[Position, Marker](w)

	return &Sim{
		ECS:    w,
		cfg:    cfg,
		cb:     cb,
		rng:    rng,
		queue:  make([]Direction, 0, maxQueued),
		food:   markers.NewEntity(&Position{}, &Marker{Kind: MarkerFood}),
		menu:   markers.NewEntity(&Position{}, &Marker{Kind: MarkerMenu}),
		posMap: ecs.NewMap[Position](w),
	}
}

// Resize records new canvas dimensions. The first usable size initialises the
// game; later sizes move the menu target and respawn food that fell outside.
// Non-positive sizes are ignored.
func (s *Sim) Resize(w, h float64) {
	size := world.Size{W: w, H: h}
	if !size.Valid() {
		return
	}
	s.size = size
	if len(s.snake) == 0 {
		s.init()
		return
	}
	s.updateMenuPosition()
	if f := s.Food(); f.X > w || f.Y > h {
		s.spawnFood()
	}
}

// Reset reinitialises the game when epoch differs from the last one seen.
// Without a usable size the new epoch is only recorded.
func (s *Sim) Reset(epoch int) {
	if epoch == s.epoch {
		return
	}
	s.epoch = epoch
	if s.size.Valid() {
		s.init()
	}
}

// Frame runs one cycle of the loop: queued input is routed (or dropped while
// paused), then one simulation step runs unless paused.
func (s *Sim) Frame(paused bool) {
	s.drain(paused)
	if paused {
		return
	}
	s.Step()
}

// Step advances the snake by one frame.
func (s *Sim) Step() {
	if len(s.snake) == 0 {
		return
	}
	if len(s.queue) > 0 {
		s.dir = s.queue[0]
		s.queue = s.queue[:copy(s.queue, s.queue[1:])]
	}
	if s.dir == DirNone {
		return
	}
	s.Ticks++

	dx, dy := s.dir.Delta()
	head := s.size.Wrap(s.snake[0].Add(dx*s.cfg.Speed, dy*s.cfg.Speed))
	s.snake = slices.Insert(s.snake, 0, head)

	if head.Dist(s.Food()) < s.cfg.SegmentSize+s.cfg.EatSlack {
		s.cb.eat()
		s.spawnFood()
		if s.cfg.MaxLength > 0 && len(s.snake) > s.cfg.MaxLength {
			s.snake = s.snake[:s.cfg.MaxLength]
		}
	} else {
		s.snake = s.snake[:len(s.snake)-1]
	}

	if head.Dist(s.Menu()) < s.cfg.MenuHitRadius {
		s.cb.menuHit()
	}
}

func (s *Sim) init() {
	start := world.Point{
		X: math.Floor(s.size.W / 2),
		Y: math.Floor(s.size.H * s.cfg.StartHeightPct),
	}
	s.snake = s.snake[:0]
	for i := range s.cfg.InitialLength {
		s.snake = append(s.snake, start.Add(0, float64(i)*s.cfg.SegmentSize/2))
	}
	s.dir = DirNone
	s.queue = s.queue[:0]
	s.updateMenuPosition()
	s.spawnFood()
}

func (s *Sim) updateMenuPosition() {
	p := MenuPosition(s.size.W, s.cfg)
	*s.posMap.Get(s.menu) = Position{X: p.X, Y: p.Y}
}

func (s *Sim) spawnFood() {
	p, _ := PlaceFood(s.rng, s.size, s.Menu(), s.cfg)
	*s.posMap.Get(s.food) = Position{X: p.X, Y: p.Y}
}

// Food returns the food marker position.
func (s *Sim) Food() world.Point {
	p := s.posMap.Get(s.food)
	return world.Point{X: p.X, Y: p.Y}
}

// Menu returns the menu target position.
func (s *Sim) Menu() world.Point {
	p := s.posMap.Get(s.menu)
	return world.Point{X: p.X, Y: p.Y}
}

// Direction returns the active heading.
func (s *Sim) Direction() Direction { return s.dir }

// Queue returns a copy of the pending turns, oldest first.
func (s *Sim) Queue() []Direction { return slices.Clone(s.queue) }

// Snake returns a copy of the body, head first.
func (s *Sim) Snake() []world.Point { return slices.Clone(s.snake) }

// Len returns the number of segments.
func (s *Sim) Len() int { return len(s.snake) }

// Size returns the canvas size last passed to Resize.
func (s *Sim) Size() world.Size { return s.size }

// Epoch returns the last reset epoch seen.
func (s *Sim) Epoch() int { return s.epoch }

// Ready reports whether the game has been initialised.
func (s *Sim) Ready() bool { return len(s.snake) > 0 }
