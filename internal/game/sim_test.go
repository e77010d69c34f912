package game

import (
	"math/rand/v2"
	"testing"

	"github.com/snakefolio/snakefolio/internal/config"
	"github.com/snakefolio/snakefolio/internal/world"
)

// script replays fixed sampler values in a loop.
type script struct {
	vals []float64
	i    int
}

func (s *script) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

// farFood puts food at (680, 500) on an 800x600 canvas, away from the start column.
func farFood() *script { return &script{vals: []float64{0.9, 0.9}} }

type counts struct {
	eat, menu, start int
}

func newTestSim(t *testing.T, rng Sampler, w, h float64) (*Sim, *counts) {
	t.Helper()
	c := &counts{}
	s := NewSim(config.Default().Game, Callbacks{
		OnEat:              func() { c.eat++ },
		OnMenuHit:          func() { c.menu++ },
		OnInteractionStart: func() { c.start++ },
	}, rng)
	s.Resize(w, h)
	return s, c
}

func TestInitialLayout(t *testing.T) {
	s, _ := newTestSim(t, farFood(), 800, 600)

	snake := s.Snake()
	if len(snake) != 20 {
		t.Fatalf("Expected 20 segments, got %d", len(snake))
	}
	for i, p := range snake {
		want := world.Point{X: 400, Y: 450 + float64(i)*6}
		if p != want {
			t.Errorf("segment %d = %v, want %v", i, p, want)
		}
	}
	if s.Direction() != DirNone {
		t.Errorf("Expected no direction, got %v", s.Direction())
	}
	if got := s.Menu(); got != (world.Point{X: 750, Y: 50}) {
		t.Errorf("Expected menu at (750,50), got %v", got)
	}
	if got := s.Food(); got != (world.Point{X: 680, Y: 500}) {
		t.Errorf("Expected food at (680,500), got %v", got)
	}
}

func TestUninitialisedSimIsInert(t *testing.T) {
	s, c := newTestSim(t, farFood(), 0, 600)
	s.Push(KeyIntent(KeyUp))
	s.Frame(false)
	s.Reset(3)
	if s.Ready() {
		t.Error("sim should not initialise without a usable size")
	}
	if c.eat != 0 || c.menu != 0 {
		t.Errorf("Unexpected callbacks %+v", *c)
	}
	s.Resize(800, 600)
	if !s.Ready() || s.Epoch() != 3 {
		t.Errorf("Expected ready sim at epoch 3, got ready=%v epoch=%d", s.Ready(), s.Epoch())
	}
}

func TestIdleUntilFirstInput(t *testing.T) {
	s, _ := newTestSim(t, farFood(), 800, 600)
	before := s.Snake()
	for range 10 {
		s.Frame(false)
	}
	after := s.Snake()
	if before[0] != after[0] || len(before) != len(after) {
		t.Error("snake moved without a direction")
	}
	if s.Ticks != 0 {
		t.Errorf("Expected 0 ticks, got %d", s.Ticks)
	}
}

func TestMoveUpScenario(t *testing.T) {
	s, c := newTestSim(t, farFood(), 800, 600)
	s.Push(KeyIntent(KeyUp))

	for n := 1; n <= 112; n++ {
		s.Frame(false)
		head := s.Snake()[0]
		if want := 450 - 4*float64(n); head.Y != want || head.X != 400 {
			t.Fatalf("frame %d: head = %v, want (400,%v)", n, head, want)
		}
		if s.Len() != 20 {
			t.Fatalf("frame %d: length %d, want 20", n, s.Len())
		}
	}

	// y = 2 - 4 goes negative and wraps to the bottom edge.
	s.Frame(false)
	if head := s.Snake()[0]; head.Y != 600 {
		t.Errorf("Expected wrap to y=600, got %v", head.Y)
	}
	if c.start != 1 {
		t.Errorf("Expected one interaction start, got %d", c.start)
	}
	if c.eat != 0 || c.menu != 0 {
		t.Errorf("Unexpected collisions %+v", *c)
	}
}

func TestWrapRight(t *testing.T) {
	s, _ := newTestSim(t, farFood(), 800, 600)
	s.QueueDirection(DirRight)
	// 400 + 4*100 = 800 stays on the edge, the next step leaves it.
	for range 100 {
		s.Step()
	}
	if head := s.Snake()[0]; head.X != 800 {
		t.Fatalf("Expected head on right edge, got %v", head)
	}
	s.Step()
	if head := s.Snake()[0]; head.X != 0 {
		t.Errorf("Expected wrap to x=0, got %v", head.X)
	}
}

func TestEatGrowsAndRespawns(t *testing.T) {
	// First spawn lands at (400, 430), just above the head; the respawn goes far away.
	rng := &script{vals: []float64{0.5, 0.76, 0.9, 0.9}}
	s, c := newTestSim(t, rng, 800, 600)
	if got := s.Food(); got != (world.Point{X: 400, Y: 430}) {
		t.Fatalf("Expected food at (400,430), got %v", got)
	}

	s.Push(KeyIntent(KeyUp))
	s.Frame(false)

	if c.eat != 1 {
		t.Fatalf("Expected one eat, got %d", c.eat)
	}
	if s.Len() != 21 {
		t.Errorf("Expected length 21, got %d", s.Len())
	}
	if d := s.Food().Dist(s.Menu()); d < 120 {
		t.Errorf("Respawned food %v only %v from menu", s.Food(), d)
	}

	s.Frame(false)
	if s.Len() != 21 {
		t.Errorf("Expected length to hold at 21, got %d", s.Len())
	}
}

func TestMaxLengthCap(t *testing.T) {
	cfg := config.Default().Game
	cfg.MaxLength = 20
	eats := 0
	s := NewSim(cfg, Callbacks{OnEat: func() { eats++ }}, &script{vals: []float64{0.5, 0.76, 0.9, 0.9}})
	s.Resize(800, 600)
	s.QueueDirection(DirUp)
	s.Step()
	if eats != 1 || s.Len() != 20 {
		t.Errorf("Expected capped length 20 after eating, got %d (eats %d)", s.Len(), eats)
	}
}

func TestMenuHitFiresEveryFrame(t *testing.T) {
	// On a 100x80 canvas the menu target is (50,50) and the snake starts at (50,60).
	s, c := newTestSim(t, rand.New(rand.NewPCG(1, 2)), 100, 80)
	if got := s.Food(); got != (world.Point{X: 50, Y: 80.0 / 3}) {
		t.Fatalf("Expected fallback food, got %v", got)
	}
	s.QueueDirection(DirUp)
	s.Step()
	s.Step()
	if c.menu != 2 {
		t.Errorf("Expected 2 menu hits, got %d", c.menu)
	}
	if s.Direction() != DirUp {
		t.Error("menu hit must not stop the snake")
	}
}

func TestPausedFrame(t *testing.T) {
	s, c := newTestSim(t, farFood(), 800, 600)
	s.Push(KeyIntent(KeyUp))
	s.Push(PointerIntent(10, 10))
	s.Frame(true)

	if c.start != 0 {
		t.Errorf("paused input must be dropped, got %d starts", c.start)
	}
	if len(s.Queue()) != 0 {
		t.Errorf("paused input must not queue, got %v", s.Queue())
	}

	s.Frame(false)
	if s.Direction() != DirNone {
		t.Error("dropped intents must not replay after unpausing")
	}
}

func TestResetEpoch(t *testing.T) {
	s, _ := newTestSim(t, farFood(), 800, 600)
	s.QueueDirection(DirUp)
	for range 5 {
		s.Step()
	}
	s.QueueDirection(DirLeft)
	s.QueueDirection(DirDown)

	s.Reset(0)
	if s.Direction() != DirUp {
		t.Fatal("same epoch must not reset")
	}

	s.Reset(1)
	if s.Len() != 20 {
		t.Errorf("Expected 20 segments, got %d", s.Len())
	}
	if head := s.Snake()[0]; head != (world.Point{X: 400, Y: 450}) {
		t.Errorf("Expected head back at start, got %v", head)
	}
	if s.Direction() != DirNone {
		t.Errorf("Expected direction unset, got %v", s.Direction())
	}
	if q := s.Queue(); len(q) != 0 {
		t.Errorf("Expected empty queue, got %v", q)
	}
}

func TestResize(t *testing.T) {
	s, _ := newTestSim(t, farFood(), 800, 600)
	s.Resize(1000, 700)
	if got := s.Menu(); got != (world.Point{X: 950, Y: 50}) {
		t.Errorf("Expected menu at (950,50), got %v", got)
	}
	if got := s.Food(); got != (world.Point{X: 680, Y: 500}) {
		t.Errorf("food inside the canvas must stay, got %v", got)
	}

	s.Resize(600, 400)
	if f := s.Food(); f.X > 600 || f.Y > 400 {
		t.Errorf("food %v left outside after shrink", f)
	}
	if s.Len() != 20 {
		t.Error("resize must not reinitialise the snake")
	}

	s.Resize(-1, 400)
	if s.Size() != (world.Size{W: 600, H: 400}) {
		t.Errorf("invalid resize should be ignored, got %v", s.Size())
	}
}

func TestSnapshot(t *testing.T) {
	s, _ := newTestSim(t, farFood(), 800, 600)
	snap := s.Snapshot(nil)
	if !snap.Ready || snap.Moving() {
		t.Errorf("Expected ready idle snapshot, got %+v", snap)
	}
	snap.Snake[0] = world.Point{}
	if s.Snake()[0] == (world.Point{}) {
		t.Error("snapshot must not alias sim state")
	}
	s.QueueDirection(DirLeft)
	s.Step()
	if !s.Snapshot(snap.Snake).Moving() {
		t.Error("Expected moving snapshot")
	}
}
