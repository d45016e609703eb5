package gui

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/render"
)

type fakeKeys struct {
	down  map[ebiten.Key]bool
	edge  map[ebiten.Key]bool
	chars []rune
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{down: map[ebiten.Key]bool{}, edge: map[ebiten.Key]bool{}}
}

func (k *fakeKeys) press(keys ...ebiten.Key) {
	for _, key := range keys {
		k.down[key] = true
		k.edge[key] = true
	}
}

func (k *fakeKeys) Pressed(key ebiten.Key) bool { return k.down[key] }
func (k *fakeKeys) JustPressed(key ebiten.Key) bool { return k.edge[key] }
func (k *fakeKeys) AppendChars(r []rune) []rune { return append(r, k.chars...) }

// settle clears the edges as a new ebiten frame would.
func (k *fakeKeys) settle() {
	k.edge = map[ebiten.Key]bool{}
	k.chars = nil
}

type fakeGame struct {
	steps []core.InputFrame
	state core.GameState
	text  bool
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) {}
func (g *fakeGame) Render(*core.Screen) {}
func (g *fakeGame) Draw(render.Canvas) {}
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) AcceptsText() bool { return g.text }
func (g *fakeGame) LogicalSize() (int, int) { return 640, 480 }
func (g *fakeGame) ScreenSize() (int, int) { return 40, 15 }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in.Clone())
	if in.Has(core.ActionQuit) {
		g.state.Quit = true
	}
	return core.StepResult{State: g.state}
}

func TestPoll(t *testing.T) {
	ks := newFakeKeys()
	ks.press(ebiten.KeyArrowLeft, ebiten.KeyEnter)
	ks.down[ebiten.KeyW] = true

	in := poll(ks, false)
	if !in.Has(core.ActionLeft) || !in.Has(core.ActionConfirm) {
		t.Errorf("Actions = %v, want left and confirm", in.Actions)
	}
	if in.Has(core.ActionUp) {
		t.Error("a key that was already down is not an edge")
	}
	if !in.IsHeld(core.ActionUp) || !in.IsHeld(core.ActionLeft) {
		t.Errorf("Held = %v, want up and left", in.Held)
	}
}

func TestPollTextMode(t *testing.T) {
	ks := newFakeKeys()
	ks.press(ebiten.KeyQ, ebiten.KeyA, ebiten.KeyBackspace, ebiten.KeyEscape)
	ks.chars = []rune("qa")

	in := poll(ks, true)
	if got := string(in.Text); got != "qa" {
		t.Errorf("Text = %q, want %q", got, "qa")
	}
	if in.IsHeld(core.ActionLeft) {
		t.Error("letters must not steer while typing")
	}
	if !in.Has(core.ActionBackspace) || !in.Has(core.ActionQuit) {
		t.Errorf("Actions = %v, want backspace and quit from escape", in.Actions)
	}
}

func TestMergeKeepsEdgesOnly(t *testing.T) {
	dst := core.NewInputFrame()
	src := core.NewInputFrame()
	src.Set(core.ActionPause)
	src.Hold(core.ActionRight)
	src.Type('x')

	merge(&dst, src)
	merge(&dst, core.NewInputFrame())

	if !dst.Has(core.ActionPause) || string(dst.Text) != "x" {
		t.Errorf("merged frame = %+v", dst)
	}
	if dst.IsHeld(core.ActionRight) {
		t.Error("held state must not be merged")
	}
}

func TestBindingsUnique(t *testing.T) {
	seen := map[ebiten.Key]core.Action{}
	for _, b := range bindings {
		for _, k := range b.keys {
			if prev, ok := seen[k]; ok {
				t.Errorf("key %v bound to %v and %v", k, prev, b.action)
			}
			seen[k] = b.action
		}
	}
}

func TestRunnerUpdate(t *testing.T) {
	g := &fakeGame{}
	r, err := NewRunner(g, Options{Config: core.RuntimeConfig{TickRate: 50, Seed: 1}})
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	ks := newFakeKeys()
	r.keys = ks
	clock := time.Unix(0, 0)
	r.now = func() time.Time { return clock }

	// The first update only starts the clock; its key press waits.
	ks.press(ebiten.KeyArrowRight)
	if err := r.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(g.steps) != 0 {
		t.Fatalf("stepped %d times before any time passed", len(g.steps))
	}

	ks.settle()
	clock = clock.Add(40 * time.Millisecond)
	if err := r.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(g.steps) != 2 {
		t.Fatalf("stepped %d times, want 2", len(g.steps))
	}
	if !g.steps[0].Has(core.ActionRight) || g.steps[1].Has(core.ActionRight) {
		t.Error("the press should reach the first tick only")
	}
	if !g.steps[1].IsHeld(core.ActionRight) {
		t.Error("held direction should reach every tick")
	}

	ks.press(ebiten.KeyQ)
	clock = clock.Add(20 * time.Millisecond)
	if err := r.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update after quit = %v, want ebiten.Termination", err)
	}
	if w, h := r.Layout(0, 0); w != 640 || h != 480 {
		t.Errorf("Layout = %dx%d, want 640x480", w, h)
	}
}

func TestSpriteGeoM(t *testing.T) {
	src := core.NewRect(0, 0, 32, 32)
	dst := core.NewRect(64, 32, 32, 32)
	tests := []struct {
		name     string
		rotation float64
		flip     render.Flip
		// where the source's top-right corner lands
		wantX, wantY float64
	}{
		{"none", 0, render.FlipNone, 96, 32},
		{"down", 90, render.FlipNone, 96, 64},
		{"up", 270, render.FlipNone, 64, 32},
		{"left", 0, render.FlipHorizontal, 64, 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := spriteGeoM(src, dst, tt.rotation, tt.flip)
			x, y := g.Apply(32, 0)
			if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
				t.Errorf("corner at (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}

	g := spriteGeoM(core.NewRect(0, 0, 16, 16), dst, 0, render.FlipNone)
	if x, y := g.Apply(16, 16); x != 96 || y != 64 {
		t.Errorf("scaled corner at (%v, %v), want (96, 64)", x, y)
	}
}

func TestTextLayout(t *testing.T) {
	if w := textWidth("SCORE"); w != 30 {
		t.Errorf("textWidth = %d, want 30", w)
	}
	if s := textScale(32); s != 2 {
		t.Errorf("textScale(32) = %v, want 2", s)
	}
	tests := []struct {
		align render.Align
		want  float64
	}{
		{render.AlignLeft, 100},
		{render.AlignCenter, 70},
		{render.AlignRight, 40},
	}
	for _, tt := range tests {
		if got := textOrigin(100, 60, tt.align); got != tt.want {
			t.Errorf("textOrigin(align %d) = %v, want %v", tt.align, got, tt.want)
		}
	}
	if mouthAngle(0) != 0 || mouthAngle(2) <= mouthAngle(1) {
		t.Error("mouth should open wider on later frames")
	}
}
