package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// fakeGame records the frames it is stepped with.
type fakeGame struct {
	frames []core.InputFrame
	state  core.GameState
	text   bool
	fps    int
	resets int
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) AcceptsText() bool { return g.text }
func (g *fakeGame) SetFPS(fps int) { g.fps = fps }
func (g *fakeGame) ScreenSize() (int, int) { return 10, 2 }
func (g *fakeGame) LogicalSize() (int, int) { return 160, 64 }
func (g *fakeGame) Render(s *core.Screen) { s.DrawText(0, 0, "fake", core.ColorYellow) }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	if in.Has(core.ActionQuit) {
		g.state.Quit = true
	}
	return core.StepResult{State: g.state}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// frames feeds frame messages dt apart, starting at t0.
func frames(t *testing.T, m Model, t0 time.Time, dt time.Duration, n int) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		next, c := m.Update(FrameMsg(t0.Add(time.Duration(i) * dt)))
		m = next.(Model)
		cmd = c
	}
	return m, cmd
}

func TestKeyMapperBindings(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{keyRunes("a"), core.ActionLeft},
		{keyRunes("d"), core.ActionRight},
		{keyRunes("j"), core.ActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{keyRunes("p"), core.ActionPause},
		{keyRunes("r"), core.ActionReset},
		{keyRunes("f"), core.ActionToggleFPS},
		{keyRunes("q"), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{keyRunes("z"), core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapperHeldWindow(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame, false)

	if !frame.Has(core.ActionLeft) {
		t.Fatal("press should be an edge action")
	}

	held := core.NewInputFrame()
	km.ApplyHeld(&held)
	if !held.Held[core.ActionLeft] {
		t.Error("direction should count as held right after the press")
	}

	km.Elapse(holdWindow / 2)
	held = core.NewInputFrame()
	km.ApplyHeld(&held)
	if !held.Held[core.ActionLeft] {
		t.Error("direction should still be held inside the window")
	}

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyUp}, &frame, false)
	held = core.NewInputFrame()
	km.ApplyHeld(&held)
	if held.Held[core.ActionLeft] || !held.Held[core.ActionUp] {
		t.Errorf("new direction should replace the old one, held = %v", held.Held)
	}

	km.Elapse(holdWindow)
	held = core.NewInputFrame()
	km.ApplyHeld(&held)
	if len(held.Held) != 0 {
		t.Errorf("held = %v after the window ran out, want none", held.Held)
	}
}

func TestKeyMapperTextMode(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(keyRunes("qa"), &frame, true)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace}, &frame, true)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyBackspace}, &frame, true)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEnter}, &frame, true)

	if got := string(frame.Text); got != "qa " {
		t.Errorf("Text = %q, want %q", got, "qa ")
	}
	if frame.Has(core.ActionQuit) || frame.Has(core.ActionLeft) {
		t.Error("letters must not act as commands while typing")
	}
	if !frame.Has(core.ActionBackspace) || !frame.Has(core.ActionConfirm) {
		t.Error("backspace and enter should keep their meaning")
	}

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame, true)
	if !frame.Has(core.ActionQuit) {
		t.Error("ctrl+c should always quit")
	}
}

func TestModelFixedStep(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, Options{Config: core.RuntimeConfig{TickRate: 50, Seed: 1}, FPS: 25})
	m.Init()
	if g.resets != 1 {
		t.Fatalf("resets = %d, want 1", g.resets)
	}

	next, _ := m.Update(keyRunes("l"))
	m = next.(Model)

	// 25 fps frames against a 50 Hz simulation: two ticks per frame after
	// the first one, which only sets the clock.
	t0 := time.Unix(0, 0)
	m, _ = frames(t, m, t0, 40*time.Millisecond, 3)

	if len(g.frames) != 4 {
		t.Fatalf("stepped %d times, want 4", len(g.frames))
	}
	if !g.frames[0].Has(core.ActionRight) {
		t.Error("first tick should carry the key press")
	}
	if g.frames[1].Has(core.ActionRight) {
		t.Error("edge actions must not repeat on later ticks")
	}
	if !g.frames[1].Held[core.ActionRight] {
		t.Error("direction should stay held on later ticks")
	}
	if m.fps.FPS() != 0 || g.fps != 0 {
		t.Errorf("fps measured too early: %d", g.fps)
	}
}

func TestModelReleasesHeldForText(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, Options{Config: core.RuntimeConfig{TickRate: 50, Seed: 1}})
	m.Init()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)
	t0 := time.Unix(0, 0)
	m, _ = frames(t, m, t0, 40*time.Millisecond, 2)
	if len(g.frames) != 2 || !g.frames[1].Held[core.ActionLeft] {
		t.Fatalf("left should be held during play, frames = %v", g.frames)
	}

	g.text = true
	frames(t, m, t0.Add(80*time.Millisecond), 40*time.Millisecond, 1)
	if len(g.frames) != 4 {
		t.Fatalf("stepped %d times, want 4", len(g.frames))
	}
	for _, f := range g.frames[2:] {
		if len(f.Held) != 0 {
			t.Errorf("Held = %v while typing, want none", f.Held)
		}
	}
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, Options{Config: core.RuntimeConfig{TickRate: 60, Seed: 1}})
	m.Init()

	next, _ := m.Update(keyRunes("q"))
	m = next.(Model)
	m, cmd := frames(t, m, time.Unix(0, 0), 20*time.Millisecond, 2)

	if !m.Done() {
		t.Fatal("model should be done after the game quits")
	}
	if cmd == nil {
		t.Fatal("expected tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}

	embedded := NewModel(&fakeGame{}, Options{Config: core.RuntimeConfig{TickRate: 60, Seed: 1}, Embedded: true})
	next, _ = embedded.Update(keyRunes("q"))
	embedded = next.(Model)
	embedded, cmd = frames(t, embedded, time.Unix(0, 0), 20*time.Millisecond, 2)
	if !embedded.Done() || cmd != nil {
		t.Error("embedded model should stop without quitting the program")
	}
}

func TestModelRecordsRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	g := &fakeGame{state: core.GameState{Score: 420, Level: 3, GameOver: true}}
	m := NewModel(g, Options{Config: core.RuntimeConfig{TickRate: 60, Seed: 1}, Store: store, Player: "ann"})
	m.Init()
	m, _ = frames(t, m, time.Unix(0, 0), 50*time.Millisecond, 5)

	runs, err := store.RecentRuns("fake", 10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("recorded %d runs, want 1", len(runs))
	}
	if r := runs[0]; r.Name != "ann" || r.Score != 420 || r.Level != 3 {
		t.Errorf("run = %+v", r)
	}

	// A new run that ends again is recorded again.
	g.state.GameOver = false
	m, _ = frames(t, m, time.Unix(1, 0), 50*time.Millisecond, 2)
	g.state.GameOver = true
	frames(t, m, time.Unix(2, 0), 50*time.Millisecond, 2)

	runs, _ = store.RecentRuns("fake", 10)
	if len(runs) != 2 {
		t.Errorf("recorded %d runs, want 2", len(runs))
	}
}

func TestModelView(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, Options{Config: core.RuntimeConfig{TickRate: 60, Seed: 1}})
	if m.screen.Width() != 10 || m.screen.Height() != 2 {
		t.Fatalf("screen %dx%d, want the game's 10x2", m.screen.Width(), m.screen.Height())
	}
	if v := m.View(); !strings.Contains(v, "fake") {
		t.Errorf("view %q should contain the rendered game", v)
	}
}

func TestRenderScreenColors(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.DrawText(0, 0, "ab", core.ColorPink)
	s.DrawText(2, 0, "cd", core.ColorNavy)

	runs := colorRuns(s, 0)
	want := []colorRun{{core.ColorPink, "ab"}, {core.ColorNavy, "cd"}}
	if len(runs) != len(want) {
		t.Fatalf("colorRuns = %+v, want %+v", runs, want)
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Errorf("run %d = %+v, want %+v", i, runs[i], want[i])
		}
	}

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("RenderScreen = %q, want both runs", out)
	}
}

func TestPaletteFollowsRGB(t *testing.T) {
	tests := []struct {
		color core.Color
		want  lipgloss.Color
	}{
		{core.ColorBlue, "#2121de"},
		{core.ColorNavy, "#000080"},
		{core.ColorPink, "#ffb8ff"},
	}
	for _, tt := range tests {
		if got := hexColor(tt.color); got != tt.want {
			t.Errorf("hexColor(%d) = %q, want %q", tt.color, got, tt.want)
		}
	}

	for c := core.ColorRed; c <= core.ColorNavy; c++ {
		r, g, b := c.RGB()
		want := lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
		if got := colors.style(c).GetForeground(); got != lipgloss.TerminalColor(want) {
			t.Errorf("style(%d) foreground = %v, want %v", c, got, want)
		}
	}
	if _, ok := colors.style(core.ColorDefault).GetForeground().(lipgloss.NoColor); !ok {
		t.Error("ColorDefault should keep the terminal foreground")
	}
}
