package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// binding maps an action to its physical keys. Letter keys are dropped
// while the game collects typed text.
type binding struct {
	action core.Action
	keys   []ebiten.Key
}

var bindings = []binding{
	{core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ActionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.ActionConfirm, []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
	{core.ActionBackspace, []ebiten.Key{ebiten.KeyBackspace}},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP, ebiten.KeySpace}},
	{core.ActionReset, []ebiten.Key{ebiten.KeyR}},
	{core.ActionToggleFPS, []ebiten.Key{ebiten.KeyF}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}},
}

// typingKey reports whether k produces a character while typing a name.
func typingKey(k ebiten.Key) bool {
	switch k {
	case ebiten.KeyW, ebiten.KeyA, ebiten.KeyS, ebiten.KeyD,
		ebiten.KeyP, ebiten.KeyR, ebiten.KeyF, ebiten.KeyQ, ebiten.KeySpace:
		return true
	}
	return false
}

// keyState is the part of ebiten's keyboard API the poller reads.
type keyState interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	AppendChars(runes []rune) []rune
}

// ebitenKeys reads the live keyboard.
type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) AppendChars(runes []rune) []rune { return ebiten.AppendInputChars(runes) }

// poll builds the input for one ebiten update: edge actions from keys that
// went down, held state from keys that are down, and typed characters when
// text is set.
func poll(ks keyState, text bool) core.InputFrame {
	in := core.NewInputFrame()
	for _, b := range bindings {
		for _, k := range b.keys {
			if text && typingKey(k) {
				continue
			}
			if ks.JustPressed(k) {
				in.Set(b.action)
			}
			if ks.Pressed(k) {
				in.Hold(b.action)
			}
		}
	}
	if text {
		in.Text = ks.AppendChars(in.Text)
	}
	return in
}

// merge folds the edges and text of src into dst. Held state is not
// carried; it is read fresh every tick.
func merge(dst *core.InputFrame, src core.InputFrame) {
	for a, on := range src.Actions {
		if on {
			dst.Set(a)
		}
	}
	dst.Text = append(dst.Text, src.Text...)
}
