package actor

import "github.com/vovakirdan/tui-pacman/internal/core"

// BonusFrames is the length of the bonus animation.
const BonusFrames = 2

// blinkPeriod is the on/off half period of an expiring bonus.
const blinkPeriod = 0.125

// BonusTiming configures the bonus item. All values are seconds.
type BonusTiming struct {
	Interval   float64 // hidden time before appearing
	Lifetime   float64 // visible time before moving away
	BlinkAfter float64 // visible time before blinking
}

// Bonus is a timed extra-score item, independent of dots and pellets.
type Bonus struct {
	Cell   core.Point
	Active bool
	Anim   Animator

	timing BonusTiming
	timer  float64 // seconds spent in the current phase
}

// NewBonus creates a hidden bonus.
func NewBonus(timing BonusTiming, frameTime float64) *Bonus {
	return &Bonus{timing: timing, Anim: NewAnimator(BonusFrames, frameTime)}
}

// Update advances the timers. When the hidden interval elapses, place picks
// the cell to appear on; if it finds none the bonus retries next tick.
func (b *Bonus) Update(dt float64, place func() (core.Point, bool)) {
	b.timer += dt
	b.Anim.Update(dt, b.Active)

	if !b.Active {
		if b.timer < b.timing.Interval || place == nil {
			return
		}
		if cell, ok := place(); ok {
			b.Cell = cell
			b.Active = true
			b.timer = 0
		}
		return
	}

	if b.timer >= b.timing.Lifetime {
		b.Active = false
		b.timer = 0
	}
}

// Blinking reports whether the bonus is about to expire.
func (b *Bonus) Blinking() bool {
	return b.Active && b.timer >= b.timing.BlinkAfter
}

// Visible reports whether the bonus should be drawn this instant.
func (b *Bonus) Visible() bool {
	if !b.Active {
		return false
	}
	if !b.Blinking() {
		return true
	}
	return int((b.timer-b.timing.BlinkAfter)/blinkPeriod)%2 == 0
}

// Collect hides the bonus and restarts the hidden interval.
func (b *Bonus) Collect() {
	b.Active = false
	b.timer = 0
}

// Reset hides the bonus at the start of a level.
func (b *Bonus) Reset() {
	b.Collect()
	b.Anim.Reset()
}
