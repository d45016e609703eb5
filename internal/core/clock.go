package core

import "time"

// maxFrameTime caps the elapsed time fed into the accumulator so a stall
// (debugger, suspended terminal) does not trigger an unbounded catch-up burst.
const maxFrameTime = 250 * time.Millisecond

// FixedStep converts variable real elapsed time into a whole number of fixed
// simulation ticks. It runs zero, one or several ticks per rendered frame.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	ticks       uint64
}

// NewFixedStep creates an accumulator for the given tick rate.
func NewFixedStep(tickRate int) *FixedStep {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FixedStep{step: time.Second / time.Duration(tickRate)}
}

// Step returns the fixed tick duration.
func (f *FixedStep) Step() time.Duration {
	return f.step
}

// DeltaSeconds returns the fixed tick duration in seconds.
func (f *FixedStep) DeltaSeconds() float64 {
	return f.step.Seconds()
}

// Advance adds elapsed real time and returns how many ticks are due.
func (f *FixedStep) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > maxFrameTime {
		elapsed = maxFrameTime
	}
	f.accumulator += elapsed

	n := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		n++
	}
	f.ticks += uint64(n)
	return n
}

// Alpha returns the fraction of a tick left in the accumulator.
func (f *FixedStep) Alpha() float64 {
	return float64(f.accumulator) / float64(f.step)
}

// Ticks returns the total number of ticks handed out.
func (f *FixedStep) Ticks() uint64 {
	return f.ticks
}

// FrameCounter measures rendered frames per second over one-second windows.
type FrameCounter struct {
	frames  int
	elapsed time.Duration
	fps     int
}

// Frame records one rendered frame that took elapsed since the previous one.
func (c *FrameCounter) Frame(elapsed time.Duration) {
	c.frames++
	c.elapsed += elapsed
	if c.elapsed >= time.Second {
		c.fps = int(float64(c.frames) / c.elapsed.Seconds())
		c.frames = 0
		c.elapsed = 0
	}
}

// FPS returns the last measured rate.
func (c *FrameCounter) FPS() int {
	return c.fps
}
