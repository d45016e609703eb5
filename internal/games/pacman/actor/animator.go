package actor

// Animator cycles sprite frames on a wall-clock budget, independent of the
// tick rate.
type Animator struct {
	Frames    int
	FrameTime float64 // seconds per frame

	frame   int
	elapsed float64
}

// NewAnimator creates an animator over frames frames.
func NewAnimator(frames int, frameTime float64) Animator {
	return Animator{Frames: frames, FrameTime: frameTime}
}

// Update accumulates dt while active and advances past each elapsed budget.
func (a *Animator) Update(dt float64, active bool) {
	if !active || a.Frames <= 1 || a.FrameTime <= 0 {
		return
	}
	a.elapsed += dt
	for a.elapsed >= a.FrameTime {
		a.elapsed -= a.FrameTime
		a.frame = (a.frame + 1) % a.Frames
	}
}

// Frame returns the current frame index.
func (a *Animator) Frame() int {
	return a.frame
}

// Reset rewinds to the first frame.
func (a *Animator) Reset() {
	a.frame = 0
	a.elapsed = 0
}
