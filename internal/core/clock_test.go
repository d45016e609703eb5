package core

import (
	"testing"
	"time"
)

func TestFixedStepAdvance(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  []time.Duration
		expected []int
	}{
		{
			name:     "no tick before a full step",
			elapsed:  []time.Duration{5 * time.Millisecond},
			expected: []int{0},
		},
		{
			name:     "remainder carries over",
			elapsed:  []time.Duration{15 * time.Millisecond, 15 * time.Millisecond},
			expected: []int{0, 1},
		},
		{
			name:     "catch-up runs several ticks",
			elapsed:  []time.Duration{50 * time.Millisecond},
			expected: []int{2},
		},
		{
			name:     "stall is capped",
			elapsed:  []time.Duration{5 * time.Second},
			expected: []int{12},
		},
		{
			name:     "negative elapsed is ignored",
			elapsed:  []time.Duration{-time.Second},
			expected: []int{0},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewFixedStep(50) // 20ms step
			for i, e := range tc.elapsed {
				if got := f.Advance(e); got != tc.expected[i] {
					t.Errorf("Advance(%v) = %d, expected %d", e, got, tc.expected[i])
				}
			}
		})
	}
}

func TestFixedStepDefaults(t *testing.T) {
	f := NewFixedStep(0)
	if f.Step() != time.Second/60 {
		t.Errorf("Step() = %v, expected 1/60s", f.Step())
	}
}

func TestFixedStepTicks(t *testing.T) {
	f := NewFixedStep(100)
	f.Advance(35 * time.Millisecond)
	f.Advance(10 * time.Millisecond)
	if f.Ticks() != 4 {
		t.Errorf("Ticks() = %d, expected 4", f.Ticks())
	}
	if a := f.Alpha(); a < 0.49 || a > 0.51 {
		t.Errorf("Alpha() = %v, expected 0.5", a)
	}
}

func TestFrameCounter(t *testing.T) {
	var c FrameCounter
	for i := 0; i < 31; i++ {
		c.Frame(time.Second / 30)
	}
	if c.FPS() < 29 || c.FPS() > 30 {
		t.Errorf("FPS() = %d, expected ~30", c.FPS())
	}
}
