package rules

import "github.com/brensch/snekmatrix/clock"

// SuperFoodTimer decides when the super-food should be on the board. It is
// a pure function of the tick count: hidden for Interval ticks, shown for
// Lifetime ticks, repeating from the last Reset.
type SuperFoodTimer struct {
	Interval clock.Ticks
	Lifetime clock.Ticks

	epoch clock.Ticks
}

// Reset restarts the hidden phase at now, so Show(now) is false.
func (t *SuperFoodTimer) Reset(now clock.Ticks) {
	t.epoch = now
}

// Shift moves the cycle forward by d, used to skip paused time.
func (t *SuperFoodTimer) Shift(d clock.Ticks) {
	t.epoch += d
}

// Show reports whether the super-food should currently be visible.
func (t *SuperFoodTimer) Show(now clock.Ticks) bool {
	if t.Lifetime == 0 {
		return false
	}
	phase := now.Since(t.epoch) % (t.Interval + t.Lifetime)
	return phase >= t.Interval
}
