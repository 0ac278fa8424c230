package controller

import (
	"math"
	"time"

	"github.com/asecurityteam/rolling"
	"github.com/markusressel/thelio2go/internal/util"
)

// tempWindow is a fixed-capacity ring of the most recent temperature
// samples, spanning the configured spin-down window. The duty cycle is
// driven by the hottest sample in the window rather than the most recent
// one, so a momentary spike keeps the fans elevated for the full window
// even if immediately followed by cooler readings.
type tempWindow struct {
	points *rolling.PointPolicy
	size   int
}

func newTempWindow(spinDownDelay time.Duration, pollInterval time.Duration) *tempWindow {
	size := int(math.Ceil(spinDownDelay.Seconds() / pollInterval.Seconds()))
	if size < 1 {
		size = 1
	}

	window := util.CreateRollingWindow(size)
	// Zero-filled slots keep the smoothed value at the bottom of the
	// curve until real samples have filled the window, which means the
	// quietest possible startup.
	util.FillWindow(window, size, 0)

	return &tempWindow{
		points: window,
		size:   size,
	}
}

// Append records the newest sample, overwriting the oldest slot.
func (w *tempWindow) Append(value float64) {
	w.points.Append(value)
}

// Max returns the maximum across all slots.
func (w *tempWindow) Max() float64 {
	return util.GetWindowMax(w.points)
}
