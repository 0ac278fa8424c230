package controller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowSizeIsCeilOfSpinDownOverPollInterval(t *testing.T) {
	assert.Equal(t, 3, newTempWindow(3*time.Second, 1*time.Second).size)
	assert.Equal(t, 2, newTempWindow(3*time.Second, 2*time.Second).size)
	assert.Equal(t, 5, newTempWindow(2500*time.Millisecond, 500*time.Millisecond).size)
	assert.Equal(t, 1, newTempWindow(500*time.Millisecond, 1*time.Second).size)
}

func TestWindowColdStartIsZero(t *testing.T) {
	// GIVEN
	window := newTempWindow(3*time.Second, 1*time.Second)

	// THEN
	assert.Equal(t, 0.0, window.Max())
}

func TestWindowColdStartWithPartialFill(t *testing.T) {
	// GIVEN
	window := newTempWindow(3*time.Second, 1*time.Second)

	// WHEN
	window.Append(42.0)

	// THEN
	// remaining slots are still zero, the real sample dominates
	assert.Equal(t, 42.0, window.Max())
}

func TestWindowSpinDownHold(t *testing.T) {
	// GIVEN
	window := newTempWindow(3*time.Second, 1*time.Second)

	// WHEN / THEN
	window.Append(10)
	assert.Equal(t, 10.0, window.Max())

	window.Append(90)
	assert.Equal(t, 90.0, window.Max())

	// the spike keeps the smoothed value up for two more samples
	window.Append(10)
	assert.Equal(t, 90.0, window.Max())
	window.Append(10)
	assert.Equal(t, 90.0, window.Max())

	// then it leaves the window
	window.Append(10)
	assert.Equal(t, 10.0, window.Max())
}

func TestWindowMaxIsOrderInvariant(t *testing.T) {
	// GIVEN
	first := newTempWindow(3*time.Second, 1*time.Second)
	second := newTempWindow(3*time.Second, 1*time.Second)

	// WHEN
	for _, v := range []float64{30, 70, 50} {
		first.Append(v)
	}
	for _, v := range []float64{50, 30, 70} {
		second.Append(v)
	}

	// THEN
	assert.Equal(t, first.Max(), second.Max())
	assert.Equal(t, 70.0, first.Max())
}
