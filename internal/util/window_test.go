package util

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestGetWindowMax(t *testing.T) {
	// GIVEN
	window := CreateRollingWindow(3)
	window.Append(1)
	window.Append(2)
	window.Append(3)

	// WHEN
	maximum := GetWindowMax(window)

	// THEN
	assert.Equal(t, 3.0, maximum)
}

func TestFillWindow(t *testing.T) {
	// GIVEN
	window := CreateRollingWindow(5)

	// WHEN
	FillWindow(window, 5, 7.0)

	// THEN
	assert.Equal(t, 7.0, GetWindowMax(window))
}
