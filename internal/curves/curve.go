package curves

import (
	"fmt"
)

const (
	// MaxDuty is the highest duty cycle value accepted by the fan
	// controller firmware, in hundredths of a percent.
	MaxDuty = 10000
)

// Breakpoint is a single step of a fan curve, pairing a temperature
// threshold (in hundredths of a degree celsius) with the duty cycle
// (in hundredths of a percent) to apply at or above that threshold.
type Breakpoint struct {
	Temp int
	Duty uint16
}

// FanCurve is an ordered, immutable list of breakpoints, monotonically
// non-decreasing in both temperature and duty.
type FanCurve struct {
	name   string
	points []Breakpoint
}

func NewFanCurve(name string, points []Breakpoint) FanCurve {
	return FanCurve{
		name:   name,
		points: points,
	}
}

func (c FanCurve) GetName() string {
	return c.name
}

// Breakpoints returns a copy of the breakpoint table of this curve.
func (c FanCurve) Breakpoints() []Breakpoint {
	points := make([]Breakpoint, len(c.points))
	copy(points, c.points)
	return points
}

// Lookup returns the duty cycle for the given temperature (in degrees
// celsius) as a step function: the duty of the highest breakpoint whose
// threshold does not exceed the temperature. Temperatures below the first
// breakpoint yield no duty at all, indicated by the second return value,
// so that the caller can skip actuation and hold the current fan speed.
// Temperatures above the last breakpoint return the last duty, there is
// no extrapolation in either direction.
func (c FanCurve) Lookup(temperature float64) (duty uint16, ok bool) {
	temp := int(temperature * 100)

	for _, point := range c.points {
		if temp < point.Temp {
			break
		}
		duty = point.Duty
		ok = true
	}

	return duty, ok
}

// ForSystem selects the fan curve registered for the given mainboard
// vendor and product version. Returns ErrUnsupportedSystem wrapped with
// the offending identifiers if no curve is registered for the pair.
func ForSystem(vendor string, version string) (FanCurve, error) {
	if vendor != "System76" {
		return FanCurve{}, fmt.Errorf("%w: sys_vendor '%s' and product_version '%s'", ErrUnsupportedSystem, vendor, version)
	}

	switch version {
	case "thelio-mira-r1", "thelio-mira-r2":
		return StandardSmooth(), nil
	case "thelio-major-r1":
		return Threadripper2(), nil
	case "thelio-major-r2", "thelio-major-r2.1",
		"thelio-major-b1", "thelio-major-b2", "thelio-major-b3",
		"thelio-mega-r1", "thelio-mega-r1.1":
		return Hedt(), nil
	case "thelio-massive-b1":
		return Xeon(), nil
	}

	return FanCurve{}, fmt.Errorf("%w: sys_vendor '%s' and product_version '%s'", ErrUnsupportedSystem, vendor, version)
}
