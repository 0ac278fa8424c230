package curves

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

// helper function to create a small three step test curve
func createTestCurve() FanCurve {
	return NewFanCurve("test", []Breakpoint{
		{Temp: 4000, Duty: 2000},
		{Temp: 6000, Duty: 5000},
		{Temp: 8000, Duty: 10000},
	})
}

func TestLookupBelowFirstBreakpoint(t *testing.T) {
	// GIVEN
	curve := createTestCurve()

	// WHEN
	duty, ok := curve.Lookup(35.0)

	// THEN
	assert.False(t, ok)
	assert.Equal(t, uint16(0), duty)
}

func TestLookupStepFunction(t *testing.T) {
	// GIVEN
	curve := createTestCurve()

	expected := map[float64]uint16{
		40.0: 2000,
		50.0: 2000,
		65.0: 5000,
		85.0: 10000,
		55.0: 2000,
	}

	for temperature, expectedDuty := range expected {
		// WHEN
		duty, ok := curve.Lookup(temperature)

		// THEN
		assert.True(t, ok)
		assert.Equal(t, expectedDuty, duty)
	}
}

func TestLookupBoundaryIsInclusive(t *testing.T) {
	// GIVEN
	curve := createTestCurve()

	// WHEN
	duty, ok := curve.Lookup(60.0)

	// THEN
	assert.True(t, ok)
	assert.Equal(t, uint16(5000), duty)
}

func TestLookupNoExtrapolationAboveLastBreakpoint(t *testing.T) {
	// GIVEN
	curve := createTestCurve()

	// WHEN
	duty, ok := curve.Lookup(120.0)

	// THEN
	assert.True(t, ok)
	assert.Equal(t, uint16(10000), duty)
}

func TestVariantsAreMonotonicallyNonDecreasing(t *testing.T) {
	for name, constructor := range Registry {
		// GIVEN
		curve := constructor()
		points := curve.Breakpoints()

		// THEN
		assert.NotEmpty(t, points, name)
		for i := 1; i < len(points); i++ {
			assert.Greater(t, points[i].Temp, points[i-1].Temp, name)
			assert.GreaterOrEqual(t, points[i].Duty, points[i-1].Duty, name)
		}
		assert.Equal(t, uint16(MaxDuty), points[len(points)-1].Duty, name)
	}
}

func TestForSystemSelectsCurvePerModel(t *testing.T) {
	// GIVEN
	expected := map[string]string{
		"thelio-mira-r1":    "standard_smooth",
		"thelio-mira-r2":    "standard_smooth",
		"thelio-major-r1":   "threadripper2",
		"thelio-major-r2":   "hedt",
		"thelio-major-r2.1": "hedt",
		"thelio-major-b1":   "hedt",
		"thelio-major-b2":   "hedt",
		"thelio-major-b3":   "hedt",
		"thelio-mega-r1":    "hedt",
		"thelio-mega-r1.1":  "hedt",
		"thelio-massive-b1": "xeon",
	}

	for version, curveName := range expected {
		// WHEN
		curve, err := ForSystem("System76", version)

		// THEN
		assert.NoError(t, err)
		assert.Equal(t, curveName, curve.GetName())
	}
}

func TestForSystemUnknownVersion(t *testing.T) {
	// WHEN
	_, err := ForSystem("System76", "thelio-unknown-r9")

	// THEN
	assert.ErrorIs(t, err, ErrUnsupportedSystem)
}

func TestForSystemUnknownVendor(t *testing.T) {
	// WHEN
	_, err := ForSystem("Acme Inc.", "thelio-mira-r1")

	// THEN
	assert.ErrorIs(t, err, ErrUnsupportedSystem)
}
