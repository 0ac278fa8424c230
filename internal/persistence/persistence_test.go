package persistence

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPersistence(t *testing.T) Persistence {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "thelio2go.db")
	p := NewPersistence(dbPath)
	require.NoError(t, p.Init())
	return p
}

func TestSaveAndLoadState(t *testing.T) {
	// GIVEN
	p := testPersistence(t)
	state := State{
		Duty:        4500,
		Temperature: 62.5,
		Curve:       "hedt",
		UpdatedAt:   time.Now().Truncate(time.Second),
	}

	// WHEN
	err := p.SaveState(state)
	loaded, loadErr := p.LoadState()

	// THEN
	require.NoError(t, err)
	require.NoError(t, loadErr)
	assert.Equal(t, state.Duty, loaded.Duty)
	assert.Equal(t, state.Temperature, loaded.Temperature)
	assert.Equal(t, state.Curve, loaded.Curve)
	assert.True(t, state.UpdatedAt.Equal(loaded.UpdatedAt))
}

func TestLoadStateWithoutData(t *testing.T) {
	// GIVEN
	p := testPersistence(t)

	// WHEN
	_, err := p.LoadState()

	// THEN
	assert.ErrorIs(t, err, ErrNoData)
}

func TestSaveAndLoadDetectedDevices(t *testing.T) {
	// GIVEN
	p := testPersistence(t)
	devices := []DeviceInfo{
		{Port: "/dev/ttyACM0", SerialNumber: "760000001"},
		{Port: "/dev/ttyACM1", SerialNumber: "760000002"},
	}

	// WHEN
	err := p.SaveDetectedDevices(devices)
	loaded, loadErr := p.LoadDetectedDevices()

	// THEN
	require.NoError(t, err)
	require.NoError(t, loadErr)
	assert.Equal(t, devices, loaded)
}

func TestStateIsOverwritten(t *testing.T) {
	// GIVEN
	p := testPersistence(t)
	require.NoError(t, p.SaveState(State{Duty: 3000}))

	// WHEN
	require.NoError(t, p.SaveState(State{Duty: 8500}))
	loaded, err := p.LoadState()

	// THEN
	require.NoError(t, err)
	assert.Equal(t, uint16(8500), loaded.Duty)
}
