package configuration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validTestConfig() Configuration {
	return Configuration{
		DbPath:        "/tmp/thelio2go.db",
		PollInterval:  1 * time.Second,
		SpinDownDelay: 3 * time.Second,
		Sensor: SensorConfig{
			Type: SensorTypeHelper,
		},
	}
}

func TestValidateValidConfig(t *testing.T) {
	// GIVEN
	config := validTestConfig()

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.NoError(t, err)
}

func TestValidateZeroPollInterval(t *testing.T) {
	// GIVEN
	config := validTestConfig()
	config.PollInterval = 0

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "pollInterval")
}

func TestValidateSpinDownShorterThanPollInterval(t *testing.T) {
	// GIVEN
	config := validTestConfig()
	config.SpinDownDelay = 500 * time.Millisecond

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "spinDownDelay")
}

func TestValidateUnknownSensorType(t *testing.T) {
	// GIVEN
	config := validTestConfig()
	config.Sensor.Type = "telepathy"

	// WHEN
	err := validateConfig(&config)

	// THEN
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sensor type")
}
