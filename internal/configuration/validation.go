package configuration

import (
	"errors"
	"fmt"
)

// Validate checks the current configuration for errors that would make
// the control loop misbehave.
func Validate() error {
	return validateConfig(&CurrentConfig)
}

func validateConfig(config *Configuration) error {
	if config.PollInterval <= 0 {
		return errors.New("pollInterval must be greater than zero")
	}

	if config.SpinDownDelay < config.PollInterval {
		return fmt.Errorf("spinDownDelay (%v) must be at least one pollInterval (%v)",
			config.SpinDownDelay, config.PollInterval)
	}

	switch config.Sensor.Type {
	case SensorTypeHelper, SensorTypeLMSensors:
	default:
		return fmt.Errorf("unknown sensor type: %s", config.Sensor.Type)
	}

	return nil
}
