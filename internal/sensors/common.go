package sensors

import (
	"fmt"

	"github.com/markusressel/thelio2go/internal/configuration"
)

// SampleSource produces one temperature sample per call, representing the
// highest temperature across all physical sensors of the machine.
type SampleSource interface {
	// ReadTemperature blocks until one sample is available and returns it
	// in degrees celsius. Errors are not retried here, disposition is up
	// to the control loop.
	ReadTemperature() (float64, error)

	Close() error
}

func NewSampleSource(config configuration.SensorConfig) (SampleSource, error) {
	switch config.Type {
	case configuration.SensorTypeHelper:
		executable := config.Exec
		if executable == "" {
			var err error
			executable, err = DefaultHelperPath()
			if err != nil {
				return nil, err
			}
		}
		return NewHelperSensor(executable, config.Args)
	case configuration.SensorTypeLMSensors:
		return NewLMSensorsSensor(), nil
	}

	return nil, fmt.Errorf("no matching sample source for sensor type: %s", config.Type)
}
