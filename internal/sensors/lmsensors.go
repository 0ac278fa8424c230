package sensors

import (
	"errors"

	"github.com/md14454/gosensors"
)

// LMSensorsSensor reads temperatures from libsensors directly, without a
// helper process. Each read reports the highest temp_input across all
// detected chips, mirroring the aggregation the helper performs.
type LMSensorsSensor struct{}

func NewLMSensorsSensor() *LMSensorsSensor {
	return &LMSensorsSensor{}
}

func (s *LMSensorsSensor) ReadTemperature() (float64, error) {
	gosensors.Init()
	defer gosensors.Cleanup()

	found := false
	max := 0.0

	chips := gosensors.GetDetectedChips()
	for i := 0; i < len(chips); i++ {
		chip := chips[i]

		features := chip.GetFeatures()
		for j := 0; j < len(features); j++ {
			feature := features[j]
			if feature.Type != gosensors.FeatureTypeTemp {
				continue
			}

			subfeatures := feature.GetSubFeatures()
			for k := 0; k < len(subfeatures); k++ {
				subfeature := subfeatures[k]
				if subfeature.Type != gosensors.SubFeatureTypeTempInput {
					continue
				}

				value := subfeature.GetValue()
				if !found || value > max {
					max = value
				}
				found = true
			}
		}
	}

	if !found {
		return 0, errors.New("no temperature sensors detected")
	}

	return max, nil
}

func (s *LMSensorsSensor) Close() error {
	return nil
}
