package devices

import (
	"errors"
	"fmt"
)

// Channels are the fan headers driven on every Thelio Io board. CPUF is
// the CPU fan header, INTF the system intake header. The firmware exposes
// no channel discovery, the set is fixed.
var Channels = []string{"CPUF", "INTF"}

// ErrNoDevices indicates that no Thelio Io board was found attached.
var ErrNoDevices = errors.New("failed to find any Thelio Io devices")

// Controller is a handle to a single attached fan controller board.
type Controller interface {
	GetName() string

	// SetDuty applies a duty cycle (in hundredths of a percent) to the
	// given fan channel.
	SetDuty(channel string, duty uint16) error

	// Reset puts the board into a known state. Called once after open.
	Reset() error

	Close() error
}

// Sink fans a duty cycle out to every channel of every attached board.
type Sink struct {
	controllers []Controller
}

func NewSink(controllers []Controller) *Sink {
	return &Sink{
		controllers: controllers,
	}
}

// Apply writes the given duty cycle to all channels of all boards, in
// discovery order. The first write failure aborts the call. There is no
// rollback, channels already written keep the new duty, which is fine
// because the next cycle re-applies the full target anyway.
func (s *Sink) Apply(duty uint16) error {
	for _, controller := range s.controllers {
		for _, channel := range Channels {
			if err := controller.SetDuty(channel, duty); err != nil {
				return fmt.Errorf("unable to set duty on %s channel %s: %w", controller.GetName(), channel, err)
			}
		}
	}
	return nil
}

// Close closes all boards, keeping the first error.
func (s *Sink) Close() error {
	var firstErr error
	for _, controller := range s.controllers {
		if err := controller.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
