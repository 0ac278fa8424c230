package controller

import (
	"context"
	"time"

	"github.com/markusressel/thelio2go/internal/curves"
	"github.com/markusressel/thelio2go/internal/persistence"
	"github.com/markusressel/thelio2go/internal/sensors"
	"github.com/markusressel/thelio2go/internal/ui"
)

// DutySink applies a duty cycle to every monitored fan channel.
type DutySink interface {
	Apply(duty uint16) error
}

type FanController interface {
	// Run executes the control loop until the context is cancelled or a
	// fatal error occurs. Sensor read failures and device write failures
	// are both fatal: a stalled sensor link gives no safe basis to keep
	// going blind, and silently running fans at a stale duty is worse
	// than letting the service supervisor restart us.
	Run(ctx context.Context) error
}

type fanController struct {
	persistence  persistence.Persistence
	source       sensors.SampleSource
	sink         DutySink
	curve        curves.FanCurve
	pollInterval time.Duration

	window      *tempWindow
	lastSetDuty *uint16
}

// NewFanController creates the control loop. pollInterval and
// spinDownDelay are injected so tests can run with short windows.
// persistence may be nil, in which case state is not recorded.
func NewFanController(
	pers persistence.Persistence,
	source sensors.SampleSource,
	sink DutySink,
	curve curves.FanCurve,
	pollInterval time.Duration,
	spinDownDelay time.Duration,
) FanController {
	return &fanController{
		persistence:  pers,
		source:       source,
		sink:         sink,
		curve:        curve,
		pollInterval: pollInterval,
		window:       newTempWindow(spinDownDelay, pollInterval),
	}
}

func (c *fanController) Run(ctx context.Context) error {
	ui.Info("Starting control loop using the '%s' curve (%d sample spin-down window)",
		c.curve.GetName(), c.window.size)

	tick := time.Tick(c.pollInterval)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick:
			if err := c.cycle(); err != nil {
				return err
			}
		}
	}
}

// cycle runs one trigger-smooth-lookup-apply pass.
func (c *fanController) cycle() error {
	temperature, err := c.source.ReadTemperature()
	if err != nil {
		return err
	}

	c.window.Append(temperature)
	smoothed := c.window.Max()

	duty, ok := c.curve.Lookup(smoothed)
	if !ok {
		// below the first breakpoint, hold whatever duty is applied
		ui.Debug("Smoothed temperature %.2f below curve minimum, holding", smoothed)
		return nil
	}

	if err := c.sink.Apply(duty); err != nil {
		return err
	}

	if c.lastSetDuty == nil || *c.lastSetDuty != duty {
		ui.Debug("Duty cycle set to %d at smoothed temperature %.2f", duty, smoothed)
		c.saveState(duty, smoothed)
	}
	c.lastSetDuty = &duty

	return nil
}

// saveState records the applied duty for the status command. Best-effort,
// a persistence failure must never stop fan control.
func (c *fanController) saveState(duty uint16, smoothed float64) {
	if c.persistence == nil {
		return
	}
	err := c.persistence.SaveState(persistence.State{
		Duty:        duty,
		Temperature: smoothed,
		Curve:       c.curve.GetName(),
		UpdatedAt:   time.Now(),
	})
	if err != nil {
		ui.Warning("Unable to save controller state: %v", err)
	}
}
