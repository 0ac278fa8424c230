package devices

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/markusressel/thelio2go/internal/ui"
	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

// USB identifiers of the Thelio Io fan controller board.
const (
	usbVendorId  = "1209"
	usbProductId = "1776"
)

const (
	baudRate    = 115200
	readTimeout = 1 * time.Second
)

// Discover scans the attached serial ports for Thelio Io boards and opens
// every match. Boards are identified by their fixed USB vendor/product id
// pair. Each opened board is reset once to put it into a known state.
// Multiple boards are a supported configuration, the caller applies duty
// cycles to all of them.
func Discover() ([]Controller, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("unable to enumerate serial ports: %w", err)
	}

	var controllers []Controller
	for _, port := range ports {
		if !port.IsUSB {
			continue
		}
		if !strings.EqualFold(port.VID, usbVendorId) || !strings.EqualFold(port.PID, usbProductId) {
			continue
		}

		ui.Debug("Thelio Io at %s", port.Name)

		controller, err := openSerialController(port.Name)
		if err != nil {
			return nil, fmt.Errorf("unable to open Thelio Io at %s: %w", port.Name, err)
		}
		if err := controller.Reset(); err != nil {
			_ = controller.Close()
			return nil, fmt.Errorf("unable to reset Thelio Io at %s: %w", port.Name, err)
		}

		controllers = append(controllers, controller)
	}

	if len(controllers) == 0 {
		return nil, ErrNoDevices
	}

	return controllers, nil
}

type serialController struct {
	name   string
	port   serial.Port
	reader *bufio.Reader
}

func openSerialController(name string) (*serialController, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
	}

	port, err := serial.Open(name, mode)
	if err != nil {
		return nil, err
	}
	if err := port.SetReadTimeout(readTimeout); err != nil {
		_ = port.Close()
		return nil, err
	}

	return &serialController{
		name:   name,
		port:   port,
		reader: bufio.NewReader(port),
	}, nil
}

func (c *serialController) GetName() string {
	return c.name
}

func (c *serialController) SetDuty(channel string, duty uint16) error {
	return c.command(fmt.Sprintf("fan %s %d", channel, duty))
}

func (c *serialController) Reset() error {
	return c.command("reset")
}

// command sends one line to the board console and checks its response.
func (c *serialController) command(cmd string) error {
	if _, err := c.port.Write([]byte(cmd + "\r")); err != nil {
		return err
	}

	response, err := c.reader.ReadString('\n')
	if err != nil {
		return err
	}

	response = strings.TrimSpace(response)
	if response != "OK" {
		return fmt.Errorf("unexpected response to '%s': '%s'", cmd, response)
	}
	return nil
}

func (c *serialController) Close() error {
	return c.port.Close()
}
