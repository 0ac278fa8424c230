package devices

import (
	"fmt"
	"strings"

	"go.bug.st/serial/enumerator"
)

// PortInfo describes one Thelio Io board found on the bus, without
// opening it.
type PortInfo struct {
	Name         string
	SerialNumber string
}

// ListPorts returns the serial ports of all attached Thelio Io boards.
// Unlike Discover it does not open or reset anything, so it is safe to
// run next to an active daemon.
func ListPorts() ([]PortInfo, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("unable to enumerate serial ports: %w", err)
	}

	var result []PortInfo
	for _, port := range ports {
		if !port.IsUSB {
			continue
		}
		if !strings.EqualFold(port.VID, usbVendorId) || !strings.EqualFold(port.PID, usbProductId) {
			continue
		}
		result = append(result, PortInfo{
			Name:         port.Name,
			SerialNumber: port.SerialNumber,
		})
	}

	return result, nil
}
