package smbios

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// The kernel exposes the SMBIOS system information table as individual
// attribute files below this path.
const dmiBasePath = "/sys/class/dmi/id"

// SystemID identifies the mainboard model a machine is built around,
// as reported by its SMBIOS tables.
type SystemID struct {
	Vendor  string
	Version string
}

func (id SystemID) String() string {
	return fmt.Sprintf("%s %s", id.Vendor, id.Version)
}

// ReadSystemID reads the system vendor and product version from the DMI
// attributes exposed by the kernel.
func ReadSystemID() (SystemID, error) {
	return readSystemIDFrom(dmiBasePath)
}

// readSystemIDFrom reads the DMI attributes from the given base path.
// Split from ReadSystemID for testing.
func readSystemIDFrom(basePath string) (SystemID, error) {
	vendor, err := readDmiAttribute(basePath, "sys_vendor")
	if err != nil {
		return SystemID{}, err
	}

	version, err := readDmiAttribute(basePath, "product_version")
	if err != nil {
		return SystemID{}, err
	}

	return SystemID{
		Vendor:  vendor,
		Version: version,
	}, nil
}

func readDmiAttribute(basePath string, attribute string) (string, error) {
	data, err := os.ReadFile(filepath.Join(basePath, attribute))
	if err != nil {
		return "", fmt.Errorf("unable to read dmi attribute %s: %w", attribute, err)
	}
	return strings.TrimSpace(string(data)), nil
}
