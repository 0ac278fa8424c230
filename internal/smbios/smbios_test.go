package smbios

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDmiDir creates a directory that mimics /sys/class/dmi/id
func fakeDmiDir(t *testing.T, vendor string, version string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sys_vendor"), []byte(vendor), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "product_version"), []byte(version), 0o644))
	return dir
}

func TestReadSystemID(t *testing.T) {
	// GIVEN
	dir := fakeDmiDir(t, "System76\n", "thelio-major-r2\n")

	// WHEN
	id, err := readSystemIDFrom(dir)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, "System76", id.Vendor)
	assert.Equal(t, "thelio-major-r2", id.Version)
}

func TestReadSystemIDMissingAttribute(t *testing.T) {
	// GIVEN
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sys_vendor"), []byte("System76\n"), 0o644))

	// WHEN
	_, err := readSystemIDFrom(dir)

	// THEN
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "product_version")
}

func TestSystemIDString(t *testing.T) {
	// GIVEN
	id := SystemID{Vendor: "System76", Version: "thelio-mira-r1"}

	// THEN
	assert.Equal(t, "System76 thelio-mira-r1", id.String())
}
