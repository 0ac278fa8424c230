package configuration

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

const defaultConfigContent = `# thelio2go configuration
# Time to wait between sensor polling requests.
pollInterval: 1s
# Time to keep fans high after temperatures drop.
spinDownDelay: 3s

dbPath: /etc/thelio2go/thelio2go.db

sensor:
  # "helper" round-trips each sample through the sensor helper process,
  # "lmsensors" queries libsensors directly.
  type: helper
  # Path of the helper executable. Defaults to a binary named
  # "thelio2go-sensor" next to the thelio2go executable.
  exec: ""
  args: []
`

// WriteDefaultConfigFile writes a commented default configuration to the
// given path. The write is atomic so a concurrently starting daemon never
// sees a partial file. Refuses to overwrite an existing file.
func WriteDefaultConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	parentDir := filepath.Dir(path)
	if err := os.MkdirAll(parentDir, 0o755); err != nil {
		return err
	}

	return atomic.WriteFile(path, bytes.NewReader([]byte(defaultConfigContent)))
}
