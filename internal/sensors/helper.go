package sensors

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/markusressel/thelio2go/internal/ui"
)

const helperBinaryName = "thelio2go-sensor"

// HelperSensor acquires temperature samples by round-tripping through a
// cooperating helper process: one newline on its stdin triggers exactly
// one newline-terminated decimal number on its stdout.
type HelperSensor struct {
	cmd    *exec.Cmd
	stdin  io.Writer
	stdout *bufio.Reader
}

// DefaultHelperPath returns the path of the sensor helper binary that
// ships alongside the daemon executable.
func DefaultHelperPath() (string, error) {
	binPath, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(binPath), helperBinaryName), nil
}

// NewHelperSensor spawns the helper process and attaches to its pipes.
// The helper stays alive for the lifetime of the daemon and is killed
// best-effort on Close.
func NewHelperSensor(executable string, args []string) (*HelperSensor, error) {
	cmd := exec.Command(executable, args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("unable to start sensor helper %s: %w", executable, err)
	}
	ui.Debug("Started sensor helper %s (pid %d)", executable, cmd.Process.Pid)

	return &HelperSensor{
		cmd:    cmd,
		stdin:  stdin,
		stdout: bufio.NewReader(stdout),
	}, nil
}

// newHelperSensorFromPipes attaches to an already connected pair of
// streams instead of spawning a process. Split out for testing.
func newHelperSensorFromPipes(stdin io.Writer, stdout io.Reader) *HelperSensor {
	return &HelperSensor{
		stdin:  stdin,
		stdout: bufio.NewReader(stdout),
	}
}

func (s *HelperSensor) ReadTemperature() (float64, error) {
	// A single newline unblocks the helper's line read and requests
	// exactly one sample.
	if _, err := s.stdin.Write([]byte("\n")); err != nil {
		return 0, fmt.Errorf("sensor helper trigger failed: %w", err)
	}

	line, err := s.stdout.ReadString('\n')
	if err != nil {
		return 0, fmt.Errorf("sensor helper read failed: %w", err)
	}

	trimmed := strings.TrimSpace(line)
	temperature, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed sensor helper response '%s': %w", trimmed, err)
	}

	return temperature, nil
}

// Close kills the helper process. Its exit is not awaited, a helper that
// refuses to die must not delay daemon shutdown.
func (s *HelperSensor) Close() error {
	if s.cmd == nil || s.cmd.Process == nil {
		return nil
	}
	return s.cmd.Process.Kill()
}
