package internal

import (
	"context"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/markusressel/thelio2go/internal/configuration"
	"github.com/markusressel/thelio2go/internal/controller"
	"github.com/markusressel/thelio2go/internal/curves"
	"github.com/markusressel/thelio2go/internal/devices"
	"github.com/markusressel/thelio2go/internal/persistence"
	"github.com/markusressel/thelio2go/internal/sensors"
	"github.com/markusressel/thelio2go/internal/smbios"
	"github.com/markusressel/thelio2go/internal/ui"
	"github.com/oklog/run"
)

func RunDaemon() {
	if getProcessOwner() != "root" {
		ui.Fatal("Fan control requires root permissions to access the Thelio Io boards, please run thelio2go as root")
	}

	config := configuration.CurrentConfig

	pers := persistence.NewPersistence(config.DbPath)
	if err := pers.Init(); err != nil {
		ui.Fatal("Unable to initialize persistence: %v", err)
	}

	// classification first: an unsupported machine must fail before any
	// device is touched
	systemId, err := smbios.ReadSystemID()
	if err != nil {
		ui.Fatal("Unable to read system identity: %v", err)
	}
	curve, err := curves.ForSystem(systemId.Vendor, systemId.Version)
	if err != nil {
		ui.Fatal("Unable to select a fan curve: %v", err)
	}
	ui.Debug("%s uses the '%s' fan curve", systemId, curve.GetName())

	controllers, err := devices.Discover()
	if err != nil {
		ui.Fatal("Unable to find fan controller devices: %v", err)
	}
	ui.Info("Found %d Thelio Io device(s)", len(controllers))
	sink := devices.NewSink(controllers)

	source, err := sensors.NewSampleSource(config.Sensor)
	if err != nil {
		_ = sink.Close()
		ui.Fatal("Unable to create sample source: %v", err)
	}

	fanController := controller.NewFanController(
		pers, source, sink, curve,
		config.PollInterval, config.SpinDownDelay,
	)

	ctx, cancel := context.WithCancel(context.Background())

	var g run.Group
	{
		// === control loop
		g.Add(func() error {
			return fanController.Run(ctx)
		}, func(err error) {
			if err != nil {
				ui.Warning("Error in control loop: %v", err)
			}
		})
	}
	{
		sig := make(chan os.Signal)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM, os.Kill)

		g.Add(func() error {
			<-sig
			ui.Info("Received SIGTERM signal, exiting...")
			return nil
		}, func(err error) {
			defer close(sig)
			cancel()
		})
	}

	err = g.Run()

	// the helper's exit is best-effort, it is not awaited
	_ = source.Close()
	_ = sink.Close()

	if err != nil {
		ui.ErrorAndNotify("thelio2go", "Fan control stopped: %v", err)
		os.Exit(1)
	} else {
		ui.Info("Done.")
		os.Exit(0)
	}
}

func getProcessOwner() string {
	stdout, err := exec.Command("ps", "-o", "user=", "-p", strconv.Itoa(os.Getpid())).Output()
	if err != nil {
		ui.Fatal("Error checking process owner: %v", err)
		os.Exit(1)
	}
	return strings.TrimSpace(string(stdout))
}
