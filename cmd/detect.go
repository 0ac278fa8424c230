package cmd

import (
	"bytes"
	"strconv"

	"github.com/markusressel/thelio2go/cmd/global"
	"github.com/markusressel/thelio2go/internal/configuration"
	"github.com/markusressel/thelio2go/internal/curves"
	"github.com/markusressel/thelio2go/internal/devices"
	"github.com/markusressel/thelio2go/internal/persistence"
	"github.com/markusressel/thelio2go/internal/smbios"
	"github.com/markusressel/thelio2go/internal/ui"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect Thelio Io devices",
	Long:  `Detects all attached Thelio Io fan controller boards and prints them as a list`,
	Run: func(cmd *cobra.Command, args []string) {
		configuration.LoadConfig()

		systemId, err := smbios.ReadSystemID()
		if err != nil {
			ui.Fatal("Unable to read system identity: %v", err)
		}

		curveName := "unsupported"
		if curve, err := curves.ForSystem(systemId.Vendor, systemId.Version); err == nil {
			curveName = curve.GetName()
		}
		ui.Printfln("> %s (fan curve: %s)", systemId, curveName)

		ports, err := devices.ListPorts()
		if err != nil {
			ui.Fatal("Error detecting devices: %v", err)
		}

		var rows [][]string
		for idx, port := range ports {
			rows = append(rows, []string{
				"", strconv.Itoa(idx + 1), port.Name, port.SerialNumber,
			})
		}
		deviceTable := table.Table{
			Headers: []string{"Devices", "Index", "Port", "Serial"},
			Rows:    rows,
		}

		if rows == nil {
			ui.Printfln("No Thelio Io devices found.")
			return
		}

		var buf bytes.Buffer
		if tableErr := deviceTable.WriteTable(&buf, tableConfig()); tableErr != nil {
			ui.Fatal("Error printing table: %v", tableErr)
		}
		ui.Printfln(buf.String())

		saveDetectSnapshot(ports)
	},
}

// saveDetectSnapshot records the detected boards so the status command
// can show them later. Best-effort.
func saveDetectSnapshot(ports []devices.PortInfo) {
	pers := persistence.NewPersistence(configuration.CurrentConfig.DbPath)
	if err := pers.Init(); err != nil {
		ui.Warning("Unable to save detection snapshot: %v", err)
		return
	}

	snapshot := make([]persistence.DeviceInfo, 0, len(ports))
	for _, port := range ports {
		snapshot = append(snapshot, persistence.DeviceInfo{
			Port:         port.Name,
			SerialNumber: port.SerialNumber,
		})
	}
	if err := pers.SaveDetectedDevices(snapshot); err != nil {
		ui.Warning("Unable to save detection snapshot: %v", err)
	}
}

func tableConfig() *table.Config {
	return &table.Config{
		ShowIndex:       false,
		Color:           !global.NoColor,
		AlternateColors: true,
		TitleColorCode:  ansi.ColorCode("white+buf"),
		AltColorCodes: []string{
			ansi.ColorCode("white"),
			ansi.ColorCode("white:236"),
		},
	}
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
