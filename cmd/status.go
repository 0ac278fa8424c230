package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/markusressel/thelio2go/internal/configuration"
	"github.com/markusressel/thelio2go/internal/persistence"
	"github.com/markusressel/thelio2go/internal/ui"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the last duty cycle applied by the daemon",
	Run: func(cmd *cobra.Command, args []string) {
		configuration.LoadConfig()
		pers := persistence.NewPersistence(configuration.CurrentConfig.DbPath)

		state, err := pers.LoadState()
		if errors.Is(err, persistence.ErrNoData) {
			ui.Printfln("No state recorded yet, is the daemon running?")
			return
		}
		if err != nil {
			ui.Fatal("Unable to load state: %v", err)
		}

		tab := table.Table{
			Headers: []string{"", ""},
			Rows: [][]string{
				{"Duty", fmt.Sprintf("%d %%", state.Duty/100)},
				{"Temperature", fmt.Sprintf("%.1f °C", state.Temperature)},
				{"Curve", state.Curve},
				{"Updated", state.UpdatedAt.Format("2006-01-02 15:04:05")},
			},
		}
		var buf bytes.Buffer
		if tableErr := tab.WriteTable(&buf, tableConfig()); tableErr != nil {
			ui.Fatal("Error printing table: %v", tableErr)
		}
		ui.Printfln(buf.String())

		if devices, err := pers.LoadDetectedDevices(); err == nil {
			for _, device := range devices {
				ui.Printfln("> %s (%s)", device.Port, device.SerialNumber)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
