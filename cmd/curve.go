package cmd

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	"github.com/guptarohit/asciigraph"
	"github.com/markusressel/thelio2go/internal/curves"
	"github.com/markusressel/thelio2go/internal/smbios"
	"github.com/markusressel/thelio2go/internal/ui"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
	"golang.org/x/exp/maps"
)

var allCurves bool

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Print the fan curve used on this machine",
	Run: func(cmd *cobra.Command, args []string) {
		if allCurves {
			names := maps.Keys(curves.Registry)
			sort.Strings(names)
			for idx, name := range names {
				if idx > 0 {
					ui.Printfln("")
					ui.Printfln("")
				}
				printCurve(curves.Registry[name]())
			}
			return
		}

		systemId, err := smbios.ReadSystemID()
		if err != nil {
			ui.Fatal("Unable to read system identity: %v", err)
		}

		curve, err := curves.ForSystem(systemId.Vendor, systemId.Version)
		if err != nil {
			ui.Fatal("Unable to select a fan curve: %v", err)
		}

		ui.Printfln("> %s", systemId)
		printCurve(curve)
	},
}

func printCurve(curve curves.FanCurve) {
	ui.Printfln(curve.GetName())

	points := curve.Breakpoints()

	// print table
	var rows [][]string
	for _, point := range points {
		rows = append(rows, []string{
			"",
			fmt.Sprintf("%.1f °C", float64(point.Temp)/100),
			strconv.Itoa(int(point.Duty)/100) + " %",
		})
	}
	tab := table.Table{
		Headers: []string{"", "Temperature", "Duty"},
		Rows:    rows,
	}
	var buf bytes.Buffer
	if tableErr := tab.WriteTable(&buf, tableConfig()); tableErr != nil {
		ui.Fatal("Error printing table: %v", tableErr)
	}
	ui.Printfln(buf.String())

	// print graph: duty percentage per degree across the curve range
	firstTemp := points[0].Temp / 100
	lastTemp := points[len(points)-1].Temp / 100

	values := make([]float64, 0, lastTemp-firstTemp+11)
	for temp := firstTemp - 5; temp <= lastTemp+5; temp++ {
		duty, ok := curve.Lookup(float64(temp))
		if !ok {
			duty = 0
		}
		values = append(values, float64(duty)/100)
	}

	caption := fmt.Sprintf("Duty %% / Temperature (%d-%d °C)", firstTemp-5, lastTemp+5)
	graph := asciigraph.Plot(values, asciigraph.Height(15), asciigraph.Width(100), asciigraph.Caption(caption))
	ui.Printfln(graph)
}

func init() {
	curveCmd.Flags().BoolVarP(&allCurves, "all", "a", false, "Print all known fan curves")
	rootCmd.AddCommand(curveCmd)
}
