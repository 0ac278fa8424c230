package cmd

import (
	"github.com/markusressel/thelio2go/internal/configuration"
	"github.com/markusressel/thelio2go/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configInitOutput string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration related commands",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the path of the config file in use",
	Run: func(cmd *cobra.Command, args []string) {
		if err := viper.ReadInConfig(); err != nil {
			ui.Printfln("No config file found, using defaults.")
			return
		}
		ui.Printfln(viper.ConfigFileUsed())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Run: func(cmd *cobra.Command, args []string) {
		if err := configuration.WriteDefaultConfigFile(configInitOutput); err != nil {
			ui.Fatal("Unable to write config file: %v", err)
		}
		ui.Info("Wrote default config to %s", configInitOutput)
	},
}

func init() {
	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", "/etc/thelio2go/thelio2go.yaml", "Path of the config file to write")

	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
