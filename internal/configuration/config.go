package configuration

import (
	"os"
	"strings"
	"time"

	"github.com/markusressel/thelio2go/internal/ui"
	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	SensorTypeHelper    = "helper"
	SensorTypeLMSensors = "lmsensors"
)

type SensorConfig struct {
	// Type selects how temperature samples are acquired, either by round
	// tripping through a helper process ("helper") or by querying
	// libsensors directly ("lmsensors").
	Type string `json:"type"`
	// Exec is the path of the helper executable. If empty, a binary named
	// "thelio2go-sensor" next to the daemon executable is used.
	Exec string   `json:"exec"`
	Args []string `json:"args"`
}

type Configuration struct {
	DbPath string `json:"dbPath"`

	// PollInterval is the time to wait between sensor polling requests.
	PollInterval time.Duration `json:"pollInterval"`
	// SpinDownDelay is the time to keep fans high after temperatures drop.
	SpinDownDelay time.Duration `json:"spinDownDelay"`

	Sensor SensorConfig `json:"sensor"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("thelio2go")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/thelio2go/")
	}

	viper.SetEnvPrefix("THELIO2GO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("dbpath", "/etc/thelio2go/thelio2go.db")
	viper.SetDefault("PollInterval", 1*time.Second)
	viper.SetDefault("SpinDownDelay", 3*time.Second)
	viper.SetDefault("sensor.type", SensorTypeHelper)
	viper.SetDefault("sensor.exec", "")
	viper.SetDefault("sensor.args", []string{})
}

// ReadConfigFile reads the detected config file, if any. A missing config
// file is not an error, the daemon runs fine on defaults.
func ReadConfigFile() {
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
			ui.Debug("No config file found, using defaults")
		} else {
			ui.Fatal("Error reading config file, %s", err)
		}
	} else {
		// this is only populated _after_ ReadInConfig()
		ui.Info("Using configuration file at: %s", viper.ConfigFileUsed())
	}

	LoadConfig()

	if err := Validate(); err != nil {
		ui.Fatal("Config validation failed: %v", err)
	}
}

func LoadConfig() {
	err := viper.Unmarshal(
		&CurrentConfig,
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)),
	)
	if err != nil {
		ui.Fatal("unable to decode into struct, %v", err)
	}
}
