package cli

import (
	"errors"
	"github.com/clambin/go-common/charmer"
	"github.com/joho/godotenv"
	"github.com/rossdargan/layz-spa/pkg/layzspa"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"log/slog"
	"os"
	"strings"
	"time"
)

var (
	configFilename string
	RootCmd        = cobra.Command{
		Use:   "layz-spa",
		Short: "Bridge for Lay-Z-Spa hot tubs",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			charmer.SetJSONLogger(cmd, viper.GetBool("debug"))
		},
	}

	arguments = charmer.Arguments{
		"debug":                charmer.Argument{Default: false, Help: "Log debug messages"},
		"entries.path":         charmer.Argument{Default: "entries.yaml", Help: "File holding the configured spas"},
		"api.url":              charmer.Argument{Default: layzspa.DefaultBaseURL, Help: "Lay-Z-Spa API URL"},
		"poller.interval":      charmer.Argument{Default: time.Minute, Help: "Poller interval"},
		"poller.timeout":       charmer.Argument{Default: 10 * time.Second, Help: "Timeout when polling a spa"},
		"display.unit":         charmer.Argument{Default: "C", Help: "Temperature unit to display (C or F)"},
		"exporter.addr":        charmer.Argument{Default: ":9090", Help: "Address of Prometheus exporter"},
		"health.addr":          charmer.Argument{Default: ":8080", Help: "Address of /health endpoint"},
		"mqtt.enabled":         charmer.Argument{Default: false, Help: "Publish spas to Home Assistant over MQTT"},
		"mqtt.broker":          charmer.Argument{Default: "tcp://localhost:1883", Help: "MQTT broker"},
		"mqtt.username":        charmer.Argument{Default: "", Help: "MQTT username"},
		"mqtt.password":        charmer.Argument{Default: "", Help: "MQTT password"},
		"mqtt.clientID":        charmer.Argument{Default: "layz-spa", Help: "MQTT client ID"},
		"mqtt.discoveryPrefix": charmer.Argument{Default: "homeassistant", Help: "Home Assistant discovery prefix"},
		"mqtt.baseTopic":       charmer.Argument{Default: "layzspa", Help: "Base topic for state and commands"},
		"slack.token":          charmer.Argument{Default: "", Help: "Slack token"},
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	RootCmd.PersistentFlags().StringVar(&configFilename, "config", "", "Configuration file")
	if err := charmer.SetPersistentFlags(&RootCmd, viper.GetViper(), arguments); err != nil {
		panic("failed to set flags: " + err.Error())
	}
	RootCmd.AddCommand(&loginCmd, &entriesCmd, &removeCmd, &runCmd)
}

func initConfig() {
	_ = godotenv.Load()

	if configFilename != "" {
		viper.SetConfigFile(configFilename)
	} else {
		viper.AddConfigPath("/etc/layz-spa/")
		viper.AddConfigPath("$HOME/.layz-spa")
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("LAYZ_SPA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// all settings have defaults: a config file is optional, unless one was specified
		var notFound viper.ConfigFileNotFoundError
		if configFilename != "" || !errors.As(err, &notFound) {
			slog.Error("failed to read config file", "err", err)
			os.Exit(1)
		}
	}
}
