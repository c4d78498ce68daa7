// Command almanac finds the lowest location reachable from an almanac's
// seeds.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	_defaultInput  = "-"
	_defaultFormat = "auto"
	_defaultMode   = "ranges"
	_defaultLimit  = 100_000_000
	_configName    = "almanac"
	_envPrefix     = "ALMANAC"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("almanac: ")

	if err := newRootCommand(viper.New()).Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func newRootCommand(v *viper.Viper) *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "almanac",
		Short:         "Map seed ranges through an almanac and report the lowest location",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return _loadConfig(v, configFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLowest(cmd, v)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default ./almanac.yaml or ~/.config/almanac/almanac.yaml)")
	flags.StringP("input", "i", _defaultInput, "almanac file, - for stdin")
	flags.String("format", _defaultFormat, "input format: text, yaml or auto")
	flags.StringP("mode", "m", _defaultMode, "seed mode: values or ranges")
	flags.Bool("reorder", false, "chain maps by label instead of file order")
	flags.String("from", "seed", "input domain label used by --reorder")
	flags.BoolP("verbose", "v", false, "log per-stage set sizes")
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}

	root.AddCommand(
		newLowestCommand(v),
		newTraceCommand(v),
		newVerifyCommand(v),
		newConvertCommand(v),
		newDumpCommand(v),
	)
	return root
}

func _loadConfig(v *viper.Viper, configFile string) error {
	v.SetEnvPrefix(_envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(_configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", _configName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && configFile == "" {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	if v.GetBool("verbose") {
		log.Println("using config", v.ConfigFileUsed())
	}
	return nil
}
