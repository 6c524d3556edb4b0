package main

import (
	"fmt"
	"os"

	"calendar-events/internal/config"
	"calendar-events/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Version   = "dev"
	BuildTime = "undefined"
	GitHash   = "undefined"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "calendar-events",
	Short:         "Calendar events API",
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(cmd.UsageString())
		os.Exit(2)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml)")
}

// Execute runs the CLI and is called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadRuntime reads the configuration and builds the logger every
// subcommand needs.
func loadRuntime() (*config.Config, *logrus.Logger, error) {
	c, err := config.Load(viper.New(), cfgFile)
	if err != nil {
		return nil, nil, err
	}
	c.BuildVersion = Version
	c.BuildTime = BuildTime
	c.BuildHash = GitHash

	log, err := logging.New(c.LogLevel, c.LogFormat, nil)
	if err != nil {
		return nil, nil, err
	}
	return c, log, nil
}
