package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/endorses/lippyphone/cmd/list"
	"github.com/endorses/lippyphone/cmd/show"
	"github.com/endorses/lippyphone/cmd/tui"
	"github.com/endorses/lippyphone/internal/pkg/cmdutil"
	"github.com/endorses/lippyphone/internal/pkg/logger"
	"github.com/endorses/lippyphone/internal/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:     "lp",
	Short:   "lippyphone is a terminal softphone",
	Long:    fmt.Sprintf("lippyphone %s - Softphone for the terminal: chats, dialer, contacts and calls", version.GetVersion()),
	Version: version.GetFullVersion(),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return applyLogLevel()
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func addSubCommandPalattes() {
	rootCmd.AddCommand(tui.TuiCmd)
	rootCmd.AddCommand(list.ListCmd)
	rootCmd.AddCommand(show.ShowCmd)
	rootCmd.AddCommand(lookupCmd)
}

func init() {
	cobra.OnInitialize(initConfig)

	// Initialize structured logging
	logger.Initialize()

	addSubCommandPalattes()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/lippyphone/config.yaml)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Priority order for config files:
		// 1. ~/.config/lippyphone/config.yaml
		// 2. ~/.config/lippyphone.yaml
		// 3. ~/.lippyphone.yaml
		viper.AddConfigPath(filepath.Join(home, ".config", "lippyphone"))
		viper.AddConfigPath(filepath.Join(home, ".config"))
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")

		viper.SetConfigName("config")
		if err := viper.ReadInConfig(); err != nil {
			viper.SetConfigName("lippyphone")
			if err := viper.ReadInConfig(); err != nil {
				viper.SetConfigName(".lippyphone")
			}
		}
	}

	viper.SetEnvPrefix(cmdutil.EnvPrefix)
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	cmdutil.SetDefaults()

	if err := viper.ReadInConfig(); err == nil {
		logger.Debug("Using config file", "path", viper.ConfigFileUsed())
	}
}

// applyLogLevel sets the logger level from log.level. LOG_LEVEL=DEBUG in
// the environment always wins so the dev console sees everything.
func applyLogLevel() error {
	name := viper.GetString("log.level")
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		name = env
	}
	if name == "" {
		return nil
	}
	level, err := logger.ParseLevel(name)
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	return nil
}
