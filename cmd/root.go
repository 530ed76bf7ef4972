/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/longkey1/playground/internal/playground/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	logger  = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "playground",
	Short: "Small demos of message defaults and sequence pairing",
	Long: `playground runs two small demos:
- message: updating a message's content, with "No Content" as the default
- zip: pairing sequences and dictionaries element by element

The demo inputs can be changed with a TOML configuration file or PLAYGROUND_* environment variables.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initLogger, initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/playground/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// initLogger replaces the default logger once flags are parsed.
func initLogger() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger = slog.New(handler).With("run_id", uuid.NewString())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// A missing .env is not an error
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("failed to load .env", "error", err)
	}

	viper.SetEnvPrefix("PLAYGROUND")
	viper.AutomaticEnv()
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			logger.Error("failed to read config file", "path", cfgFile, "error", err)
		}
		logger.Debug("using config file", "path", viper.ConfigFileUsed())
		return
	}

	home, err := os.UserHomeDir()
	cobra.CheckErr(err)
	userConfigDir := filepath.Join(home, ".config", "playground")

	// Load system-wide config first (lower priority)
	for _, path := range []string{"/etc/playground", "/usr/local/etc/playground"} {
		viper.AddConfigPath(path)
	}
	viper.SetConfigType("toml")
	viper.SetConfigName("config")

	systemConfigLoaded := false
	if err := viper.ReadInConfig(); err == nil {
		systemConfigLoaded = true
		logger.Debug("loaded system-wide config", "path", viper.ConfigFileUsed())
	}

	// Load user config (higher priority) - merge with system config
	viper.AddConfigPath(userConfigDir)
	if systemConfigLoaded {
		err = viper.MergeInConfig()
	} else {
		err = viper.ReadInConfig()
	}
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			logger.Error("failed to read user config file", "error", err)
		}
	}

	logger.Debug("using config file", "path", viper.ConfigFileUsed())
}
