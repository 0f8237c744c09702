// Package cmd is for command line interactions with the genoplan application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var settingsFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "genoplan",
	Short: `Plan the minimum-cost construction of a target genome out of blocks
reused from an indexed source genome or synthesized from scratch`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(initSettings)

	rootCmd.PersistentFlags().StringVarP(&settingsFile, "settings", "s", "", "YAML file with cost parameters and run settings")
}

// initSettings points viper at the user's settings file, if one was passed.
// Flag values set on the command line still win over file values.
func initSettings() {
	if settingsFile == "" {
		return
	}
	viper.SetConfigFile(settingsFile)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("failed to read settings file: %v", err)
	}
}
