package main

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "acctmatch",
	Short: "Match input business records against an account/contact reference database",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the engine's YAML configuration file")
	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(contactCmd)
}
