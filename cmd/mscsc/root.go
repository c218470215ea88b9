package main

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:     "mscsc",
	Short:   "Replay a graph and its updates against the incremental SCC maintainer",
	Version: "1.0.0",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "YAML config file path")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(infoCmd)
}

func resolveConfig() (runConfig, error) {
	if cfgFile == "" {
		return defaultRunConfig(), nil
	}
	return loadRunConfigFromFile(cfgFile)
}
