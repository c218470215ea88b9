package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jerchenxin/mscsc/loader"
)

var infoCmd = &cobra.Command{
	Use:   "info <graph-file>",
	Short: "Construct a graph and print its component snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open graph file: %w", err)
		}
		defer f.Close()

		g, _, err := loader.LoadGraph(f)
		if err != nil {
			return fmt.Errorf("load graph: %w", err)
		}

		printInfo(cmd, "graph", g)
		return nil
	},
}
