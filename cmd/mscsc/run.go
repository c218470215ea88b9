package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jerchenxin/mscsc"
	"github.com/jerchenxin/mscsc/loader"
)

var (
	flagBatchSize int
	flagMinimum   bool
	flagNoPrune   bool
)

var runCmd = &cobra.Command{
	Use:   "run <graph-file> <update-file>",
	Short: "Construct a graph, then delete and reinsert every update edge",
	Long: `run loads a graph file and constructs its strongly-connected
components, then replays an update file twice: first deleting every
listed edge, then reinserting it, printing the component snapshot
after each phase. This mirrors exercising the maintainer's edge churn
path end to end.`,
	Args: cobra.ExactArgs(2),
	RunE: runRunCommand,
}

func init() {
	runCmd.Flags().IntVar(&flagBatchSize, "batch", 0, "apply updates in batches of this size instead of one at a time")
	runCmd.Flags().BoolVar(&flagMinimum, "minimum", false, "use minimum-necessary-edge insertion instead of plain insertion")
	runCmd.Flags().BoolVar(&flagNoPrune, "no-prune", false, "skip the needed-edge pruning check before attempting a split")
}

func runRunCommand(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("batch") {
		cfg.BatchSize = flagBatchSize
	}
	if cmd.Flags().Changed("minimum") {
		cfg.Minimum = flagMinimum
	}
	if cmd.Flags().Changed("no-prune") {
		cfg.NoPruning = flagNoPrune
	}

	graphFile, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open graph file: %w", err)
	}
	defer graphFile.Close()

	g, _, err := loader.LoadGraph(graphFile)
	if err != nil {
		return fmt.Errorf("load graph: %w", err)
	}
	printInfo(cmd, "initial", g)

	updateFile, err := os.Open(args[1])
	if err != nil {
		return fmt.Errorf("open update file: %w", err)
	}
	defer updateFile.Close()

	updates, err := loader.LoadUpdates(updateFile)
	if err != nil {
		return fmt.Errorf("load updates: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "loaded %d update edges\n", len(updates))

	pairs := make([][2]int, len(updates))
	for i, e := range updates {
		pairs[i] = [2]int{e.S, e.T}
	}

	if err := deletePhase(cmd, g, pairs, cfg); err != nil {
		return fmt.Errorf("delete phase: %w", err)
	}
	printInfo(cmd, "after deletion", g)

	if err := insertPhase(cmd, g, pairs, cfg); err != nil {
		return fmt.Errorf("insert phase: %w", err)
	}
	printInfo(cmd, "after reinsertion", g)

	return nil
}

func deletePhase(cmd *cobra.Command, g *mscsc.Graph, pairs [][2]int, cfg runConfig) error {
	del := g.Delete
	if cfg.NoPruning {
		del = g.DeleteWithoutPruning
	}

	if cfg.BatchSize > 1 {
		return runInBatches(pairs, cfg.BatchSize, func(batch [][2]int) error {
			return g.BatchDelete(batch)
		}, cfg.PrintEveryBatch, cmd, "delete batch")
	}

	for _, p := range pairs {
		if err := del(p[0], p[1]); err != nil {
			return err
		}
	}
	return nil
}

func insertPhase(cmd *cobra.Command, g *mscsc.Graph, pairs [][2]int, cfg runConfig) error {
	if cfg.BatchSize > 1 {
		return runInBatches(pairs, cfg.BatchSize, func(batch [][2]int) error {
			return g.BatchInsert(batch)
		}, cfg.PrintEveryBatch, cmd, "insert batch")
	}

	ins := g.Insert
	if cfg.Minimum {
		ins = g.InsertMinimum
	}
	for _, p := range pairs {
		if err := ins(p[0], p[1]); err != nil {
			return err
		}
	}
	return nil
}

func runInBatches(pairs [][2]int, size int, apply func([][2]int) error, announce bool, cmd *cobra.Command, label string) error {
	for start := 0; start < len(pairs); start += size {
		end := start + size
		if end > len(pairs) {
			end = len(pairs)
		}
		if err := apply(pairs[start:end]); err != nil {
			return err
		}
		if announce {
			fmt.Fprintf(cmd.OutOrStdout(), "%s [%d,%d)\n", label, start, end)
		}
	}
	return nil
}

func printInfo(cmd *cobra.Command, label string, g *mscsc.Graph) {
	info := g.Info()
	stats := g.Stats()
	fmt.Fprintf(cmd.OutOrStdout(),
		"%s: n=%d m=%d sccs=%d non-singleton=%d internal-edges=%d needed-edges=%d merges=%d splits=%d/%d\n",
		label, info.N, info.M, info.SCCCount, info.NonSingletonSCCCount,
		info.InternalEdgeCount, info.NecEdgeCount,
		stats.MergeCount, stats.RealSplitCount, stats.TrySplitCount)
}
