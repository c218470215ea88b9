// Command mscsc replays a graph file and an update file against the
// mscsc incremental strongly-connected-components maintainer and
// reports the resulting component structure.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
