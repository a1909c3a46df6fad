// Command edgepath generates G(n,p) graphs as binary edge-list files and
// answers unweighted shortest-path queries on them.
//
//	edgepath generate --seed 7                 # 50000 nodes, p=3/133333, 0 → 49999
//	edgepath query --in 50k.bin --src 0 --dst 12
//	edgepath inspect --in 50k.bin
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "edgepath:", err)
		os.Exit(1)
	}
}
