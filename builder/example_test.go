package builder_test

import (
	"fmt"

	"github.com/katalvlaran/edgepath/builder"
)

// ExampleGenerate builds K_5 through the G(n,p) generator with p = 1.
func ExampleGenerate() {
	edges, err := builder.Generate(5, 1.0, builder.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(edges))
	fmt.Println(edges[:4])
	// Output:
	// 10
	// [(0,1) (0,2) (1,2) (0,3)]
}

// ExampleBuildEdges composes two fixtures into one disconnected edge list.
func ExampleBuildEdges() {
	n, edges, err := builder.BuildEdges(nil, builder.Star(3), builder.Path(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(n, edges)
	// Output:
	// 5 [(0,1) (0,2) (3,4)]
}
