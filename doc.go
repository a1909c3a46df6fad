// Package edgepath moves graphs between a compact binary edge-list file and an
// in-memory CSR adjacency, and answers unweighted shortest-path queries on them.
//
// What is edgepath?
//
//	A small, single-threaded toolkit built from focused packages:
//		• Binary edge-list codec (and the dense 0/1 matrix variant)
//		• Seeded Erdős–Rényi G(n,p) generation plus deterministic fixtures
//		• CSR construction with reproducible neighbor order
//		• BFS shortest paths, single-target and bidirectional
//		• JSON/YAML path reports for renderers
//
// Under the hood:
//
//	core/      - NodeID, Edge, EdgeList and the shared range error
//	codec/     - Decode/Encode of "uint32 N, uint32 M, M×(uint32,uint32)" little-endian files
//	builder/   - Generate(n, p, WithSeed(s)) and composable Constructors
//	csr/       - Build(n, edges) → SparseGraph (rowPtr, colIdx)
//	bfs/       - BFS, ShortestPath, BidirectionalShortestPath
//	report/    - PathReport {source, target, hop_count, nodes}
//	pipeline/  - generate/query/inspect flows with slog logging and otel spans
//	telemetry/ - stdout OpenTelemetry exporters for the CLI
//	cmd/edgepath - the command line tool
//
// Quick example:
//
//	  0───1
//	   \  │
//	    \ │
//	      2
//
//	edges {(0,1),(1,2),(0,2)}: ShortestPath(g, 0, 2) → hop_count 1, nodes [0 2].
//
//	go install github.com/katalvlaran/edgepath/cmd/edgepath@latest
package edgepath
