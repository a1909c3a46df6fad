// Package report serializes shortest-path answers into the path report
// consumed by renderers: a JSON object with keys source, target, hop_count
// and nodes, in that order.
//
// A missing path serializes as "hop_count": null and "nodes": []. JSON is
// indented by two spaces. WriteYAML emits the same four keys for config-style
// tooling.
package report
