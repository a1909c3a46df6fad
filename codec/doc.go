// Package codec encodes and decodes the on-disk edge-list format.
//
// Layout (little-endian, no checksum, no version field):
//
//	offset  field          type
//	0       N              uint32   node count
//	4       M              uint32   edge count
//	8       edges[0..M)    uint32×2 (u,v), 8 bytes per edge
//
// Expected size is 8 + 8·M bytes.
//
// Size policy (two tiers, intentionally distinct):
//
//   - Fewer bytes than the header or than the M declared pairs: ErrFormat.
//     Fatal; Decode returns no data.
//   - More bytes than 8 + 8·M: not fatal. Decoded.Warning carries a
//     *SizeMismatchWarning with the actual and expected byte counts and the
//     parsed edges are returned as usual.
//
// Encode is the inverse of Decode: Encode(d.N, d.Edges) reproduces any
// well-formed input without trailing bytes.
//
// The package also reads and writes the dense adjacency-matrix format
// (uint32 N followed by N·N bytes of 0/1). That format is strict: any
// size other than 4 + N·N is ErrFormat.
//
// Usage
//
//	d, err := codec.ReadFile("50k.bin")
//	if err != nil {
//		// errors.Is(err, codec.ErrFormat) for truncated input
//	}
//	if d.Warning != nil {
//		log.Printf("trailing bytes: %v", d.Warning)
//	}
package codec
