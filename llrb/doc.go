// Package llrb implement a self-balancing version of binary-tree,
// called, LLRB (Left Leaning Red Black).
//
//   - Index key, value entries, keys are unique within an instance.
//   - Keys can be any ordered type, values are opaque.
//   - CRUD operations, via Set(), Get(), Delete() api.
//   - Full table scan, range scan and reverse scan, via Range() and
//     Iterate() api.
//   - Uniform random sampling, via Random() api.
//   - Structural validation and depth statistics, via Validate()
//     and Stats() api.
//   - No durability guarantee, index is volatile.
//   - Not thread safe, wrap the index for concurrent access.
package llrb
