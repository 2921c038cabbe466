// Package tsp provides Travelling Salesman Problem solvers for
// two-dimensional Euclidean instances.
//
// It includes one exact algorithm and three approximation/heuristic ones:
//
//   - TSPExact — Held–Karp dynamic programming.
//
//   - Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory.
//
//   - Guarded by Options.HeldKarpCeiling (default 20): larger instances
//     fail fast with ErrInstanceTooLarge instead of hanging.
//
//   - TSPChristofides — MST + odd-vertex matching + Eulerian shortcut.
//
//   - Complexity: O(n²) with greedy matching; the exact bitmask matching
//     adds O(k²·2ᵏ) for k odd-degree vertices (used when k ≤ 16).
//
//   - ≤ 1.5·OPT on metric instances when the matching is exact.
//
//   - TSPPreorder — MST preorder walk, ≤ 2·OPT on metric instances.
//
//   - TSPFuzzOpt — randomized perturb-and-descend around 2-opt or 3-opt
//     local search; reproducible for a fixed Options.Seed.
//
// Every solver consumes an immutable *Instance (city set + cached pairwise
// Euclidean distances) and returns a TSResult: a closed tour, its total
// length, and the elapsed computation time. Budgets (Options.TimeLimit,
// iteration caps) are honored by returning the best tour found so far,
// never a partial or invalid one.
package tsp
