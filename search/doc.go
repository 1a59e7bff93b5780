// Package search runs read-only queries against a ladder.Graph:
// unweighted shortest paths, connected components, and the longest
// shortest-path (eccentricity) within a component.
//
// What:
//
//   - ShortestPath: strict-FIFO BFS from start to goal with parent
//     reconstruction; "no path" is a normal result, not an error.
//   - Components / ComponentOf / GroupSizes: flood-fill partition of the
//     word graph into maximal mutually-reachable sets.
//   - LongestPath: BFS from every node of a word's component; the
//     maximum eccentricity observed is the component's longest shortest
//     path (the standard unweighted diameter algorithm).
//
// Determinism:
//
//   - Neighbor records are iterated in ascending WordID order, which is
//     the documented tie-break whenever several shortest paths exist.
//   - LongestPath scans sources in ascending ID and keeps the first
//     farthest node reached at the winning depth.
//
// Complexity:
//
//   - ShortestPath, ComponentOf: O(V+E). Components: O(V+E) total.
//   - LongestPath: O(V·(V+E)) over the component.
//
// All traversals accept WithContext for cancellation and progress hooks
// that never influence the computed result.
//
// Errors:
//
//   - ErrGraphNil, ErrIndexNil: nil inputs.
//   - ErrWordNotFound: a query word is absent from the dictionary,
//     reported before any search work starts.
//   - ErrOptionViolation: invalid option supplied.
package search
