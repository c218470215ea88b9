// Package mscsc maintains a Minimum Strongly-Connected Spanning Component
// (MSCSC) decomposition over a directed graph that changes by single-edge
// or batch insertions and deletions.
//
// What:
//
//   - For every strongly connected component (SCC) of the current graph,
//     mscsc tracks both the SCC partition of vertices and an approximately
//     2-optimal set of "necessary" edges sufficient to keep each SCC
//     strongly connected.
//   - Two tightly coupled layers do the work: a Tarjan layer (original
//     graph, SCC membership, recyclable super-node ids, necessary-edge
//     flags) and a Reduced Graph layer (the condensation, with super-edges
//     carrying the original edges they represent).
//   - Five update algorithms keep both layers consistent under edge churn:
//     single insertion (with merge), minimum-preserving insertion, single
//     deletion (with potential split), batch insertion, batch deletion.
//
// Why:
//
//   - Clients use the structure as an index supporting cheap reachability
//     queries and a compact SCC representation while the edge set evolves,
//     without recomputing the full SCC decomposition from scratch on every
//     change.
//
// Key Types:
//
//   - Graph: the public driver, sequencing the Tarjan and Reduced Graph
//     layers for every public operation.
//   - Tarjan: owns the original adjacency, SCC membership, and the
//     necessary-edge accounting.
//   - ReducedGraph: owns the condensation (super-edges over SCC ids).
//
// Complexity:
//
//   - Construction: O(V+E) via Tarjan's algorithm.
//   - Insertion: the merge probe walks the part of the condensation
//     reachable from the new edge's endpoint; InsertionMinimum also scans
//     every SCC id once to collect the merge set.
//   - Deletion: a split probe or re-Tarjan runs over the vertices of the
//     SCC the deleted edge lies in, not the whole graph.
//
// Non-goals (see spec for the full list): transactional multi-writer
// concurrency, persistence, exact-minimum (NP-hard) spanning subgraphs.
package mscsc
