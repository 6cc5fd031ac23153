// Package cachelab implements a family of in-memory, fixed-capacity
// read-through caches built around scan-resistant replacement policies:
// [CARCache] (Clock with Adaptive Replacement), [CARTCache] (CAR with
// temporal filtering), and [LRUCache] as a reference baseline. All three
// share the [Cache] interface so a caller can swap policies, or run them
// side by side against the same workload, without touching call sites.
//
// A caller asks for a value by key via Get. If the key is resident the
// cached value is returned; otherwise the cache invokes a caller-supplied
// [Loader], installs the result (possibly evicting another entry under
// the policy's rules), and returns it. Each cache tracks a miss counter
// (Misses) counting only true loads, never ghost/history hits.
//
// The following is a summary (intended for maintainers) of the CAR and
// CART papers, reproduced here because the adaptive bookkeeping they
// describe is the genuinely hard part of this package; a structurally
// valid but semantically wrong transition silently produces a cache that
// still returns correct values but with a degraded hit rate.
//
// Glossary and invariants:
//
//   - Resident entry
//
//     A key whose value is currently held in cache (T1 ∪ T2).
//
//   - Ghost / history entry
//
//     A key whose value was evicted but whose identity is remembered,
//     in a history list (B1 ∪ B2), to guide adaptation.
//
//   - T1 / T2
//
//     Recency-resident / frequency-resident lists. In CAR these are
//     clocks (internal/ring); in CART these are FIFOs (internal/fifo).
//
//   - B1 / B2
//
//     Recency / frequency history lists (internal/keyset), bounded in
//     size so metadata never grows without limit.
//
//   - Access bit
//
//     Set on every hit to a resident entry; cleared by the hand/queue
//     sweep that inspects the entry during replacement.
//
//   - Filter bit (CART only)
//
//     Short vs Long classification of a page's inter-reference recency;
//     a page starts Short and becomes Long when it returns from a ghost
//     list or when a replacement sweep finds it referenced in T1 while
//     T1 is large enough.
//
//   - Hand
//
//     The cursor into a clock ring at which the next sweep begins.
//
//   - p (CAR and CART)
//
//     The adaptive target resident size of T1, in [0, cache_size]. In
//     CART, ns and nl are counters of resident Short and Long pages, not
//     targets.
//
//   - q (CART)
//
//     The adaptive target size of the B1 history list.
//
// Operations:
//
//   - Replacement
//
//     When the resident set is full, the hand(s) sweep until exactly
//     one resident entry is demoted to its history list; its value is
//     discarded but its key is retained as a ghost to inform future
//     adaptation.
//
//   - Adaptation
//
//     A hit in B1 proves recency was starved and grows p; a hit in B2
//     proves frequency was starved and shrinks p. The adaptation
//     magnitude is tied to the ratio of ghost-list sizes in CAR
//     (|B2|/|B1| or |B1|/|B2|) and to ns/|B1| or nl/|B2| in CART,
//     giving self-balancing behavior with no tunable parameters.
//
// Concurrency: each cache guards its state with a single mutex acquired
// for the duration of Get, including the loader call. See the package's
// companion cmd/cachebench for a driver that replays or synthesizes
// access traces against one or more caches.
package cachelab
