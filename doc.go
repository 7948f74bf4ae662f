// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package discrim groups values by key in worst-case linear time without
// ever comparing two keys.
//
// A [Discriminator] knows how to decompose a key domain into buckets.
// Discriminators for primitive key shapes compose under a small algebra
// into discriminators for arbitrary composite keys, and every composition
// still runs in time linear in the input. This generalises counting and
// radix sort (Henglein, "Generic top-down discrimination for sorting and
// partitioning in linear time", 2012).
//
// # Design Philosophy
//
// discrim provides:
//   - One contract: Discriminate(pairs) returns a lazy sequence of groups
//   - Primitives for bounded integers, fixed-width unsigned integers and
//     opaque keys
//   - Combinators that preserve the linear bound and compose to any depth
//   - Values are opaque payloads; they are moved, never inspected
//
// # Pull Protocol
//
// [Iter] is a single-pass sequence that can be pulled from the front
// ([Iter.Next]) or the back ([Iter.NextBack]) and reports a size hint.
// Pulling from the back yields the same elements as pulling from the
// front, in reverse; this is a law every discriminator keeps.
//
//   - [FromSlice], [Zip], [Empty], [Once]: double-ended sources with exact hints
//   - [FromFunc], [FromSeq], [FromSeq2]: front-only sources
//   - [Map], [Chain], [Rev]: lazy adaptors
//   - [Collect], [CollectBack]: drain into a slice
//   - [All], [Backward], [Each]: range-over-func views
//
// # Grouped Sequences
//
// Discriminators return [*Groups], a lazy sequence of non-empty
// [*Group] values. Both are [Iter]s. Physically each is one of a closed
// set of representations, dispatched by type switch:
//
//   - a single buffered value (inputs of size ≤ 1; no buckets allocated)
//   - a pass-through of the raw input ([Trivial])
//   - a bucket table, filled on first pull ([Natural])
//   - a reversed view of another sequence ([Invert])
//   - a boxed sequence, used where combinators nest ([Sum], products)
//
// [FoldGroups] and [FoldGroup] reduce a sequence; the bucket table skips
// empty buckets before building any group. [CollectGroups] drains into
// [][]V.
//
// # Primitives
//
//   - [Trivial]: one class; the input comes back as one group in order
//   - [Natural] / [BoundedInt]: int keys in [0, n), one bucket per key,
//     non-empty buckets in ascending key order; out-of-range keys panic
//   - [UncheckedNatural]: same, with key validation skipped; out-of-range
//     keys are undefined behaviour
//   - [FixedWidth], [Uint8], [Uint16], [Bool]: Rename over an unchecked
//     table of 2^w buckets, safe because the key type bounds the range
//
// Bucket counts below 2 panic at construction.
//
// # Combinators
//
//   - [Invert]: same groups, reversed group order; values inside a group
//     keep their order. Invert(Invert(d)) ≡ d.
//   - [Rename] / [MapKey]: rewrite keys, delegate. Rename(Identity, d) ≡ d.
//   - [SumLeft], [SumRight], [SumWith]: keys of type [Either]; each tag is
//     discriminated by its own discriminator and the results concatenated
//   - [ProductLeft], [ProductRight]: keys of type [Pair]; nested bucketing
//     in lexicographic order, first component first or second first
//
// # Split
//
// [SplitEither] turns one tagged sequence into a Left handle and a Right
// handle that can be drained independently from either end. Items are
// parked only when a handle has to step over items of the other tag.
// [Exclusive] sharing takes no locks; [Synchronized] guards every pull
// so the handles may live on different goroutines.
//
// # Example
//
//	pairs := []discrim.Pair[int, string]{
//		{Fst: 0, Snd: "a"}, {Fst: 2, Snd: "b"}, {Fst: 0, Snd: "c"}, {Fst: 1, Snd: "d"},
//	}
//	groups := discrim.GroupSlice[int, string](discrim.Natural[string](3), pairs)
//	// groups == [][]string{{"a", "c"}, {"d"}, {"b"}}
package discrim
