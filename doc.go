/*
Package fstdict provides a minimal acyclic subsequential transducer (MAST)
builder and a bytecode finite state transducer (FST) virtual machine, used
as an immutable, static dictionary mapping byte-string keys to one or more
32-bit integer outputs.

Uses

- Exact, longest-prefix, and common-prefix lookup over a large, fixed key set

- Compact dictionaries that can be built once and shared, as a
content-addressed blob, across many processes without rebuilding

- A building block for tokenizers and other systems that need "does this
input start with any of these keys" answers fast

How it works

A MAST is built incrementally, by BuildFST, from a stream of (key,
output) Pairs (BuildFST sorts them if they aren't already). Because the
input is sorted, suffixes of the previous key stop being extended as soon
as a pair diverges, so they can be frozen and hash-consed into the
transducer immediately: two subtrees that are structurally identical
always collapse onto the same frozen state, which is what keeps the
whole structure minimal.

The MAST is then lowered to a flat bytecode Program: a sequence of
instructions with short relative jumps (falling back to a 32-bit extended
jump when a jump target is far away), interspersed with accept opcodes that
record the outputs collected along the path so far. An FST is just that
program plus its side table of tail outputs; running it against an input
yields every accepting configuration in order of increasing input position,
which is enough to implement Search, PrefixSearch, and CommonPrefixSearch in
a single pass.

Concurrency

A built FST is read-only. Multiple goroutines may call Search,
PrefixSearch, and CommonPrefixSearch concurrently on the same FST, each
using its own call-local scratch state; CachedFST wraps an FST with a
goroutine-safe LRU of recent results. The MAST builder, by contrast, is
strictly sequential and must not be shared across goroutines while
building.

Inspiration

The incremental hash-consing construction and the bytecode VM follow the
approach used by morphological-analyzer dictionaries, where the dictionary
has to be both tiny on disk and fast to walk for every byte of input.
*/
package fstdict
