package fstdict

import (
	"bytes"
	"sort"
)

// Pair is an input record to Build: a byte-string key and the 32-bit
// output associated with it. The same key may appear in more than one
// Pair; all of its outputs end up in the built FST's result for that key.
type Pair struct {
	In  []byte
	Out int32
}

// sortPairs sorts pairs lexicographically by In, stably, so that pairs
// sharing a key keep their relative order (which in turn becomes the
// order their outputs are recorded in the tail).
func sortPairs(pairs []Pair) {
	sort.SliceStable(pairs, func(i, j int) bool {
		return bytes.Compare(pairs[i].In, pairs[j].In) < 0
	})
}

func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}
