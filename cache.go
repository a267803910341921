package fstdict

import lru "github.com/hashicorp/golang-lru"

// cachedSearch and cachedPrefix hold a memoized query result. Outputs
// slices are never mutated after a walk returns them, so sharing the
// same backing array across callers is safe.
type cachedSearch struct {
	outputs []int32
}

type cachedPrefix struct {
	length  int
	outputs []int32
}

// CachedFST wraps an immutable FST with an LRU memoizing its query
// methods. Because the underlying FST never changes, the cache has no
// invalidation to worry about: it is purely an optimization, never
// required for correctness, and safe for concurrent use by multiple
// goroutines (the underlying lru.ARCCache is itself synchronized).
type CachedFST struct {
	fst    *FST
	search *lru.ARCCache
	prefix *lru.ARCCache
	common *lru.ARCCache
}

// NewCachedFST wraps fst with three LRU caches of the given size, one per
// query method.
func NewCachedFST(fst *FST, size int) (*CachedFST, error) {
	search, err := lru.NewARC(size)
	if err != nil {
		return nil, err
	}
	prefix, err := lru.NewARC(size)
	if err != nil {
		return nil, err
	}
	common, err := lru.NewARC(size)
	if err != nil {
		return nil, err
	}
	return &CachedFST{fst: fst, search: search, prefix: prefix, common: common}, nil
}

func (c *CachedFST) Search(input []byte) []int32 {
	key := string(input)
	if v, ok := c.search.Get(key); ok {
		return v.(cachedSearch).outputs
	}
	outputs := c.fst.Search(input)
	c.search.Add(key, cachedSearch{outputs: outputs})
	return outputs
}

func (c *CachedFST) PrefixSearch(input []byte) (int, []int32) {
	key := string(input)
	if v, ok := c.prefix.Get(key); ok {
		cp := v.(cachedPrefix)
		return cp.length, cp.outputs
	}
	length, outputs := c.fst.PrefixSearch(input)
	c.prefix.Add(key, cachedPrefix{length: length, outputs: outputs})
	return length, outputs
}

func (c *CachedFST) CommonPrefixSearch(input []byte) []Configuration {
	key := string(input)
	if v, ok := c.common.Get(key); ok {
		return v.([]Configuration)
	}
	configs := c.fst.CommonPrefixSearch(input)
	c.common.Add(key, configs)
	return configs
}
