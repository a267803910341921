package fstdict

// mast is a Minimal Acyclic Subsequential Transducer: the in-memory,
// pre-bytecode form built by build. States are owned by the arena (states);
// everything else refers to them by pointer, which is safe because once a
// state is appended to the arena it is never mutated again.
type mast struct {
	states  []*state
	initial *state
}

func (m *mast) addState(s *state) {
	s.id = len(m.states)
	m.states = append(m.states, s)
}

// hashCons interns working states into frozen, minimal ones. It owns the
// dictionary mapping a state's hcode to the bucket of already-frozen states
// sharing that hcode; bucket membership is resolved by full structural
// equality, since hcode equality is only a fast filter (see state.equal).
type hashCons struct {
	buckets map[int64][]*state
}

func newHashCons() *hashCons {
	return &hashCons{buckets: make(map[int64][]*state)}
}

// freeze finds or creates the frozen counterpart of working, which must not
// be mutated again afterward. working is reset to a fresh, empty state by
// the caller once freeze returns, so it can be reused for the next key.
func (h *hashCons) freeze(m *mast, working *state) *state {
	bucket := h.buckets[working.hcode]
	for _, cand := range bucket {
		if cand.equal(working) {
			return cand
		}
	}
	frozen := working.clone()
	m.addState(frozen)
	h.buckets[working.hcode] = append(bucket, frozen)
	return frozen
}

// build constructs a minimal acyclic transducer from pairs, which need not
// be pre-sorted: build sorts a copy before consuming it. This is the direct
// translation of the reference buildMAST: a frontier buffer of working
// states, one per depth of the key currently being inserted, frozen from
// the bottom up as each key's common prefix with its predecessor shrinks.
func build(pairs []Pair) *mast {
	sorted := make([]Pair, len(pairs))
	copy(sorted, pairs)
	sortPairs(sorted)

	m := &mast{}
	hc := newHashCons()

	maxLen := 0
	for _, p := range sorted {
		if len(p.In) > maxLen {
			maxLen = len(p.In)
		}
	}
	buf := make([]*state, maxLen+1)
	for i := range buf {
		buf[i] = newState()
	}

	var prev []byte
	var sawFirst bool
	for _, p := range sorted {
		in := p.In
		out := p.Out
		explicitZero := out == 0
		prefixLen := commonPrefixLen(in, prev)
		// isNewKey is almost always !bytesEqual(in, prev); the extra
		// !sawFirst term matters only for the very first pair, since prev
		// starts out nil (length 0) and would otherwise compare equal to
		// an equally-empty first key, hiding it from the finality and
		// residual-output steps below.
		isNewKey := !sawFirst || !bytesEqual(in, prev)
		sawFirst = true

		// 1. Freeze the suffix of the previous key that this key
		// diverges from.
		for i := len(prev); i > prefixLen; i-- {
			frozen := hc.freeze(m, buf[i])
			buf[i].renew()
			buf[i-1].setTransition(prev[i-1], frozen)
		}

		// 2. Extend the frontier down to the new key's length with
		// working (unfrozen) linkage.
		for i := prefixLen + 1; i < len(in); i++ {
			buf[i-1].setTransition(in[i-1], buf[i])
		}

		// 3. Mark finality.
		if isNewKey {
			buf[len(in)].isFinal = true
		}

		// 4. Push outputs down the common prefix. The edge for prev's last
		// byte is not wired yet (a future freeze or the final flush does
		// that), so when it leaves buf[j] it gets existing as its output
		// directly: outputs may be recorded before their transition exists.
		for j := 1; j <= prefixLen; j++ {
			existing := buf[j-1].outputOf(in[j-1])
			if existing == out {
				out = 0
				break
			}
			buf[j-1].removeOutput(in[j-1])
			for ch := range buf[j].trans {
				buf[j].setOutput(ch, existing)
			}
			if j < len(prev) {
				if _, wired := buf[j].trans[prev[j]]; !wired {
					buf[j].setOutput(prev[j], existing)
				}
			}
			if buf[j].isFinal && existing != 0 {
				buf[j].addTail(existing)
			}
		}

		// 5. Place the residual output. prefixLen < len(in) whenever
		// isNewKey is true except for an empty key as the first pair,
		// where in has no byte at prefixLen to hang an edge output on.
		if isNewKey && prefixLen < len(in) {
			buf[prefixLen].setOutput(in[prefixLen], out)
		} else if explicitZero || out != 0 {
			buf[len(in)].addTail(out)
		}

		prev = in
	}

	// Flush the remaining frontier, then freeze the initial state last so
	// it receives the largest id.
	for i := len(prev); i > 0; i-- {
		frozen := hc.freeze(m, buf[i])
		buf[i].renew()
		buf[i-1].setTransition(prev[i-1], frozen)
	}
	initial := buf[0].clone()
	m.addState(initial)
	m.initial = initial

	return m
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
