package fstdict

import (
	"bytes"
	"testing"
)

func buildFST(t *testing.T, pairs []Pair) *FST {
	t.Helper()
	fst, err := BuildFST(pairs)
	if err != nil {
		t.Fatalf("BuildFST: %v", err)
	}
	return fst
}

func roundTrip(t *testing.T, fst *FST) *FST {
	t.Helper()
	var buf bytes.Buffer
	if err := fst.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := ReadFST(&buf)
	if err != nil {
		t.Fatalf("ReadFST: %v", err)
	}
	return got
}

func TestCodecRoundTripPreservesQueries(t *testing.T) {
	cases := [][]Pair{
		pairsOf("a", 1),
		pairsOf("a", 1, "ab", 2),
		pairsOf("k", 10, "k", 20),
		pairsOf("", 7, "a", 8),
	}
	keys := []string{"a", "ab", "abc", "k", "", "b"}

	for _, pairs := range cases {
		fst := buildFST(t, pairs)
		decoded := roundTrip(t, fst)

		for _, key := range keys {
			want := fst.Search([]byte(key))
			got := decoded.Search([]byte(key))
			if !int32SliceEqualAsSet(want, got) {
				t.Fatalf("pairs=%v key=%q: Search before=%v, after round-trip=%v", pairs, key, want, got)
			}
		}
	}
}

func TestCodecRoundTripExtendedJump(t *testing.T) {
	const n = 70000
	pairs := make([]Pair, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, Pair{In: []byte(sprintfKey(i)), Out: int32(i + 1)})
	}
	fst := buildFST(t, pairs)
	decoded := roundTrip(t, fst)

	for _, i := range []int{0, 1, n / 2, n - 1} {
		key := sprintfKey(i)
		want := fst.Search([]byte(key))
		got := decoded.Search([]byte(key))
		if !int32SliceEqualAsSet(want, got) {
			t.Fatalf("key=%q: Search before=%v, after=%v", key, want, got)
		}
	}
}

func sprintfKey(i int) string {
	const digits = "0123456789"
	b := []byte{'z', digits[i/10000%10], digits[i/1000%10], digits[i/100%10], digits[i/10%10], digits[i%10]}
	return string(b)
}

func TestCodecDecodeErrorOnBadOpcode(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0, 0, 0, 0, 0, 0, 0, 0}) // dataLen = 0
	buf.Write([]byte{1, 0, 0, 0, 0, 0, 0, 0}) // progLen = 1
	buf.Write([]byte{99, 0})                  // invalid opcode, ch

	_, err := ReadFST(&buf)
	if err == nil {
		t.Fatal("expected a DecodeError for an invalid opcode")
	}
	if _, ok := err.(*DecodeError); !ok {
		t.Fatalf("err type = %T, want *DecodeError", err)
	}
}

func TestCodecDecodeErrorOnTruncatedStream(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0, 0, 0, 0, 0, 0, 0, 0}) // dataLen = 0
	buf.Write([]byte{1, 0, 0, 0, 0, 0, 0, 0}) // progLen = 1, but no instruction bytes follow

	_, err := ReadFST(&buf)
	if err == nil {
		t.Fatal("expected a DecodeError for a truncated stream")
	}
}
