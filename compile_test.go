package fstdict

import "testing"

func TestCompileSingleStateIsAccept(t *testing.T) {
	m := build(pairsOf("", 5))
	prog, err := compile(m)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if len(prog.Instructions) != 1 {
		t.Fatalf("program has %d instructions, want 1", len(prog.Instructions))
	}
	if prog.Instructions[0].Op != OpAccept {
		t.Fatalf("op = %v, want Accept (the root has no transitions)", prog.Instructions[0].Op)
	}
}

func TestCompileMissingAddressIsBuildError(t *testing.T) {
	// A state arena containing a transition to a state never appended
	// (never given an address) must surface as a BuildError, not a panic
	// or a corrupt program.
	m := &mast{}
	root := newState()
	orphanChild := newState()
	orphanChild.id = 99 // never added to m.states
	root.setTransition('a', orphanChild)
	root.isFinal = false
	m.addState(root)
	m.initial = root

	_, err := compile(m)
	if err == nil {
		t.Fatal("expected a BuildError for an unaddressed child state")
	}
	if _, ok := err.(*BuildError); !ok {
		t.Fatalf("err type = %T, want *BuildError", err)
	}
}

func TestCompileDescendingByteOrderWithinState(t *testing.T) {
	// Within a single state's block, edges are emitted high-to-low by byte
	// value; since the whole program is reversed afterward, in final
	// program order a state's edges therefore appear low-to-high, with the
	// lowest byte's instruction tested first when execution reaches that
	// state's block (falling through from Accept/AcceptBreak, or jumping
	// in from a parent edge).
	m := build(pairsOf("ax", 1, "ay", 2, "az", 3))
	prog, err := compile(m)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	var chOrder []byte
	for _, instr := range prog.Instructions {
		switch instr.Op {
		case OpMatch, OpBreak, OpOutput, OpOutputBreak:
			chOrder = append(chOrder, instr.Ch)
		}
	}

	// 'a' is tested first (outermost), then among {x,y,z} the lowest byte
	// is tested first in final program order.
	if len(chOrder) == 0 || chOrder[0] != 'a' {
		t.Fatalf("first tested byte = %q, want 'a': %v", chOrder, chOrder)
	}
	if string(chOrder) != "axyz" {
		t.Fatalf("tested byte order = %q, want \"axyz\"", chOrder)
	}
}
