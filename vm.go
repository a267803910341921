package fstdict

// Configuration is a snapshot taken whenever the VM passes an Accept or
// AcceptBreak instruction: the length of input consumed to reach that
// state, and the outputs attached to it (the live outputs accumulated
// along the path so far, plus the state's own tail values, if any).
type Configuration struct {
	Length  int
	Outputs []int32
}

// FST is an immutable, compiled finite state transducer: a Program plus
// the convenience methods that walk it. An FST is safe for concurrent use
// by multiple goroutines, since a walk only ever reads Program and keeps
// its scratch state (pc, hd, live outputs, configurations) local to the
// call.
type FST struct {
	prog *Program
}

// newFST wraps a compiled Program. Unexported: callers build one through
// BuildFST or by Read-ing a serialized one.
func newFST(prog *Program) *FST {
	return &FST{prog: prog}
}

// BuildFST constructs a minimal FST from pairs. The pairs need not be
// pre-sorted.
func BuildFST(pairs []Pair) (*FST, error) {
	m := build(pairs)
	prog, err := compile(m)
	if err != nil {
		return nil, err
	}
	return newFST(prog), nil
}

// walk scans the program against input, collecting a Configuration every
// time it passes an Accept or AcceptBreak. It returns the configurations
// in increasing-length order and whether the walk ended exactly when the
// whole input had been consumed from an accepting instruction.
//
// Accept instructions (states with no outgoing transitions) always stop
// the walk right after their snapshot: there is nothing further in that
// state's own block to try, so continuing would mean falling into an
// unrelated state's instructions. AcceptBreak instructions (states that
// do have children) only stop when the input is exhausted; otherwise they
// fall through into that same state's own edge tests, which is exactly
// the next instruction in program order.
func walk(prog *Program, input []byte) ([]Configuration, bool) {
	var configs []Configuration
	var live []int32

	pc := 0
	hd := 0
	n := len(prog.Instructions)

	for pc >= 0 && pc < n {
		instr := prog.Instructions[pc]

		switch instr.Op {
		case OpAccept, OpAcceptBreak:
			cfg := Configuration{Length: hd}
			cfg.Outputs = append(cfg.Outputs, live...)
			if instr.HasTail {
				cfg.Outputs = append(cfg.Outputs, prog.Data[instr.TailFrom:instr.TailTo]...)
			}
			configs = append(configs, cfg)

			if instr.Op == OpAccept || hd == len(input) {
				return configs, hd == len(input)
			}
			pc++

		case OpMatch, OpOutput:
			if hd < len(input) && input[hd] == instr.Ch {
				if instr.Op == OpOutput {
					live = append(live, instr.Out)
				}
				pc += int(instr.Jump)
				hd++
			} else {
				pc++
			}

		case OpBreak, OpOutputBreak:
			if hd < len(input) && input[hd] == instr.Ch {
				if instr.Op == OpOutputBreak {
					live = append(live, instr.Out)
				}
				pc += int(instr.Jump)
				hd++
			} else {
				return configs, false
			}

		default:
			return configs, false
		}
	}

	return configs, hd == len(input)
}

// Search returns the outputs recorded for input if input is exactly a key
// in the dictionary, or nil (NoMatch) if it is not.
func (f *FST) Search(input []byte) []int32 {
	configs, consumedAll := walk(f.prog, input)
	if !consumedAll || len(configs) == 0 {
		return nil
	}
	last := configs[len(configs)-1]
	if last.Length != len(input) {
		return nil
	}
	return last.Outputs
}

// PrefixSearch returns the length and outputs of the longest prefix of
// input that is a key in the dictionary, or (-1, nil) if no prefix of
// input matches any key.
func (f *FST) PrefixSearch(input []byte) (int, []int32) {
	configs, _ := walk(f.prog, input)
	if len(configs) == 0 {
		return -1, nil
	}
	last := configs[len(configs)-1]
	return last.Length, last.Outputs
}

// CommonPrefixSearch returns every prefix of input that is a key in the
// dictionary, as Configurations in increasing-length order. It returns
// nil if no prefix of input matches any key.
func (f *FST) CommonPrefixSearch(input []byte) []Configuration {
	configs, _ := walk(f.prog, input)
	return configs
}
