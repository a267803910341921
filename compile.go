package fstdict

// compile lowers a built mast to a Program: a linear instruction stream
// plus the data array of tail outputs. States are emitted in the order
// they were frozen — children before the initial state, since states are
// hash-consed and therefore built bottom-up — and each state's own edges
// are emitted in descending byte order, exactly as spec'd. The whole
// instruction stream is then reversed in place so that execution proceeds
// from the initial state's edges down into its children, which is
// possible cleanly here because Instruction is a single logical unit per
// edge/accept rather than a variable number of wire words (see
// instruction.go): there is no risk of reversing a multi-word instruction
// into pieces, which the reference implementation's word-level reversal is
// vulnerable to (see spec's open question on buildMachine).
func compile(m *mast) (*Program, error) {
	var fwd []Instruction
	var data []int32
	addr := make(map[int]int, len(m.states))

	for _, s := range m.states {
		bytes := s.sortedBytes()
		for i := len(bytes) - 1; i >= 0; i-- {
			ch := bytes[i]
			next := s.trans[ch]
			out := s.outputOf(ch)

			nextAddr, ok := addr[next.id]
			if !ok {
				return nil, newBuildError("state %d: no address recorded for child %d (byte 0x%02x)", s.id, next.id, ch)
			}
			jump := int32(len(fwd) - nextAddr + 1)

			isFirst := i == len(bytes)-1
			var op Op
			switch {
			case out != 0 && isFirst:
				op = OpOutputBreak
			case out != 0:
				op = OpOutput
			case isFirst:
				op = OpBreak
			default:
				op = OpMatch
			}
			fwd = append(fwd, Instruction{Op: op, Ch: ch, Jump: jump, Out: out})
		}

		if s.isFinal {
			instr := Instruction{Ch: 0}
			if len(s.tail) > 0 {
				instr.HasTail = true
				instr.TailFrom = int32(len(data))
				data = append(data, s.tail...)
				instr.TailTo = int32(len(data))
				instr.Ch = 1
			}
			if len(s.trans) == 0 {
				instr.Op = OpAccept
			} else {
				instr.Op = OpAcceptBreak
			}
			fwd = append(fwd, instr)
		}

		addr[s.id] = len(fwd)
	}

	reversed := make([]Instruction, len(fwd))
	for i, instr := range fwd {
		reversed[len(fwd)-1-i] = instr
	}

	return &Program{Instructions: reversed, Data: data}, nil
}
