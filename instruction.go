package fstdict

// Op identifies an FST program instruction.
type Op uint8

// The operation codes, as fixed by the wire format (see codec.go). Values
// other than these six are invalid and cause a DecodeError on Read.
const (
	OpAccept      Op = 1
	OpAcceptBreak Op = 2
	OpMatch       Op = 3
	OpBreak       Op = 4
	OpOutput      Op = 5
	OpOutputBreak Op = 6
)

func (op Op) String() string {
	switch op {
	case OpAccept:
		return "Accept"
	case OpAcceptBreak:
		return "AcceptBreak"
	case OpMatch:
		return "Match"
	case OpBreak:
		return "Break"
	case OpOutput:
		return "Output"
	case OpOutputBreak:
		return "OutputBreak"
	default:
		return "Invalid"
	}
}

// Instruction is one logical step of a compiled program. Match/Break/
// Output/OutputBreak instructions test input[hd] against Ch and, on a
// match, advance pc by Jump and hd by one; Accept/AcceptBreak instructions
// record a Configuration. This is a logical (one struct per instruction)
// representation rather than the reference's word-addressed union: Write
// and Read translate to and from the word-oriented wire format of §6, but
// the VM and compiler only ever deal in whole Instructions, which sidesteps
// having to special-case multi-word instructions during program reversal.
type Instruction struct {
	Op   Op
	Ch   byte
	Jump int32 // relative instruction count to advance pc on a match
	Out  int32 // set when Op is Output or OutputBreak

	HasTail  bool  // set when Op is Accept/AcceptBreak and the state had a tail
	TailFrom int32 // inclusive start index into Program.Data
	TailTo   int32 // exclusive end index into Program.Data
}

// Program is a compiled, linear instruction stream together with its side
// table of tail outputs.
type Program struct {
	Instructions []Instruction
	Data         []int32
}
