package fstdict

import (
	"bufio"
	"encoding/binary"
	"io"
)

// Binary format: all unsigned integers little-endian, with size fields
// fixed at 8 bytes for portability across platforms rather than tied to
// a native size_t width. Write and Read below give the full field order;
// this file is the only place that knows about wire widths —
// Program and Instruction (instruction.go) are purely logical.
const (
	opAccept      = 1
	opAcceptBreak = 2
	opMatch       = 3
	opBreak       = 4
	opOutput      = 5
	opOutputBreak = 6
)

func writeUint64(w io.Writer, v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	_, err := w.Write(b[:])
	return err
}

func writeUint32(w io.Writer, v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	_, err := w.Write(b[:])
	return err
}

func writeUint16(w io.Writer, v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	_, err := w.Write(b[:])
	return err
}

func writeUint8(w io.Writer, v uint8) error {
	_, err := w.Write([]byte{v})
	return err
}

// Write serializes f in the portable binary format described in §6.
func (f *FST) Write(sink io.Writer) error {
	w := bufio.NewWriter(sink)

	if err := writeUint64(w, uint64(len(f.prog.Data))); err != nil {
		return err
	}
	for _, v := range f.prog.Data {
		if err := writeUint32(w, uint32(v)); err != nil {
			return err
		}
	}

	if err := writeUint64(w, uint64(len(f.prog.Instructions))); err != nil {
		return err
	}
	for _, instr := range f.prog.Instructions {
		if err := writeInstruction(w, instr); err != nil {
			return err
		}
	}

	return w.Flush()
}

func writeInstruction(w io.Writer, instr Instruction) error {
	op, err := wireOp(instr.Op)
	if err != nil {
		return err
	}
	if err := writeUint8(w, op); err != nil {
		return err
	}
	if err := writeUint8(w, instr.Ch); err != nil {
		return err
	}

	switch instr.Op {
	case OpMatch, OpBreak:
		return writeJump(w, instr.Jump)
	case OpOutput, OpOutputBreak:
		// Wire order is jump, out, then the extension word (if any) —
		// the extension trails out, unlike Match/Break.
		jump16 := jumpHeader(instr.Jump)
		if err := writeUint16(w, jump16); err != nil {
			return err
		}
		if err := writeUint32(w, uint32(instr.Out)); err != nil {
			return err
		}
		if jump16 == 0 {
			return writeUint32(w, uint32(instr.Jump))
		}
		return nil
	case OpAccept, OpAcceptBreak:
		if instr.Ch != 1 {
			return nil
		}
		if err := writeUint32(w, uint32(instr.TailTo)); err != nil {
			return err
		}
		return writeUint32(w, uint32(instr.TailFrom))
	default:
		return newBuildError("unwritable instruction opcode %v", instr.Op)
	}
}

// jumpHeader returns the value of the 16-bit jump header field: the jump
// itself if it fits, or 0 (the sentinel meaning "read the extension word")
// if it doesn't.
func jumpHeader(jump int32) uint16 {
	if jump > 0 && jump <= 0xffff {
		return uint16(jump)
	}
	return 0
}

// writeJump emits the 16-bit jump field, followed by the full jump as an
// extended word when it doesn't fit. Used by Match/Break, where the
// extension word (if any) immediately follows the header.
func writeJump(w io.Writer, jump int32) error {
	jump16 := jumpHeader(jump)
	if err := writeUint16(w, jump16); err != nil {
		return err
	}
	if jump16 == 0 {
		return writeUint32(w, uint32(jump))
	}
	return nil
}

func wireOp(op Op) (uint8, error) {
	switch op {
	case OpAccept:
		return opAccept, nil
	case OpAcceptBreak:
		return opAcceptBreak, nil
	case OpMatch:
		return opMatch, nil
	case OpBreak:
		return opBreak, nil
	case OpOutput:
		return opOutput, nil
	case OpOutputBreak:
		return opOutputBreak, nil
	default:
		return 0, newBuildError("unknown opcode %v", op)
	}
}

func readUint64(r io.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

func readUint32(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func readUint16(r io.Reader) (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

func readUint8(r io.Reader) (uint8, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// Read deserializes an FST written by Write. On any error the receiver
// is left in an undefined state and must be discarded.
func (f *FST) Read(source io.Reader) error {
	r := bufio.NewReader(source)

	dataLen, err := readUint64(r)
	if err != nil {
		return newDecodeError(err, "reading data length")
	}
	data := make([]int32, dataLen)
	for i := range data {
		v, err := readUint32(r)
		if err != nil {
			return newDecodeError(err, "reading data[%d]", i)
		}
		data[i] = int32(v)
	}

	progLen, err := readUint64(r)
	if err != nil {
		return newDecodeError(err, "reading program length")
	}
	instrs := make([]Instruction, progLen)
	for i := range instrs {
		instr, err := readInstruction(r)
		if err != nil {
			return newDecodeError(err, "reading instruction %d", i)
		}
		instrs[i] = instr
	}

	f.prog = &Program{Instructions: instrs, Data: data}
	return nil
}

// ReadFST deserializes a new FST from source.
func ReadFST(source io.Reader) (*FST, error) {
	f := &FST{}
	if err := f.Read(source); err != nil {
		return nil, err
	}
	return f, nil
}

func readInstruction(r io.Reader) (Instruction, error) {
	rawOp, err := readUint8(r)
	if err != nil {
		return Instruction{}, err
	}
	ch, err := readUint8(r)
	if err != nil {
		return Instruction{}, err
	}

	switch rawOp {
	case opMatch, opBreak:
		jump, err := readJump(r)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: logicalOp(rawOp), Ch: ch, Jump: jump}, nil

	case opOutput, opOutputBreak:
		jump16, err := readUint16(r)
		if err != nil {
			return Instruction{}, err
		}
		out, err := readUint32(r)
		if err != nil {
			return Instruction{}, err
		}
		jump := int32(jump16)
		if jump16 == 0 {
			ext, err := readUint32(r)
			if err != nil {
				return Instruction{}, err
			}
			jump = int32(ext)
		}
		return Instruction{Op: logicalOp(rawOp), Ch: ch, Jump: jump, Out: int32(out)}, nil

	case opAccept, opAcceptBreak:
		instr := Instruction{Op: logicalOp(rawOp), Ch: ch}
		if ch != 1 {
			return instr, nil
		}
		to, err := readUint32(r)
		if err != nil {
			return Instruction{}, err
		}
		from, err := readUint32(r)
		if err != nil {
			return Instruction{}, err
		}
		instr.HasTail = true
		instr.TailTo = int32(to)
		instr.TailFrom = int32(from)
		return instr, nil

	default:
		return Instruction{}, newDecodeError(nil, "invalid opcode %d", rawOp)
	}
}

func readJump(r io.Reader) (int32, error) {
	jump16, err := readUint16(r)
	if err != nil {
		return 0, err
	}
	if jump16 != 0 {
		return int32(jump16), nil
	}
	ext, err := readUint32(r)
	if err != nil {
		return 0, err
	}
	return int32(ext), nil
}

func logicalOp(raw uint8) Op {
	switch raw {
	case opAccept:
		return OpAccept
	case opAcceptBreak:
		return OpAcceptBreak
	case opMatch:
		return OpMatch
	case opBreak:
		return OpBreak
	case opOutput:
		return OpOutput
	case opOutputBreak:
		return OpOutputBreak
	default:
		return 0
	}
}
