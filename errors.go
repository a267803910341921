package fstdict

import "fmt"

// BuildError indicates a structural problem discovered while lowering a
// Mast to bytecode: most commonly a reference to a child state whose
// address was never emitted, which means the build is abandoned rather
// than producing a program the VM could misinterpret.
type BuildError struct {
	Reason string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("fstdict: build: %s", e.Reason)
}

func newBuildError(format string, args ...interface{}) *BuildError {
	return &BuildError{Reason: fmt.Sprintf(format, args...)}
}

// DecodeError indicates that a serialized program or data array could not
// be decoded: an unrecognized opcode, or a stream that ended before the
// declared length was satisfied. The FST being read into must be discarded;
// its state is undefined after a DecodeError.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fstdict: decode: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("fstdict: decode: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func newDecodeError(err error, format string, args ...interface{}) *DecodeError {
	return &DecodeError{Reason: fmt.Sprintf(format, args...), Err: err}
}
