package gobf

import "io"

// New builds a VM, applying opts over the defaults: empty input, discarded
// output, a tape.DefaultSize tape, and the EOFZero input policy.
func New(opts ...VMOption) *VM {
	var vm VM
	defaultOptions.apply(&vm)
	VMOptions(opts...).apply(&vm)
	return &vm
}

// WithInput supplies the byte stream read by Input commands.
func WithInput(r io.Reader) VMOption { return withInput(r) }

// WithOutput supplies the byte stream written by Output commands.
func WithOutput(w io.Writer) VMOption { return withOutput(w) }

// WithTee copies the output stream into an additional writer.
func WithTee(w io.Writer) VMOption { return withTee(w) }

// WithTapeSize sets the tape capacity in cells.
func WithTapeSize(size int) VMOption { return withTapeSize(size) }

// WithEOFPolicy sets the Input-past-end-of-input behavior.
func WithEOFPolicy(p EOFPolicy) VMOption { return withEOFPolicy(p) }

// WithLogf enables execution tracing through a printf-style function.
func WithLogf(logfn func(mess string, args ...interface{})) VMOption {
	return logfnOption(logfn)
}
