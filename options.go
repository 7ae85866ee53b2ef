package gobf

import (
	"bufio"
	"bytes"
	"io"

	"gobf/internal/flushio"
	"gobf/internal/tape"
)

// VMOption configures a VM at construction.
type VMOption interface{ apply(vm *VM) }

// VMOptions combines options into one.
func VMOptions(opts ...VMOption) VMOption { return optionList(opts) }

type optionList []VMOption

func (opts optionList) apply(vm *VM) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(vm)
		}
	}
}

var defaultOptions = VMOptions(
	withInput(bytes.NewReader(nil)),
	withOutput(io.Discard),
	withTapeSize(tape.DefaultSize),
)

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type tapeSizeOption int
type eofOption EOFPolicy
type logfnOption func(mess string, args ...interface{})

func withInput(r io.Reader) inputOption    { return inputOption{r} }
func withOutput(w io.Writer) outputOption  { return outputOption{w} }
func withTee(w io.Writer) teeOption        { return teeOption{w} }
func withTapeSize(size int) tapeSizeOption { return tapeSizeOption(size) }
func withEOFPolicy(p EOFPolicy) eofOption  { return eofOption(p) }

func (i inputOption) apply(vm *VM) {
	if br, is := i.Reader.(io.ByteReader); is {
		vm.in = br
	} else {
		vm.in = bufio.NewReader(i.Reader)
	}
}

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.WriteFlushers(vm.out, flushio.NewWriteFlusher(o.Writer))
}

func (size tapeSizeOption) apply(vm *VM) { vm.tapeSize = int(size) }

func (p eofOption) apply(vm *VM) { vm.eof = EOFPolicy(p) }

func (logfn logfnOption) apply(vm *VM) { vm.logfn = logfn }
