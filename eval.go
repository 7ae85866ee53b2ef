package gobf

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gobf/internal/flushio"
	"gobf/internal/panicerr"
	"gobf/internal/tape"
)

// EOFPolicy fixes what an Input command does once the input stream is
// exhausted.
type EOFPolicy uint8

const (
	// EOFZero stores 0 into the current cell (the default).
	EOFZero EOFPolicy = iota
	// EOFAllOnes stores 255, matching the original toolchain's effective
	// behavior of assigning getchar()'s -1 to an unsigned byte cell.
	EOFAllOnes
	// EOFUnchanged leaves the current cell alone.
	EOFUnchanged
	// EOFError halts the run with ErrInputExhausted.
	EOFError
)

// ErrInputExhausted reports an Input command past end of input under
// EOFError.
var ErrInputExhausted = errors.New("input exhausted")

// VM executes a parsed program against a tape of byte cells. The tape starts
// all zero with the cursor at cell 0; every cursor move is bounds checked and
// a move outside the tape halts the run with tape.ErrOverflow or
// tape.ErrUnderflow. Cell arithmetic wraps modulo 256.
//
// A VM owns all of its mutable state, so the (immutable) program tree it runs
// may be shared freely with other consumers.
type VM struct {
	tape *tape.Tape
	in   io.ByteReader
	out  flushio.WriteFlusher

	tapeSize int
	eof      EOFPolicy
	logfn    func(mess string, args ...interface{})

	ctx context.Context
}

// Run executes prog from a fresh tape. It returns any bounds, input, or io
// error, and ctx cancellation once per loop pass; a program whose loops never
// terminate runs until ctx does something about it.
func (vm *VM) Run(ctx context.Context, prog *Program) error {
	err := panicerr.Recover("VM", func() error {
		vm.ctx = ctx
		vm.tape = tape.New(vm.tapeSize)
		prog.Accept(vm)
		return vm.out.Flush()
	})
	var hErr haltError
	if errors.As(err, &hErr) {
		err = hErr.error
	}
	return err
}

func (vm *VM) VisitCommand(n *CommandNode) {
	vm.logf("@%v %v x%v", vm.tape.Pos(), n.Cmd, n.Repeat)
	switch n.Cmd {
	case Increment:
		vm.tape.Add(n.Repeat)
	case Decrement:
		vm.tape.Add(-n.Repeat)
	case ShiftRight:
		vm.move(n.Repeat)
	case ShiftLeft:
		vm.move(-n.Repeat)
	case Input:
		for i := 0; i < n.Repeat; i++ {
			vm.readCell()
		}
	case Output:
		for i := 0; i < n.Repeat; i++ {
			vm.writeCell()
		}
	case ClearCell:
		// zeroing is idempotent, so Repeat adds nothing
		vm.tape.Set(0)
	}
}

func (vm *VM) VisitLoop(l *Loop) {
	for vm.tape.Get() != 0 {
		if err := vm.ctx.Err(); err != nil {
			vm.halt(err)
		}
		for _, child := range l.Children {
			child.Accept(vm)
		}
	}
}

func (vm *VM) VisitProgram(p *Program) {
	for _, child := range p.Children {
		child.Accept(vm)
	}
}

func (vm *VM) move(delta int) {
	if err := vm.tape.Move(delta); err != nil {
		vm.halt(err)
	}
}

func (vm *VM) readCell() {
	// flush pending output so that prompts appear before a read blocks
	if err := vm.out.Flush(); err != nil {
		vm.halt(err)
	}
	b, err := vm.in.ReadByte()
	switch {
	case err == nil:
		vm.tape.Set(b)
	case err == io.EOF:
		switch vm.eof {
		case EOFZero:
			vm.tape.Set(0)
		case EOFAllOnes:
			vm.tape.Set(0xff)
		case EOFUnchanged:
		case EOFError:
			vm.halt(fmt.Errorf("%w at cell %v", ErrInputExhausted, vm.tape.Pos()))
		}
	default:
		vm.halt(err)
	}
}

func (vm *VM) writeCell() {
	if _, err := vm.out.Write([]byte{vm.tape.Get()}); err != nil {
		vm.halt(err)
	}
}

// halt aborts the run, surfacing err from Run after a best-effort output
// flush.
func (vm *VM) halt(err error) {
	func() {
		defer func() { recover() }()
		_ = vm.out.Flush()
	}()
	vm.logf("halt error: %v", err)
	panic(haltError{err})
}

func (vm *VM) logf(mess string, args ...interface{}) {
	if vm.logfn != nil {
		vm.logfn(mess, args...)
	}
}

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}

func (err haltError) Unwrap() error { return err.error }
