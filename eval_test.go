package gobf

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gobf/internal/tape"
)

func sprintf(mess string, args ...interface{}) string {
	if len(args) > 0 {
		return fmt.Sprintf(mess, args...)
	}
	return mess
}

type vmTestCases []vmTestCase

func (vmts vmTestCases) run(t *testing.T) {
	for _, vmt := range vmts {
		if !t.Run(vmt.name, vmt.run) {
			return
		}
	}
}

func vmTest(name string) (vmt vmTestCase) {
	vmt.name = name
	return vmt
}

type vmTestCase struct {
	name    string
	src     string
	input   string
	opts    []VMOption
	timeout time.Duration

	wantErr    error
	wantOutput string
	wantTape   []byte
	wantPos    int
	checkPos   bool
}

func (vmt vmTestCase) withSource(src string) vmTestCase {
	vmt.src = src
	return vmt
}

func (vmt vmTestCase) withInput(input string) vmTestCase {
	vmt.input = input
	return vmt
}

func (vmt vmTestCase) withOptions(opts ...VMOption) vmTestCase {
	vmt.opts = append(vmt.opts, opts...)
	return vmt
}

func (vmt vmTestCase) withTimeout(d time.Duration) vmTestCase {
	vmt.timeout = d
	return vmt
}

func (vmt vmTestCase) expectOutput(output string) vmTestCase {
	vmt.wantOutput = output
	return vmt
}

// expectTape expects the used tape prefix (up to the cursor or the last
// nonzero cell) after the run.
func (vmt vmTestCase) expectTape(cells ...byte) vmTestCase {
	vmt.wantTape = cells
	return vmt
}

func (vmt vmTestCase) expectPos(pos int) vmTestCase {
	vmt.wantPos, vmt.checkPos = pos, true
	return vmt
}

func (vmt vmTestCase) expectError(err error) vmTestCase {
	vmt.wantErr = err
	return vmt
}

func (vmt vmTestCase) run(t *testing.T) {
	prog := mustParse(t, vmt.src)

	var out bytes.Buffer
	opts := []VMOption{
		WithInput(strings.NewReader(vmt.input)),
		WithOutput(&out),
	}
	opts = append(opts, vmt.opts...)
	vm := New(opts...)

	ctx := context.Background()
	if vmt.timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, vmt.timeout)
		defer cancel()
	}

	err := vm.Run(ctx, prog)
	if vmt.wantErr != nil {
		require.Error(t, err, "expected a run error")
		assert.ErrorIs(t, err, vmt.wantErr)
	} else {
		require.NoError(t, err, "unexpected run error")
	}

	assert.Equal(t, vmt.wantOutput, out.String(), "expected output")
	if vmt.wantTape != nil {
		assert.Equal(t, vmt.wantTape, vm.tape.Used(), "expected used tape prefix")
	}
	if vmt.checkPos {
		assert.Equal(t, vmt.wantPos, vm.tape.Pos(), "expected cursor position")
	}
}

func Test_VM(t *testing.T) {
	vmTestCases{
		vmTest("empty program").
			withSource("").
			expectOutput("").
			expectTape(0),

		vmTest("increment").
			withSource("+++").
			expectTape(3).
			expectPos(0),

		vmTest("wraparound up").
			withSource(strings.Repeat("+", 256)).
			expectTape(0),

		vmTest("wraparound down").
			withSource("-").
			expectTape(255),

		vmTest("shifts move the cursor").
			withSource("+>++>+++").
			expectTape(1, 2, 3).
			expectPos(2),

		vmTest("output writes the current cell").
			withSource("++++++++[>++++++++<-]>.").
			expectOutput("@").
			expectTape(0, 64).
			expectPos(1),

		vmTest("input copies a byte to the current cell").
			withSource(",.").
			withInput("A").
			expectOutput("A").
			expectTape(65),

		vmTest("clear cell zeroes a loaded cell").
			withSource(strings.Repeat("+", 200) + "[-]").
			expectOutput("").
			expectTape(0),

		vmTest("loop runs until the cell drains").
			withSource("+++[>+<-]>.").
			expectOutput("\x03").
			expectTape(0, 3),

		vmTest("empty loop never entered is harmless").
			withSource("[]").
			expectTape(0),

		vmTest("loop body sees the moved cursor").
			withSource("+[>]").
			expectTape(1, 0).
			expectPos(1),

		vmTest("entered empty loop spins until the deadline").
			withSource("+[]").
			withTimeout(10 * time.Millisecond).
			expectError(context.DeadlineExceeded),

		vmTest("overflow at the right edge").
			withSource(">").
			withOptions(WithTapeSize(1)).
			expectError(tape.ErrOverflow),

		vmTest("overflow past the last valid cell").
			withSource("+>>").
			withOptions(WithTapeSize(2)).
			expectError(tape.ErrOverflow),

		vmTest("underflow at the left edge").
			withSource("<").
			expectError(tape.ErrUnderflow),

		vmTest("eof default zeroes the cell").
			withSource("+++,").
			expectTape(0),

		vmTest("eof all-ones saturates the cell").
			withSource("+++,").
			withOptions(WithEOFPolicy(EOFAllOnes)).
			expectTape(255),

		vmTest("eof unchanged leaves the cell").
			withSource("+++,").
			withOptions(WithEOFPolicy(EOFUnchanged)).
			expectTape(3),

		vmTest("eof error halts the run").
			withSource("+++,.").
			withOptions(WithEOFPolicy(EOFError)).
			expectOutput("").
			expectError(ErrInputExhausted),

		vmTest("input past eof still reads the stream first").
			withSource(",.,.").
			withInput("A").
			expectOutput("A\x00"),
	}.run(t)
}

func Test_VM_clearCellRepeatIsIdempotent(t *testing.T) {
	tree := prog(cmd(Increment, 5), cmd(ClearCell, 3))
	var out bytes.Buffer
	vm := New(WithOutput(&out), WithTapeSize(4))
	require.NoError(t, vm.Run(context.Background(), tree))
	assert.Equal(t, []byte{0}, vm.tape.Used())
	assert.Equal(t, "", out.String())
}

func Test_VM_deterministic(t *testing.T) {
	const src = "++++++++[>++++++++<-]>+.-."
	tree := mustParse(t, src)

	exec := func() (string, []byte) {
		var out bytes.Buffer
		vm := New(WithInput(strings.NewReader("")), WithOutput(&out))
		require.NoError(t, vm.Run(context.Background(), tree))
		return out.String(), vm.tape.Used()
	}

	out1, tape1 := exec()
	out2, tape2 := exec()
	assert.Equal(t, out1, out2, "same program, same input, same output")
	assert.Equal(t, tape1, tape2, "same program, same input, same final tape")
}

// writeOnly hides bytes.Buffer's buffer methods so the VM's output plumbing
// buffers writes and must flush them.
type writeOnly struct{ buf bytes.Buffer }

func (w *writeOnly) Write(p []byte) (int, error) { return w.buf.Write(p) }

func Test_VM_haltFlushesBufferedOutput(t *testing.T) {
	var out writeOnly
	vm := New(WithOutput(&out))
	err := vm.Run(context.Background(), mustParse(t, "+.<"))
	assert.ErrorIs(t, err, tape.ErrUnderflow)
	assert.Equal(t, "\x01", out.buf.String(), "output before the halt must be flushed")
}

func Test_VM_tee(t *testing.T) {
	var out, tee bytes.Buffer
	vm := New(WithOutput(&out), WithTee(&tee))
	require.NoError(t, vm.Run(context.Background(), mustParse(t, "++++++++[>++++++++<-]>.")))
	assert.Equal(t, "@", out.String())
	assert.Equal(t, "@", tee.String())
}

func Test_VM_trace(t *testing.T) {
	var lines []string
	vm := New(WithLogf(func(mess string, args ...interface{}) {
		lines = append(lines, strings.TrimSpace(sprintf(mess, args...)))
	}))
	require.NoError(t, vm.Run(context.Background(), mustParse(t, "++>")))
	require.NotEmpty(t, lines)
	assert.Contains(t, lines, "@0 + x2")
	assert.Contains(t, lines, "@0 > x1")
}

func Test_VM_dump(t *testing.T) {
	vm := New(WithTapeSize(8))
	require.NoError(t, vm.Run(context.Background(), mustParse(t, "+++>++")))

	var lines []string
	vm.Dump(func(mess string, args ...interface{}) {
		lines = append(lines, sprintf(mess, args...))
	})
	require.NotEmpty(t, lines)
	assert.Equal(t, "# Tape Dump", lines[0])
	assert.Contains(t, lines[1], "cursor: 1 of 8")
	assert.Contains(t, strings.Join(lines, "\n"), "03 02")
}

func Test_VM_dumpBeforeRun(t *testing.T) {
	called := false
	New().Dump(func(string, ...interface{}) { called = true })
	assert.False(t, called, "dump before any run must be a no-op")
}
