package gobf

import (
	"fmt"
	"io"
	"strings"

	"gobf/internal/flushio"
	"gobf/internal/tape"
)

// CompileOption configures a single CompileC call.
type CompileOption interface{ apply(c *compiler) }

type compileOptionFunc func(c *compiler)

func (f compileOptionFunc) apply(c *compiler) { f(c) }

// CompileTapeSize sets the cell count of the emitted tape array.
func CompileTapeSize(size int) CompileOption {
	return compileOptionFunc(func(c *compiler) { c.tapeSize = size })
}

// CompileC translates prog into a freestanding C translation unit: a tape
// array, a cell pointer, and one statement per command occurrence, with loops
// becoming `while (*p) { ... }`. Cell arithmetic wraps the same way the VM's
// does, since the cells are unsigned char, so the compiled program's
// observable output matches an evaluated run. Statements are emitted Repeat
// times apiece (once for ClearCell); no further rewriting happens here.
func CompileC(w io.Writer, prog *Program, opts ...CompileOption) error {
	c := compiler{
		out:      flushio.NewWriteFlusher(w),
		tapeSize: tape.DefaultSize,
	}
	for _, opt := range opts {
		opt.apply(&c)
	}
	prog.Accept(&c)
	return c.out.Flush()
}

type compiler struct {
	out      flushio.WriteFlusher
	tapeSize int
	depth    int
}

func (c *compiler) line(stmt string) {
	fmt.Fprintf(c.out, "%s%s\n", strings.Repeat("\t", c.depth), stmt)
}

func (c *compiler) VisitCommand(n *CommandNode) {
	var stmt string
	reps := n.Repeat
	switch n.Cmd {
	case Increment:
		stmt = "++*p;"
	case Decrement:
		stmt = "--*p;"
	case ShiftLeft:
		stmt = "--p;"
	case ShiftRight:
		stmt = "++p;"
	case Input:
		stmt = "*p = (unsigned char)getchar();"
	case Output:
		stmt = "putchar(*p);"
	case ClearCell:
		stmt = "*p = 0;"
		reps = 1
	}
	for i := 0; i < reps; i++ {
		c.line(stmt)
	}
}

func (c *compiler) VisitLoop(l *Loop) {
	c.line("while (*p) {")
	c.depth++
	for _, child := range l.Children {
		child.Accept(c)
	}
	c.depth--
	c.line("}")
}

func (c *compiler) VisitProgram(p *Program) {
	fmt.Fprintf(c.out, "#include <stdio.h>\n")
	fmt.Fprintf(c.out, "\n")
	fmt.Fprintf(c.out, "static unsigned char tape[%d];\n", c.tapeSize)
	fmt.Fprintf(c.out, "\n")
	fmt.Fprintf(c.out, "int main(void) {\n")
	c.depth = 1
	c.line("unsigned char *p = tape;")
	for _, child := range p.Children {
		child.Accept(c)
	}
	c.line("return 0;")
	fmt.Fprintf(c.out, "}\n")
}
