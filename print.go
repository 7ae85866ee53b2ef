package gobf

import "strings"

// Print reconstructs source text from a tree: each leaf emits its symbol
// Repeat times (ClearCell emits the `[-]` idiom it replaced), loops emit
// their bracketed bodies, and the program ends with a newline. The output
// re-parses to a structurally identical tree.
func Print(prog *Program) string {
	var pr printer
	prog.Accept(&pr)
	return pr.sb.String()
}

type printer struct {
	sb strings.Builder
}

func (pr *printer) VisitCommand(n *CommandNode) {
	pr.sb.WriteString(strings.Repeat(n.Cmd.String(), n.Repeat))
}

func (pr *printer) VisitLoop(l *Loop) {
	pr.sb.WriteByte('[')
	for _, child := range l.Children {
		child.Accept(pr)
	}
	pr.sb.WriteByte(']')
}

func (pr *printer) VisitProgram(p *Program) {
	for _, child := range p.Children {
		child.Accept(pr)
	}
	pr.sb.WriteByte('\n')
}
