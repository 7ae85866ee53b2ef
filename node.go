package gobf

import (
	"errors"
	"fmt"
)

// Command identifies one primitive operation.
type Command uint8

const (
	Increment  Command = iota // +
	Decrement                 // -
	ShiftLeft                 // <
	ShiftRight                // >
	Input                     // ,
	Output                    // .
	ClearCell                 // synthesized by the parser, never read from input
)

// String returns the source form of the command; ClearCell renders as the
// idiom it replaced.
func (c Command) String() string {
	switch c {
	case Increment:
		return "+"
	case Decrement:
		return "-"
	case ShiftLeft:
		return "<"
	case ShiftRight:
		return ">"
	case Input:
		return ","
	case Output:
		return "."
	case ClearCell:
		return "[-]"
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

// commandFor maps a source byte to its primitive command.
func commandFor(b byte) (Command, bool) {
	switch b {
	case '+':
		return Increment, true
	case '-':
		return Decrement, true
	case '<':
		return ShiftLeft, true
	case '>':
		return ShiftRight, true
	case ',':
		return Input, true
	case '.':
		return Output, true
	}
	return 0, false
}

// ErrInvalidCommand is returned by NewCommandNode for bytes outside the
// recognized symbol set, or for a repeat count below 1.
var ErrInvalidCommand = errors.New("invalid command")

// Visitor is the consumer side of the traversal protocol. A consumer gets one
// callback per concrete node kind; container callbacks are responsible for
// recursing over children in sequence order.
type Visitor interface {
	VisitCommand(n *CommandNode)
	VisitLoop(l *Loop)
	VisitProgram(p *Program)
}

// Node is the common capability of every tree node: dispatch a Visitor to the
// callback matching the node's concrete kind.
type Node interface {
	Accept(v Visitor)
}

// CommandNode is a leaf representing Repeat consecutive occurrences of the
// same primitive command. Repeat is always >= 1.
type CommandNode struct {
	Cmd    Command
	Repeat int
}

// NewCommandNode builds a leaf from a source byte and a run length, rejecting
// bytes outside the symbol set and non-positive run lengths.
func NewCommandNode(b byte, repeat int) (*CommandNode, error) {
	cmd, ok := commandFor(b)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCommand, b)
	}
	if repeat < 1 {
		return nil, fmt.Errorf("%w: repeat %v < 1", ErrInvalidCommand, repeat)
	}
	return &CommandNode{Cmd: cmd, Repeat: repeat}, nil
}

func (n *CommandNode) Accept(v Visitor) { v.VisitCommand(n) }

// Loop is a container whose children run repeatedly while the current tape
// cell is nonzero. An empty body is legal: if entered it never terminates,
// which is the language's own semantics.
type Loop struct {
	Children []Node
}

func (l *Loop) Accept(v Visitor) { v.VisitLoop(l) }

// Program is the root of a parsed tree. It exclusively owns its subtree and
// is immutable once the parser returns it, so any number of consumers may
// traverse it in any order.
type Program struct {
	Children []Node
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }
