package gobf

import (
	"errors"
	"fmt"
	"io"

	"gobf/internal/source"
)

// ErrUnterminatedLoop reports a '[' with no matching ']' before end of input.
// It is only returned under Strict; by default the parser treats end of input
// as an implicit close, matching the language's customary leniency.
var ErrUnterminatedLoop = errors.New("unterminated loop")

// ParseOption configures a single Parse call.
type ParseOption interface{ apply(p *parser) }

type parseOptionFunc func(p *parser)

func (f parseOptionFunc) apply(p *parser) { f(p) }

// Strict makes Parse fail with ErrUnterminatedLoop instead of implicitly
// closing loops left open at end of input.
func Strict() ParseOption {
	return parseOptionFunc(func(p *parser) { p.strict = true })
}

// WithName labels source locations in parse errors, typically with the input
// file path.
func WithName(name string) ParseOption {
	return parseOptionFunc(func(p *parser) { p.name = name })
}

// Parse reads program text from r into a tree.
//
// Bytes outside the symbol set `+ - < > , . [ ]` are comments and are
// skipped. Runs of identical primitive symbols collapse into a single
// CommandNode carrying the run length. A loop body consisting of exactly one
// Increment or Decrement node is rewritten to ClearCell. A stray ']' at the
// top level ends the program, discarding the rest of the stream.
func Parse(r io.Reader, opts ...ParseOption) (*Program, error) {
	var p parser
	for _, opt := range opts {
		opt.apply(&p)
	}
	p.sc = source.NewScanner(p.name, r)
	children, err := p.block(0)
	if err != nil {
		return nil, err
	}
	return &Program{Children: children}, nil
}

type parser struct {
	sc     *source.Scanner
	name   string
	strict bool
	opens  []source.Location // unmatched '[' locations, innermost last
}

// block parses one container body: the whole program at depth 0, a loop body
// otherwise. The matching ']' is consumed before returning.
func (p *parser) block(depth int) ([]Node, error) {
	var children []Node
	for {
		b, err := p.sc.ReadByte()
		if err == io.EOF {
			if depth > 0 && p.strict {
				loc := p.opens[len(p.opens)-1]
				return nil, fmt.Errorf("%w: '[' at %v never closed", ErrUnterminatedLoop, loc)
			}
			return children, nil
		} else if err != nil {
			return nil, err
		}

		switch b {
		case '[':
			p.opens = append(p.opens, p.sc.Loc())
			body, err := p.block(depth + 1)
			if err != nil {
				return nil, err
			}
			p.opens = p.opens[:len(p.opens)-1]
			children = append(children, foldLoop(body))

		case ']':
			return children, nil

		default:
			if _, ok := commandFor(b); ok {
				n, err := p.runLength(b)
				if err != nil {
					return nil, err
				}
				children = append(children, n)
			}
		}
	}
}

// runLength consumes all bytes identical to b immediately following it,
// producing one leaf for the whole run.
func (p *parser) runLength(b byte) (*CommandNode, error) {
	repeat := 1
	for {
		nb, err := p.sc.ReadByte()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if nb != b {
			p.sc.Unread()
			break
		}
		repeat++
	}
	return NewCommandNode(b, repeat)
}

// foldLoop applies the clear-cell rewrite: `[-]` and `[+]` (at any run
// length) always zero the current cell, so they become a single ClearCell
// leaf. Nested loops are parsed bottom-up, so an inner loop is already folded
// before its parent's single-child check runs here.
func foldLoop(body []Node) Node {
	if len(body) == 1 {
		if cn, ok := body[0].(*CommandNode); ok && (cn.Cmd == Increment || cn.Cmd == Decrement) {
			return &CommandNode{Cmd: ClearCell, Repeat: 1}
		}
	}
	return &Loop{Children: body}
}
