/* Package gobf is a small toolchain for the Brainfuck language.

The language has eight primitive symbols: + - < > , . [ ] operating on a tape
of byte cells addressed by a movable cursor. Everything else in the input is
a comment.

The toolchain parses source text into a tree once, then drives that tree
through interchangeable consumers:

  - Print reconstructs source text,
  - a VM executes it against a bounds-checked tape,
  - CompileC translates it to C.

Parsing applies two peephole rewrites. Runs of identical symbols collapse
into one leaf carrying a repeat count, and the clear-cell idiom -- a loop
whose whole body is increments or decrements, like [-] or [+] -- becomes a
single "set cell to zero" leaf, since such a loop always ends with the cell
at zero.

Consumers and the tree meet only through the Visitor protocol: every node
dispatches to the callback matching its concrete kind, so new consumers can
be written without touching the node types.

The gobf command under cmd/gobf wires the pieces to files, stdin, and stdout.
*/
package gobf
