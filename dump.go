package gobf

import (
	"encoding/hex"
	"fmt"

	"gobf/internal/logio"
)

// Dump reports the machine state left by the last Run through logf: the
// cursor position and a hex dump of the tape prefix still in use.
func (vm *VM) Dump(logf func(mess string, args ...interface{})) {
	if vm.tape == nil || logf == nil {
		return
	}
	out := &logio.Writer{Logf: logf}
	defer out.Sync()

	fmt.Fprintf(out, "# Tape Dump\n")
	fmt.Fprintf(out, "  cursor: %v of %v\n", vm.tape.Pos(), vm.tape.Len())

	d := hex.Dumper(out)
	d.Write(vm.tape.Used())
	d.Close()
}
