package gobf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Print(t *testing.T) {
	for _, tc := range []struct {
		name string
		tree *Program
		want string
	}{
		{"empty program", prog(), "\n"},
		{"repeat expands", prog(cmd(Increment, 4)), "++++\n"},
		{"all primitives",
			prog(cmd(Increment, 1), cmd(Decrement, 1), cmd(ShiftLeft, 1),
				cmd(ShiftRight, 1), cmd(Input, 1), cmd(Output, 1)),
			"+-<>,.\n"},
		{"clear cell prints as idiom", prog(cmd(ClearCell, 1)), "[-]\n"},
		{"clear cell repeat prints idiom repeatedly", prog(cmd(ClearCell, 2)), "[-][-]\n"},
		{"loop brackets", prog(loop(cmd(Decrement, 1), cmd(ShiftRight, 1))), "[->]\n"},
		{"empty loop", prog(loop()), "[]\n"},
		{"nested", prog(loop(loop(cmd(Increment, 2)))), "[[++]]\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Print(tc.tree))
		})
	}
}
