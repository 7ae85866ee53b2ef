package gobf

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// progExpect pairs a testdata program with its input and expected output;
// see expects_test.go for the table.
type progExpect struct {
	file   string
	input  string
	output string
}

func Test_programs(t *testing.T) {
	require.NotEmpty(t, progExpects, "expectation table must not be empty")
	for _, pe := range progExpects {
		t.Run(filepath.Base(pe.file), func(t *testing.T) {
			src, err := os.ReadFile(pe.file)
			require.NoError(t, err)

			tree, err := Parse(bytes.NewReader(src), WithName(pe.file), Strict())
			require.NoError(t, err)

			var out bytes.Buffer
			vm := New(WithInput(strings.NewReader(pe.input)), WithOutput(&out))
			require.NoError(t, vm.Run(context.Background(), tree))
			assert.Equal(t, pe.output, out.String())

			again, err := Parse(strings.NewReader(Print(tree)))
			require.NoError(t, err)
			assert.Equal(t, tree, again, "printed source must re-parse to the same tree")
		})
	}
}
