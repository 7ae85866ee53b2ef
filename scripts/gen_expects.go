// Command gen_expects regenerates the golden expectation table for the
// testdata programs by evaluating each one.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"gobf"
)

func main() {
	flag.Parse()
	args := flag.Args()

	dir, outName := "testdata", "expects_test.go"
	if len(args) > 0 {
		dir = args[0]
	}
	if len(args) > 1 {
		outName = args[1]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	paths, err := filepath.Glob(filepath.Join(dir, "*.bf"))
	if err != nil {
		log.Fatalln(err)
	}
	sort.Strings(paths)

	type expect struct{ file, input, output string }
	expects := make([]expect, len(paths))

	eg, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		eg.Go(func() error {
			src, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			var input []byte
			if in, err := os.ReadFile(strings.TrimSuffix(path, ".bf") + ".in"); err == nil {
				input = in
			}

			tree, err := gobf.Parse(bytes.NewReader(src), gobf.WithName(path), gobf.Strict())
			if err != nil {
				return err
			}

			var out bytes.Buffer
			vm := gobf.New(gobf.WithInput(bytes.NewReader(input)), gobf.WithOutput(&out))
			if err := vm.Run(ctx, tree); err != nil {
				return fmt.Errorf("%v: %w", path, err)
			}

			expects[i] = expect{file: path, input: string(input), output: out.String()}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}

	var buf bytes.Buffer
	buf.WriteString("package gobf\n\n")
	fmt.Fprintf(&buf, "// @generated from %v\n\n", dir)
	fmt.Fprintf(&buf, "//go:generate go run scripts/gen_expects.go -- %v %v\n\n", dir, outName)
	buf.WriteString("var progExpects = []progExpect{\n")
	for _, e := range expects {
		fmt.Fprintf(&buf, "\t{file: %q, input: %q, output: %q},\n", e.file, e.input, e.output)
	}
	buf.WriteString("}\n")

	if err := os.WriteFile(outName, buf.Bytes(), 0o644); err != nil {
		log.Fatalln(err)
	}
}
