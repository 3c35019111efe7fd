// Command jwtree writes a random binary tree as JSON.  It shows how to drive
// a jsonwriter.Writer from a recursive data structure.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arnodel/jsonwriter"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

type node struct {
	value       int64
	left, right *node
}

// randomTree returns a complete tree of the given depth where each node holds
// a random value in [0, depth).  A depth of 0 gives the empty tree.
func randomTree(r *rand.Rand, depth int) *node {
	if depth <= 0 {
		return nil
	}
	return &node{
		value: int64(r.Intn(depth)),
		left:  randomTree(r, depth-1),
		right: randomTree(r, depth-1),
	}
}

// dumpTree writes n as nested {"value","left","right"} objects, with null for
// missing children.
func dumpTree(w *jsonwriter.Writer, n *node) error {
	if n == nil {
		return w.Null()
	}
	w.BeginObject()
	w.Key("value")
	w.Number(n.value)
	w.Key("left")
	dumpTree(w, n.left)
	w.Key("right")
	dumpTree(w, n.right)
	return w.EndObject()
}

func main() {
	// Do not handle SIGPIPE, we'll do it ourselves.
	signal.Ignore(syscall.SIGPIPE)

	var depth int
	var seed int64
	var colorizer *jsonwriter.Colorizer

	if isatty.IsTerminal(os.Stdout.Fd()) {
		colorizer = &jsonwriter.DefaultColorizer
	}

	flag.IntVar(&depth, "depth", 5, "depth of the tree")
	flag.Int64Var(&seed, "seed", 0, "random seed (0 means use the current time)")
	flag.BoolFunc("colors", "force using colors", func(s string) error {
		colorizer = &jsonwriter.DefaultColorizer
		return nil
	})
	flag.BoolFunc("nocolors", "disable colors", func(s string) error {
		colorizer = nil
		return nil
	})
	flag.Parse()

	if depth < 0 {
		fatalError("depth must not be negative\n")
	}
	if depth > jsonwriter.DefaultMaxDepth {
		fatalError("depth must be at most %d\n", jsonwriter.DefaultMaxDepth)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var stdout io.Writer = os.Stdout
	if colorizer != nil {
		stdout = colorable.NewColorableStdout()
	}

	tree := randomTree(rand.New(rand.NewSource(seed)), depth)
	if err := writeTree(stdout, tree, colorizer); err != nil {
		if errors.Is(err, syscall.EPIPE) {
			return
		}
		fatalError("error: %s\n", err)
	}
}

func writeTree(out io.Writer, tree *node, colorizer *jsonwriter.Colorizer) error {
	buf := bufio.NewWriter(out)
	w := jsonwriter.New(jsonwriter.NewWriterSink(buf), jsonwriter.WithColorizer(colorizer))
	if err := dumpTree(w, tree); err != nil {
		return err
	}
	buf.WriteByte('\n')
	return buf.Flush()
}

func fatalError(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, msg, args...)
	os.Exit(1)
}
