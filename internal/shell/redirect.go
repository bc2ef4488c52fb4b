package shell

import (
	"fmt"
	"os"

	"smallsh/internal/parser"
)

// stdio holds the files a child's standard streams are rebound to.
// Nil means inherit from the shell.
type stdio struct {
	in  *os.File
	out *os.File
}

// openStdio resolves cmd's standard streams. Background children
// default un-redirected streams to the null device so they never block
// on the terminal; explicit paths override that default. Input opens
// read-only and must exist; output is created or truncated with mode
// 0644.
func openStdio(cmd *parser.Command, background bool) (stdio, error) {
	var sio stdio

	inPath := cmd.InputPath
	outPath := cmd.OutputPath
	if background && inPath == "" {
		inPath = os.DevNull
	}
	if background && outPath == "" {
		outPath = os.DevNull
	}

	if inPath != "" {
		in, err := os.Open(inPath)
		if err != nil {
			return stdio{}, fmt.Errorf("cannot open %s for input: %w", inPath, err)
		}
		sio.in = in
	}

	if outPath != "" {
		out, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			sio.closeAll()
			return stdio{}, fmt.Errorf("cannot open %s for output: %w", outPath, err)
		}
		sio.out = out
	}

	return sio, nil
}

// closeAll releases the parent's copies of the descriptors; the child
// holds its own after Start.
func (s *stdio) closeAll() {
	if s.in != nil {
		s.in.Close()
	}
	if s.out != nil {
		s.out.Close()
	}
}
