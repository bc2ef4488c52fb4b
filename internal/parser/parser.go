// Package parser turns raw input lines into commands ready for
// dispatch.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Command is one parsed input line.
type Command struct {
	// Program is the executable name or builtin keyword; Args[0] is
	// always Program.
	Program string
	Args    []string

	// Redirection targets; empty means no redirection.
	InputPath  string
	OutputPath string

	// Background is set when the line ends with an & token.
	Background bool
}

// Parse builds a Command from line. Blank lines and comment lines
// (first non-space character '#') yield a nil Command and no error.
// Every $$ in the line expands to pid before tokenizing.
func Parse(line string, pid int) (*Command, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}

	line = strings.ReplaceAll(line, "$$", strconv.Itoa(pid))

	tokens, err := shellquote.Split(line)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if len(tokens) == 0 {
		return nil, nil
	}

	cmd := &Command{}
	for i := 0; i < len(tokens); i++ {
		switch tok := tokens[i]; {
		case tok == "<":
			i++
			if i == len(tokens) {
				return nil, fmt.Errorf("parse: missing input file after <")
			}
			cmd.InputPath = tokens[i]
		case tok == ">":
			i++
			if i == len(tokens) {
				return nil, fmt.Errorf("parse: missing output file after >")
			}
			cmd.OutputPath = tokens[i]
		case tok == "&" && i == len(tokens)-1:
			cmd.Background = true
		default:
			cmd.Args = append(cmd.Args, tok)
		}
	}

	if len(cmd.Args) == 0 {
		return nil, fmt.Errorf("parse: no command")
	}
	cmd.Program = cmd.Args[0]
	return cmd, nil
}
