package shell

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"smallsh/internal/parser"
)

// Exit codes recorded for a foreground command that never gets to run,
// matching what the child itself would have exited with: 1 for a
// failed path lookup or redirection open, 2 for a start failure after
// setup succeeded.
const (
	launchFailExit = 1
	startFailExit  = 2
)

// launch starts cmd as an external command and returns its pid. It
// never waits; foreground waiting and background registration are the
// dispatcher's responsibility.
func (s *Shell) launch(cmd *parser.Command, background bool) (int, error) {
	path, err := exec.LookPath(cmd.Program)
	if err != nil {
		if !background {
			s.lastStatus.recordExit(launchFailExit)
		}
		return 0, fmt.Errorf("%s: command not found", cmd.Program)
	}

	sio, err := openStdio(cmd, background)
	if err != nil {
		if !background {
			s.lastStatus.recordExit(launchFailExit)
		}
		return 0, err
	}
	defer sio.closeAll()

	child := &exec.Cmd{
		Path:   path,
		Args:   cmd.Args,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	if sio.in != nil {
		child.Stdin = sio.in
	}
	if sio.out != nil {
		child.Stdout = sio.out
	}
	if background {
		// Own process group, so terminal-generated SIGINT and SIGTSTP
		// stay with the shell and its foreground child.
		child.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	}

	if err := child.Start(); err != nil {
		if !background {
			s.lastStatus.recordExit(startFailExit)
		}
		return 0, fmt.Errorf("start %s: %w", cmd.Program, err)
	}

	s.log.Debug().
		Int("pid", child.Process.Pid).
		Str("program", cmd.Program).
		Bool("background", background).
		Msg("launched")
	return child.Process.Pid, nil
}
