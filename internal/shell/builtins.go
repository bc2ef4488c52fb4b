package shell

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"smallsh/internal/parser"
)

// executeBuiltin runs cmd in-process if it names a builtin. The first
// return value reports whether the command was handled.
func (s *Shell) executeBuiltin(cmd *parser.Command) (bool, error) {
	switch cmd.Program {
	case "exit":
		s.exit()
		return true, nil
	case "cd":
		return true, s.changeDirectory(cmd.Args[1:])
	case "status":
		fmt.Fprintf(s.out, "%s\n", s.lastStatus.String())
		return true, nil
	case "history":
		s.showHistory()
		return true, nil
	case "jobs":
		s.listJobs()
		return true, nil
	default:
		return false, nil
	}
}

// exit signals every tracked background job and stops the loop. Jobs
// are not reaped here; process exit releases them.
func (s *Shell) exit() {
	s.jobs.Each(func(pid int) {
		unix.Kill(pid, unix.SIGTERM)
	})
	s.quit = true
	s.log.Info().Msg("exit")
}

// changeDirectory implements cd: bare cd goes to the home directory.
// Arguments beyond the first are ignored.
func (s *Shell) changeDirectory(args []string) error {
	dir := s.config.HomeDir
	if len(args) > 0 {
		dir = args[0]
	}
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("cd: %w", err)
	}
	return nil
}

func (s *Shell) showHistory() {
	for i, cmd := range s.history.GetAll() {
		fmt.Fprintf(s.out, "%d: %s\n", i+1, cmd)
	}
}

func (s *Shell) listJobs() {
	for _, pid := range s.jobs.Pids() {
		fmt.Fprintf(s.out, "background PID %d\n", pid)
	}
}
