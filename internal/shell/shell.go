package shell

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"smallsh/internal/config"
	"smallsh/internal/history"
	"smallsh/internal/parser"
)

// Shell owns the session state: the background job table, the last
// foreground status, and the foreground-only mode flag. The signal
// goroutine reaches that state only through the job table's lock, the
// reaper's pid-keyed channels, and the atomic mode flag.
type Shell struct {
	config  *config.Config
	history *history.History
	log     zerolog.Logger

	jobs           JobTable
	reaper         *reaper
	lastStatus     lastStatus
	foregroundOnly atomic.Bool

	signalChan chan os.Signal
	out        io.Writer
	pid        int
	quit       bool
}

func New(cfg *config.Config, log zerolog.Logger) (*Shell, error) {
	hist, err := history.New(afero.NewOsFs(), cfg.HistoryFile)
	if err != nil {
		return nil, fmt.Errorf("error initializing history: %w", err)
	}

	s := &Shell{
		config:     cfg,
		history:    hist,
		log:        log,
		signalChan: make(chan os.Signal, 16),
		out:        os.Stdout,
		pid:        os.Getpid(),
	}
	s.reaper = newReaper(&s.jobs, s.out, log)
	return s, nil
}

// Run reads lines until EOF or the exit builtin.
func (s *Shell) Run() error {
	s.setupSignalHandling()
	defer s.stopSignalHandling()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      s.config.Prompt,
		HistoryFile: s.config.HistoryFile,
	})
	if err != nil {
		return fmt.Errorf("error initializing readline: %w", err)
	}
	defer rl.Close()

	for !s.quit {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		s.history.Add(line)

		if err := s.Execute(line); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	return nil
}

// RunCommand executes a single command line and returns, for -c.
func (s *Shell) RunCommand(line string) error {
	s.setupSignalHandling()
	defer s.stopSignalHandling()
	return s.Execute(line)
}

// Execute dispatches one input line exactly once. Blank and comment
// lines do nothing, not even builtin lookup.
func (s *Shell) Execute(line string) error {
	cmd, err := parser.Parse(line, s.pid)
	if err != nil {
		return err
	}
	if cmd == nil {
		return nil
	}

	if handled, err := s.executeBuiltin(cmd); handled {
		return err
	}
	return s.runExternal(cmd)
}

// runExternal launches cmd and either waits for it (foreground) or
// registers it in the job table (background). Foreground-only mode
// overrides the command's own background request.
func (s *Shell) runExternal(cmd *parser.Command) error {
	background := cmd.Background && !s.foregroundOnly.Load()

	pid, err := s.launch(cmd, background)
	if err != nil {
		return err
	}

	if background {
		tracked := s.jobs.Insert(pid)
		fmt.Fprintf(s.out, "Background child PID %d is starting\n", pid)
		if tracked {
			// The child may have been reaped before it was tracked.
			s.reaper.flush(pid)
		} else {
			// Beyond capacity the job still runs, just untracked; its
			// status must not linger for a future pid to inherit.
			s.reaper.discard(pid)
		}
		return nil
	}

	ws := s.reaper.wait(pid)
	s.lastStatus.record(ws)
	if ws.Signaled() {
		fmt.Fprintf(s.out, "Terminated by signal %d\n", int(ws.Signal()))
	}
	return nil
}
