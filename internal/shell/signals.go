package shell

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

const (
	enterForegroundOnlyMsg = "Entering foreground-only mode (& is now ignored)\n"
	exitForegroundOnlyMsg  = "Exiting foreground-only mode\n"
)

func (s *Shell) setupSignalHandling() {
	signal.Notify(s.signalChan, unix.SIGINT, unix.SIGTSTP, unix.SIGCHLD)
	go s.handleSignals()
}

func (s *Shell) stopSignalHandling() {
	signal.Stop(s.signalChan)
	close(s.signalChan)
	s.signalChan = make(chan os.Signal, 16)
}

func (s *Shell) handleSignals() {
	for sig := range s.signalChan {
		switch sig {
		case unix.SIGINT:
			// The shell ignores interrupts. A foreground child shares
			// the terminal's process group and takes the default
			// action; background children sit in their own group and
			// never see the signal.
		case unix.SIGTSTP:
			s.toggleForegroundOnly()
		case unix.SIGCHLD:
			s.reaper.reapAll()
		}
	}
}

// toggleForegroundOnly flips the mode and emits the fixed notice as a
// single unbuffered write.
func (s *Shell) toggleForegroundOnly() {
	if s.foregroundOnly.CompareAndSwap(false, true) {
		s.out.Write([]byte(enterForegroundOnlyMsg))
	} else {
		s.foregroundOnly.Store(false)
		s.out.Write([]byte(exitForegroundOnlyMsg))
	}
	s.log.Info().Bool("foreground_only", s.foregroundOnly.Load()).Msg("mode toggled")
}
