package shell

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// lastStatus records how the most recent foreground command ended.
// Written only by the dispatcher after a foreground wait; the zero
// value reports "Exit status 0".
type lastStatus struct {
	signaled bool
	code     int
}

func (s *lastStatus) record(ws unix.WaitStatus) {
	if ws.Signaled() {
		s.signaled = true
		s.code = int(ws.Signal())
		return
	}
	s.signaled = false
	s.code = ws.ExitStatus()
}

// recordExit stores a plain exit code, used when a foreground launch
// fails before a child ever runs.
func (s *lastStatus) recordExit(code int) {
	s.signaled = false
	s.code = code
}

func (s *lastStatus) String() string {
	if s.signaled {
		return fmt.Sprintf("Terminated by signal %d", s.code)
	}
	return fmt.Sprintf("Exit status %d", s.code)
}
