package shell

import (
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

// reaper is the single owner of child reaping. The signal goroutine
// feeds it on every SIGCHLD; the dispatcher blocks on wait for its one
// outstanding foreground child. Statuses for pids nobody has claimed
// yet are parked so a wait or job-table registration that races the
// reap still completes.
type reaper struct {
	jobs *JobTable
	out  io.Writer
	log  zerolog.Logger

	// mu guards the three maps and orders before jobs.mu: route holds
	// it across the job-table lookup so a concurrent wait, flush or
	// discard can never slip between the checks.
	mu        sync.Mutex
	waiters   map[int]chan unix.WaitStatus
	pending   map[int]unix.WaitStatus
	unclaimed map[int]bool
}

func newReaper(jobs *JobTable, out io.Writer, log zerolog.Logger) *reaper {
	return &reaper{
		jobs:      jobs,
		out:       out,
		log:       log,
		waiters:   make(map[int]chan unix.WaitStatus),
		pending:   make(map[int]unix.WaitStatus),
		unclaimed: make(map[int]bool),
	}
}

// reapAll drains every child the kernel has ready. SIGCHLD coalesces,
// so a single delivery may stand for several terminated children.
func (r *reaper) reapAll() {
	for {
		var ws unix.WaitStatus
		pid, err := unix.Wait4(-1, &ws, unix.WNOHANG|unix.WUNTRACED, nil)
		if err != nil || pid <= 0 {
			return
		}
		if ws.Stopped() {
			// Children treat the terminal-stop signal as ignored; a
			// stop that got through anyway is undone by putting the
			// child straight back to work, so a foreground wait can
			// never hang on a stopped child.
			unix.Kill(pid, unix.SIGCONT)
			continue
		}
		r.route(pid, ws)
	}
}

// route hands a reaped status to whoever is responsible for pid: a
// blocked foreground wait, the job table, or the pending map when
// neither has claimed it yet. The whole decision happens under r.mu.
// lastStatus is never written here; that is the dispatcher's job after
// its wait returns.
func (r *reaper) route(pid int, ws unix.WaitStatus) {
	r.mu.Lock()
	if ch, ok := r.waiters[pid]; ok {
		delete(r.waiters, pid)
		r.mu.Unlock()
		ch <- ws
		return
	}
	if r.unclaimed[pid] {
		delete(r.unclaimed, pid)
		r.mu.Unlock()
		return
	}
	tracked := r.jobs.Remove(pid)
	if !tracked {
		r.pending[pid] = ws
	}
	r.mu.Unlock()

	if tracked {
		r.announce(pid, ws)
		r.log.Debug().Int("pid", pid).Msg("reaped background job")
	}
}

// wait blocks until pid has been reaped and returns its status.
// Exactly one foreground wait is outstanding at a time.
func (r *reaper) wait(pid int) unix.WaitStatus {
	r.mu.Lock()
	if ws, ok := r.pending[pid]; ok {
		delete(r.pending, pid)
		r.mu.Unlock()
		return ws
	}
	ch := make(chan unix.WaitStatus, 1)
	r.waiters[pid] = ch
	r.mu.Unlock()

	return <-ch
}

// flush re-routes a status that arrived before pid made it into the
// job table, so the job is still announced.
func (r *reaper) flush(pid int) {
	r.mu.Lock()
	ws, ok := r.pending[pid]
	if ok {
		delete(r.pending, pid)
	}
	r.mu.Unlock()

	if ok {
		r.route(pid, ws)
	}
}

// discard gives up any claim on an over-capacity job's status: one
// already parked is forgotten, one still to come is dropped on
// arrival. Without this a recycled pid could inherit the stale status.
func (r *reaper) discard(pid int) {
	r.mu.Lock()
	if _, ok := r.pending[pid]; ok {
		delete(r.pending, pid)
	} else {
		r.unclaimed[pid] = true
	}
	r.mu.Unlock()
}

// announce reports a finished background job. One pre-formatted Write
// keeps the message whole even when it lands mid-prompt.
func (r *reaper) announce(pid int, ws unix.WaitStatus) {
	var msg string
	if ws.Signaled() {
		msg = fmt.Sprintf("Background child PID %d is terminated by signal %d\n", pid, int(ws.Signal()))
	} else {
		msg = fmt.Sprintf("Background child PID %d is done with exit status %d\n", pid, ws.ExitStatus())
	}
	r.out.Write([]byte(msg))
}
