package shell

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestWaitClaimsStatusReapedBeforeRegistration(t *testing.T) {
	s, _ := newTestShell(t)

	// The child was reaped before the dispatcher got to wait.
	s.reaper.route(7777, wsExit(3))

	ws := s.reaper.wait(7777)
	assert.Equal(t, 3, ws.ExitStatus())
}

func TestWaitNeverMissesARoutedStatus(t *testing.T) {
	s, _ := newTestShell(t)
	r := s.reaper

	// Race registration against routing; every wait must wake no
	// matter how the two interleave.
	for i := 0; i < 200; i++ {
		pid := 50000 + i
		got := make(chan unix.WaitStatus, 1)
		go func() { got <- r.wait(pid) }()
		go r.route(pid, wsExit(0))

		select {
		case ws := <-got:
			assert.True(t, ws.Exited())
		case <-time.After(2 * time.Second):
			t.Fatalf("foreground wait for pid %d never woke", pid)
		}
	}
}

func TestRouteAnnouncesJobTrackedDuringReap(t *testing.T) {
	s, out := newTestShell(t)

	// The status arrived before the dispatcher inserted the pid; the
	// dispatcher's flush must still produce the announcement and clear
	// the slot.
	s.reaper.route(8888, wsExit(0))
	s.jobs.Insert(8888)
	s.reaper.flush(8888)

	assert.Contains(t, out.String(), "Background child PID 8888 is done with exit status 0\n")
	assert.Zero(t, s.jobs.Len())
}

func TestDiscardDropsStatusOfUntrackedJob(t *testing.T) {
	s, _ := newTestShell(t)
	r := s.reaper

	// Status arrives before the dispatcher sees the full table.
	r.route(6001, wsExit(7))
	r.discard(6001)

	// Status arrives after.
	r.discard(6002)
	r.route(6002, wsExit(7))

	r.mu.Lock()
	pendingLen, unclaimedLen := len(r.pending), len(r.unclaimed)
	r.mu.Unlock()
	assert.Zero(t, pendingLen)
	assert.Zero(t, unclaimedLen)

	// A recycled pid must block in wait, not inherit a stale status.
	got := make(chan unix.WaitStatus, 1)
	go func() { got <- r.wait(6002) }()
	select {
	case <-got:
		t.Fatal("wait returned a stale status for a recycled pid")
	case <-time.After(200 * time.Millisecond):
	}

	r.route(6002, wsExit(0))
	assert.Equal(t, 0, (<-got).ExitStatus())
}
