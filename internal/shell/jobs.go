package shell

import "sync"

// MaxJobs is the hard capacity of the job table. Background launches
// beyond it still run; they are simply never tracked or announced.
const MaxJobs = 100

// JobTable is a fixed-size arena of background pids. A slot keeps its
// index for the lifetime of an entry; empty slots hold zero. The lock
// stands in for the signal masking the table would need in a
// handler-based design: the reaper goroutine and the dispatcher both
// mutate it.
type JobTable struct {
	mu    sync.Mutex
	slots [MaxJobs]int
}

// Insert stores pid in the first free slot and reports whether the pid
// is now tracked. A full table drops the pid silently.
func (t *JobTable) Insert(pid int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.slots {
		if t.slots[i] == 0 {
			t.slots[i] = pid
			return true
		}
	}
	return false
}

// Remove clears the slot holding pid and reports whether it was
// tracked.
func (t *JobTable) Remove(pid int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.slots {
		if t.slots[i] == pid {
			t.slots[i] = 0
			return true
		}
	}
	return false
}

// Pids returns the tracked pids in slot order.
func (t *JobTable) Pids() []int {
	t.mu.Lock()
	defer t.mu.Unlock()

	var pids []int
	for _, pid := range t.slots {
		if pid != 0 {
			pids = append(pids, pid)
		}
	}
	return pids
}

// Each calls fn for every tracked pid while holding the table lock.
func (t *JobTable) Each(fn func(pid int)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, pid := range t.slots {
		if pid != 0 {
			fn(pid)
		}
	}
}

func (t *JobTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := 0
	for _, pid := range t.slots {
		if pid != 0 {
			n++
		}
	}
	return n
}
