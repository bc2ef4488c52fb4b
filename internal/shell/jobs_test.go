package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobTableInsertRemove(t *testing.T) {
	var table JobTable

	assert.True(t, table.Insert(100))
	assert.True(t, table.Insert(200))
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []int{100, 200}, table.Pids())

	assert.True(t, table.Remove(100))
	assert.False(t, table.Remove(100))
	assert.Equal(t, []int{200}, table.Pids())
}

func TestJobTableCapacity(t *testing.T) {
	var table JobTable

	for i := 0; i < MaxJobs; i++ {
		assert.True(t, table.Insert(1000+i))
	}
	assert.Equal(t, MaxJobs, table.Len())

	// The table never grows past capacity; extra pids are dropped.
	assert.False(t, table.Insert(9999))
	assert.Equal(t, MaxJobs, table.Len())
	assert.False(t, table.Remove(9999))
}

func TestJobTableReusesFreedSlots(t *testing.T) {
	var table JobTable

	table.Insert(1)
	table.Insert(2)
	table.Insert(3)
	table.Remove(2)

	assert.True(t, table.Insert(4))
	// First free slot, so 4 lands where 2 was.
	assert.Equal(t, []int{1, 4, 3}, table.Pids())
}

func TestJobTableEach(t *testing.T) {
	var table JobTable

	table.Insert(10)
	table.Insert(20)

	var seen []int
	table.Each(func(pid int) {
		seen = append(seen, pid)
	})
	assert.Equal(t, []int{10, 20}, seen)
}
