package board

import (
	"sort"
	"time"
)

// Scheduler defers a callback. Implementations must run fn on the goroutine
// that drives the board, never concurrently with it.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) (cancel func())
}

// Pending describes a task handed to the host for delivery.
type Pending struct {
	ID    int
	Delay time.Duration
}

type task struct {
	id        int
	due       time.Duration
	delay     time.Duration
	fn        func()
	cancelled bool
	taken     bool
}

// Deferred is a Scheduler that never starts goroutines. A host either drains
// new tasks with Take and calls Fire when their delay has elapsed, or drives a
// virtual clock with Advance.
type Deferred struct {
	now   time.Duration
	seq   int
	tasks []*task
}

func NewDeferred() *Deferred {
	return &Deferred{}
}

func (d *Deferred) Schedule(delay time.Duration, fn func()) (cancel func()) {
	d.seq++
	t := &task{id: d.seq, due: d.now + delay, delay: delay, fn: fn}
	d.tasks = append(d.tasks, t)

	return func() {
		if t.cancelled {
			return
		}
		t.cancelled = true
		d.remove(t.id)
	}
}

// Take returns the tasks scheduled since the previous call.
func (d *Deferred) Take() []Pending {
	var out []Pending
	for _, t := range d.tasks {
		if t.taken {
			continue
		}
		t.taken = true
		out = append(out, Pending{ID: t.id, Delay: t.delay})
	}
	return out
}

// Fire runs the task with the given id unless it was cancelled or already ran.
func (d *Deferred) Fire(id int) bool {
	for _, t := range d.tasks {
		if t.id == id {
			d.remove(id)
			t.fn()
			return true
		}
	}
	return false
}

// Advance moves the virtual clock forward and runs every task that became
// due, earliest first. It returns the number of tasks run.
func (d *Deferred) Advance(elapsed time.Duration) int {
	target := d.now + elapsed
	ran := 0
	for {
		next := d.nextDue(target)
		if next == nil {
			break
		}
		d.now = next.due
		d.remove(next.id)
		next.fn()
		ran++
	}
	d.now = target
	return ran
}

// Len reports the number of outstanding tasks.
func (d *Deferred) Len() int {
	return len(d.tasks)
}

func (d *Deferred) nextDue(limit time.Duration) *task {
	due := make([]*task, 0, len(d.tasks))
	for _, t := range d.tasks {
		if t.due <= limit {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].due < due[j].due
	})
	return due[0]
}

func (d *Deferred) remove(id int) {
	for i, t := range d.tasks {
		if t.id == id {
			d.tasks = append(d.tasks[:i], d.tasks[i+1:]...)
			return
		}
	}
}
