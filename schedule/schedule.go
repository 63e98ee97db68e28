package schedule

import (
	"sort"
	"sync"
	"time"
)

// Task represents a scheduled function
type Task interface {
	// Cancel stops the task, returns false if it already ran or was cancelled
	Cancel() bool
}

// Scheduler runs functions after a delay
type Scheduler interface {
	After(delay time.Duration, fn func()) Task
	Now() time.Time
}

// Timer is a wall-clock scheduler
type Timer struct {
	pending sync.WaitGroup
}

type timerTask struct {
	timer *time.Timer
	once  sync.Once
	done  func()
}

func (t *timerTask) Cancel() bool {
	if !t.timer.Stop() {
		return false
	}
	t.once.Do(t.done)
	return true
}

// After schedules fn
func (s *Timer) After(delay time.Duration, fn func()) Task {
	s.pending.Add(1)
	task := &timerTask{done: s.pending.Done}
	task.timer = time.AfterFunc(delay, func() {
		defer task.once.Do(task.done)
		fn()
	})
	return task
}

// Now returns current time
func (s *Timer) Now() time.Time {
	return time.Now()
}

// Wait blocks until every scheduled task ran or was cancelled
func (s *Timer) Wait() {
	s.pending.Wait()
}

// NewTimer creates a wall-clock scheduler
func NewTimer() *Timer {
	return &Timer{}
}

// Manual is a virtual time scheduler
type Manual struct {
	mu    sync.Mutex
	now   time.Time
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	owner     *Manual
	seq       int
	due       time.Time
	fn        func()
	cancelled bool
	ran       bool
}

func (t *manualTask) Cancel() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	if t.ran || t.cancelled {
		return false
	}
	t.cancelled = true
	t.owner.remove(t)
	return true
}

// After schedules fn at now+delay
func (m *Manual) After(delay time.Duration, fn func()) Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	task := &manualTask{owner: m, seq: m.seq, due: m.now.Add(delay), fn: fn}
	m.tasks = append(m.tasks, task)
	return task
}

// Now returns virtual time
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves virtual time forward running due tasks in due order
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()
	for {
		task := m.next(target)
		if task == nil {
			break
		}
		task.fn()
	}
	m.mu.Lock()
	m.now = target
	m.mu.Unlock()
}

func (m *Manual) next(target time.Time) *manualTask {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.tasks) == 0 {
		return nil
	}
	sort.SliceStable(m.tasks, func(i, j int) bool {
		if m.tasks[i].due.Equal(m.tasks[j].due) {
			return m.tasks[i].seq < m.tasks[j].seq
		}
		return m.tasks[i].due.Before(m.tasks[j].due)
	})
	task := m.tasks[0]
	if task.due.After(target) {
		return nil
	}
	m.tasks = m.tasks[1:]
	task.ran = true
	if task.due.After(m.now) {
		m.now = task.due
	}
	return task
}

func (m *Manual) remove(task *manualTask) {
	for i, candidate := range m.tasks {
		if candidate == task {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return
		}
	}
}

// Pending returns number of scheduled tasks
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// NewManual creates a virtual time scheduler starting at start
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}
