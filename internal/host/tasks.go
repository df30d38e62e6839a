package host

import "sync"

// TaskQueue is a FIFO of deferred callbacks.
type TaskQueue struct {
	mu    sync.Mutex
	tasks []func()
}

// Queue appends fn to the queue.
func (q *TaskQueue) Queue(fn func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.tasks = append(q.tasks, fn)
}

// Len returns the number of pending tasks.
func (q *TaskQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// Drain runs pending tasks in order until the queue is empty, including tasks
// queued by the tasks themselves. It returns the number of tasks run.
func (q *TaskQueue) Drain() int {
	n := 0
	for {
		q.mu.Lock()
		if len(q.tasks) == 0 {
			q.mu.Unlock()
			return n
		}
		fn := q.tasks[0]
		q.tasks[0] = nil
		q.tasks = q.tasks[1:]
		q.mu.Unlock()

		fn()
		n++
	}
}
