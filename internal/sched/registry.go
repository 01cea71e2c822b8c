// internal/sched/registry.go

package sched

import "sync"

// Registry is the mutable set of tasks a caller edits between runs.
// Strategies never see it directly; they work on Snapshot copies.
type Registry struct {
	mu      sync.RWMutex
	order   []TaskID
	tasks   map[TaskID]Task
	results map[TaskID]ScheduleResult
}

func NewRegistry() *Registry {
	return &Registry{
		tasks:   make(map[TaskID]Task),
		results: make(map[TaskID]ScheduleResult),
	}
}

// Upsert inserts t or replaces the task with the same id in place.
// Any stored result for that id is discarded. An invalid task leaves the
// registry untouched.
func (r *Registry) Upsert(t Task) error {
	if err := t.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[t.ID]; !ok {
		r.order = append(r.order, t.ID)
	}
	r.tasks[t.ID] = t
	delete(r.results, t.ID)
	return nil
}

// Clear removes every task and result.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.order = nil
	r.tasks = make(map[TaskID]Task)
	r.results = make(map[TaskID]ScheduleResult)
}

// Snapshot returns a copy of the tasks in insertion order.
func (r *Registry) Snapshot() []Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Task, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.tasks[id])
	}
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

func (r *Registry) Get(id TaskID) (Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tasks[id]
	return t, ok
}

// Record stores the results of a finished run. Results are kept only for
// tasks that are still registered with the definition the run saw, so an
// edit made while the run was in flight is never overwritten by stale data.
func (r *Registry) Record(o *Outcome) {
	if o == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range o.Tasks {
		cur, ok := r.tasks[t.ID]
		if !ok || cur != t {
			continue
		}
		if res, ok := o.Results[t.ID]; ok {
			r.results[t.ID] = res
		}
	}
}

// Result returns the last recorded result for id.
func (r *Registry) Result(id TaskID) (ScheduleResult, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.results[id]
	return res, ok
}

// Results returns a copy of all recorded results.
func (r *Registry) Results() map[TaskID]ScheduleResult {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[TaskID]ScheduleResult, len(r.results))
	for id, res := range r.results {
		out[id] = res
	}
	return out
}
