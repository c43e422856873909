package glow

import "sort"

// Snapshot is a point-in-time copy of every registered source, sorted by id.
// Callers must not modify it.
type Snapshot []Source

// Find returns the source with the given id.
func (s Snapshot) Find(id string) (Source, bool) {
	i := sort.Search(len(s), func(i int) bool { return s[i].ID >= id })
	if i < len(s) && s[i].ID == id {
		return s[i], true
	}
	return Source{}, false
}

// Registry owns the glow sources of one mounted grid. It is not safe for
// concurrent use; the render loop is its only caller.
type Registry struct {
	sources map[string]*Source
	sched   *Scheduler
}

// NewRegistry creates an empty registry with its own frame scheduler.
func NewRegistry() *Registry {
	r := &Registry{sources: make(map[string]*Source)}
	r.sched = NewScheduler(r.Snapshot)
	return r
}

// Scheduler returns the scheduler that publishes this registry's snapshots.
func (r *Registry) Scheduler() *Scheduler {
	return r.sched
}

// Register stores src under id, replacing any existing entry.
func (r *Registry) Register(id string, src Source) {
	src.ID = id
	r.sources[id] = &src
	r.sched.RequestFlush()
}

// Update applies p to the source registered under id. Unknown ids are
// ignored: a driver may tick once more after its source was removed.
func (r *Registry) Update(id string, p Patch) {
	if s, ok := r.sources[id]; ok {
		p.apply(s)
	}
	r.sched.RequestFlush()
}

// Unregister removes id. Removing an unknown id is not an error.
func (r *Registry) Unregister(id string) {
	delete(r.sources, id)
	r.sched.RequestFlush()
}

// Get returns a copy of the source registered under id.
func (r *Registry) Get(id string) (Source, bool) {
	s, ok := r.sources[id]
	if !ok {
		return Source{}, false
	}
	return *s, true
}

// Len returns the number of registered sources.
func (r *Registry) Len() int {
	return len(r.sources)
}

// Snapshot copies the current sources.
func (r *Registry) Snapshot() Snapshot {
	out := make(Snapshot, 0, len(r.sources))
	for _, s := range r.sources {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
