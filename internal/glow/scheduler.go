package glow

import "slices"

// Scheduler coalesces flush requests so that at most one snapshot is
// published per frame, no matter how many mutations happened in between.
type Scheduler struct {
	snapshot  func() Snapshot
	pending   bool
	subs      []subscriber
	nextSub   int
	published uint64
	last      Snapshot
}

type subscriber struct {
	id int
	fn func(Snapshot)
}

// NewScheduler returns a scheduler that takes snapshots with fn.
func NewScheduler(fn func() Snapshot) *Scheduler {
	return &Scheduler{snapshot: fn}
}

// RequestFlush marks a publication as due on the next frame. Repeated calls
// before that frame are no-ops.
func (s *Scheduler) RequestFlush() {
	s.pending = true
}

// Pending reports whether a flush is waiting for the next frame.
func (s *Scheduler) Pending() bool {
	return s.pending
}

// Frame runs at a frame boundary. If a flush is pending it clears the flag,
// takes one snapshot and hands it to every subscriber registered when the
// frame began, even if one of them cancels another.
func (s *Scheduler) Frame() bool {
	if !s.pending {
		return false
	}
	s.pending = false
	snap := s.snapshot()
	s.last = snap
	s.published++
	for _, sub := range slices.Clone(s.subs) {
		sub.fn(snap)
	}
	return true
}

// Subscribe registers fn for future publications. The returned func removes
// it again and may be called more than once.
func (s *Scheduler) Subscribe(fn func(Snapshot)) (cancel func()) {
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Published returns how many snapshots have been published.
func (s *Scheduler) Published() uint64 {
	return s.published
}

// Last returns the most recently published snapshot.
func (s *Scheduler) Last() Snapshot {
	return s.last
}
