// Package history provides the navigation primitives a browsing session
// sits on: a current path, an entry stack with a movable cursor, and a
// signal that fires on user-driven movement through the stack.
//
// Pushing a new entry never fires the signal; only Back and Forward do.
// That split is what lets programmatic navigation and history traversal
// share one resolution path without feedback loops.
//
// The stack is not safe for concurrent use. Every caller runs on the
// program's single event goroutine.
package history

// Stack is an in-process navigation history. The zero value is not
// usable; create one with New.
type Stack struct {
	entries []string
	idx     int
	subs    []func(path string)
}

// New returns a history seeded with the session's starting path. There
// is always a current entry.
func New(start string) *Stack {
	return &Stack{entries: []string{start}}
}

// Current returns the path at the cursor. It is read fresh on every
// call; nothing upstream caches it.
func (s *Stack) Current() string {
	return s.entries[s.idx]
}

// Push appends a new entry after the cursor and moves the cursor onto
// it. Any forward entries are discarded, exactly like a browser visiting
// a new page from the middle of its history. Push never notifies
// subscribers.
func (s *Stack) Push(path string) {
	s.entries = append(s.entries[:s.idx+1], path)
	s.idx = len(s.entries) - 1
}

// Back moves the cursor one entry towards the start and reports whether
// it moved. At the oldest entry it is a silent no-op. On movement every
// subscriber is invoked synchronously with the new current path.
func (s *Stack) Back() bool {
	if s.idx == 0 {
		return false
	}
	s.idx--
	s.notify()
	return true
}

// Forward moves the cursor one entry towards the newest and reports
// whether it moved. At the newest entry it is a silent no-op. On
// movement every subscriber is invoked synchronously with the new
// current path.
func (s *Stack) Forward() bool {
	if s.idx >= len(s.entries)-1 {
		return false
	}
	s.idx++
	s.notify()
	return true
}

// CanBack reports whether Back would move.
func (s *Stack) CanBack() bool {
	return s.idx > 0
}

// CanForward reports whether Forward would move.
func (s *Stack) CanForward() bool {
	return s.idx < len(s.entries)-1
}

// Subscribe registers fn to run whenever the cursor moves through Back
// or Forward. Subscribers are called in registration order, on the
// caller's goroutine.
func (s *Stack) Subscribe(fn func(path string)) {
	s.subs = append(s.subs, fn)
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Position returns the 1-based cursor position, for display alongside Len.
func (s *Stack) Position() int {
	return s.idx + 1
}

func (s *Stack) notify() {
	path := s.Current()
	for _, fn := range s.subs {
		fn(path)
	}
}
