package jsonwriter

type scopeKind uint8

const (
	objectScope scopeKind = iota
	arrayScope
)

func (k scopeKind) String() string {
	if k == objectScope {
		return "object"
	}
	return "array"
}

// A scope is an open container.  In an object, awaitingValue is set between
// a key and its value.  It is never set in an array.
type scope struct {
	kind          scopeKind
	first         bool
	awaitingValue bool
}

// scopeStack keeps track of open containers.  It grows on demand but never
// beyond its capacity.
type scopeStack struct {
	scopes   []scope
	capacity int
}

func newScopeStack(capacity int) scopeStack {
	initial := capacity
	if initial > 16 {
		initial = 16
	}
	return scopeStack{
		scopes:   make([]scope, 0, initial),
		capacity: capacity,
	}
}

func (s *scopeStack) len() int {
	return len(s.scopes)
}

func (s *scopeStack) full() bool {
	return len(s.scopes) >= s.capacity
}

// push must not be called when the stack is full.
func (s *scopeStack) push(kind scopeKind) {
	s.scopes = append(s.scopes, scope{kind: kind, first: true})
}

func (s *scopeStack) pop() {
	s.scopes = s.scopes[:len(s.scopes)-1]
}

// peek returns the top scope, or nil when no container is open.  The
// returned pointer is invalidated by the next push.
func (s *scopeStack) peek() *scope {
	l := len(s.scopes)
	if l == 0 {
		return nil
	}
	return &s.scopes[l-1]
}
