package auth

import "sync"

// Event describes an auth-state transition.
type Event struct {
	UserID   string
	SignedIn bool
}

// Handler receives auth-state events.
type Handler func(Event)

// Notifier is the explicit auth-state-change subscription surface. Subscribe
// returns an unsubscribe function; callers must invoke it on teardown to
// avoid handler leaks.
type Notifier struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]Handler
}

func NewNotifier() *Notifier {
	return &Notifier{handlers: make(map[int]Handler)}
}

func (n *Notifier) Subscribe(handler Handler) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.handlers[id] = handler

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.handlers, id)
	}
}

func (n *Notifier) Notify(event Event) {
	n.mu.Lock()
	handlers := make([]Handler, 0, len(n.handlers))
	for _, handler := range n.handlers {
		handlers = append(handlers, handler)
	}
	n.mu.Unlock()

	for _, handler := range handlers {
		handler(event)
	}
}
