// Package resize tracks the size of the area a chart is drawn into.
package resize

import "sync"

type Size struct {
	Width, Height float64
}

// Observer holds the latest measured size and fans changes out to
// subscribers. Frontends feed it from whatever reports their layout.
type Observer struct {
	mu   sync.Mutex
	size *Size
	subs map[int]chan Size
	next int
}

func NewObserver() *Observer {
	return &Observer{subs: map[int]chan Size{}}
}

// Observe records a measurement. It returns true and notifies subscribers
// only when the size differs from the previous one.
func (o *Observer) Observe(width, height float64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	s := Size{width, height}
	if o.size != nil && *o.size == s {
		return false
	}
	o.size = &s
	for _, ch := range o.subs {
		select {
		case ch <- s:
		default:
			// slow subscriber, it will read the newer size from Dimensions
		}
	}
	return true
}

// Dimensions returns the last measured size, or nil before the first
// measurement.
func (o *Observer) Dimensions() *Size {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.size == nil {
		return nil
	}
	s := *o.size
	return &s
}

// Subscribe returns a channel of size changes and a function that ends the
// subscription and closes the channel.
func (o *Observer) Subscribe() (<-chan Size, func()) {
	o.mu.Lock()
	defer o.mu.Unlock()

	id := o.next
	o.next++
	ch := make(chan Size, 4)
	o.subs[id] = ch

	cancel := func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		if c, ok := o.subs[id]; ok {
			close(c)
			delete(o.subs, id)
		}
	}
	return ch, cancel
}
