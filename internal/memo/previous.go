// Package memo keeps a one-step-lagged copy of a value between redraws.
package memo

// Previous remembers the value passed to the preceding Update. The zero value
// is ready to use and holds nothing.
type Previous[T comparable] struct {
	value T
	ok    bool
}

// Value returns the stored value and whether one has been stored yet.
func (p *Previous[T]) Value() (T, bool) {
	return p.value, p.ok
}

// Update stores v and returns what was stored before it.
func (p *Previous[T]) Update(v T) (T, bool) {
	old, ok := p.value, p.ok
	p.value, p.ok = v, true
	return old, ok
}
