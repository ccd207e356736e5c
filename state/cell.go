package state

import "sync"

// cell is one independently lockable value. Reads and writes both take the lock.
type cell[T any] struct {
	mu sync.Mutex
	v  T
}

func (c *cell[T]) load() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.v
}

func (c *cell[T]) store(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.v = v
}

func (c *cell[T]) update(fn func(T) T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.v = fn(c.v)
}
