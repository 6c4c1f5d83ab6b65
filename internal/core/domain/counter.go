package domain

// Counter wraps an integer that moves by exactly one per step.
// There are no bounds; overflow follows native int semantics.
type Counter struct {
	Value int
}

// NewCounter creates a counter starting at initial.
func NewCounter(initial int) *Counter {
	return &Counter{Value: initial}
}

// Increment adds one to the counter.
func (c *Counter) Increment() {
	c.Value++
}

// Decrement subtracts one from the counter.
func (c *Counter) Decrement() {
	c.Value--
}
