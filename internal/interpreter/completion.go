package interpreter

import "sync"

// Completion is the single terminal outcome of a session.
// Only the first Resolve or Reject has an effect.
type Completion struct {
	once sync.Once
	done chan struct{}
	err  error
}

func NewCompletion() *Completion {
	return &Completion{done: make(chan struct{})}
}

// Resolve marks the session as successful. It reports whether this call settled the completion.
func (c *Completion) Resolve() bool {
	return c.settle(nil)
}

// Reject settles the completion with err. It reports whether this call settled the completion.
func (c *Completion) Reject(err error) bool {
	return c.settle(err)
}

func (c *Completion) settle(err error) bool {
	settled := false
	c.once.Do(func() {
		c.err = err
		settled = true
		close(c.done)
	})
	return settled
}

// Done is closed once the outcome is known.
func (c *Completion) Done() <-chan struct{} {
	return c.done
}

// Err returns the outcome. It is only meaningful after Done is closed.
func (c *Completion) Err() error {
	select {
	case <-c.done:
		return c.err
	default:
		return nil
	}
}
