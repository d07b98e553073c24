package cmd

import "context"

// Middleware wraps a command (e.g. logging, timing).
type Middleware func(Command) Command

// Apply applies middlewares in order; the last in the list is the outermost.
func Apply(c Command, mws ...Middleware) Command {
	for _, mw := range mws {
		c = mw(c)
	}
	return c
}

// Wrap returns a copy of c that runs run instead of c.Run. Label, help and
// permission are kept, so the wrapped command dispatches exactly like c.
func Wrap(c Command, run func(ctx context.Context, inv *Invocation) error) Command {
	c.Run = run
	return c
}
