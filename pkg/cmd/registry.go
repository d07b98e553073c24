package cmd

// Registry is a flat, ordered list of commands. It is filled at startup and
// only read afterwards, so lookups need no locking.
type Registry struct {
	commands []Command
}

// NewRegistry returns a registry holding cmds in order.
func NewRegistry(cmds ...Command) *Registry {
	r := &Registry{}
	for _, c := range cmds {
		r.Register(c)
	}
	return r
}

// Register appends a command. Labels are not deduplicated; see Duplicates.
func (r *Registry) Register(c Command) {
	r.commands = append(r.commands, c)
}

// Match returns every command whose label equals label exactly, in
// registration order.
func (r *Registry) Match(label string) []Command {
	var out []Command
	for _, c := range r.commands {
		if c.Label == label {
			out = append(out, c)
		}
	}
	return out
}

// Get returns the first command registered under label.
func (r *Registry) Get(label string) (Command, bool) {
	for _, c := range r.commands {
		if c.Label == label {
			return c, true
		}
	}
	return Command{}, false
}

// All returns a copy of the registered commands in registration order.
func (r *Registry) All() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Len returns the number of registered commands.
func (r *Registry) Len() int { return len(r.commands) }

// Duplicates returns labels registered more than once, in first-seen order.
func (r *Registry) Duplicates() []string {
	seen := make(map[string]int, len(r.commands))
	var dups []string
	for _, c := range r.commands {
		seen[c.Label]++
		if seen[c.Label] == 2 {
			dups = append(dups, c.Label)
		}
	}
	return dups
}
