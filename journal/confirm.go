package journal

// PendingAction is a staged destructive operation awaiting a yes/no answer.
type PendingAction struct {
	Title string
	Body  string
	run   func() error
}

// Confirmation holds at most one PendingAction. Staging a new one discards
// the previous one; there is no queue.
type Confirmation struct {
	pending *PendingAction
}

// Stage sets the pending action and reports whether it replaced another.
func (c *Confirmation) Stage(title, body string, run func() error) bool {
	replaced := c.pending != nil
	c.pending = &PendingAction{Title: title, Body: body, run: run}
	return replaced
}

// Pending returns the staged action, if any.
func (c *Confirmation) Pending() (PendingAction, bool) {
	if c.pending == nil {
		return PendingAction{}, false
	}
	return *c.pending, true
}

// Resolve clears the pending action and runs it when yes is true. The slot
// is cleared before running so the action may stage a follow-up.
func (c *Confirmation) Resolve(yes bool) error {
	p := c.pending
	if p == nil {
		return ErrNoPending
	}
	c.pending = nil
	if !yes || p.run == nil {
		return nil
	}
	return p.run()
}
