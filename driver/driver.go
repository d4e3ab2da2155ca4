// Package driver implements the trampoline spec.md keeps out of the pcomb
// core: an iterative loop that interprets the transition messages matchers
// emit and makes the next call on their behalf, so that arbitrarily deep
// combinator chains never recurse into the Go call stack.
package driver

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gopeg/pcomb"
)

type frame struct {
	parent pcomb.Matcher
	state  pcomb.State
}

// Driver repeatedly asks a root matcher for its next solution, threading the
// resume state it returns back in on the following call — the external
// counterpart spec.md's matchers assume exists.
type Driver struct {
	root   pcomb.Matcher
	cur    pcomb.Cursor
	state  pcomb.State
	done   bool
	cache  *Cache
	logger zerolog.Logger
	id     uuid.UUID
}

// Option configures a Driver.
type Option func(*Driver)

// WithCache attaches a memoization cache (see NewCache) used to short-circuit
// repeated fresh (CLEAN) attempts to match the same matcher at the same
// cursor — the external cache layer spec section 1 and section 9 describe.
func WithCache(c *Cache) Option {
	return func(d *Driver) { d.cache = c }
}

// WithLogger attaches a zerolog.Logger that receives one trace-level event
// per transition the driver interprets. The default is zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(d *Driver) { d.logger = l }
}

// New creates a Driver that will enumerate root's solutions over cur,
// starting from CLEAN.
func New(root pcomb.Matcher, cur pcomb.Cursor, opts ...Option) *Driver {
	d := &Driver{
		root:   root,
		cur:    cur,
		state:  pcomb.CLEAN,
		logger: zerolog.Nop(),
		id:     uuid.New(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SessionID identifies this Driver's run across log lines.
func (d *Driver) SessionID() uuid.UUID { return d.id }

// Next returns the next solution, advancing the root matcher's resume
// state for the following call. ok is false once the root is exhausted;
// err is non-nil only on a Fatal (configuration error or contract
// violation), never on an ordinary match failure.
func (d *Driver) Next() (pcomb.Value, bool, error) {
	if d.done {
		return nil, false, nil
	}

	result, err := d.run(d.root.Execute(d.state, d.cur))
	if err != nil {
		d.done = true
		return nil, false, err
	}

	resolved, ok := result.(pcomb.Resolved)
	if !ok {
		d.done = true
		return nil, false, nil
	}

	d.state = resolved.State
	return resolved.Value, true, nil
}

// run drives a single transition to resolution, maintaining the
// continuation stack that lets combinators (including recursive grammars
// tied through Delayed) dispatch arbitrarily deep without the driver's own
// call stack growing.
func (d *Driver) run(t pcomb.Transition) (pcomb.Transition, error) {
	var stack []frame

	for {
		d.trace(t, len(stack))

		switch v := t.(type) {
		case pcomb.Dispatch:
			stack = append(stack, frame{parent: v.Parent, state: v.ParentState})
			t = d.dispatch(v)

		case pcomb.Resolved:
			if len(stack) == 0 {
				return v, nil
			}
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			t = f.parent.Success(f.state, v.State, v.Cursor, v.Value)

		case pcomb.Fatal:
			return nil, v.Err

		default: // the FAILURE sentinel
			if len(stack) == 0 {
				return pcomb.FAILURE, nil
			}
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			t = f.parent.Failure(f.state)
		}
	}
}

func (d *Driver) dispatch(v pcomb.Dispatch) pcomb.Transition {
	if d.cache != nil {
		if cached, ok := d.cache.Lookup(v.Child, v.ChildState, v.Cursor); ok {
			return cached
		}
		result := v.Child.Execute(v.ChildState, v.Cursor)
		d.cache.Store(v.Child, v.ChildState, v.Cursor, result)
		return result
	}
	return v.Child.Execute(v.ChildState, v.Cursor)
}
