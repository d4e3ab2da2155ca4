package pcomb

// Atoms consume zero or more tokens and resolve on the first call; on
// re-entry (DIRTY) they all fail without touching the cursor. None of them
// ever dispatches a child, so their Success and Failure methods exist only
// to satisfy Matcher and to report a driver bug if the protocol is somehow
// violated.

func noChildren(matcherName, call string, state State) Transition {
	return newContractError(matcherName, call, state)
}

// Epsilon matches the empty string: it never advances and always succeeds.
type Epsilon struct{}

func NewEpsilon() Epsilon { return Epsilon{} }

func (Epsilon) Execute(state State, cur Cursor) Transition {
	switch state.(type) {
	case cleanState:
		return Success(DIRTY, cur, EMPTY)
	case dirtyState:
		return FAILURE
	default:
		return noChildren("Epsilon", "Execute", state)
	}
}

func (Epsilon) Success(parentState, childState State, cur Cursor, val Value) Transition {
	return noChildren("Epsilon", "Success", parentState)
}

func (Epsilon) Failure(parentState State) Transition {
	return noChildren("Epsilon", "Failure", parentState)
}

// Insert consumes nothing and injects Token into the output, useful for
// synthesizing values a grammar needs but the input never spells out.
type Insert struct {
	Token any
}

func NewInsert(token any) Insert { return Insert{Token: token} }

func (m Insert) Execute(state State, cur Cursor) Transition {
	switch state.(type) {
	case cleanState:
		return Success(DIRTY, cur, Value{m.Token})
	case dirtyState:
		return FAILURE
	default:
		return noChildren("Insert", "Execute", state)
	}
}

func (m Insert) Success(parentState, childState State, cur Cursor, val Value) Transition {
	return noChildren("Insert", "Success", parentState)
}

func (m Insert) Failure(parentState State) Transition {
	return noChildren("Insert", "Failure", parentState)
}

// Dot matches exactly one token, whatever it is.
type Dot struct{}

func NewDot() Dot { return Dot{} }

func (Dot) Execute(state State, cur Cursor) Transition {
	switch state.(type) {
	case cleanState:
		if cur.IsEnd() {
			return FAILURE
		}
		tok, next := cur.Next()
		return Success(DIRTY, next, Value{tok})
	case dirtyState:
		return FAILURE
	default:
		return noChildren("Dot", "Execute", state)
	}
}

func (Dot) Success(parentState, childState State, cur Cursor, val Value) Transition {
	return noChildren("Dot", "Success", parentState)
}

func (Dot) Failure(parentState State) Transition {
	return noChildren("Dot", "Failure", parentState)
}

// Fail never matches anything.
type Fail struct{}

func NewFail() Fail { return Fail{} }

func (Fail) Execute(state State, cur Cursor) Transition {
	switch state.(type) {
	case cleanState, dirtyState:
		return FAILURE
	default:
		return noChildren("Fail", "Execute", state)
	}
}

func (Fail) Success(parentState, childState State, cur Cursor, val Value) Transition {
	return noChildren("Fail", "Success", parentState)
}

func (Fail) Failure(parentState State) Transition {
	return noChildren("Fail", "Failure", parentState)
}

// Eos matches only the very end of input, consuming nothing.
type Eos struct{}

func NewEos() Eos { return Eos{} }

func (Eos) Execute(state State, cur Cursor) Transition {
	switch state.(type) {
	case cleanState:
		if cur.IsEnd() {
			return Success(DIRTY, cur, EMPTY)
		}
		return FAILURE
	case dirtyState:
		return FAILURE
	default:
		return noChildren("Eos", "Execute", state)
	}
}

func (Eos) Success(parentState, childState State, cur Cursor, val Value) Transition {
	return noChildren("Eos", "Success", parentState)
}

func (Eos) Failure(parentState State) Transition {
	return noChildren("Eos", "Failure", parentState)
}

// Equal walks Seq token by token against the source; any mismatch or
// premature end fails. On success the whole matched sequence is reported as
// a single output element, Repr, rather than one element per token.
type Equal struct {
	Seq  []any
	Repr any
}

// NewEqual builds an Equal matcher over an explicit token sequence, reported
// as Repr in the output Value.
func NewEqual(seq []any, repr any) Equal {
	return Equal{Seq: seq, Repr: repr}
}

// EqualString builds an Equal matcher over a string, assuming the source's
// tokens are bytes (as source.Cursor's are). The matched string is reported
// as a single output element.
func EqualString(s string) Equal {
	seq := make([]any, len(s))
	for i := 0; i < len(s); i++ {
		seq[i] = s[i]
	}
	return Equal{Seq: seq, Repr: s}
}

func (m Equal) Execute(state State, cur Cursor) Transition {
	switch state.(type) {
	case cleanState:
		c := cur
		for _, want := range m.Seq {
			if c.IsEnd() {
				return FAILURE
			}
			got, next := c.Next()
			if got != want {
				return FAILURE
			}
			c = next
		}
		return Success(DIRTY, c, Value{m.Repr})
	case dirtyState:
		return FAILURE
	default:
		return noChildren("Equal", "Execute", state)
	}
}

func (m Equal) Success(parentState, childState State, cur Cursor, val Value) Transition {
	return noChildren("Equal", "Success", parentState)
}

func (m Equal) Failure(parentState State) Transition {
	return noChildren("Equal", "Failure", parentState)
}
