package pcomb

// State is per-invocation progress of one matcher at one cursor. The only
// two universal members are CLEAN and DIRTY; every stateful combinator
// defines its own record type beyond that (see e.g. AltState, SeriesState).
// All state values must be immutable: a matcher never mutates a state it
// has already handed to the driver, only builds a new one.
type State interface{}

type cleanState struct{}
type dirtyState struct{}

// CLEAN means "this matcher has not yet been entered at this call site."
var CLEAN State = cleanState{}

// DIRTY means "this matcher has been exhausted and will only produce
// FAILURE from here on."
var DIRTY State = dirtyState{}
