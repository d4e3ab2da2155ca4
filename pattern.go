package pcomb

import (
	coregex "github.com/coregx/coregex"
)

// Pattern matches a regular expression anchored at the cursor. The source
// must implement Substringer; anything else is a ConfigError, since that is
// a property of how the grammar was wired up, not of the input being
// parsed.
//
// The matched length is recovered from the anchored match's end offset
// (FindStringIndex reports byte offsets into the string view; a match not
// starting at offset 0 is not anchored and is treated as no match), which is
// the "exact way to recover the matched length in source tokens" spec
// section 4.1 requires of the regex dialect.
type Pattern struct {
	re *coregex.Regex
}

// NewPattern wraps an already-compiled regex. Kept symmetric with
// CompilePattern so that callers may use whichever is more convenient — the
// teacher's own langdef package has two EBNF constructors for a pattern atom
// and only one of them actually compiles, which this engine avoids by
// accepting both forms outright.
func NewPattern(re *coregex.Regex) Pattern {
	return Pattern{re: re}
}

// CompilePattern compiles pattern and wraps it as a Pattern matcher.
func CompilePattern(pattern string) (Pattern, error) {
	re, err := coregex.Compile(pattern)
	if err != nil {
		return Pattern{}, err
	}
	return Pattern{re: re}, nil
}

func (m Pattern) Execute(state State, cur Cursor) Transition {
	switch state.(type) {
	case cleanState:
		ss, ok := cur.(Substringer)
		if !ok {
			return newConfigError("Pattern: source does not provide a substring view")
		}

		view := ss.SubstringFrom()
		loc := m.re.FindStringIndex(view)
		if loc == nil || loc[0] != 0 {
			return FAILURE
		}

		matchLen := loc[1]
		next := cur
		for i := 0; i < matchLen; i++ {
			if next.IsEnd() {
				return FAILURE
			}
			_, next = next.Next()
		}
		return Success(DIRTY, next, Value{view[:matchLen]})
	case dirtyState:
		return FAILURE
	default:
		return noChildren("Pattern", "Execute", state)
	}
}

func (m Pattern) Success(parentState, childState State, cur Cursor, val Value) Transition {
	return noChildren("Pattern", "Success", parentState)
}

func (m Pattern) Failure(parentState State) Transition {
	return noChildren("Pattern", "Failure", parentState)
}
