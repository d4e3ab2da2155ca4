package pcomb

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error classes, following the teacher's convention of partitioning error
// codes into blocks of 100 per subsystem.
const (
	ConfigErrors   = 1   // unbound Delayed, Pattern against a non-string source, etc.
	ContractErrors = 101 // a matcher received a state value it does not recognise
)

// ConfigError reports a configuration problem: the grammar as assembled
// cannot be evaluated, independent of any particular input. It is raised
// once, at the point the bad configuration is first exercised, and aborts
// the parse — it is never part of ordinary backtracking.
type ConfigError struct {
	Code    int
	Message string
}

func (e *ConfigError) Error() string { return e.Message }

func newConfigError(format string, args ...any) Transition {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return Fatal{Err: errors.WithStack(&ConfigError{Code: ConfigErrors, Message: msg})}
}

// ContractError reports that a matcher was driven with a state kind it does
// not recognise: a driver bug, not a parse failure. It names the offending
// matcher and the unexpected state so the bug can be traced back to whoever
// issued the bad Dispatch.
type ContractError struct {
	Code    int
	Matcher string
	Call    string
	State   any
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s.%s: unexpected state %#v", e.Matcher, e.Call, e.State)
}

func newContractError(matcher, call string, state any) Transition {
	return Fatal{Err: errors.WithStack(&ContractError{Code: ContractErrors, Matcher: matcher, Call: call, State: state})}
}
