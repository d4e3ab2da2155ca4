package driver

import (
	"fmt"

	"github.com/gopeg/pcomb"
)

// trace emits one structured log line per transition the driver interprets,
// tagged with this run's session id and the current continuation-stack
// depth (how many Dispatches are still pending resolution).
func (d *Driver) trace(t pcomb.Transition, depth int) {
	if !d.logger.Trace().Enabled() {
		return
	}

	ev := d.logger.Trace().
		Str("session", d.id.String()).
		Int("depth", depth)

	switch v := t.(type) {
	case pcomb.Dispatch:
		ev.Str("kind", "execute").
			Str("parent", fmt.Sprintf("%T", v.Parent)).
			Str("child", fmt.Sprintf("%T", v.Child)).
			Msg("dispatch")
	case pcomb.Resolved:
		ev.Str("kind", "success").
			Int("values", len(v.Value)).
			Msg("resolved")
	case pcomb.Fatal:
		ev.Str("kind", "fatal").
			Err(v.Err).
			Msg("aborted")
	default:
		ev.Str("kind", "failure").Msg("backtrack")
	}
}
