package peer

import (
	"fmt"
	"runtime/debug"

	"github.com/ethereum/go-ethereum/log"
)

// withRecover wraps fn so a panic is logged with its stack trace and turned
// into a returned error instead of crashing the process, following this
// codebase's convention of never starting long-lived background work with a
// bare `go func()`. The
// result is meant to be handed to errgroup.Group.Go.
func withRecover(name string, fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("peer: recovered panic", "goroutine", name, "panic", r, "stack", string(debug.Stack()))
				err = fmt.Errorf("peer: %s panicked: %v", name, r)
			}
		}()
		return fn()
	}
}
