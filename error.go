// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"errors"
	"fmt"
)

// ErrNotInitialized reports a dispatch attempted before Initialize has
// completed on the API thread. It surfaces as a failed future rather
// than a panic so host callback loops stay undisturbed.
var ErrNotInitialized = errors.New("apix: bridge not initialized")

// ErrOutsideAPIThread reports a CreateTrigger call issued from outside
// a host callback.
var ErrOutsideAPIThread = errors.New("apix: create trigger outside the API thread")

// ErrHandlerRegistered reports a second Register for a handler type
// that already owns a slot.
var ErrHandlerRegistered = errors.New("apix: handler type already registered")

// errNilFuture settles callers whose asynchronous work function
// returned a nil future instead of a pending one.
var errNilFuture = errors.New("apix: asynchronous work returned a nil future")

// errNilHandler rejects Register calls with no handler instance.
var errNilHandler = errors.New("apix: nil handler")

// PanicError wraps a panic recovered at the slot execution boundary.
// An escaping panic would unwind into the host's callback loop, so the
// bridge converts it into a failed future for the original caller.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("apix: work panicked: %v", e.Value)
}
