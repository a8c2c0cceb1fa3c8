// file:fpgrowth/recover/recover.go
package recover

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rskv-p/fpgrowth/pkg/x_log"
)

const (
	tagService  = "service"
	tagFunction = "function"
	tagLabel    = "label"
)

var ErrPanic = errors.New("panic recovered")

// ----------------------------------------------------
// Global panic hook (optional)
// ----------------------------------------------------

// OnPanic, when set, is called after each recovered panic.
var OnPanic func(service, function string, recovered any)

var (
	mu  sync.RWMutex
	log *zerolog.Logger
)

// SetLogger replaces the logger used for panic reports; nil restores the global one.
func SetLogger(l *zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

func logger() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if log != nil {
		return log
	}
	l := x_log.New("recover")
	return &l
}

// ----------------------------------------------------
// Panic recovery functions
// ----------------------------------------------------

// report logs a recovered value with its stack and turns it into an error.
func report(service, function string, recovered any) error {
	logger().Error().
		Str(tagService, service).
		Str(tagFunction, function).
		Str("stack", string(debug.Stack())).
		Msgf("panic: %v", recovered)

	if OnPanic != nil {
		OnPanic(service, function, recovered)
	}
	return fmt.Errorf("%w in %s.%s: %v", ErrPanic, service, function, recovered)
}

// Guard is deferred by functions with a named error result; a panic is
// logged and replaces *err with an ErrPanic error.
func Guard(service, function string, err *error) {
	if r := recover(); r != nil {
		*err = report(service, function, r)
	}
}

// Safe runs fn, logging and swallowing any panic.
func Safe(label string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger().Error().Str(tagLabel, label).Str("stack", string(debug.Stack())).Msgf("panic: %v", r)
			if OnPanic != nil {
				OnPanic("safe", label, r)
			}
		}
	}()
	fn()
}
