// Package goroutine starts background work that must not take the process down.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"togetherly/internal/shared/logger"
)

// SafeGo runs fn in a new goroutine and logs any panic with its stack.
// The returned channel is closed when fn has returned or panicked.
func SafeGo(log logger.Interface, name string, fn func()) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("background task panicked",
					"task", name,
					"panic", fmt.Sprint(r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
	return done
}
