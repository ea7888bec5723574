package goroutine

import (
	"testing"
	"time"

	"togetherly/internal/shared/logger"
)

func TestSafeGoRecoversPanic(t *testing.T) {
	done := SafeGo(logger.NewNop(), "boom", func() { panic("kaboom") })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("SafeGo did not finish after a panic")
	}
}

func TestSafeGoRunsTask(t *testing.T) {
	ran := false
	<-SafeGo(logger.NewNop(), "work", func() { ran = true })
	if !ran {
		t.Error("task did not run")
	}
}
