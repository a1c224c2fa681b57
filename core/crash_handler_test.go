package core

import (
	"sync"
	"testing"
)

func TestGoRoutesPanicToHandler(t *testing.T) {
	var (
		mu  sync.Mutex
		got any
		wg  sync.WaitGroup
	)
	wg.Add(1)
	SetCrashHandler(func(r any) {
		mu.Lock()
		got = r
		mu.Unlock()
		wg.Done()
	})
	defer SetCrashHandler(nil)

	Go(func() { panic("boom") })
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if got != "boom" {
		t.Errorf("Expected recovered value boom, got %v", got)
	}
}

func TestHandleCrashIgnoresNil(t *testing.T) {
	called := false
	SetCrashHandler(func(r any) { called = true })
	defer SetCrashHandler(nil)

	HandleCrash(nil)
	if called {
		t.Error("Expected handler not to run for nil panic value")
	}
}
