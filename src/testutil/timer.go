package testutil

import (
	"fmt"
	"testing"
	"time"
)

// Timer measures how long a test section takes.
type Timer struct {
	start time.Time
	name  string
}

func NewTimer(name string) *Timer {
	return &Timer{start: time.Now(), name: name}
}

// Stop prints and returns the elapsed time.
func (t *Timer) Stop() time.Duration {
	d := time.Since(t.start)
	fmt.Printf("⏱️  %s took %v\n", t.name, d)
	return d
}

// PerformanceAssertion fails the test when duration exceeds max.
func PerformanceAssertion(t *testing.T, name string, duration, max time.Duration) {
	t.Helper()
	if duration > max {
		t.Errorf("❌ %s performance test failed: took %v, expected less than %v", name, duration, max)
		return
	}
	t.Logf("✅ %s performance test passed: took %v (under %v limit)", name, duration, max)
}
