package monitoring

import (
	"fmt"
	"testing"
)

func TestSetLogger(t *testing.T) {
	// Save original logger
	original := Logf
	defer func() { Logf = original }()

	// A custom logger should receive calls with the formatted arguments.
	var got string
	SetLogger(func(format string, v ...interface{}) {
		got = fmt.Sprintf(format, v...)
	})
	Logf("geometry loaded from %s", "detector.json")
	if got != "geometry loaded from detector.json" {
		t.Errorf("custom logger got %q", got)
	}

	// Nil installs a no-op logger that must not panic and must not call
	// through to a previously registered function.
	called := false
	SetLogger(func(format string, v ...interface{}) { called = true })
	SetLogger(nil)
	Logf("muted")
	if called {
		t.Error("no-op logger called a previously registered function")
	}
}
