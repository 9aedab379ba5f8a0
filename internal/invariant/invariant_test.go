package invariant_test

import (
	"strings"
	"testing"

	"github.com/metaphox/vbnorm/internal/invariant"
)

// catch runs fn and returns the recovered violation, or nil.
func catch(t *testing.T, fn func()) (v *invariant.Violation) {
	t.Helper()
	defer func() {
		v = invariant.Recover(recover())
	}()
	fn()
	return nil
}

func TestPassingChecksDoNotPanic(t *testing.T) {
	v := catch(t, func() {
		invariant.Precondition(true, "unused")
		invariant.Invariant(1 < 2, "unused")
	})
	if v != nil {
		t.Fatalf("unexpected violation: %v", v)
	}
}

func TestViolations(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
		kind string
	}{
		{"precondition", func() { invariant.Precondition(false, "x=%d", 1) }, "precondition"},
		{"invariant", func() { invariant.Invariant(false, "x=%d", 1) }, "invariant"},
		{"unreachable", func() { invariant.Unreachable("x=%d", 1) }, "unreachable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := catch(t, tt.fn)
			if v == nil {
				t.Fatal("expected a violation")
			}
			if v.Kind != tt.kind {
				t.Errorf("kind: got %q, want %q", v.Kind, tt.kind)
			}
			if !strings.Contains(v.Error(), "x=1") {
				t.Errorf("message not formatted: %q", v.Error())
			}
		})
	}
}

func TestRecoverRepanicsForeignValues(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("expected the original panic value, got %v", r)
		}
	}()
	catch(t, func() { panic("boom") })
	t.Fatal("foreign panic was swallowed")
}
