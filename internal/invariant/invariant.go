// Package invariant reports internal-consistency violations.
//
// A violation means an earlier stage produced something the later stage's
// grammar guarantees cannot happen. It is a bug, not bad input, so the checks
// panic with a *Violation instead of returning an error. The compiler package
// is the only place that recovers them.
package invariant

import "fmt"

// Violation is the panic value raised by this package.
type Violation struct {
	Kind    string // "precondition", "invariant" or "unreachable"
	Message string
}

func (v *Violation) Error() string {
	return v.Kind + " violated: " + v.Message
}

// Precondition panics unless cond holds. Use it for what a function requires
// of its caller.
func Precondition(cond bool, format string, args ...any) {
	if !cond {
		panic(&Violation{Kind: "precondition", Message: fmt.Sprintf(format, args...)})
	}
}

// Invariant panics unless cond holds.
func Invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(&Violation{Kind: "invariant", Message: fmt.Sprintf(format, args...)})
	}
}

// Unreachable always panics.
func Unreachable(format string, args ...any) {
	panic(&Violation{Kind: "unreachable", Message: fmt.Sprintf(format, args...)})
}

// Recover converts a recovered panic value into a *Violation. Any other value
// is re-panicked. Call it as the first statement of a deferred function:
//
//	defer func() {
//		if v := invariant.Recover(recover()); v != nil { ... }
//	}()
func Recover(r any) *Violation {
	if r == nil {
		return nil
	}
	if v, ok := r.(*Violation); ok {
		return v
	}
	panic(r)
}
