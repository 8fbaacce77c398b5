// Package guard holds the ConstructorGuard used by value objects, entities and
// commands to tell a constructor-built value apart from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// caller passes a nil error for an unconstructed guard.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built by its constructor.
//
// Embed it as a private field and set it with NewConstructorGuard inside the
// constructor. The zero value reports "not constructed", so a struct literal such
// as kernel.Location{} fails validation instead of silently standing for (0, 0).
//
// Example:
//
//	var ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote")
//
//	type Quote struct {
//	    total int
//	    guard guard.ConstructorGuard
//	}
//
//	func NewQuote(total int) (Quote, error) {
//	    if total < 0 {
//	        return Quote{}, errors.New("total cannot be negative")
//	    }
//	    return Quote{total: total, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (q Quote) Validate() error {
//	    return q.guard.Validate(ErrQuoteIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
