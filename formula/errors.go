package formula

import (
	"errors"
	"fmt"
)

// ErrOutOfDomain indicates inputs outside the range a formula is defined for.
var ErrOutOfDomain = errors.New("formula: input out of domain")

// DomainError records which parameter put a calculation out of domain.
type DomainError struct {
	Func  string
	Param string
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("formula: %s: %s=%g out of domain", e.Func, e.Param, e.Value)
}

func (e *DomainError) Unwrap() error {
	return ErrOutOfDomain
}

type arg struct {
	name  string
	value float64
}

// requirePositive fails on the first argument that is not strictly positive.
// NaN fails too.
func requirePositive(fn string, args ...arg) error {
	for _, a := range args {
		if !(a.value > 0) {
			return &DomainError{Func: fn, Param: a.name, Value: a.value}
		}
	}
	return nil
}
