package fpidioms

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Foo overwrites the caller's variable through the pointer it was given.
//
//	myInt := 5
//	Foo(&myInt) // myInt is now 5, whatever it held before
func Foo(myInt *int) {
	*myInt = 5
}

// Outcome is a composite return carrying either a success payload or a
// failure payload, never both. Succeeded says which one is meaningful.
type Outcome[F, S any] struct {
	Data      S
	Err       F
	Succeeded bool
}

// Succeed builds a successful outcome.
func Succeed[F, S any](data S) Outcome[F, S] {
	return Outcome[F, S]{Data: data, Succeeded: true}
}

// Fail builds a failed outcome.
func Fail[F, S any](failure F) Outcome[F, S] {
	return Outcome[F, S]{Err: failure}
}

// Either converts the outcome to an Either.
func (o Outcome[F, S]) Either() Either[F, S] {
	if o.Succeeded {
		return NewRight[F](o.Data)
	}
	return NewLeft[F, S](o.Err)
}

// ErrInvalidQuantity is returned by ParseQuantityErr for bad input.
var ErrInvalidQuantity = errors.New("invalid quantity")

// ParseQuantity parses a positive whole quantity without an out parameter.
func ParseQuantity(s string) Outcome[string, int] {
	n, err := ParseQuantityErr(s)
	if err != nil {
		return Fail[string, int](err.Error())
	}
	return Succeed[string](n)
}

// ParseQuantityErr is ParseQuantity in Go's native (value, error) form.
func ParseQuantityErr(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidQuantity, s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d must be positive", ErrInvalidQuantity, n)
	}
	return n, nil
}
