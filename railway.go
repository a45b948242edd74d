package fpidioms

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ============================================================================
// Outcome markers
// ============================================================================

// Result is the two-state outcome of a railway flow.
type Result int

const (
	Failed Result = iota
	Ok
)

// String implements fmt.Stringer.
func (r Result) String() string {
	switch r {
	case Ok:
		return "Ok"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// Error is the failure payload carried on the left track. It composes the
// same way the other error helpers in this package do: Wrap adds context and
// WithCode attaches a code.
type Error struct {
	Code    int
	Message string
}

// NewError creates a failure payload.
func NewError(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("[%d] %s", e.Code, e.Message)
	}
	return e.Message
}

// Wrap returns a copy with context prepended to the message.
func (e *Error) Wrap(context string) *Error {
	return &Error{Code: e.Code, Message: context + ": " + e.Message}
}

// WithCode returns a copy carrying code.
func (e *Error) WithCode(code int) *Error {
	return &Error{Code: code, Message: e.Message}
}

// ============================================================================
// Either
// ============================================================================

// Either holds exactly one of a Left (failure) or a Right (success).
// The zero value is a Left holding the zero L.
type Either[L, R any] struct {
	left    L
	right   R
	success bool
}

// NewLeft puts v on the failure track.
func NewLeft[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v}
}

// NewRight puts v on the success track.
func NewRight[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, success: true}
}

// Success reports whether e holds a Right.
func (e Either[L, R]) Success() bool { return e.success }

// Left returns the failure payload, or the zero L on the success track.
func (e Either[L, R]) Left() L { return e.left }

// Right returns the success payload, or the zero R on the failure track.
func (e Either[L, R]) Right() R { return e.right }

// Bind applies next to the Right value. A Left is passed through untouched
// and next is never called.
func (e Either[L, R]) Bind(next func(R) Either[L, R]) Either[L, R] {
	if !e.success {
		return e
	}
	return next(e.right)
}

// BindTo is Bind for steps that change the success type.
func BindTo[L, R, S any](e Either[L, R], next func(R) Either[L, S]) Either[L, S] {
	if !e.success {
		return NewLeft[L, S](e.left)
	}
	return next(e.right)
}

// MapRight transforms the Right value with a step that cannot fail.
func MapRight[L, R, S any](e Either[L, R], fn func(R) S) Either[L, S] {
	if !e.success {
		return NewLeft[L, S](e.left)
	}
	return NewRight[L](fn(e.right))
}

// Fold collapses both tracks into one value.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.success {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// ============================================================================
// Option
// ============================================================================

// Option is a value that may be absent. It stands in for a nullable
// reference in the half-railway flow.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] { return Option[T]{value: v, ok: true} }

// None is the absent value.
func None[T any]() Option[T] { return Option[T]{} }

// FromPointer is None for nil and Some(*p) otherwise.
func FromPointer[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// MapOption applies fn when o is present.
func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(fn(o.value))
}

// FlatMapOption applies a step that may itself produce None.
func FlatMapOption[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return fn(o.value)
}

// ============================================================================
// Steps
// ============================================================================

// Step is one fallible stage of a railway.
type Step func(string) Either[*Error, string]

// Lift turns an infallible transform into a Step.
func Lift(fn func(string) string) Step {
	return func(s string) Either[*Error, string] {
		return NewRight[*Error](fn(s))
	}
}

// Translate upper-cases a nullable string. nil stays nil.
func Translate(input *string) *string {
	if input == nil {
		return nil
	}
	out := strings.ToUpper(*input)
	return &out
}

// Translate2 upper-cases input onto the success track.
func Translate2(input string) Either[*Error, string] {
	return NewRight[*Error](strings.ToUpper(input))
}

// Normalize applies Unicode canonical composition (NFC).
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// FailingStep always puts the input on the failure track.
func FailingStep(input string) Either[*Error, string] {
	return NewLeft[*Error, string](NewError("step failed for %q", input))
}

// Validate is the always-failing validation used by ImperativeBranchesDefault.
func Validate(string) Result { return Failed }

// DoSomethingElse is the always-failing follow-up used by
// ImperativeBranchesDefault.
func DoSomethingElse(string) Result { return Failed }

// ============================================================================
// Flows
// ============================================================================

// ImperativeBranches checks the outcome after each check and bails out on
// the first failure.
func ImperativeBranches(value string, checks ...func(string) Result) Result {
	for _, check := range checks {
		if check(value) != Ok {
			return Failed
		}
	}
	return Ok
}

// ImperativeBranchesDefault runs Validate then DoSomethingElse. It always
// fails.
func ImperativeBranchesDefault(value string) Result {
	result := Validate(value)
	if result != Ok {
		return Failed
	}
	anotherResult := DoSomethingElse(value)
	if anotherResult != Ok {
		return Failed
	}
	return Ok
}

// HalfRailway upper-cases, reverses and takes the first rune of value, using
// absence as the failure signal. Only a nil input fails: an empty string
// yields the zero rune, which still counts as success.
func HalfRailway(value *string) Result {
	first := MapOption(
		MapOption(MapOption(FromPointer(value), strings.ToUpper), reverseRunes),
		firstOrDefault,
	)
	if _, ok := first.Get(); ok {
		return Ok
	}
	return Failed
}

// RailwayPipeline runs first, then upper-casing, then normalization. A nil
// first defaults to Translate2. The first failure skips every later step.
func RailwayPipeline(value string, first Step) Either[*Error, string] {
	if first == nil {
		first = Translate2
	}
	return first(value).
		Bind(Lift(strings.ToUpper)).
		Bind(Lift(Normalize))
}

// RailwayWithEither runs RailwayPipeline and classifies the end of the track
// once.
func RailwayWithEither(value string, first Step) Either[*Error, Result] {
	return Fold(RailwayPipeline(value, first),
		func(*Error) Either[*Error, Result] { return NewRight[*Error](Failed) },
		func(string) Either[*Error, Result] { return NewRight[*Error](Ok) },
	)
}

// RunImperative runs steps with an explicit check after each one.
func RunImperative(value string, steps ...Step) Either[*Error, string] {
	current := value
	for _, step := range steps {
		out := step(current)
		if !out.Success() {
			return out
		}
		current = out.Right()
	}
	return NewRight[*Error](current)
}

// RunOptional runs steps as a nil-propagating chain. Failures lose their
// payload and come back as nil.
func RunOptional(value *string, steps ...Step) *string {
	opt := FromPointer(value)
	for _, step := range steps {
		opt = FlatMapOption(opt, func(s string) Option[string] {
			out := step(s)
			if !out.Success() {
				return None[string]()
			}
			return Some(out.Right())
		})
	}
	if v, ok := opt.Get(); ok {
		return &v
	}
	return nil
}

// RunEither threads value through steps with Bind.
func RunEither(value string, steps ...Step) Either[*Error, string] {
	out := NewRight[*Error](value)
	for _, step := range steps {
		out = out.Bind(step)
	}
	return out
}

// Classify maps the end of a track to Ok or Failed.
func Classify[L, R any](e Either[L, R]) Result {
	if e.Success() {
		return Ok
	}
	return Failed
}

func reverseRunes(s string) []rune {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return r
}

func firstOrDefault(r []rune) rune {
	if len(r) == 0 {
		return 0
	}
	return r[0]
}
