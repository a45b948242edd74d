package fpidioms

import (
	"fmt"
	"io"
)

// Action is a callback with no result.
type Action[T any] func(T)

// Compose returns an action that runs f, then next.
func (f Action[T]) Compose(next Action[T]) Action[T] {
	return func(v T) {
		f(v)
		next(v)
	}
}

// Multicast is an ordered list of actions fired together. Actions run in the
// order they were added, each exactly once per Invoke.
//
// Example:
//
//	var m Multicast[Item]
//	m.Add(printOnce).Add(printAgain)
//	m.Invoke(item)
type Multicast[T any] struct {
	actions []Action[T]
}

// NewMulticast builds an aggregate from actions in order.
func NewMulticast[T any](actions ...Action[T]) *Multicast[T] {
	m := &Multicast[T]{}
	for _, a := range actions {
		m.Add(a)
	}
	return m
}

// Add attaches an action. Nil actions are ignored.
func (m *Multicast[T]) Add(action Action[T]) *Multicast[T] {
	if action != nil {
		m.actions = append(m.actions, action)
	}
	return m
}

// Len returns the number of attached actions.
func (m *Multicast[T]) Len() int {
	return len(m.actions)
}

// Invoke fires every attached action with v.
func (m *Multicast[T]) Invoke(v T) {
	for _, a := range m.actions {
		a(v)
	}
}

// Action flattens the aggregate into a single Action. Later Adds do not
// affect the returned action.
func (m *Multicast[T]) Action() Action[T] {
	actions := append([]Action[T](nil), m.actions...)
	return func(v T) {
		for _, a := range actions {
			a(v)
		}
	}
}

// MulticastFunc is an ordered list of functions that each return a value.
// Every function runs, but only the last one's result reaches the caller.
type MulticastFunc[T, R any] struct {
	funcs []func(T) R
}

// Add attaches a function. Nil functions are ignored.
func (m *MulticastFunc[T, R]) Add(fn func(T) R) *MulticastFunc[T, R] {
	if fn != nil {
		m.funcs = append(m.funcs, fn)
	}
	return m
}

// Len returns the number of attached functions.
func (m *MulticastFunc[T, R]) Len() int {
	return len(m.funcs)
}

// Invoke calls every function in order and returns the last result. ok is
// false when nothing is attached.
func (m *MulticastFunc[T, R]) Invoke(v T) (result R, ok bool) {
	for _, fn := range m.funcs {
		result = fn(v)
		ok = true
	}
	return result, ok
}

// PrintItemActions returns the two-action aggregate from the delegate demo,
// writing to w.
func PrintItemActions(w io.Writer) *Multicast[Item] {
	return NewMulticast[Item](
		func(item Item) { fmt.Fprintf(w, "Item %s has been printed\n", item.Name) },
		func(item Item) { fmt.Fprintf(w, "Item %s has been printed ... Again!\n", item.Name) },
	)
}

// TrueThenFalse returns the two-function aggregate from the delegate demo:
// the first reports "True was called" and returns true, the second reports
// "False was called" and returns false. Invoke returns false.
func TrueThenFalse(w io.Writer) *MulticastFunc[Item, bool] {
	m := &MulticastFunc[Item, bool]{}
	m.Add(func(Item) bool {
		fmt.Fprintln(w, "True was called")
		return true
	})
	m.Add(func(Item) bool {
		fmt.Fprintln(w, "False was called")
		return false
	})
	return m
}
