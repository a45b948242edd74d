package fpidioms

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Item is a small record used by the filtering demonstrations.
type Item struct {
	ID   int
	Name string
}

// String implements fmt.Stringer.
func (i Item) String() string {
	return fmt.Sprintf("Item{ID: %d, Name: %s}", i.ID, i.Name)
}

// SampleItems returns the three items the filtering demos run against.
func SampleItems() []Item {
	return []Item{{1, "Foo"}, {2, "Bar"}, {3, "Baz"}}
}

// ============================================================================
// Predicate
// ============================================================================

// Predicate is a first-class test on a value. Like the other function types
// in this package it carries its own combinators.
//
// Example:
//
//	evenB := EvenID.And(NameStartsWith("B"))
//	for item := range Filter(slices.Values(items), evenB) { ... }
type Predicate[T any] func(T) bool

// Test applies the predicate.
func (p Predicate[T]) Test(v T) bool {
	return p(v)
}

// Empty returns the predicate that accepts everything (identity for And).
func (p Predicate[T]) Empty() Predicate[T] {
	return func(T) bool { return true }
}

// And accepts values that both predicates accept. other is not called when p
// rejects.
func (p Predicate[T]) And(other Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return p(v) && other(v)
	}
}

// Or accepts values that either predicate accepts.
func (p Predicate[T]) Or(other Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return p(v) || other(v)
	}
}

// Not inverts the predicate.
func (p Predicate[T]) Not() Predicate[T] {
	return func(v T) bool {
		return !p(v)
	}
}

// EvenID accepts items with an even ID.
var EvenID Predicate[Item] = func(item Item) bool {
	return item.ID%2 == 0
}

// NameStartsWith builds a predicate on the item name prefix.
func NameStartsWith(prefix string) Predicate[Item] {
	return func(item Item) bool {
		return strings.HasPrefix(item.Name, prefix)
	}
}

// IDGreaterThan builds a predicate that accepts items whose ID exceeds
// threshold. The threshold is captured, so each call returns an independent
// predicate.
func IDGreaterThan(threshold int) Predicate[Item] {
	return func(item Item) bool {
		return item.ID > threshold
	}
}

// ============================================================================
// Filter
// ============================================================================

// Filter yields the elements of seq accepted by pred, in source order.
// Nothing is evaluated until the result is ranged over, and ranging again
// re-runs the filter against seq.
func Filter[T any](seq iter.Seq[T], pred Predicate[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if pred(v) && !yield(v) {
				return
			}
		}
	}
}

// FilterSlice filters a slice eagerly.
func FilterSlice[T any](items []T, pred Predicate[T]) []T {
	return slices.Collect(Filter(slices.Values(items), pred))
}
