/*
Package fpidioms shows functional-programming idioms written in plain Go.

# Overview

Each file is a self-contained demonstration. Nothing shares state, nothing
does I/O except through a writer the caller passes in, and every
demonstration has tests and runnable examples next to it.

# Demonstrations

Equality:
  - PointClass: pointer identity, equal only to itself
  - PointRecord: immutable value with Equal, Hash, Deconstruct and With*
  - PointWithValueEquality: the same contract written by hand on a pointer

Deconstruction and matching:
  - TradeClass, TradeRecord: Deconstruct into (id, amount)
  - DescribeTradeGuards, DescribeTradeRelational, DescribeTradeProperty
  - Tool (Drill | Hammer): a closed variant set with MatchTool
  - ClassifyToolImperative, ClassifyToolTernary, ClassifyToolMatch agree on
    every input

Higher-order functions:
  - Predicate: a function type with And, Or, Not and Empty
  - Filter: a lazy iter.Seq filter that can be ranged over again
  - IDGreaterThan: a function that builds predicates
  - Multicast, MulticastFunc: ordered callback lists

Currying:
  - CurriedAdd, Curry, Uncurry, Partial

Railway-oriented flow:
  - Either with Bind, BindTo, MapRight and Fold
  - Option for nil-propagating chains
  - RunImperative, RunOptional and RunEither give the same answer

Recursion:
  - Add1 recurses forever; Go has no tail-call elimination so it overflows
  - Add1Until, Trampoline and CountTo are the bounded and constant-stack forms

Output parameters:
  - Foo writes through a pointer
  - Outcome is the preferred composite return

# Decimal Values

Coordinates and trade amounts are github.com/shopspring/decimal values.
decimal.Decimal holds a *big.Int, so == on two decimals (or on structs that
contain them) compares pointers. Use the Equal methods.

# Package Import

	import fp "github.com/Pure-Company/fpidioms"
*/
package fpidioms
