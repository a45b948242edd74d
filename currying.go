package fpidioms

// CurriedAdd is addition taking one argument at a time.
//
//	CurriedAdd(5)(3) // 8
//	add5 := CurriedAdd(5)
//	add5(3), add5(10) // 8, 15
func CurriedAdd(a int) func(int) int {
	return func(b int) int {
		return a + b
	}
}

// Add is the uncurried form of CurriedAdd.
func Add(a, b int) int {
	return a + b
}

// Curry turns a two-argument function into a chain of one-argument functions.
func Curry[A, B, R any](fn func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return fn(a, b)
		}
	}
}

// Uncurry reverses Curry.
func Uncurry[A, B, R any](fn func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R {
		return fn(a)(b)
	}
}

// Partial fixes the first argument of fn. The returned function can be
// called any number of times.
func Partial[A, B, R any](fn func(A, B) R, a A) func(B) R {
	return Curry(fn)(a)
}
