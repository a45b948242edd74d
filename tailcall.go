package fpidioms

// ProgressInterval is how often Add1 reports how deep it has gone.
const ProgressInterval = 10_000

// Add1 calls itself with previous+1 forever. There is no base case.
//
// Go does not eliminate tail calls, so every call pushes a frame. The
// goroutine stack grows until it hits the runtime limit (1 GB on 64-bit by
// default, see runtime/debug.SetMaxStack) and the process dies with
// "goroutine stack exceeds limit". That is a fatal error, not a panic, so
// recover cannot catch it. Never call this from a test.
//
// progress, if non-nil, is called every ProgressInterval calls.
func Add1(previous int64, progress func(int64)) int64 {
	if progress != nil && previous%ProgressInterval == 0 {
		progress(previous)
	}
	return Add1(previous+1, progress)
}

// Add1Until is Add1 with a base case. Stack depth is limit-previous.
func Add1Until(previous, limit int64) int64 {
	if previous >= limit {
		return previous
	}
	return Add1Until(previous+1, limit)
}

// Thunk is a deferred step of a trampolined computation. A nil next means
// the computation is done and value holds the answer.
type Thunk[T any] func() (value T, next Thunk[T])

// Trampoline runs thunks in a loop until one reports completion, so a
// self-recursive definition runs in constant stack.
func Trampoline[T any](start Thunk[T]) T {
	value, next := start()
	for next != nil {
		value, next = next()
	}
	return value
}

// CountTo is Add1Until written as a trampoline.
func CountTo(previous, limit int64, progress func(int64)) int64 {
	var step func(n int64) Thunk[int64]
	step = func(n int64) Thunk[int64] {
		return func() (int64, Thunk[int64]) {
			if progress != nil && n%ProgressInterval == 0 {
				progress(n)
			}
			if n >= limit {
				return n, nil
			}
			return 0, step(n + 1)
		}
	}
	return Trampoline(step(previous))
}
