package coroutines

// Delay is a suspension request measured in seconds.
//
// Yielding a Delay from a coroutine body suspends the coroutine until
// the delta times of subsequent [Scheduler.Tick] calls have added up past
// the requested amount. Time beyond the request is discarded, never
// credited toward a later Delay. A negative Delay is clamped to zero.
type Delay float64

type waitKind uint8

const (
	waitNextTick waitKind = iota // resume at the next tick
	waitTimer                    // resume once the timer runs down
	waitTarget                   // resume once another coroutine completes
)

// waitSpec describes why a coroutine is suspended.
// The zero value means continue at the next tick.
type waitSpec struct {
	kind    waitKind
	seconds float64 // remaining time, waitTimer only
	target  token   // awaited coroutine, waitTarget only
}

// coroutine is the pooled record behind a scheduled coroutine.
//
// next and stop come from [iter.Pull]: next performs one resumption and
// reports exhaustion, stop makes the body's pending yield return false so
// that the body unwinds through its own defers.
//
// A record is released back to the pool when its sequence is exhausted or
// when stopRequested is observed at the top of its next evaluation. There
// are no other release paths. The pool zeroes the whole record on release.
type coroutine struct {
	next          func() (any, bool)
	stop          func()
	wait          waitSpec
	stopRequested bool
}
