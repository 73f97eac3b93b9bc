// Package coroutines provides a cooperative, tick-driven scheduler for
// suspendable units of work.
//
// A coroutine here is an ordinary Go function written as an iter.Seq[any]:
// it runs until it yields, and each yielded value tells the [Scheduler] why
// the coroutine is suspended. The scheduler resumes each coroutine at most
// once per [Scheduler.Tick], which the host application calls once per
// update cycle with the elapsed time in seconds. This is the coroutine
// model familiar from game engines, where per-frame scripts interleave
// with a simulation loop that is driven from outside.
//
// # Suspending
//
// A coroutine body communicates entirely through its yield function:
//
//	sched.Start(func(yield func(any) bool) {
//		fmt.Println("runs during Start")
//		if !yield(nil) {
//			return // stop requested
//		}
//		fmt.Println("runs one tick later")
//		if !yield(coroutines.Delay(1.5)) {
//			return
//		}
//		fmt.Println("runs 1.5 seconds of delta time later")
//	})
//
// Yielding nil suspends until the next tick. Yielding a [Delay] suspends
// until that much Tick delta time has passed. Yielding a [Handle] suspends
// until the referenced coroutine completes. Any other value is ignored and
// behaves like nil; yielding something unrecognized is not an error.
//
// # Stopping
//
// [Scheduler.Start] returns a [Handle] whose RequestStop method asks the
// coroutine to stop. Stopping is cooperative: nothing is interrupted
// mid-step. At the coroutine's next scheduled evaluation the flag is
// observed, the pending yield inside the body returns false, and the body
// unwinds through its own defers. Stopping a coroutine that has already
// completed is a no-op.
//
// # Execution model
//
// All coroutine code runs synchronously inside the caller's Start and Tick
// calls, on one logical thread, with no locking anywhere. Within one Tick,
// coroutines are resumed in submission order. Coroutines submitted during
// a Tick, and waits that become satisfied during a Tick, take effect the
// following Tick; the scheduler mutates its active set only through a
// second buffer that is swapped in after each scan.
//
// A coroutine's state record is pooled and recycled once the coroutine
// completes, so steady-state scheduling does not allocate. Handles address
// records through a generation-checked token and go inert on recycling;
// a stale Handle can never act on the slot's next occupant.
//
// If Tick is never called, every pending coroutine stalls indefinitely;
// driving the scheduler is entirely the caller's responsibility, as is
// supplying sensible delta times.
package coroutines
