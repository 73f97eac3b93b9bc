package coroutines_test

import (
	"fmt"

	coroutines "github.com/SeratoninRonin/CoroutineManager"
)

func Example() {
	var sched coroutines.Scheduler

	// A coroutine runs up to its first suspension point during Start.
	sched.Start(func(yield func(any) bool) {
		fmt.Println("hatch")
		if !yield(nil) {
			return
		}
		fmt.Println("first tick")
		if !yield(coroutines.Delay(1.0)) {
			return
		}
		fmt.Println("one second later")
	})

	fmt.Println("--- start returned ---")

	sched.Tick(0.6)
	sched.Tick(0.6) // 0.6 seconds into the delay: still waiting
	sched.Tick(0.6) // 1.2 seconds into the delay

	// Output:
	// hatch
	// --- start returned ---
	// first tick
	// one second later
}

func ExampleHandle_RequestStop() {
	var sched coroutines.Scheduler

	h := sched.Start(func(yield func(any) bool) {
		defer fmt.Println("cleaned up")
		for i := 1; ; i++ {
			fmt.Println("step", i)
			if !yield(nil) {
				return
			}
		}
	})

	sched.Tick(0)

	// Cooperative: the coroutine is released at its next evaluation,
	// unwinding through its own defers.
	h.RequestStop()
	sched.Tick(0)

	// Output:
	// step 1
	// step 2
	// cleaned up
}

func Example_waitFor() {
	var sched coroutines.Scheduler

	worker := sched.Start(func(yield func(any) bool) {
		fmt.Println("working")
		if !yield(nil) {
			return
		}
		fmt.Println("done")
	})

	// Yielding another coroutine's handle suspends until it completes.
	sched.Start(func(yield func(any) bool) {
		if !yield(worker) {
			return
		}
		fmt.Println("observed completion")
	})

	for range 3 {
		sched.Tick(1.0)
	}

	// Output:
	// working
	// done
	// observed completion
}
