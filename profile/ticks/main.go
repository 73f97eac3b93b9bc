// Profiling:
// go build ./profile/ticks
// go tool pprof -http=":8000" -nodefraction=0.001 ./ticks mem.pprof

package main

import (
	"github.com/pkg/profile"

	coroutines "github.com/SeratoninRonin/CoroutineManager"
)

func main() {
	rounds := 50
	ticks := 10000
	workers := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, ticks, workers)
	p.Stop()
}

func run(rounds, ticks, workers int) {
	for range rounds {
		var sched coroutines.Scheduler
		for i := range workers {
			delay := coroutines.Delay(float64(i%10) / 100)
			sched.Start(func(yield func(any) bool) {
				for {
					if !yield(nil) {
						return
					}
					if !yield(delay) {
						return
					}
				}
			})
		}
		for range ticks {
			sched.Tick(0.016)
		}
		sched.StopAll()
		sched.Tick(0)
	}
}
