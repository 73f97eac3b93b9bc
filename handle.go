package coroutines

// A Handle references a scheduled coroutine.
//
// Handles are returned by [Scheduler.Start] and may be yielded from another
// coroutine body to await the referenced coroutine's completion.
//
// A Handle is a value; it does not keep the coroutine alive. Once the
// coroutine completes and its record is recycled, the Handle goes inert:
// every method becomes a no-op. The zero Handle is inert from the start,
// which is what Start returns when a sequence exhausts immediately.
type Handle struct {
	scheduler *Scheduler
	tok       token
}

// RequestStop asks the referenced coroutine to stop.
//
// Stopping is cooperative, not preemptive: a resumption already in progress
// is not interrupted. The flag is consulted at the top of the coroutine's
// next scheduled evaluation, at which point the coroutine is released
// without resuming; its body unwinds through its own defers.
//
// RequestStop is idempotent and safe to call after the coroutine has
// already completed.
func (h Handle) RequestStop() {
	if h.scheduler == nil {
		return
	}
	if co, ok := h.scheduler.pool.get(h.tok); ok {
		co.stopRequested = true
	}
}

// Running reports whether the referenced coroutine has not yet completed.
//
// A coroutine whose stop has been requested still counts as running until
// the next [Scheduler.Tick] observes the flag and releases it.
func (h Handle) Running() bool {
	return h.scheduler != nil && h.scheduler.pool.alive(h.tok)
}
