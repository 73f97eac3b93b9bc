package coroutines

import "iter"

// A Scheduler runs coroutines cooperatively, resuming each at most once per
// [Scheduler.Tick].
//
// A coroutine is submitted with [Scheduler.Start] as an iter.Seq[any] and
// immediately runs up to its first suspension point. After that, every Tick
// resumes the coroutines that are ready: those that yielded nil (or any
// unrecognized value) the tick before, those whose [Delay] has run down,
// and those whose awaited [Handle] has completed.
//
// Everything happens synchronously inside the caller's Start and Tick
// calls, on one logical thread, in submission order. The Scheduler performs
// no locking and must not be shared by goroutines without synchronization.
// If one coroutine's step blocks or never suspends, no other coroutine can
// run; the best practice is to yield often and never block.
//
// The zero Scheduler is ready to use.
type Scheduler struct {
	pool    pool[coroutine]
	active  []token // entries to evaluate this tick, in submission order
	pending []token // entries carried into the next tick
	retired []token // entries to release at the end of the current tick
	ticking bool
}

// Start submits seq as a new coroutine and synchronously resumes it once,
// so the body runs up to its first suspension point before Start returns.
//
// If that first resumption already exhausts the sequence, there is nothing
// left to reference and Start returns the zero [Handle]. Otherwise the
// coroutine is scheduled and Start returns a Handle to it. A coroutine
// started from inside another coroutine's resumption is scheduled for the
// following tick, never the one in progress.
//
// Each resumption of seq may yield:
//   - a [Delay]: suspend for that many seconds of Tick delta time;
//   - a [Handle] of this Scheduler: suspend until that coroutine completes;
//   - anything else, nil included: suspend until the next tick.
//
// Unrecognized values are deliberately ignored rather than rejected.
//
// Start panics if seq is nil.
func (s *Scheduler) Start(seq iter.Seq[any]) Handle {
	if seq == nil {
		panic("coroutines: Start called with a nil sequence")
	}

	tok, co := s.pool.obtain()
	co.next, co.stop = iter.Pull(seq)

	if !s.step(tok, co) {
		return Handle{}
	}
	return Handle{scheduler: s, tok: tok}
}

// Tick resumes every ready coroutine once, in submission order.
//
// The caller drives the Scheduler by calling Tick exactly once per update
// cycle with the elapsed time in seconds; delta is never sourced
// internally, and a negative delta is not validated. Coroutines that
// suspend again, and coroutines that are not yet ready, are carried into
// the next tick's list. Coroutines submitted or resumed during a Tick are
// never serviced by that same Tick.
//
// Tick must not be called from inside a coroutine body.
func (s *Scheduler) Tick(delta float64) {
	s.ticking = true

	for _, tok := range s.active {
		co, ok := s.pool.get(tok)
		if !ok {
			continue
		}

		if co.stopRequested {
			s.finish(tok, co)
			continue
		}

		switch co.wait.kind {
		case waitTarget:
			if s.pool.alive(co.wait.target) {
				s.pending = append(s.pending, tok)
				continue
			}
			co.wait = waitSpec{}
		case waitTimer:
			co.wait.seconds -= delta
			if co.wait.seconds >= 0 {
				// An exact hit keeps waiting; the timer fires only
				// once the accumulated delta has passed the request.
				s.pending = append(s.pending, tok)
				continue
			}
			co.wait = waitSpec{}
		}

		s.step(tok, co)
	}

	s.flushRetired()
	s.active, s.pending = s.pending, s.active[:0]
	s.ticking = false
}

// StopAll requests every scheduled coroutine to stop.
//
// Like [Handle.RequestStop], this is cooperative: the records are released
// at the next Tick, each body unwinding through its own defers. To tear a
// Scheduler down, call StopAll and then Tick once more.
func (s *Scheduler) StopAll() {
	s.pool.each(func(co *coroutine) { co.stopRequested = true })
}

// Len returns the number of coroutines currently scheduled, including those
// whose stop has been requested but not yet observed.
func (s *Scheduler) Len() int {
	return s.pool.size()
}

// step resumes a coroutine once and reschedules it according to what it
// yielded. It reports whether the coroutine is still scheduled.
func (s *Scheduler) step(tok token, co *coroutine) bool {
	v, ok := co.next()
	if !ok {
		s.finish(tok, co)
		return false
	}

	switch y := v.(type) {
	case Delay:
		co.wait = waitSpec{kind: waitTimer, seconds: max(float64(y), 0)}
	case Handle:
		if y.scheduler == s {
			// The wait is checked at the next evaluation, not now; a
			// target that has already completed costs one extra tick.
			co.wait = waitSpec{kind: waitTarget, target: y.tok}
		} else {
			co.wait = waitSpec{}
		}
	default:
		co.wait = waitSpec{}
	}

	s.schedule(tok)
	return true
}

func (s *Scheduler) schedule(tok token) {
	if s.ticking {
		s.pending = append(s.pending, tok)
	} else {
		s.active = append(s.active, tok)
	}
}

// finish retires a completed coroutine. Outside a tick the record is
// released immediately; during a tick it is parked until the scan is over,
// so that coroutines awaiting it still observe it as live for the rest of
// the pass and resume one tick after its completion.
func (s *Scheduler) finish(tok token, co *coroutine) {
	if s.ticking {
		s.retired = append(s.retired, tok)
		return
	}
	co.stop()
	s.pool.release(tok)
}

func (s *Scheduler) flushRetired() {
	// Unwinding a body can finish further coroutines reentrantly, so the
	// list may grow while it is being drained.
	for i := 0; i < len(s.retired); i++ {
		tok := s.retired[i]
		if co, ok := s.pool.get(tok); ok {
			co.stop()
			s.pool.release(tok)
		}
	}
	s.retired = s.retired[:0]
}
