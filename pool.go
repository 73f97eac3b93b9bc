package coroutines

// A token addresses a pooled slot by index and generation.
// The generation changes every time a slot is handed out again, so a token
// held across a recycle can never resolve to the slot's next occupant.
type token struct {
	index uint32
	gen   uint32
}

type slot[T any] struct {
	value T
	gen   uint32
	live  bool
}

// pool is a reuse cache for records that are obtained and released at
// a high rate. Released slots keep their backing storage and are handed
// out again through a free stack, so steady-state operation does not
// allocate. The pool never shrinks.
//
// Slots are held by pointer: growing the arena while a caller still holds
// a *T must not move the record.
type pool[T any] struct {
	slots []*slot[T]
	free  []uint32
	n     int
}

// obtain returns a cleared record and the token that addresses it.
func (p *pool[T]) obtain() (token, *T) {
	var sl *slot[T]
	var index uint32

	if k := len(p.free); k != 0 {
		index = p.free[k-1]
		p.free = p.free[:k-1]
		sl = p.slots[index]
	} else {
		index = uint32(len(p.slots))
		sl = new(slot[T])
		p.slots = append(p.slots, sl)
	}

	sl.gen++
	sl.live = true
	p.n++

	return token{index: index, gen: sl.gen}, &sl.value
}

// release resets every field of the addressed record to its zero value and
// returns the slot to the free stack. Releasing a stale token is a no-op.
//
// The wholesale reset is load-bearing: any field left behind would leak
// into the next record handed out from the same slot.
func (p *pool[T]) release(tok token) {
	sl, ok := p.lookup(tok)
	if !ok {
		return
	}

	var zero T
	sl.value = zero
	sl.live = false
	p.free = append(p.free, tok.index)
	p.n--
}

// get returns the record addressed by tok, if tok still resolves.
func (p *pool[T]) get(tok token) (*T, bool) {
	sl, ok := p.lookup(tok)
	if !ok {
		return nil, false
	}
	return &sl.value, true
}

// alive reports whether tok still resolves to a live record.
func (p *pool[T]) alive(tok token) bool {
	_, ok := p.lookup(tok)
	return ok
}

// each calls f for every live record.
func (p *pool[T]) each(f func(*T)) {
	for _, sl := range p.slots {
		if sl.live {
			f(&sl.value)
		}
	}
}

// size returns the number of live records.
func (p *pool[T]) size() int {
	return p.n
}

func (p *pool[T]) lookup(tok token) (*slot[T], bool) {
	if int(tok.index) >= len(p.slots) {
		return nil, false
	}
	sl := p.slots[tok.index]
	if !sl.live || sl.gen != tok.gen {
		return nil, false
	}
	return sl, true
}
