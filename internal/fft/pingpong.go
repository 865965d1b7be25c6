package fft

// PingPong owns the two stage buffers of one transform pass: the caller's
// output (slot 0) and the plan's scratch (slot 1).
//
// Reset picks the starting slot from the number of stage writes so that the
// final write always lands in slot 0. Each Next call hands out the active slot
// and flips the index.
type PingPong[T any] struct {
	slots  [2][]T
	active int
	writes int
}

// Reset binds out and scratch for a pass of writes stage writes.
func (p *PingPong[T]) Reset(out, scratch []T, writes int) {
	p.slots[0] = out
	p.slots[1] = scratch
	p.writes = writes
	p.active = (writes - 1) & 1
}

// Next returns the buffer the next stage writes to.
func (p *PingPong[T]) Next() []T {
	buf := p.slots[p.active]
	p.active ^= 1
	p.writes--

	return buf
}

// Landed reports whether every planned write was handed out and the last one
// went to the output slot.
func (p *PingPong[T]) Landed() bool {
	return p.writes == 0 && p.active == 1
}
