package id

import "sync/atomic"

// Generator hands out server-assigned numeric identifiers.
type Generator interface {
	NextID() int64
}

// Sequence is a monotonically increasing generator starting after a seed value.
type Sequence struct {
	last atomic.Int64
}

func NewSequence(start int64) *Sequence {
	s := &Sequence{}
	s.last.Store(start)
	return s
}

func (s *Sequence) NextID() int64 {
	return s.last.Add(1)
}

// Observe moves the sequence past an externally assigned id.
func (s *Sequence) Observe(id int64) {
	for {
		current := s.last.Load()
		if id <= current {
			return
		}
		if s.last.CompareAndSwap(current, id) {
			return
		}
	}
}
