package strategy

// Sequence hands out increasing numbers for ship names. It is owned by one Orchestrator, names
// are unique for the life of the process only.
type Sequence struct {
	next int64
}

func NewSequence(start int64) *Sequence {
	return &Sequence{next: start}
}

func (s *Sequence) Next() int64 {
	n := s.next
	s.next++
	return n
}
