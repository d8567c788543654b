package dice

import "sync"

// Scripted is a Roller that replays queued values, for deterministic tests.
// Values are clamped to the die size; once the queue is empty it returns
// Fallback (or 1 when Fallback is zero).
type Scripted struct {
	mu       sync.Mutex
	values   []int
	Fallback int
}

// NewScripted creates a roller that returns values in order
func NewScripted(values ...int) *Scripted {
	return &Scripted{values: append([]int(nil), values...)}
}

// Push queues more values
func (s *Scripted) Push(values ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = append(s.values, values...)
}

// Remaining reports how many queued values are left
func (s *Scripted) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values)
}

// Roll returns the next queued value
func (s *Scripted) Roll(size int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next(size), nil
}

// RollN returns the next count queued values
func (s *Scripted) RollN(count, size int) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]int, count)
	for i := range out {
		out[i] = s.next(size)
	}
	return out, nil
}

func (s *Scripted) next(size int) int {
	v := s.Fallback
	if len(s.values) > 0 {
		v = s.values[0]
		s.values = s.values[1:]
	}
	if v <= 0 {
		v = 1
	}
	if size > 0 && v > size {
		v = size
	}
	return v
}
