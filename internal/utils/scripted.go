package utils

// Scripted is a Roller that replays fixed values, for tests that need an exact
// sequence of critical, loot and flee rolls. It panics when a sequence runs out so
// an unexpected extra roll fails loudly.
type Scripted struct {
	Floats []float64
	Ints   []int
}

// Float64 returns the next scripted float.
func (s *Scripted) Float64() float64 {
	if len(s.Floats) == 0 {
		panic("utils.Scripted: float sequence exhausted")
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

// Intn returns the next scripted int, reduced modulo n.
func (s *Scripted) Intn(n int) int {
	if len(s.Ints) == 0 {
		panic("utils.Scripted: int sequence exhausted")
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	return v % n
}
