package integrator

import "github.com/df07/go-pathtracer/pkg/core"

// sequenceSampler replays a fixed list of values, wrapping around at the end
type sequenceSampler struct {
	values []float64
	next   int
}

func (s *sequenceSampler) Get1D() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func (s *sequenceSampler) Get2D() core.Vec2 {
	x := s.Get1D()
	y := s.Get1D()
	return core.NewVec2(x, y)
}

func relativeError(got, want float64) float64 {
	if want == 0 {
		return got
	}
	d := (got - want) / want
	if d < 0 {
		return -d
	}
	return d
}
