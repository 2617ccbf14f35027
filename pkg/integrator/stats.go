package integrator

// Stats counts path events since the last reset
type Stats struct {
	CameraPaths          uint64
	Bounces              uint64
	ShadowRays           uint64
	OccludedShadowRays   uint64
	EnvironmentHits      uint64
	RouletteTerminations uint64
}

// AverageBounces returns the mean number of bounces per camera path
func (s Stats) AverageBounces() float64 {
	if s.CameraPaths == 0 {
		return 0
	}
	return float64(s.Bounces) / float64(s.CameraPaths)
}
