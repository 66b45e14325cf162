package sim

// Stats accumulate over a run. Wait times are counted in ticks.
type Stats struct {
	Spawned          int
	Delivered        int
	TotalWaitOutside int
	TotalWaitInside  int
}

func (s Stats) AvgWaitOutside() float64 {
	if s.Delivered == 0 {
		return 0
	}
	return float64(s.TotalWaitOutside) / float64(s.Delivered)
}

func (s Stats) AvgWaitInside() float64 {
	if s.Delivered == 0 {
		return 0
	}
	return float64(s.TotalWaitInside) / float64(s.Delivered)
}
