package puzzle

// NearestVertex finds the vertex whose pixel projection is nearest to the
// device coordinate (x, y), for drag initiation. The nearest vertex wins
// even when points sit nearly on top of each other; ties go to the lower
// index. Returns ok=false when the nearest vertex is further than the
// configured drag threshold.
func (s *State) NearestVertex(x, y, tilesize int) (v int, ok bool) {
	best, bestd := -1, 0
	for i, p := range s.Pts {
		px, py := p.Pixel(tilesize)
		dx, dy := px-x, py-y
		d := dx*dx + dy*dy
		if best == -1 || bestd > d {
			best, bestd = i, d
		}
	}
	t := s.cfg.DragThreshold
	if best >= 0 && bestd <= t*t {
		return best, true
	}
	return -1, false
}
