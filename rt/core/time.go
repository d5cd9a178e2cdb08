package core

// Time is the per-frame clock resource. Elapsed feeds the per-pixel RNG so
// animated frames decorrelate; Delta is kept for the host's own update loop.
type Time struct {
	Elapsed float32
	Delta   float32
}

// Advance moves the clock forward by dt seconds.
func (t *Time) Advance(dt float32) {
	t.Delta = dt
	t.Elapsed += dt
}
