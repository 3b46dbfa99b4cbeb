package metrics

// Ring is a fixed-capacity sample buffer. Once full, each Push drops the
// oldest sample. Not safe for concurrent use; the live loop owns it.
type Ring struct {
	buf   []float64
	start int
	n     int
}

// NewRing returns a ring holding at most capacity samples. A capacity
// below one is treated as one.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{buf: make([]float64, capacity)}
}

// Push appends a sample, evicting the oldest when full.
func (r *Ring) Push(v float64) {
	if r.n < len(r.buf) {
		r.buf[(r.start+r.n)%len(r.buf)] = v
		r.n++
		return
	}
	r.buf[r.start] = v
	r.start = (r.start + 1) % len(r.buf)
}

// Len returns the number of samples held.
func (r *Ring) Len() int { return r.n }

// Values returns the samples oldest-first in a fresh slice.
func (r *Ring) Values() []float64 {
	out := make([]float64, r.n)
	for i := 0; i < r.n; i++ {
		out[i] = r.buf[(r.start+i)%len(r.buf)]
	}
	return out
}
