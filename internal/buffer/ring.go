package buffer

// Ring is a ring buffer keeping the last x values
type Ring struct {
	index  int
	count  int
	values []float64
}

// NewRing creates a new ring with the given buffer size.
func NewRing(size int) *Ring {
	if size < 1 {
		size = 1
	}
	return &Ring{
		values: make([]float64, size),
	}
}

// Size returns the number of values within the ring.
func (r *Ring) Size() int {
	if r.count < len(r.values) {
		return r.count
	}
	return len(r.values)
}

// Push adds a value to the ring, overwriting the oldest one if the ring is full.
func (r *Ring) Push(v float64) {
	r.values[r.index] = v
	r.index = r.next(r.index)
	r.count++
}

func (r *Ring) next(index int) int {
	return (index + 1) % len(r.values)
}

// Get returns the ring values from the oldest to the most recent.
func (r *Ring) Get() []float64 {
	l := r.Size()
	v := make([]float64, l)
	start := 0
	if r.count > len(r.values) {
		start = r.index
	}
	for i := 0; i < l; i++ {
		v[i] = r.values[(start+i)%len(r.values)]
	}
	return v
}

// Last returns the most recently added value.
func (r *Ring) Last() (float64, bool) {
	if r.count == 0 {
		return 0, false
	}
	return r.values[(r.index-1+len(r.values))%len(r.values)], true
}

// Average returns the mean of the values within the ring.
func (r *Ring) Average() float64 {
	l := r.Size()
	if l == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < l; i++ {
		sum += r.values[i]
	}
	return sum / float64(l)
}
