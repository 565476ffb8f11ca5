package ledger

// ring is a fixed-capacity, most-recent-first record buffer. push is O(1)
// and evicts the oldest record once the buffer is full.
type ring struct {
	buf  []string
	head int // index of the most recent record
	n    int
}

func newRing(capacity int) *ring {
	return &ring{buf: make([]string, capacity)}
}

func (r *ring) push(rec string) {
	r.head--
	if r.head < 0 {
		r.head = len(r.buf) - 1
	}
	r.buf[r.head] = rec
	if r.n < len(r.buf) {
		r.n++
	}
}

// records returns the buffered records, most recent first.
func (r *ring) records() []string {
	out := make([]string, r.n)
	for i := range out {
		out[i] = r.buf[(r.head+i)%len(r.buf)]
	}
	return out
}

func (r *ring) len() int { return r.n }
