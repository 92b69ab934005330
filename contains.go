package poolprobe

// IndexOf returns the index of the first occurrence of v in the pool, or -1
// if v is not present. The pool is scanned front to back.
func IndexOf(p *Pool, v int) int {
	if p == nil {
		return -1
	}
	for i, x := range p.values {
		if x == v {
			return i
		}
	}
	return -1
}

// Contains reports whether v equals any value in the pool.
// It is a linear scan; worst-case cost is proportional to the pool size.
func Contains(p *Pool, v int) bool {
	return IndexOf(p, v) >= 0
}

// Contains reports whether v equals any value in the pool.
func (p *Pool) Contains(v int) bool {
	return Contains(p, v)
}
