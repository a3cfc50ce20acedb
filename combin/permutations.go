package combin

// Permutations enumerates all permutations of {0,...,n-1} in lexicographic
// successor order, starting from the identity. Not safe for concurrent use.
type Permutations struct {
	n       int
	cur     []int
	started bool
	done    bool
}

// NewPermutations returns an enumerator over the permutations of n letters.
func NewPermutations(n int) *Permutations {
	p := &Permutations{n: n, cur: make([]int, n)}
	for i := range p.cur {
		p.cur[i] = i
	}
	return p
}

// Count returns the total number of permutations, n!.
func (p *Permutations) Count() int64 {
	return Factorial(p.n)
}

// Next advances to the next permutation and reports whether one is
// available. The first call yields the identity.
func (p *Permutations) Next() bool {
	if p.done {
		return false
	}
	if !p.started {
		p.started = true
		return true
	}
	// Standard lexicographic successor.
	i := p.n - 2
	for i >= 0 && p.cur[i] >= p.cur[i+1] {
		i--
	}
	if i < 0 {
		p.done = true
		return false
	}
	j := p.n - 1
	for p.cur[j] <= p.cur[i] {
		j--
	}
	p.cur[i], p.cur[j] = p.cur[j], p.cur[i]
	for l, r := i+1, p.n-1; l < r; l, r = l+1, r-1 {
		p.cur[l], p.cur[r] = p.cur[r], p.cur[l]
	}
	return true
}

// Permutation returns the current permutation. The returned slice is reused
// by Next; callers that retain it must copy it.
func (p *Permutations) Permutation() []int {
	return p.cur
}

// Reset restarts the enumeration from the identity.
func (p *Permutations) Reset() {
	for i := range p.cur {
		p.cur[i] = i
	}
	p.started = false
	p.done = false
}

// AllPermutations returns all permutations of n letters in enumeration order.
func AllPermutations(n int) (perms [][]int) {
	p := NewPermutations(n)
	perms = make([][]int, 0, p.Count())
	for p.Next() {
		perms = append(perms, append([]int(nil), p.Permutation()...))
	}
	return
}
